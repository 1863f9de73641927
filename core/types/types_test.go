package types

import (
	"testing"

	"github.com/shopspring/decimal"

	"fabric-price/internal/errors"
)

func TestParseProcessingType(t *testing.T) {
	tests := []struct {
		in   string
		want ProcessingType
	}{
		{"Basic Jersey", ProcessingBasicJersey},
		{"basic-jersey", ProcessingBasicJersey},
		{"Printing", ProcessingPrinting},
		{"Fleece / Brushed", ProcessingFleeceBrushed},
		{"fleece", ProcessingFleeceBrushed},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseProcessingType(tt.in)
			if err != nil {
				t.Fatalf("ParseProcessingType(%q): %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}

	if _, err := ParseProcessingType("dyeing"); !errors.IsType(err, errors.TypeInput) {
		t.Errorf("expected INPUT_ERROR for unknown processing, got %v", err)
	}
}

func TestParseColor(t *testing.T) {
	for in, want := range map[string]Color{
		"white":        ColorWhite,
		"DARK":         ColorDark,
		"Grey Melange": ColorGreyMelange,
		"grey-melange": ColorGreyMelange,
		"gray":         ColorGreyMelange,
	} {
		got, err := ParseColor(in)
		if err != nil {
			t.Fatalf("ParseColor(%q): %v", in, err)
		}
		if got != want {
			t.Errorf("ParseColor(%q) = %q, want %q", in, got, want)
		}
	}

	if _, err := ParseColor("neon"); err == nil {
		t.Error("expected error for unknown color")
	}
}

func TestParseModel(t *testing.T) {
	if m, _ := ParseModel("plain"); m != ModelRegressionPlain {
		t.Errorf("ParseModel(plain) = %q", m)
	}
	if _, err := ParseModel(""); err == nil {
		t.Error("empty model should not parse")
	}
}

func TestDimensionsValidate(t *testing.T) {
	tests := []struct {
		name string
		dims Dimensions
		ok   bool
	}{
		{"lower corner", Dimensions{GSM: 120, WidthCm: 150}, true},
		{"upper corner", Dimensions{GSM: 300, WidthCm: 200}, true},
		{"gsm too light", Dimensions{GSM: 119, WidthCm: 175}, false},
		{"gsm too heavy", Dimensions{GSM: 301, WidthCm: 175}, false},
		{"too narrow", Dimensions{GSM: 200, WidthCm: 149}, false},
		{"too wide", Dimensions{GSM: 200, WidthCm: 201}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.dims.Validate()
			if tt.ok && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !tt.ok && !errors.IsType(err, errors.TypeInput) {
				t.Errorf("expected INPUT_ERROR, got %v", err)
			}
		})
	}
}

func TestKgPerMeter(t *testing.T) {
	got := Dimensions{GSM: 200, WidthCm: 175}.KgPerMeter()
	if !got.Equal(decimal.RequireFromString("0.35")) {
		t.Errorf("KgPerMeter = %s, want 0.35", got)
	}
}

func TestPriceResultIn(t *testing.T) {
	r := PriceResult{
		Currency:      CurrencyVND,
		PricePerMeter: decimal.NewFromInt(47224),
		PricePerKg:    decimal.NewFromInt(23612),
		MeterBand:     Band{Lower: decimal.NewFromInt(23612), Upper: decimal.NewFromInt(70836)},
	}

	usd := r.In(CurrencyUSD)
	if usd.Currency != CurrencyUSD {
		t.Fatalf("Currency = %s", usd.Currency)
	}
	if !usd.PricePerMeter.Equal(decimal.NewFromInt(2)) {
		t.Errorf("PricePerMeter = %s, want 2", usd.PricePerMeter)
	}
	if !usd.PricePerKg.Equal(decimal.NewFromInt(1)) {
		t.Errorf("PricePerKg = %s, want 1", usd.PricePerKg)
	}
	if !usd.MeterBand.Upper.Equal(decimal.NewFromInt(3)) {
		t.Errorf("MeterBand.Upper = %s, want 3", usd.MeterBand.Upper)
	}

	back := usd.In(CurrencyVND)
	if !back.PricePerMeter.Equal(r.PricePerMeter) {
		t.Errorf("round trip = %s, want %s", back.PricePerMeter, r.PricePerMeter)
	}
	if same := r.In(CurrencyVND); !same.PricePerMeter.Equal(r.PricePerMeter) {
		t.Error("same-currency conversion should be a no-op")
	}
}
