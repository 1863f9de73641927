package types

import "github.com/shopspring/decimal"

// Currency represents a currency code
type Currency string

const (
	CurrencyVND Currency = "VND"
	CurrencyUSD Currency = "USD"
)

// VNDPerUSD is the fixed exchange rate the regression model was fitted with.
const VNDPerUSD = 23612

// String returns the string representation
func (c Currency) String() string {
	return string(c)
}

// Band is a confidence band around an estimated price
type Band struct {
	Lower decimal.Decimal `json:"lower"`
	Upper decimal.Decimal `json:"upper"`
}

// Scale multiplies both ends by f
func (b Band) Scale(f decimal.Decimal) Band {
	return Band{Lower: b.Lower.Mul(f), Upper: b.Upper.Mul(f)}
}

// Add sums two bands end by end
func (b Band) Add(o Band) Band {
	return Band{Lower: b.Lower.Add(o.Lower), Upper: b.Upper.Add(o.Upper)}
}

// PriceResult is the output of every pricing model
type PriceResult struct {
	// Model is the pricing model that produced this result
	Model Model `json:"model"`

	// Currency of every amount below
	Currency Currency `json:"currency"`

	// Inputs echoed back for display
	GSM         int            `json:"gsm"`
	WidthCm     int            `json:"width_cm"`
	Composition Composition    `json:"composition,omitempty"`
	Processing  ProcessingType `json:"processing,omitempty"`
	Color       Color          `json:"color,omitempty"`

	PricePerMeter decimal.Decimal `json:"price_per_meter"`
	PricePerKg    decimal.Decimal `json:"price_per_kg"`
	MeterBand     Band            `json:"price_per_meter_band"`
	KgBand        Band            `json:"price_per_kg_band"`

	// ReferencePrice is the intermediate USD price of the regression models
	ReferencePrice *decimal.Decimal `json:"reference_price_usd,omitempty"`
}

// IsZero reports whether no price was produced
func (r PriceResult) IsZero() bool {
	return r.PricePerMeter.IsZero() && r.PricePerKg.IsZero()
}

// In converts every amount to the given currency at VNDPerUSD.
func (r PriceResult) In(c Currency) PriceResult {
	rate := decimal.NewFromInt(VNDPerUSD)

	var convert func(decimal.Decimal) decimal.Decimal
	switch {
	case r.Currency == CurrencyVND && c == CurrencyUSD:
		convert = func(d decimal.Decimal) decimal.Decimal { return d.Div(rate) }
	case r.Currency == CurrencyUSD && c == CurrencyVND:
		convert = func(d decimal.Decimal) decimal.Decimal { return d.Mul(rate) }
	default:
		return r
	}

	out := r
	out.Currency = c
	out.PricePerMeter = convert(r.PricePerMeter)
	out.PricePerKg = convert(r.PricePerKg)
	out.MeterBand = Band{Lower: convert(r.MeterBand.Lower), Upper: convert(r.MeterBand.Upper)}
	out.KgBand = Band{Lower: convert(r.KgBand.Lower), Upper: convert(r.KgBand.Upper)}
	return out
}
