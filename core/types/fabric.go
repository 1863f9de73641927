// Package types - Fabric attributes and price results
package types

import (
	"strings"
	"unicode"

	"github.com/shopspring/decimal"

	"fabric-price/internal/errors"
)

// Supported input ranges
const (
	MinGSM     = 120
	MaxGSM     = 300
	MinWidthCm = 150
	MaxWidthCm = 200
)

// Composition is a textile fiber blend from the price catalog
type Composition string

// String returns the string representation
func (c Composition) String() string {
	return string(c)
}

// PlainComposition is the fixed blend of the colorless regression model
const PlainComposition Composition = "60% Cotton, 40% Polyester"

// ProcessingType is the finishing applied to the fabric
type ProcessingType string

const (
	ProcessingBasicJersey   ProcessingType = "Basic Jersey"
	ProcessingPrinting      ProcessingType = "Printing"
	ProcessingFleeceBrushed ProcessingType = "Fleece / Brushed"
)

// ProcessingTypes lists processing types in catalog column order
func ProcessingTypes() []ProcessingType {
	return []ProcessingType{ProcessingBasicJersey, ProcessingPrinting, ProcessingFleeceBrushed}
}

// String returns the string representation
func (p ProcessingType) String() string {
	return string(p)
}

// ParseProcessingType accepts a label ("Fleece / Brushed") or a slug
// ("fleece-brushed", "fleece").
func ParseProcessingType(s string) (ProcessingType, error) {
	switch normalize(s) {
	case "basicjersey", "jersey", "basic":
		return ProcessingBasicJersey, nil
	case "printing", "print":
		return ProcessingPrinting, nil
	case "fleecebrushed", "fleece", "brushed":
		return ProcessingFleeceBrushed, nil
	}
	return "", errors.Inputf("unknown processing type %q", s)
}

// Color is the dye depth used by the color regression model
type Color string

const (
	ColorWhite       Color = "White"
	ColorLight       Color = "Light"
	ColorMedium      Color = "Medium"
	ColorDark        Color = "Dark"
	ColorGreyMelange Color = "Grey Melange"
)

// Colors lists the known colors from lightest to heaviest coefficient
func Colors() []Color {
	return []Color{ColorWhite, ColorLight, ColorMedium, ColorDark, ColorGreyMelange}
}

// String returns the string representation
func (c Color) String() string {
	return string(c)
}

// ParseColor accepts a label or slug, case-insensitively.
func ParseColor(s string) (Color, error) {
	key := normalize(s)
	for _, c := range Colors() {
		if normalize(string(c)) == key {
			return c, nil
		}
	}
	if key == "grey" || key == "gray" || key == "graymelange" {
		return ColorGreyMelange, nil
	}
	return "", errors.Inputf("unknown color %q", s)
}

// Dimensions are the physical inputs shared by every model
type Dimensions struct {
	GSM     int `json:"gsm"`
	WidthCm int `json:"width_cm"`
}

// Validate checks the supported gsm and width ranges
func (d Dimensions) Validate() error {
	if d.GSM < MinGSM || d.GSM > MaxGSM {
		return errors.Inputf("gsm %d out of range [%d,%d]", d.GSM, MinGSM, MaxGSM).
			WithContext("gsm", d.GSM)
	}
	if d.WidthCm < MinWidthCm || d.WidthCm > MaxWidthCm {
		return errors.Inputf("width %dcm out of range [%d,%d]", d.WidthCm, MinWidthCm, MaxWidthCm).
			WithContext("width_cm", d.WidthCm)
	}
	return nil
}

// KgPerMeter is the weight of one linear meter: gsm*width/(1000*100).
func (d Dimensions) KgPerMeter() decimal.Decimal {
	return decimal.NewFromInt(int64(d.GSM) * int64(d.WidthCm)).Div(decimal.NewFromInt(1000 * 100))
}

// FabricSpec is the input of the lookup-table model
type FabricSpec struct {
	Dimensions
	Composition Composition    `json:"composition"`
	Processing  ProcessingType `json:"processing"`
}

// FabricSpecColor is the input of the color regression model
type FabricSpecColor struct {
	Dimensions
	Color Color `json:"color"`
}

// FabricSpecPlain is the input of the colorless regression model
type FabricSpecPlain struct {
	Dimensions
}

func normalize(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
