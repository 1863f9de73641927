package pricing

import (
	"github.com/shopspring/decimal"

	"fabric-price/core/types"
)

// Fitted regression constants
var (
	xOptAvg = decimal.RequireFromString("32232.698415")
	zOptAvg = decimal.RequireFromString("999.995000")

	// PlainCoefficient replaces the color term in the colorless model
	PlainCoefficient = decimal.RequireFromString("36108.573417")

	markup    = decimal.RequireFromString("1.1")
	surcharge = decimal.RequireFromString("1.2")
	vndPerUSD = decimal.NewFromInt(types.VNDPerUSD)
)

var colorCoefficients = map[types.Color]decimal.Decimal{
	types.ColorWhite:       decimal.RequireFromString("29384.908"),
	types.ColorLight:       decimal.RequireFromString("30131.982"),
	types.ColorMedium:      decimal.RequireFromString("31626.129"),
	types.ColorDark:        decimal.RequireFromString("36108.573"),
	types.ColorGreyMelange: decimal.RequireFromString("38598.819"),
}

// ColorCoefficient returns the per-color coefficient; unknown colors use White.
func ColorCoefficient(c types.Color) decimal.Decimal {
	if coeff, ok := colorCoefficients[c]; ok {
		return coeff
	}
	return colorCoefficients[types.ColorWhite]
}

// RegressionPrice evaluates the fitted formula:
//
//	base   = gsm*width/100000 * coeff + xOptAvg
//	stage1 = base*1.1 + zOptAvg
//	usd    = stage1*1.1*1.2 / 23612
//	vnd    = usd * 23612
//
// The divide and multiply by 23612 cancel algebraically; usd is returned
// as the reference price.
func RegressionPrice(d types.Dimensions, coeff decimal.Decimal) (vnd, usd decimal.Decimal) {
	base := d.KgPerMeter().Mul(coeff).Add(xOptAvg)
	stage1 := base.Mul(markup).Add(zOptAvg)
	usd = stage1.Mul(markup).Mul(surcharge).Div(vndPerUSD)
	vnd = usd.Mul(vndPerUSD)
	return vnd, usd
}

// PriceFromRegression prices a fabric from its dye color
func PriceFromRegression(spec types.FabricSpecColor) types.PriceResult {
	color := spec.Color
	if _, ok := colorCoefficients[color]; !ok {
		color = types.ColorWhite
	}
	result := regressionResult(types.ModelRegression, spec.Dimensions, ColorCoefficient(color))
	result.Color = color
	return result
}

// PriceFromRegressionPlain prices the fixed 60/40 cotton-polyester blend
func PriceFromRegressionPlain(spec types.FabricSpecPlain) types.PriceResult {
	result := regressionResult(types.ModelRegressionPlain, spec.Dimensions, PlainCoefficient)
	result.Composition = types.PlainComposition
	return result
}

func regressionResult(model types.Model, d types.Dimensions, coeff decimal.Decimal) types.PriceResult {
	vnd, usd := RegressionPrice(d, coeff)
	perKg := PricePerKgFromMeter(vnd, d.GSM, d.WidthCm)

	return types.PriceResult{
		Model:          model,
		Currency:       types.CurrencyVND,
		GSM:            d.GSM,
		WidthCm:        d.WidthCm,
		PricePerMeter:  vnd,
		PricePerKg:     perKg,
		MeterBand:      NewBand(vnd),
		KgBand:         NewBand(perKg),
		ReferencePrice: &usd,
	}
}
