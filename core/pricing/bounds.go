package pricing

import (
	"github.com/shopspring/decimal"

	"fabric-price/core/types"
)

var (
	lowerFactor = decimal.RequireFromString("0.95")
	upperFactor = decimal.RequireFromString("1.05")

	gramsPerKg = decimal.NewFromInt(1000)
	cmPerMeter = decimal.NewFromInt(100)
)

// NewBand returns the fixed ±5% band around x
func NewBand(x decimal.Decimal) types.Band {
	return types.Band{
		Lower: x.Mul(lowerFactor),
		Upper: x.Mul(upperFactor),
	}
}

// PricePerKgFromMeter inverts the area/weight relationship:
// perMeter*1000 / (gsm * width/100). Zero dimensions give zero.
func PricePerKgFromMeter(perMeter decimal.Decimal, gsm, widthCm int) decimal.Decimal {
	if gsm <= 0 || widthCm <= 0 {
		return decimal.Zero
	}
	widthM := decimal.NewFromInt(int64(widthCm)).Div(cmPerMeter)
	gramsPerMeter := decimal.NewFromInt(int64(gsm)).Mul(widthM)
	return perMeter.Mul(gramsPerKg).Div(gramsPerMeter)
}

// PricePerMeterFromKg converts VND/kg to VND per linear meter
func PricePerMeterFromKg(perKg decimal.Decimal, d types.Dimensions) decimal.Decimal {
	return d.KgPerMeter().Mul(perKg)
}
