package pricing

import (
	"github.com/shopspring/decimal"

	"fabric-price/core/types"
	"fabric-price/internal/errors"
)

// PricePerMeterFromTable is (gsm*width) * VND/kg / (1000*100).
// An unknown composition or processing type yields zero.
func PricePerMeterFromTable(t *PriceTable, c types.Composition, p types.ProcessingType, gsm, widthCm int) decimal.Decimal {
	perKg, ok := t.Lookup(c, p)
	if !ok {
		return decimal.Zero
	}
	return PricePerMeterFromKg(perKg, types.Dimensions{GSM: gsm, WidthCm: widthCm})
}

// PriceFromTable prices a fabric from the catalog. When the composition or
// processing type is missing, every amount is zero and the error is NOT_FOUND.
func PriceFromTable(t *PriceTable, spec types.FabricSpec) (types.PriceResult, error) {
	result := types.PriceResult{
		Model:       types.ModelTable,
		Currency:    types.CurrencyVND,
		GSM:         spec.GSM,
		WidthCm:     spec.WidthCm,
		Composition: spec.Composition,
		Processing:  spec.Processing,
	}

	perKg, ok := t.Lookup(spec.Composition, spec.Processing)
	if !ok {
		if !t.Has(spec.Composition) {
			return result, errors.NotFound("composition", spec.Composition.String())
		}
		return result, errors.NotFound("processing", spec.Processing.String()).
			WithContext("composition", spec.Composition.String())
	}

	perMeter := PricePerMeterFromKg(perKg, spec.Dimensions)

	result.PricePerMeter = perMeter
	result.PricePerKg = perKg
	result.MeterBand = NewBand(perMeter)
	result.KgBand = NewBand(perKg)
	return result, nil
}
