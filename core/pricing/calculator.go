package pricing

import (
	"fabric-price/core/types"
	"fabric-price/internal/errors"
)

// Request is a model-agnostic pricing request. Fields a model does not use
// are ignored.
type Request struct {
	Model       types.Model          `json:"model"`
	GSM         int                  `json:"gsm"`
	WidthCm     int                  `json:"width_cm"`
	Composition types.Composition    `json:"composition,omitempty"`
	Processing  types.ProcessingType `json:"processing,omitempty"`
	Color       types.Color          `json:"color,omitempty"`
}

// Dimensions returns the physical inputs of the request
func (r Request) Dimensions() types.Dimensions {
	return types.Dimensions{GSM: r.GSM, WidthCm: r.WidthCm}
}

// Calculator dispatches requests to the pricing models. It holds only
// immutable state and is safe for concurrent use.
type Calculator struct {
	table        *PriceTable
	strict       bool
	currency     types.Currency
	defaultModel types.Model
}

// Option configures a Calculator
type Option func(*Calculator)

// WithTable replaces the built-in catalog
func WithTable(t *PriceTable) Option {
	return func(c *Calculator) { c.table = t }
}

// WithStrictRanges rejects gsm/width outside the supported ranges
func WithStrictRanges(strict bool) Option {
	return func(c *Calculator) { c.strict = strict }
}

// WithCurrency sets the currency of returned results
func WithCurrency(cur types.Currency) Option {
	return func(c *Calculator) { c.currency = cur }
}

// WithDefaultModel sets the model used when a request names none
func WithDefaultModel(m types.Model) Option {
	return func(c *Calculator) { c.defaultModel = m }
}

// NewCalculator creates a calculator over the default catalog
func NewCalculator(opts ...Option) *Calculator {
	c := &Calculator{
		table:        DefaultTable(),
		currency:     types.CurrencyVND,
		defaultModel: types.ModelTable,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Table returns the catalog in use
func (c *Calculator) Table() *PriceTable {
	return c.table
}

// Currency returns the currency of every result
func (c *Calculator) Currency() types.Currency {
	return c.currency
}

// ModelFor returns the model a request naming m is priced with
func (c *Calculator) ModelFor(m types.Model) types.Model {
	if m == "" {
		return c.defaultModel
	}
	return m
}

// Estimate prices a single request
func (c *Calculator) Estimate(req Request) (types.PriceResult, error) {
	model := c.ModelFor(req.Model)

	if c.strict {
		if err := req.Dimensions().Validate(); err != nil {
			return types.PriceResult{}, err
		}
	}

	var (
		result types.PriceResult
		err    error
	)
	switch model {
	case types.ModelTable:
		result, err = PriceFromTable(c.table, types.FabricSpec{
			Dimensions:  req.Dimensions(),
			Composition: req.Composition,
			Processing:  req.Processing,
		})
	case types.ModelRegression:
		result = PriceFromRegression(types.FabricSpecColor{
			Dimensions: req.Dimensions(),
			Color:      req.Color,
		})
	case types.ModelRegressionPlain:
		result = PriceFromRegressionPlain(types.FabricSpecPlain{Dimensions: req.Dimensions()})
	default:
		return types.PriceResult{}, errors.Inputf("unknown pricing model %q", model)
	}

	return result.In(c.currency), err
}
