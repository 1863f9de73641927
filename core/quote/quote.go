// Package quote prices several fabric lines with ordered quantities.
package quote

import (
	"github.com/shopspring/decimal"

	"fabric-price/core/pricing"
	"fabric-price/core/types"
	"fabric-price/internal/errors"
)

// Line is one fabric of a quote
type Line struct {
	Name string `json:"name"`
	pricing.Request

	// Meters is the ordered length
	Meters decimal.Decimal `json:"meters"`

	// Source locates the line in a quote file, if any
	Source string `json:"source,omitempty"`
}

// PricedLine is a line with its estimate
type PricedLine struct {
	Line
	Result    types.PriceResult `json:"result"`
	Total     decimal.Decimal   `json:"total"`
	TotalBand types.Band        `json:"total_band"`
	Error     string            `json:"error,omitempty"`

	err error
}

// Err returns the pricing error of the line, if any
func (l *PricedLine) Err() error {
	return l.err
}

// Quote is a priced set of lines
type Quote struct {
	Currency  types.Currency  `json:"currency"`
	Lines     []PricedLine    `json:"lines"`
	Total     decimal.Decimal `json:"total"`
	TotalBand types.Band      `json:"total_band"`
	Meters    decimal.Decimal `json:"meters"`
	Failed    int             `json:"failed"`
}

// Build prices every line. A failing line is kept with its error and
// contributes nothing to the totals.
func Build(calc *pricing.Calculator, lines []Line) *Quote {
	q := &Quote{
		Currency: calc.Currency(),
		Lines:    make([]PricedLine, 0, len(lines)),
	}

	for _, line := range lines {
		priced := priceLine(calc, line)
		if priced.err != nil {
			q.Failed++
		} else {
			q.Total = q.Total.Add(priced.Total)
			q.TotalBand = q.TotalBand.Add(priced.TotalBand)
			q.Meters = q.Meters.Add(line.Meters)
		}
		q.Lines = append(q.Lines, priced)
	}

	return q
}

func priceLine(calc *pricing.Calculator, line Line) PricedLine {
	priced := PricedLine{Line: line}

	if !line.Meters.IsPositive() {
		priced.err = errors.Inputf("%s: meters must be positive, got %s", line.Name, line.Meters)
		priced.Error = priced.err.Error()
		return priced
	}

	result, err := calc.Estimate(line.Request)
	priced.Result = result
	if err != nil {
		priced.err = errors.Wrapf(errors.TypeOf(err), err, "line %s", line.Name)
		priced.Error = priced.err.Error()
		return priced
	}

	priced.Total = result.PricePerMeter.Mul(line.Meters)
	priced.TotalBand = result.MeterBand.Scale(line.Meters)
	return priced
}

// Errors returns the errors of failed lines in order
func (q *Quote) Errors() []error {
	var errs []error
	for i := range q.Lines {
		if err := q.Lines[i].err; err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}
