package output

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"fabric-price/core/pricing"
	"fabric-price/core/quote"
	"fabric-price/core/types"
	"fabric-price/core/ui"
)

// CLIFormatter renders boxed summaries for the terminal
type CLIFormatter struct {
	noColor bool
}

// NewCLIFormatter creates a terminal formatter
func NewCLIFormatter(noColor bool) *CLIFormatter {
	return &CLIFormatter{noColor: noColor}
}

// Format returns the format type
func (f *CLIFormatter) Format() Format {
	return FormatCLI
}

// RenderEstimate writes the result panel of one estimate
func (f *CLIFormatter) RenderEstimate(w io.Writer, r *types.PriceResult) error {
	uw := ui.NewWriter(w, f.noColor)

	s := uw.NewPriceSummary("Price Prediction")
	s.PricePerMeter = FormatAmount(r.PricePerMeter, r.Currency)
	s.PricePerKg = FormatPerKg(r.PricePerKg, r.Currency)
	s.MeterRange = [2]string{FormatAmount(r.MeterBand.Lower, r.Currency), FormatAmount(r.MeterBand.Upper, r.Currency)}
	s.KgRange = [2]string{FormatPerKg(r.KgBand.Lower, r.Currency), FormatPerKg(r.KgBand.Upper, r.Currency)}
	s.Notes = describe(r)
	s.Render()
	return nil
}

// describe lists the inputs behind an estimate
func describe(r *types.PriceResult) []string {
	notes := []string{
		fmt.Sprintf("Model: %s", r.Model),
		fmt.Sprintf("GSM: %d  Width: %dcm", r.GSM, r.WidthCm),
	}
	if r.Composition != "" {
		notes = append(notes, "Composition: "+r.Composition.String())
	}
	if r.Processing != "" {
		notes = append(notes, "Processing: "+r.Processing.String())
	}
	if r.Color != "" {
		notes = append(notes, "Color: "+r.Color.String())
	}
	if r.ReferencePrice != nil {
		notes = append(notes, "Reference price: "+FormatUSD(*r.ReferencePrice)+"/m")
	}
	return notes
}

// RenderQuote writes one table row per line and the totals
func (f *CLIFormatter) RenderQuote(w io.Writer, q *quote.Quote) error {
	uw := ui.NewWriter(w, f.noColor)
	uw.Header("Fabric Quote")

	table := uw.NewTable("Fabric", "Model", "Meters", "Price/m", "Total", "Range")
	for i := range q.Lines {
		l := &q.Lines[i]
		if l.Err() != nil {
			table.AddRow(l.Name, string(l.Model), l.Meters.String(), "-", "-", "error")
			continue
		}
		table.AddRow(
			l.Name,
			string(l.Result.Model),
			l.Meters.String(),
			FormatAmount(l.Result.PricePerMeter, q.Currency),
			FormatAmount(l.Total, q.Currency),
			FormatAmount(l.TotalBand.Lower, q.Currency)+" – "+FormatAmount(l.TotalBand.Upper, q.Currency),
		)
	}
	table.Render()

	uw.Println("")
	uw.SubHeader(fmt.Sprintf("Total for %s m: %s", q.Meters.String(), FormatAmount(q.Total, q.Currency)))
	uw.Println("  %s  →  %s", FormatAmount(q.TotalBand.Lower, q.Currency), FormatAmount(q.TotalBand.Upper, q.Currency))

	if q.Failed > 0 {
		uw.Println("")
		uw.Warning("%d of %d lines could not be priced and are left out of the total", q.Failed, len(q.Lines))
	}
	for _, err := range q.Errors() {
		uw.Error("%v", err)
	}
	return nil
}

// RenderTable writes the catalog
func (f *CLIFormatter) RenderTable(w io.Writer, t *pricing.PriceTable) error {
	uw := ui.NewWriter(w, f.noColor)
	uw.Header("Price per kg (VND)")

	headers := []string{"Composition"}
	for _, p := range types.ProcessingTypes() {
		headers = append(headers, p.String())
	}
	table := uw.NewTable(headers...)
	for _, row := range t.Rows() {
		cells := []string{row.Composition.String()}
		for _, p := range types.ProcessingTypes() {
			price, _ := row.Price(p)
			cells = append(cells, FormatNumber(decimal.NewFromInt(price)))
		}
		table.AddRow(cells...)
	}
	table.Render()
	return nil
}
