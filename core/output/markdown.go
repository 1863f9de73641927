package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"fabric-price/core/pricing"
	"fabric-price/core/quote"
	"fabric-price/core/types"
)

// MarkdownFormatter writes GitHub-flavored markdown tables
type MarkdownFormatter struct{}

// NewMarkdownFormatter creates a markdown formatter
func NewMarkdownFormatter() *MarkdownFormatter {
	return &MarkdownFormatter{}
}

// Format returns the format type
func (f *MarkdownFormatter) Format() Format {
	return FormatMarkdown
}

// RenderEstimate writes the estimate as a two-column table
func (f *MarkdownFormatter) RenderEstimate(w io.Writer, r *types.PriceResult) error {
	var b strings.Builder
	b.WriteString("## Price Prediction\n\n")
	b.WriteString("| | Estimate | Lower (-5%) | Upper (+5%) |\n")
	b.WriteString("|---|---:|---:|---:|\n")
	fmt.Fprintf(&b, "| Price per meter | %s | %s | %s |\n",
		FormatAmount(r.PricePerMeter, r.Currency),
		FormatAmount(r.MeterBand.Lower, r.Currency),
		FormatAmount(r.MeterBand.Upper, r.Currency))
	fmt.Fprintf(&b, "| Price per kg | %s | %s | %s |\n",
		FormatPerKg(r.PricePerKg, r.Currency),
		FormatPerKg(r.KgBand.Lower, r.Currency),
		FormatPerKg(r.KgBand.Upper, r.Currency))
	b.WriteString("\n")
	for _, note := range describe(r) {
		fmt.Fprintf(&b, "- %s\n", escape(note))
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// RenderQuote writes one row per line and a totals row
func (f *MarkdownFormatter) RenderQuote(w io.Writer, q *quote.Quote) error {
	var b strings.Builder
	b.WriteString("## Fabric Quote\n\n")
	b.WriteString("| Fabric | Model | Meters | Price/m | Total |\n")
	b.WriteString("|---|---|---:|---:|---:|\n")
	for i := range q.Lines {
		l := &q.Lines[i]
		if err := l.Err(); err != nil {
			fmt.Fprintf(&b, "| %s | %s | %s | – | %s |\n", escape(l.Name), l.Model, l.Meters, escape(err.Error()))
			continue
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
			escape(l.Name), l.Result.Model, l.Meters,
			FormatAmount(l.Result.PricePerMeter, q.Currency),
			FormatAmount(l.Total, q.Currency))
	}
	fmt.Fprintf(&b, "| **Total** | | %s | | **%s** |\n", q.Meters, FormatAmount(q.Total, q.Currency))
	fmt.Fprintf(&b, "\nRange: %s – %s\n",
		FormatAmount(q.TotalBand.Lower, q.Currency),
		FormatAmount(q.TotalBand.Upper, q.Currency))

	_, err := io.WriteString(w, b.String())
	return err
}

// RenderTable writes the catalog
func (f *MarkdownFormatter) RenderTable(w io.Writer, t *pricing.PriceTable) error {
	var b strings.Builder
	b.WriteString("| Composition |")
	for _, p := range types.ProcessingTypes() {
		fmt.Fprintf(&b, " %s |", p)
	}
	b.WriteString("\n|---|---:|---:|---:|\n")
	for _, row := range t.Rows() {
		fmt.Fprintf(&b, "| %s |", escape(row.Composition.String()))
		for _, p := range types.ProcessingTypes() {
			price, _ := row.Price(p)
			fmt.Fprintf(&b, " %s |", FormatNumber(decimal.NewFromInt(price)))
		}
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func escape(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
