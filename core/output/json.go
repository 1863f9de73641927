package output

import (
	"encoding/json"
	"io"

	"fabric-price/core/pricing"
	"fabric-price/core/quote"
	"fabric-price/core/types"
)

// JSONFormatter writes indented JSON
type JSONFormatter struct{}

// NewJSONFormatter creates a JSON formatter
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// Format returns the format type
func (f *JSONFormatter) Format() Format {
	return FormatJSON
}

// RenderEstimate writes the result as JSON
func (f *JSONFormatter) RenderEstimate(w io.Writer, r *types.PriceResult) error {
	return encode(w, r)
}

// RenderQuote writes the quote as JSON
func (f *JSONFormatter) RenderQuote(w io.Writer, q *quote.Quote) error {
	return encode(w, q)
}

// RenderTable writes the catalog rows as JSON
func (f *JSONFormatter) RenderTable(w io.Writer, t *pricing.PriceTable) error {
	return encode(w, t.Rows())
}

func encode(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
