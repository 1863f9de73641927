// Package export writes the catalog and priced quotes as XLSX workbooks.
package export

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"fabric-price/core/pricing"
	"fabric-price/core/quote"
	"fabric-price/core/types"
	"fabric-price/internal/errors"
)

const (
	// TableSheet holds the per-kg catalog
	TableSheet = "Price Table"

	// QuoteSheet holds the priced lines of a quote
	QuoteSheet = "Quote"
)

// excelize built-in number format "#,##0"
const numFmtThousands = 3

// WriteTable writes the catalog as a workbook to w
func WriteTable(w io.Writer, t *pricing.PriceTable) error {
	f, err := newWorkbook(TableSheet)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	if err := fillTable(f, TableSheet, t); err != nil {
		return err
	}
	if err := f.Write(w); err != nil {
		return errors.Export("failed to write workbook", err)
	}
	return nil
}

// SaveTable writes the catalog workbook to path
func SaveTable(path string, t *pricing.PriceTable) error {
	return save(path, func(w io.Writer) error { return WriteTable(w, t) })
}

// WriteQuote writes a priced quote as a workbook to w
func WriteQuote(w io.Writer, q *quote.Quote) error {
	f, err := newWorkbook(QuoteSheet)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	if err := fillQuote(f, QuoteSheet, q); err != nil {
		return err
	}
	if err := f.Write(w); err != nil {
		return errors.Export("failed to write workbook", err)
	}
	return nil
}

// SaveQuote writes the quote workbook to path
func SaveQuote(path string, q *quote.Quote) error {
	return save(path, func(w io.Writer) error { return WriteQuote(w, q) })
}

func save(path string, write func(io.Writer) error) error {
	if !strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return errors.NotSupported("export to " + filepath.Base(path) + " (only .xlsx is written)").WithContext("path", path)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.Export("failed to create output directory", err).WithContext("path", path)
		}
	}

	out, err := os.Create(path)
	if err != nil {
		return errors.Export("failed to create output file", err).WithContext("path", path)
	}
	if err := write(out); err != nil {
		_ = out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return errors.Export("failed to close output file", err).WithContext("path", path)
	}
	return nil
}

func fillTable(f *excelize.File, sheet string, t *pricing.PriceTable) error {
	header := []interface{}{"Composition"}
	for _, p := range types.ProcessingTypes() {
		header = append(header, p.String()+" (VND/kg)")
	}
	if err := setRow(f, sheet, 1, header); err != nil {
		return err
	}

	rows := t.Rows()
	for i, row := range rows {
		cells := []interface{}{row.Composition.String()}
		for _, p := range types.ProcessingTypes() {
			price, _ := row.Price(p)
			cells = append(cells, price)
		}
		if err := setRow(f, sheet, i+2, cells); err != nil {
			return err
		}
	}

	if err := styleSheet(f, sheet, len(header), len(rows)+1, 2, len(header)); err != nil {
		return err
	}
	_ = f.SetColWidth(sheet, "A", "A", 42)
	_ = f.SetColWidth(sheet, "B", "D", 22)
	return nil
}

var quoteHeader = []interface{}{
	"Fabric", "Model", "GSM", "Width (cm)", "Composition", "Processing", "Color",
	"Meters", "Price/m", "Price/kg", "Total", "Total lower", "Total upper", "Error",
}

func fillQuote(f *excelize.File, sheet string, q *quote.Quote) error {
	if err := setRow(f, sheet, 1, quoteHeader); err != nil {
		return err
	}

	for i := range q.Lines {
		l := &q.Lines[i]
		cells := []interface{}{
			l.Name,
			string(l.Model),
			l.GSM,
			l.WidthCm,
			string(l.Composition),
			string(l.Processing),
			string(l.Color),
			l.Meters.InexactFloat64(),
		}
		if l.Err() != nil {
			cells = append(cells, nil, nil, nil, nil, nil, l.Error)
		} else {
			cells = append(cells,
				l.Result.PricePerMeter.InexactFloat64(),
				l.Result.PricePerKg.InexactFloat64(),
				l.Total.InexactFloat64(),
				l.TotalBand.Lower.InexactFloat64(),
				l.TotalBand.Upper.InexactFloat64(),
			)
		}
		if err := setRow(f, sheet, i+2, cells); err != nil {
			return err
		}
	}

	last := len(q.Lines) + 2
	totals := []interface{}{
		"Total (" + q.Currency.String() + ")", nil, nil, nil, nil, nil, nil,
		q.Meters.InexactFloat64(),
		nil, nil,
		q.Total.InexactFloat64(),
		q.TotalBand.Lower.InexactFloat64(),
		q.TotalBand.Upper.InexactFloat64(),
	}
	if err := setRow(f, sheet, last, totals); err != nil {
		return err
	}

	if err := styleSheet(f, sheet, len(quoteHeader), last, 9, 13); err != nil {
		return err
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return errors.Export("failed to create style", err)
	}
	first, _ := excelize.CoordinatesToCellName(1, last)
	if err := f.SetCellStyle(sheet, first, first, bold); err != nil {
		return errors.Export("failed to style totals", err)
	}
	_ = f.SetColWidth(sheet, "A", "A", 20)
	_ = f.SetColWidth(sheet, "E", "E", 36)
	return nil
}

// newWorkbook creates a file whose only sheet is named name
func newWorkbook(name string) (*excelize.File, error) {
	f := excelize.NewFile()
	current := f.GetSheetName(f.GetActiveSheetIndex())
	if err := f.SetSheetName(current, name); err != nil {
		_ = f.Close()
		return nil, errors.Export("failed to name sheet", err)
	}
	return f, nil
}

func setRow(f *excelize.File, sheet string, row int, cells []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return errors.Export("invalid cell", err)
	}
	if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
		return errors.Export("failed to write row", err).WithContext("row", row)
	}
	return nil
}

// styleSheet bolds the header row and applies a thousands format to the
// amount columns firstAmount..lastAmount.
func styleSheet(f *excelize.File, sheet string, cols, lastRow, firstAmount, lastAmount int) error {
	header, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"DDEBF7"}, Pattern: 1},
	})
	if err != nil {
		return errors.Export("failed to create style", err)
	}
	amount, err := f.NewStyle(&excelize.Style{NumFmt: numFmtThousands})
	if err != nil {
		return errors.Export("failed to create style", err)
	}

	topLeft, _ := excelize.CoordinatesToCellName(1, 1)
	topRight, _ := excelize.CoordinatesToCellName(cols, 1)
	if err := f.SetCellStyle(sheet, topLeft, topRight, header); err != nil {
		return errors.Export("failed to style header", err)
	}

	if lastRow < 2 {
		return nil
	}
	from, _ := excelize.CoordinatesToCellName(firstAmount, 2)
	to, _ := excelize.CoordinatesToCellName(lastAmount, lastRow)
	if err := f.SetCellStyle(sheet, from, to, amount); err != nil {
		return errors.Export("failed to style amounts", err)
	}
	return nil
}
