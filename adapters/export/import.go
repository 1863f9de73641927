package export

import (
	"io"
	"math"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"fabric-price/core/pricing"
	"fabric-price/core/types"
	"fabric-price/internal/errors"
)

// LoadTable reads a price table workbook from path
func LoadTable(path string) (*pricing.PriceTable, error) {
	in, err := os.Open(path)
	if err != nil {
		return nil, errors.Parsing("failed to open price table", err).WithContext("path", path)
	}
	defer func() { _ = in.Close() }()

	t, err := ReadTable(in)
	if err != nil {
		return nil, errors.Wrapf(errors.TypeOf(err), err, "%s", path)
	}
	return t, nil
}

// ReadTable reads a workbook in the layout written by WriteTable: a header
// row, then composition followed by one VND/kg column per processing type.
// The first sheet is used when no sheet is named TableSheet.
func ReadTable(r io.Reader) (*pricing.PriceTable, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, errors.Parsing("failed to open workbook", err)
	}
	defer func() { _ = f.Close() }()

	sheet := TableSheet
	if idx, _ := f.GetSheetIndex(sheet); idx < 0 {
		sheet = f.GetSheetName(0)
	}

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, errors.Parsing("failed to read sheet", err).WithContext("sheet", sheet)
	}
	if len(rows) < 2 {
		return nil, errors.Newf(errors.TypeParsing, "sheet %q has no price rows", sheet)
	}

	processing := types.ProcessingTypes()
	out := make([]pricing.Row, 0, len(rows)-1)
	for i, cells := range rows[1:] {
		rowNum := i + 2
		if len(cells) == 0 || strings.TrimSpace(cells[0]) == "" {
			continue
		}
		if len(cells) < 1+len(processing) {
			return nil, errors.Newf(errors.TypeParsing, "row %d: want %d columns, got %d", rowNum, 1+len(processing), len(cells))
		}

		prices := make([]int64, len(processing))
		for j := range processing {
			numeric, err := isNumeric(f, sheet, j+2, rowNum)
			if err != nil {
				return nil, err
			}
			v, err := parsePrice(cells[j+1], numeric)
			if err != nil {
				return nil, errors.Wrapf(errors.TypeParsing, err, "row %d, column %s", rowNum, processing[j])
			}
			prices[j] = v
		}
		out = append(out, pricing.Row{
			Composition:   types.Composition(strings.TrimSpace(cells[0])),
			BasicJersey:   prices[0],
			Printing:      prices[1],
			FleeceBrushed: prices[2],
		})
	}

	return pricing.NewPriceTable(out)
}

// groupedPrice matches an integer written as text, either bare or with one
// consistent thousands separator as FormatNumber prints it.
var groupedPrice = regexp.MustCompile(`^(\d+|\d{1,3}(\.\d{3})+|\d{1,3}(,\d{3})+|\d{1,3}( \d{3})+|\d{1,3}(\x{00a0}\d{3})+)$`)

// isNumeric reports whether the cell holds a number rather than text
func isNumeric(f *excelize.File, sheet string, col, row int) (bool, error) {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return false, errors.Parsing("invalid cell reference", err)
	}
	typ, err := f.GetCellType(sheet, cell)
	if err != nil {
		return false, errors.Parsing("failed to read cell type", err).WithContext("cell", cell)
	}
	return typ == excelize.CellTypeNumber || typ == excelize.CellTypeUnset, nil
}

// parsePrice reads a whole VND amount. Numeric cells must hold an integral
// value; text cells must be digits, optionally grouped in thousands and
// followed by a currency sign.
func parsePrice(s string, numeric bool) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errors.New(errors.TypeParsing, "empty price")
	}

	if numeric {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, errors.Wrapf(errors.TypeParsing, err, "invalid price %q", s)
		}
		if v != math.Trunc(v) {
			return 0, errors.Newf(errors.TypeParsing, "price %s is not a whole number of VND", s)
		}
		return int64(v), nil
	}

	s = strings.TrimSpace(strings.TrimSuffix(s, "₫"))
	if !groupedPrice.MatchString(s) {
		return 0, errors.Newf(errors.TypeParsing, "invalid price %q: want a whole number of VND", s)
	}
	v, err := strconv.ParseInt(strings.NewReplacer(",", "", ".", "", " ", "", "\u00a0", "").Replace(s), 10, 64)
	if err != nil {
		return 0, errors.Wrapf(errors.TypeParsing, err, "invalid price %q", s)
	}
	return v, nil
}
