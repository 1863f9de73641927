// Package pricing computes fabric prices per meter and per kilogram.
// Every function here is pure: no I/O, no logging, no shared mutable state.
package pricing

import (
	"github.com/shopspring/decimal"

	"fabric-price/core/types"
	"fabric-price/internal/errors"
)

// Row is one catalog line: VND per kg for each processing type
type Row struct {
	Composition   types.Composition `json:"composition"`
	BasicJersey   int64             `json:"basic_jersey"`
	Printing      int64             `json:"printing"`
	FleeceBrushed int64             `json:"fleece_brushed"`
}

// Price returns the per-kg price for a processing type
func (r Row) Price(p types.ProcessingType) (int64, bool) {
	switch p {
	case types.ProcessingBasicJersey:
		return r.BasicJersey, r.BasicJersey > 0
	case types.ProcessingPrinting:
		return r.Printing, r.Printing > 0
	case types.ProcessingFleeceBrushed:
		return r.FleeceBrushed, r.FleeceBrushed > 0
	}
	return 0, false
}

// PriceTable maps composition -> processing -> VND/kg.
// It is immutable once built.
type PriceTable struct {
	rows  []Row
	index map[types.Composition]int
}

// NewPriceTable builds a table, rejecting duplicate compositions and
// non-positive prices.
func NewPriceTable(rows []Row) (*PriceTable, error) {
	t := &PriceTable{
		rows:  make([]Row, 0, len(rows)),
		index: make(map[types.Composition]int, len(rows)),
	}

	for i, row := range rows {
		if row.Composition == "" {
			return nil, errors.Inputf("row %d: empty composition", i+1)
		}
		if _, dup := t.index[row.Composition]; dup {
			return nil, errors.Inputf("row %d: duplicate composition %q", i+1, row.Composition)
		}
		for _, p := range types.ProcessingTypes() {
			if _, ok := row.Price(p); !ok {
				return nil, errors.Inputf("row %d: %s has no positive %s price", i+1, row.Composition, p)
			}
		}
		t.index[row.Composition] = len(t.rows)
		t.rows = append(t.rows, row)
	}

	return t, nil
}

var defaultTable = mustTable(catalog)

func mustTable(rows []Row) *PriceTable {
	t, err := NewPriceTable(rows)
	if err != nil {
		panic(err)
	}
	return t
}

// DefaultTable returns the built-in 28-row catalog
func DefaultTable() *PriceTable {
	return defaultTable
}

// Lookup returns VND/kg for a composition and processing type
func (t *PriceTable) Lookup(c types.Composition, p types.ProcessingType) (decimal.Decimal, bool) {
	i, ok := t.index[c]
	if !ok {
		return decimal.Zero, false
	}
	price, ok := t.rows[i].Price(p)
	if !ok {
		return decimal.Zero, false
	}
	return decimal.NewFromInt(price), true
}

// Has reports whether a composition is in the table
func (t *PriceTable) Has(c types.Composition) bool {
	_, ok := t.index[c]
	return ok
}

// Compositions returns compositions in catalog order
func (t *PriceTable) Compositions() []types.Composition {
	out := make([]types.Composition, len(t.rows))
	for i, row := range t.rows {
		out[i] = row.Composition
	}
	return out
}

// Rows returns a copy of the catalog rows
func (t *PriceTable) Rows() []Row {
	out := make([]Row, len(t.rows))
	copy(out, t.rows)
	return out
}

// Len returns the number of compositions
func (t *PriceTable) Len() int {
	return len(t.rows)
}
