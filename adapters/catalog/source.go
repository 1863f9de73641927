// Package catalog selects the per-kg price table a calculator runs on.
// The table is either compiled in or loaded from an XLSX workbook.
package catalog

import (
	"context"

	"go.uber.org/zap"

	"fabric-price/adapters/export"
	"fabric-price/core/pricing"
	"fabric-price/internal/config"
	"fabric-price/internal/logging"
)

// Source provides a price table
type Source interface {
	// Name identifies the source in logs
	Name() string

	// Load returns the validated table
	Load(ctx context.Context) (*pricing.PriceTable, error)
}

type builtinSource struct{}

// Builtin returns the compiled-in catalog
func Builtin() Source {
	return builtinSource{}
}

func (builtinSource) Name() string { return "builtin" }

func (builtinSource) Load(ctx context.Context) (*pricing.PriceTable, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return pricing.DefaultTable(), nil
}

type fileSource struct {
	path string
}

// File returns a source reading an XLSX workbook in the export layout
func File(path string) Source {
	return fileSource{path: path}
}

func (s fileSource) Name() string { return s.path }

func (s fileSource) Load(ctx context.Context) (*pricing.PriceTable, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return export.LoadTable(s.path)
}

// FromConfig picks the file source when pricing.table_file is set
func FromConfig(cfg config.PricingConfig) Source {
	if cfg.TableFile != "" {
		return File(cfg.TableFile)
	}
	return Builtin()
}

// missingBuiltins lists built-in compositions table has no row for
func missingBuiltins(table *pricing.PriceTable) []string {
	var missing []string
	for _, c := range pricing.DefaultTable().Compositions() {
		if !table.Has(c) {
			missing = append(missing, c.String())
		}
	}
	return missing
}

// NewCalculator loads the configured table and builds a calculator over it
func NewCalculator(ctx context.Context, cfg *config.Config) (*pricing.Calculator, error) {
	src := FromConfig(cfg.Pricing)
	table, err := src.Load(ctx)
	if err != nil {
		return nil, err
	}

	logging.Named("catalog").Debug("price table loaded",
		zap.String("source", src.Name()),
		zap.Int("compositions", table.Len()))
	if missing := missingBuiltins(table); len(missing) > 0 {
		logging.Warn("price table omits built-in compositions",
			zap.String("source", src.Name()),
			zap.Int("missing", len(missing)),
			zap.Strings("compositions", missing))
	}

	return pricing.NewCalculator(
		pricing.WithTable(table),
		pricing.WithStrictRanges(cfg.Pricing.StrictRanges),
		pricing.WithCurrency(cfg.Pricing.Currency),
		pricing.WithDefaultModel(cfg.Pricing.DefaultModel),
	), nil
}
