package catalog

import (
	"context"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"fabric-price/adapters/export"
	"fabric-price/core/pricing"
	"fabric-price/core/types"
	"fabric-price/internal/config"
	"fabric-price/internal/errors"
	"fabric-price/internal/logging"
)

func observeLogs(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zapcore.WarnLevel)
	prev := logging.Logger
	logging.Logger = zap.New(core)
	t.Cleanup(func() { logging.Logger = prev })
	return logs
}

func TestFromConfig(t *testing.T) {
	if got := FromConfig(config.PricingConfig{}).Name(); got != "builtin" {
		t.Errorf("empty table_file source = %q, want builtin", got)
	}
	if got := FromConfig(config.PricingConfig{TableFile: "t.xlsx"}).Name(); got != "t.xlsx" {
		t.Errorf("table_file source = %q, want t.xlsx", got)
	}
}

// TestNewCalculatorFromFile proves a custom workbook replaces the built-in catalog
func TestNewCalculatorFromFile(t *testing.T) {
	custom, err := pricing.NewPriceTable([]pricing.Row{
		{Composition: "Test Blend", BasicJersey: 100000, Printing: 110000, FleeceBrushed: 120000},
	})
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "table.xlsx")
	if err := export.SaveTable(path, custom); err != nil {
		t.Fatalf("SaveTable: %v", err)
	}

	logs := observeLogs(t)
	cfg := config.Default()
	cfg.Pricing.TableFile = path
	calc, err := NewCalculator(context.Background(), cfg)
	if err != nil {
		t.Fatalf("NewCalculator: %v", err)
	}
	if calc.Table().Len() != 1 {
		t.Fatalf("table has %d rows, want 1", calc.Table().Len())
	}

	warned := logs.FilterMessage("price table omits built-in compositions").All()
	if len(warned) != 1 {
		t.Fatalf("got %d warnings, want 1", len(warned))
	}
	if got := warned[0].ContextMap()["missing"]; got != int64(pricing.DefaultTable().Len()) {
		t.Errorf("missing = %v, want %d", got, pricing.DefaultTable().Len())
	}

	// 200*175/100000 * 100000 = 35000
	result, err := calc.Estimate(pricing.Request{
		Model:       types.ModelTable,
		GSM:         200,
		WidthCm:     175,
		Composition: "Test Blend",
		Processing:  types.ProcessingBasicJersey,
	})
	if err != nil {
		t.Fatalf("Estimate: %v", err)
	}
	if result.PricePerMeter.IntPart() != 35000 {
		t.Errorf("PricePerMeter = %s, want 35000", result.PricePerMeter)
	}
}

// TestNewCalculatorFullTableDoesNotWarn proves an exported catalog loads back silently
func TestNewCalculatorFullTableDoesNotWarn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "table.xlsx")
	if err := export.SaveTable(path, pricing.DefaultTable()); err != nil {
		t.Fatalf("SaveTable: %v", err)
	}

	logs := observeLogs(t)
	cfg := config.Default()
	cfg.Pricing.TableFile = path
	if _, err := NewCalculator(context.Background(), cfg); err != nil {
		t.Fatalf("NewCalculator: %v", err)
	}
	if n := logs.Len(); n != 0 {
		t.Errorf("got %d warnings, want none", n)
	}
}

func TestNewCalculatorMissingFile(t *testing.T) {
	cfg := config.Default()
	cfg.Pricing.TableFile = filepath.Join(t.TempDir(), "missing.xlsx")

	_, err := NewCalculator(context.Background(), cfg)
	if !errors.IsType(err, errors.TypeParsing) {
		t.Errorf("error = %v, want PARSING_ERROR", err)
	}
}

func TestBuiltinHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Builtin().Load(ctx); err == nil {
		t.Error("Load succeeded on a cancelled context")
	}
}
