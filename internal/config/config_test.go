package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"fabric-price/core/types"
	"fabric-price/internal/errors"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	def := Default()
	if cfg.Pricing != def.Pricing {
		t.Errorf("Pricing = %+v, want %+v", cfg.Pricing, def.Pricing)
	}
	if cfg.HTTP != def.HTTP {
		t.Errorf("HTTP = %+v, want %+v", cfg.HTTP, def.HTTP)
	}
}

func TestLoadFileAndEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fabric.yaml")
	body := `
pricing:
  currency: USD
  default_model: regression
http:
  addr: ":9090"
  read_timeout: 3s
`
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("FABRIC_HTTP_ADDR", ":7070")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Pricing.Currency != types.CurrencyUSD {
		t.Errorf("Currency = %s, want USD", cfg.Pricing.Currency)
	}
	if cfg.Pricing.DefaultModel != types.ModelRegression {
		t.Errorf("DefaultModel = %s, want regression", cfg.Pricing.DefaultModel)
	}
	if !cfg.Pricing.StrictRanges {
		t.Error("StrictRanges default should survive a partial file")
	}
	if cfg.HTTP.Addr != ":7070" {
		t.Errorf("Addr = %s, want env override :7070", cfg.HTTP.Addr)
	}
	if cfg.HTTP.ReadTimeout != 3*time.Second {
		t.Errorf("ReadTimeout = %s, want 3s", cfg.HTTP.ReadTimeout)
	}
}

func TestLoadRejectsUnknownCurrency(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fabric.json")
	if err := os.WriteFile(path, []byte(`{"pricing":{"currency":"EUR"}}`), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if !errors.IsType(err, errors.TypeConfig) {
		t.Fatalf("expected CONFIG_ERROR, got %v", err)
	}
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "fabric.yaml")

	cfg := Default()
	cfg.Output.DefaultFormat = "markdown"
	cfg.HTTP.Metrics = false
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Output.DefaultFormat != "markdown" {
		t.Errorf("DefaultFormat = %s, want markdown", loaded.Output.DefaultFormat)
	}
	if loaded.HTTP.Metrics {
		t.Error("Metrics should be false after round trip")
	}
	if loaded.HTTP.ShutdownTimeout != 5*time.Second {
		t.Errorf("ShutdownTimeout = %s, want 5s", loaded.HTTP.ShutdownTimeout)
	}
}
