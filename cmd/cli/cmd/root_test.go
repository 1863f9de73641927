package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// run executes the root command against a config path that does not exist,
// so every test starts from the default configuration.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return runWithConfig(t, filepath.Join(t.TempDir(), "absent.yaml"), args...)
}

func runWithConfig(t *testing.T, cfg string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"--config", cfg}, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestEstimateTableJSON(t *testing.T) {
	out, err := run(t, "estimate", "table",
		"--gsm", "200", "--width", "175",
		"--composition", "CVC 60% Cotton 40% Polyester",
		"--processing", "basic-jersey",
		"--format", "json")
	if err != nil {
		t.Fatalf("estimate table: %v\n%s", err, out)
	}
	for _, want := range []string{`"price_per_meter": "50820"`, `"price_per_kg": "145200"`} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %s:\n%s", want, out)
		}
	}
}

func TestEstimatePlainMarkdown(t *testing.T) {
	out, err := run(t, "estimate", "plain", "--gsm", "200", "--width", "175", "--format", "markdown")
	if err != nil {
		t.Fatalf("estimate plain: %v\n%s", err, out)
	}
	if !strings.Contains(out, "| Price per meter |") || !strings.Contains(out, "Model: regression-plain") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestEstimateRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown color", []string{"estimate", "regression", "--gsm", "200", "--width", "175", "--color", "purple", "--format", "json"}},
		{"out of range", []string{"estimate", "plain", "--gsm", "500", "--width", "175", "--format", "json"}},
		{"unknown format", []string{"estimate", "plain", "--gsm", "200", "--width", "175", "--format", "xml"}},
		{"missing composition", []string{"estimate", "table", "--gsm", "200", "--width", "175", "--composition", "Silk", "--processing", "printing", "--format", "json"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := run(t, tt.args...); err == nil {
				t.Error("command succeeded, want error")
			}
		})
	}
}

func TestCatalogExport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "table.xlsx")
	out, err := run(t, "catalog", "export", "--out", path)
	if err != nil {
		t.Fatalf("catalog export: %v\n%s", err, out)
	}
	if info, err := os.Stat(path); err != nil || info.Size() == 0 {
		t.Errorf("workbook not written: %v", err)
	}
}

// TestQuoteCommand proves a quote file is priced, rendered and exported
func TestQuoteCommand(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "order.hcl")
	xlsx := filepath.Join(dir, "order.xlsx")
	content := `defaults {
  model       = "table"
  composition = "CVC 60% Cotton 40% Polyester"
  processing  = "basic-jersey"
}

fabric "body" {
  gsm    = 200
  width  = 175
  meters = 100
}
`
	if err := os.WriteFile(src, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	out, err := run(t, "quote", src, "--format", "json", "--xlsx", xlsx)
	if err != nil {
		t.Fatalf("quote: %v\n%s", err, out)
	}
	if !strings.Contains(out, `"total": "5082000"`) {
		t.Errorf("output missing total:\n%s", out)
	}
	if _, err := os.Stat(xlsx); err != nil {
		t.Errorf("xlsx not written: %v", err)
	}
}

func TestConfigInitAndShow(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "fabric.yaml")

	if out, err := runWithConfig(t, cfg, "config", "init", "--force=false"); err != nil {
		t.Fatalf("config init: %v\n%s", err, out)
	}
	if _, err := runWithConfig(t, cfg, "config", "init", "--force=false"); err == nil {
		t.Error("second config init succeeded without --force")
	}

	out, err := runWithConfig(t, cfg, "config", "show")
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	for _, want := range []string{"pricing.currency = VND", "http.addr = :8080"} {
		if !strings.Contains(out, want) {
			t.Errorf("config show missing %q:\n%s", want, out)
		}
	}
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "fabric-price version "+Version) {
		t.Errorf("version output = %q", out)
	}
}
