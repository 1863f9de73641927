package hcl

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"fabric-price/core/types"
	"fabric-price/internal/errors"
)

const sampleQuote = `
defaults {
  model = "table"
  width = 175
}

fabric "tee-body" {
  gsm         = 200
  composition = "CVC 60% Cotton 40% Polyester"
  processing  = "Basic Jersey"
  meters      = 500
}

fabric "hoodie" {
  gsm         = 280
  width       = 180
  composition = "100% Cotton"
  processing  = "fleece-brushed"
  meters      = 120.5
}

fabric "lining" {
  model  = "regression"
  gsm    = 160
  color  = "grey melange"
  meters = 40
}
`

func TestParseSample(t *testing.T) {
	lines, err := NewScanner().Parse([]byte(sampleQuote), "order.hcl")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(lines) != 3 {
		t.Fatalf("lines = %d, want 3", len(lines))
	}

	body := lines[0]
	if body.Name != "tee-body" || body.Model != types.ModelTable {
		t.Errorf("body = %+v", body)
	}
	if body.WidthCm != 175 {
		t.Errorf("body width = %d, want default 175", body.WidthCm)
	}
	if body.Processing != types.ProcessingBasicJersey {
		t.Errorf("body processing = %q", body.Processing)
	}
	if !body.Meters.Equal(decimal.NewFromInt(500)) {
		t.Errorf("body meters = %s", body.Meters)
	}
	if body.Source != "order.hcl:7" {
		t.Errorf("body source = %q, want order.hcl:7", body.Source)
	}

	hoodie := lines[1]
	if hoodie.WidthCm != 180 {
		t.Errorf("hoodie width = %d, want override 180", hoodie.WidthCm)
	}
	if hoodie.Processing != types.ProcessingFleeceBrushed {
		t.Errorf("hoodie processing = %q", hoodie.Processing)
	}
	if !hoodie.Meters.Equal(decimal.RequireFromString("120.5")) {
		t.Errorf("hoodie meters = %s", hoodie.Meters)
	}

	lining := lines[2]
	if lining.Model != types.ModelRegression || lining.Color != types.ColorGreyMelange {
		t.Errorf("lining = %+v", lining)
	}
}

func fabric(attrs ...string) string {
	return "fabric \"a\" {\n  " + strings.Join(attrs, "\n  ") + "\n}\n"
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		wantMsg string
	}{
		{
			name:    "syntax",
			src:     `fabric "a" { gsm = }`,
			wantMsg: "x.hcl:1",
		},
		{
			name:    "unknown attribute",
			src:     fabric("gsm = 200", "width = 175", "meters = 1", `weave = "twill"`),
			wantMsg: "weave",
		},
		{
			name:    "missing meters",
			src:     fabric("gsm = 200", "width = 175"),
			wantMsg: "meters is required",
		},
		{
			name:    "string gsm",
			src:     fabric(`gsm = "heavy"`, "width = 175", "meters = 1"),
			wantMsg: "Invalid value for gsm",
		},
		{
			name:    "duplicate",
			src:     fabric("gsm = 200", "width = 175", "meters = 1") + fabric("gsm = 180", "width = 160", "meters = 2"),
			wantMsg: "duplicate fabric",
		},
		{
			name:    "bad color",
			src:     fabric("gsm = 200", "width = 175", "meters = 1", `color = "neon"`),
			wantMsg: "unknown color",
		},
		{
			name:    "empty",
			src:     `defaults { width = 175 }`,
			wantMsg: "no fabric blocks",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewScanner().Parse([]byte(tt.src), "x.hcl")
			if !errors.IsType(err, errors.TypeParsing) {
				t.Fatalf("expected PARSING_ERROR, got %v", err)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error %q does not mention %q", err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "order.hcl")
	if err := os.WriteFile(path, []byte(sampleQuote), 0644); err != nil {
		t.Fatal(err)
	}

	lines, err := NewScanner().ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	if len(lines) != 3 {
		t.Errorf("lines = %d, want 3", len(lines))
	}

	if _, err := NewScanner().ParseFile(filepath.Join(t.TempDir(), "missing.hcl")); !errors.IsType(err, errors.TypeParsing) {
		t.Errorf("missing file: expected PARSING_ERROR, got %v", err)
	}
}
