// Package hcl parses quote files written in HCL.
//
//	defaults {
//	  model = "table"
//	  width = 175
//	}
//
//	fabric "tee-body" {
//	  gsm         = 200
//	  composition = "CVC 60% Cotton 40% Polyester"
//	  processing  = "Basic Jersey"
//	  meters      = 500
//	}
package hcl

import (
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/shopspring/decimal"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"

	"fabric-price/core/pricing"
	"fabric-price/core/quote"
	"fabric-price/core/types"
	"fabric-price/internal/errors"
)

var fileSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "fabric", LabelNames: []string{"name"}},
		{Type: "defaults"},
	},
}

var lineSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "model"},
		{Name: "gsm"},
		{Name: "width"},
		{Name: "composition"},
		{Name: "processing"},
		{Name: "color"},
		{Name: "meters"},
	},
}

// Scanner turns quote files into quote lines
type Scanner struct {
	parser *hclparse.Parser
}

// NewScanner creates a new HCL scanner
func NewScanner() *Scanner {
	return &Scanner{
		parser: hclparse.NewParser(),
	}
}

// ParseFile reads and parses a quote file
func (s *Scanner) ParseFile(path string) ([]quote.Line, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Parsing("failed to read quote file", err).WithContext("file", path)
	}
	return s.Parse(src, path)
}

// Parse parses quote file content. filename is used in diagnostics only.
func (s *Scanner) Parse(src []byte, filename string) ([]quote.Line, error) {
	file, diags := s.parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, diagError(filename, diags)
	}

	content, diags := file.Body.Content(fileSchema)
	if diags.HasErrors() {
		return nil, diagError(filename, diags)
	}

	var defaults fields
	var lines []quote.Line
	seen := make(map[string]hcl.Range)

	for _, block := range content.Blocks {
		if block.Type != "defaults" {
			continue
		}
		d, diags := decodeFields(block.Body)
		if diags.HasErrors() {
			return nil, diagError(filename, diags)
		}
		defaults = defaults.merge(d)
	}

	for _, block := range content.Blocks {
		if block.Type != "fabric" {
			continue
		}
		name := block.Labels[0]
		if prev, dup := seen[name]; dup {
			return nil, errors.Newf(errors.TypeParsing, "%s: duplicate fabric %q (first declared at line %d)",
				block.DefRange.String(), name, prev.Start.Line)
		}
		seen[name] = block.DefRange

		f, diags := decodeFields(block.Body)
		if diags.HasErrors() {
			return nil, diagError(filename, diags)
		}

		line, err := defaults.merge(f).line(name)
		if err != nil {
			return nil, errors.Wrap(errors.TypeParsing, block.DefRange.String(), err)
		}
		line.Source = fmt.Sprintf("%s:%d", filename, block.DefRange.Start.Line)
		lines = append(lines, line)
	}

	if len(lines) == 0 {
		return nil, errors.Newf(errors.TypeParsing, "%s: no fabric blocks", filename)
	}

	return lines, nil
}

// fields holds the attributes of a fabric or defaults block; nil means unset
type fields struct {
	model       *string
	gsm         *int
	width       *int
	composition *string
	processing  *string
	color       *string
	meters      *decimal.Decimal
}

func (f fields) merge(over fields) fields {
	out := f
	if over.model != nil {
		out.model = over.model
	}
	if over.gsm != nil {
		out.gsm = over.gsm
	}
	if over.width != nil {
		out.width = over.width
	}
	if over.composition != nil {
		out.composition = over.composition
	}
	if over.processing != nil {
		out.processing = over.processing
	}
	if over.color != nil {
		out.color = over.color
	}
	if over.meters != nil {
		out.meters = over.meters
	}
	return out
}

func (f fields) line(name string) (quote.Line, error) {
	line := quote.Line{Name: name}

	if f.gsm == nil || f.width == nil {
		return line, errors.Inputf("fabric %q: gsm and width are required", name)
	}
	if f.meters == nil {
		return line, errors.Inputf("fabric %q: meters is required", name)
	}

	req := pricing.Request{GSM: *f.gsm, WidthCm: *f.width}
	if f.model != nil {
		m, err := types.ParseModel(*f.model)
		if err != nil {
			return line, err
		}
		req.Model = m
	}
	if f.composition != nil {
		req.Composition = types.Composition(*f.composition)
	}
	if f.processing != nil {
		p, err := types.ParseProcessingType(*f.processing)
		if err != nil {
			return line, err
		}
		req.Processing = p
	}
	if f.color != nil {
		c, err := types.ParseColor(*f.color)
		if err != nil {
			return line, err
		}
		req.Color = c
	}

	line.Request = req
	line.Meters = *f.meters
	return line, nil
}

func decodeFields(body hcl.Body) (fields, hcl.Diagnostics) {
	var f fields

	content, diags := body.Content(lineSchema)
	if diags.HasErrors() {
		return f, diags
	}

	for name, attr := range content.Attributes {
		val, valDiags := attr.Expr.Value(nil)
		diags = append(diags, valDiags...)
		if valDiags.HasErrors() {
			continue
		}

		var err error
		switch name {
		case "gsm":
			f.gsm, err = toInt(val)
		case "width":
			f.width, err = toInt(val)
		case "meters":
			f.meters, err = toDecimal(val)
		case "model":
			f.model, err = toString(val)
		case "composition":
			f.composition, err = toString(val)
		case "processing":
			f.processing, err = toString(val)
		case "color":
			f.color, err = toString(val)
		}
		if err != nil {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Invalid value for " + name,
				Detail:   err.Error(),
				Subject:  attr.Expr.Range().Ptr(),
			})
		}
	}

	return f, diags
}

func toInt(val cty.Value) (*int, error) {
	var i int
	if err := gocty.FromCtyValue(val, &i); err != nil {
		return nil, err
	}
	return &i, nil
}

func toString(val cty.Value) (*string, error) {
	var s string
	if err := gocty.FromCtyValue(val, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func toDecimal(val cty.Value) (*decimal.Decimal, error) {
	if val.IsNull() || !val.IsKnown() || val.Type() != cty.Number {
		return nil, fmt.Errorf("a number is required")
	}
	d, err := decimal.NewFromString(val.AsBigFloat().Text('f', -1))
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func diagError(filename string, diags hcl.Diagnostics) error {
	var msgs []string
	line := 0
	for _, diag := range diags {
		if diag.Severity != hcl.DiagError {
			continue
		}
		if diag.Subject != nil {
			if line == 0 {
				line = diag.Subject.Start.Line
			}
			msgs = append(msgs, fmt.Sprintf("%s:%d: %s: %s", filename, diag.Subject.Start.Line, diag.Summary, diag.Detail))
		} else {
			msgs = append(msgs, diag.Summary+": "+diag.Detail)
		}
	}
	return errors.New(errors.TypeParsing, strings.Join(msgs, "; ")).
		WithContext("file", filename).
		WithContext("line", line)
}
