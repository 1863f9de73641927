// Package ui - Terminal user interface
// Boxed summaries, tables and colors for the CLI.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"
)

// Colors for terminal output
const (
	Reset  = "\033[0m"
	Bold   = "\033[1m"
	Dim    = "\033[2m"
	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Blue   = "\033[34m"
	Cyan   = "\033[36m"
)

// Writer is the UI output destination
type Writer struct {
	out     io.Writer
	noColor bool
}

// NewWriter creates a UI writer
func NewWriter(out io.Writer, noColor bool) *Writer {
	if out == nil {
		out = os.Stdout
	}
	return &Writer{
		out:     out,
		noColor: noColor,
	}
}

// color applies color if enabled
func (w *Writer) color(c, text string) string {
	if w.noColor {
		return text
	}
	return c + text + Reset
}

// Print writes formatted text
func (w *Writer) Print(format string, args ...interface{}) {
	fmt.Fprintf(w.out, format, args...)
}

// Println writes a line with newline
func (w *Writer) Println(format string, args ...interface{}) {
	fmt.Fprintf(w.out, format+"\n", args...)
}

// Header prints a section header
func (w *Writer) Header(title string) {
	w.Println("")
	w.Println("%s", w.color(Bold+Cyan, "━━━ "+title+" ━━━"))
	w.Println("")
}

// SubHeader prints a subsection header
func (w *Writer) SubHeader(title string) {
	w.Println("%s", w.color(Bold, "▸ "+title))
}

// Warning prints a warning
func (w *Writer) Warning(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	w.Println("%s", w.color(Yellow, "⚠ ")+msg)
}

// Error prints an error
func (w *Writer) Error(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	w.Println("%s", w.color(Red, "✗ ")+msg)
}

// Dim prints a muted line
func (w *Writer) Dim(format string, args ...interface{}) {
	w.Println("%s", w.color(Dim, fmt.Sprintf(format, args...)))
}

// Table renders a table
type Table struct {
	w       *Writer
	headers []string
	rows    [][]string
	widths  []int
}

// NewTable creates a table
func (w *Writer) NewTable(headers ...string) *Table {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = utf8.RuneCountInString(h)
	}
	return &Table{
		w:       w,
		headers: headers,
		rows:    [][]string{},
		widths:  widths,
	}
}

// AddRow adds a row to the table
func (t *Table) AddRow(cells ...string) {
	row := make([]string, len(t.headers))
	for i := range row {
		if i < len(cells) {
			row[i] = cells[i]
		}
		if n := utf8.RuneCountInString(row[i]); n > t.widths[i] {
			t.widths[i] = n
		}
	}
	t.rows = append(t.rows, row)
}

// Render prints the table
func (t *Table) Render() {
	t.w.Println("%s", t.w.color(Bold, t.line(t.headers)))

	sep := make([]string, len(t.widths))
	for i, w := range t.widths {
		sep[i] = strings.Repeat("─", w)
	}
	t.w.Println("%s", strings.Join(sep, "─┼─"))

	for _, row := range t.rows {
		t.w.Println("%s", t.line(row))
	}
}

func (t *Table) line(cells []string) string {
	padded := make([]string, len(cells))
	for i, cell := range cells {
		padded[i] = pad(cell, t.widths[i])
	}
	return strings.Join(padded, " │ ")
}

func pad(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}

// PriceSummary renders the result panel of one estimate
type PriceSummary struct {
	w             *Writer
	Title         string
	PricePerMeter string
	PricePerKg    string
	MeterRange    [2]string
	KgRange       [2]string
	Notes         []string
}

// NewPriceSummary creates a price summary
func (w *Writer) NewPriceSummary(title string) *PriceSummary {
	return &PriceSummary{w: w, Title: title}
}

const boxWidth = 44

// Render prints the price summary
func (s *PriceSummary) Render() {
	s.w.Header(s.Title)

	s.w.Println("%s", s.w.color(Bold, "╭"+strings.Repeat("─", boxWidth)+"╮"))
	s.boxLine(Green, "Price per meter", s.PricePerMeter)
	s.boxLine(Green, "Price per kg", s.PricePerKg)
	s.w.Println("%s", s.w.color(Bold, "╰"+strings.Repeat("─", boxWidth)+"╯"))
	s.w.Println("")

	s.w.SubHeader("Price per meter range (±5%)")
	s.w.Println("  %s  →  %s", s.w.color(Red, s.MeterRange[0]), s.w.color(Green, s.MeterRange[1]))
	s.w.SubHeader("Price per kg range (±5%)")
	s.w.Println("  %s  →  %s", s.w.color(Red, s.KgRange[0]), s.w.color(Green, s.KgRange[1]))

	for _, note := range s.Notes {
		s.w.Dim("  %s", note)
	}
}

func (s *PriceSummary) boxLine(c, label, value string) {
	text := pad(fmt.Sprintf("  %-17s %s", label+":", value), boxWidth)
	s.w.Println("%s", s.w.color(Bold, "│")+s.w.color(c, text)+s.w.color(Bold, "│"))
}
