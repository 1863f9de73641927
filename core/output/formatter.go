// Package output provides output formatting interfaces.
// This package produces human and machine-readable outputs.
package output

import (
	"fmt"
	"io"
	"sync"

	"fabric-price/core/determinism"
	"fabric-price/core/pricing"
	"fabric-price/core/quote"
	"fabric-price/core/types"
	"fabric-price/internal/errors"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is a human-readable terminal summary
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"

	// FormatMarkdown is a markdown report
	FormatMarkdown Format = "markdown"
)

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// RenderEstimate writes a single price estimate
	RenderEstimate(w io.Writer, result *types.PriceResult) error

	// RenderQuote writes a priced quote
	RenderQuote(w io.Writer, q *quote.Quote) error

	// RenderTable writes the per-kg catalog
	RenderTable(w io.Writer, table *pricing.PriceTable) error
}

// Registry manages formatter registration
type Registry struct {
	mu         sync.RWMutex
	formatters map[Format]Formatter
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{formatters: make(map[Format]Formatter)}
}

// Register adds a formatter to the registry
func (r *Registry) Register(f Formatter) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.formatters[f.Format()]; exists {
		return fmt.Errorf("formatter %q already registered", f.Format())
	}
	r.formatters[f.Format()] = f
	return nil
}

// Get returns a formatter for a format name
func (r *Registry) Get(name string) (Formatter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.formatters[Format(name)]
	if !ok {
		return nil, errors.Inputf("unknown output format %q (available: %v)", name, r.names())
	}
	return f, nil
}

func (r *Registry) names() []Format {
	return determinism.SortedKeys(r.formatters)
}

// Options tune the built-in formatters
type Options struct {
	NoColor bool
}

// DefaultRegistry returns a registry with cli, json and markdown formatters
func DefaultRegistry(opts Options) *Registry {
	r := NewRegistry()
	_ = r.Register(NewCLIFormatter(opts.NoColor))
	_ = r.Register(NewJSONFormatter())
	_ = r.Register(NewMarkdownFormatter())
	return r
}
