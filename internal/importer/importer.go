// Package importer turns bank statement exports into purchase transactions.
// Nothing in this package performs I/O; every function is safe for concurrent use.
package importer

import (
	"strings"

	"github.com/paragon-dev/paragon/internal/model"
)

// Extractor owns the row grammar of one bank format.
type Extractor interface {
	Extract(text string) ([]model.ParsedTransaction, model.SkipStats)
	Format() model.BankFormat
}

// Registry maps bank formats to extractors. It is read-only once built.
type Registry struct {
	extractors map[model.BankFormat]Extractor
	fallback   Extractor
}

// NewRegistry creates an empty registry that falls back to the generic extractor.
func NewRegistry() *Registry {
	return &Registry{
		extractors: make(map[model.BankFormat]Extractor),
		fallback:   &GenericExtractor{},
	}
}

// Register adds an extractor. Panics on duplicate format.
func (r *Registry) Register(e Extractor) {
	key := model.BankFormat(strings.ToLower(string(e.Format())))
	if _, ok := r.extractors[key]; ok {
		panic("duplicate extractor format: " + string(key))
	}
	r.extractors[key] = e
}

// Get returns the extractor for format, or nil.
func (r *Registry) Get(format model.BankFormat) Extractor {
	return r.extractors[model.BankFormat(strings.ToLower(string(format)))]
}

// DefaultRegistry returns a registry with all built-in extractors.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&MillenniumExtractor{})
	r.Register(&MBankExtractor{})
	r.Register(&INGExtractor{})
	r.Register(&RevolutExtractor{})
	r.Register(&RevolutPLExtractor{})
	r.Register(&ZenExtractor{})
	return r
}

var defaultRegistry = DefaultRegistry()

// Parse detects the format of text and extracts its purchases with the
// built-in extractors. It never panics; unusable input yields an empty result.
func Parse(text string) model.ParseResult {
	return defaultRegistry.Parse(text)
}

// Parse detects the format of text and runs the matching extractor, or the
// generic one when no extractor is registered for it.
func (r *Registry) Parse(text string) (res model.ParseResult) {
	bank := Detect(text)
	res = emptyResult(bank)
	if strings.TrimSpace(text) == "" {
		return res
	}

	ext := r.Get(bank)
	if ext == nil {
		ext = r.fallback
	}

	defer func() {
		if recover() != nil {
			res = emptyResult(bank)
		}
	}()

	txns, stats := ext.Extract(text)
	res.Transactions = txns
	res.Skipped = stats
	return res
}

func emptyResult(bank model.BankFormat) model.ParseResult {
	return model.ParseResult{
		Bank:         bank,
		Transactions: []model.ParsedTransaction{},
		Skipped:      model.NewSkipStats(),
	}
}
