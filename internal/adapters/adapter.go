package adapters

import (
	"log/slog"

	"github.com/billfold/invoice-ingest/constants"
	"github.com/billfold/invoice-ingest/internal/engine"
)

// ValidationResult is advisory. Completeness feeds a UI signal; it is
// never a gate, and partially populated records are always stored.
type ValidationResult struct {
	Valid        bool         `json:"valid"`
	Errors       []FieldError `json:"errors,omitempty"`
	Completeness float32      `json:"completeness"`
}

type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// Adapter normalizes one invoice type's raw engine fields into the
// canonical schema.
type Adapter interface {
	Type() constants.InvoiceType
	ExtractFields(out engine.Output) Fields
	Validate(f Fields) ValidationResult
	ToCanonical(f Fields) map[string]any
}

// Config holds adapter-wide knobs.
type Config struct {
	// AmountEpsilon is the currency-appropriate tolerance for the
	// amount_without_tax + tax_amount vs total_amount consistency check.
	AmountEpsilon float64
}

// Registry hands out the adapter for a detected type. Unknown types get
// the generic adapter, never an error.
type Registry struct {
	byType  map[constants.InvoiceType]Adapter
	generic Adapter
}

func NewRegistry(cfg Config, logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.AmountEpsilon <= 0 {
		cfg.AmountEpsilon = 0.01
	}
	generic := newGenericAdapter(cfg)
	r := &Registry{
		byType:  make(map[constants.InvoiceType]Adapter),
		generic: generic,
	}
	for _, a := range []Adapter{
		newVATAdapter(cfg),
		newTrainAdapter(cfg),
		newFlightAdapter(cfg),
		newTaxiAdapter(cfg),
		generic,
	} {
		r.byType[a.Type()] = a
	}
	return r
}

// ForType returns the adapter for t, falling back to generic.
func (r *Registry) ForType(t constants.InvoiceType) Adapter {
	if a, ok := r.byType[t]; ok {
		return a
	}
	return r.generic
}
