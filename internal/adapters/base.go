package adapters

import (
	"math"
	"strings"

	"github.com/billfold/invoice-ingest/constants"
	"github.com/billfold/invoice-ingest/internal/engine"
)

// baseAdapter implements the three resolution layers shared by every
// invoice type. Each layer may only fill fields the previous layers left
// empty.
type baseAdapter struct {
	typ constants.InvoiceType
	cfg Config
	// keyMap is layer 1: raw engine key (lowercased) -> canonical key.
	keyMap map[string]string
	// required feeds validation and the completeness score.
	required []string
	expected []string
}

func (a *baseAdapter) Type() constants.InvoiceType { return a.typ }

// ExtractFields runs layer 1 (raw-key pass-through) then layer 2
// (cross-field derivation).
func (a *baseAdapter) ExtractFields(out engine.Output) Fields {
	f := make(Fields, len(out.Fields))

	// canonical keys arriving pre-named pass straight through
	for raw, v := range out.Fields {
		key := strings.ToLower(strings.TrimSpace(raw))
		if canon, ok := a.keyMap[key]; ok {
			f.SetIfEmpty(canon, coerceValue(v))
		} else if isCanonicalKey(key) {
			f.SetIfEmpty(key, coerceValue(v))
		}
	}

	a.deriveAmounts(f)
	return f
}

// deriveAmounts is layer 2: amounts computed from one another when the
// engine omitted them. A present value is never replaced.
func (a *baseAdapter) deriveAmounts(f Fields) {
	net, hasNet := f.Amount(KeyAmountWithoutTax)
	tax, hasTax := f.Amount(KeyTaxAmount)
	total, hasTotal := f.Amount(KeyTotalAmount)

	switch {
	case !hasTotal && hasNet && hasTax:
		f.SetIfEmpty(KeyTotalAmount, formatAmount(net+tax))
	case !hasNet && hasTotal && hasTax:
		f.SetIfEmpty(KeyAmountWithoutTax, formatAmount(total-tax))
	case !hasTax && hasTotal && hasNet:
		f.SetIfEmpty(KeyTaxAmount, formatAmount(total-net))
	}
}

// Validate checks required fields and amount consistency. The result is
// stored with the record; it never blocks storage.
func (a *baseAdapter) Validate(f Fields) ValidationResult {
	var errs []FieldError
	for _, key := range a.required {
		if f.Get(key) == "" {
			errs = append(errs, FieldError{Field: key, Reason: "missing"})
		}
	}

	net, hasNet := f.Amount(KeyAmountWithoutTax)
	tax, hasTax := f.Amount(KeyTaxAmount)
	total, hasTotal := f.Amount(KeyTotalAmount)
	if hasNet && hasTax && hasTotal {
		if math.Abs(net+tax-total) > a.cfg.AmountEpsilon {
			errs = append(errs, FieldError{
				Field:  KeyTotalAmount,
				Reason: "amount_without_tax + tax_amount does not match total_amount",
			})
		}
	}

	filled := 0
	for _, key := range a.expected {
		if f.Get(key) != "" {
			filled++
		}
	}
	completeness := float32(1)
	if len(a.expected) > 0 {
		completeness = float32(filled) / float32(len(a.expected))
	}

	return ValidationResult{
		Valid:        len(errs) == 0,
		Errors:       errs,
		Completeness: completeness,
	}
}

// ToCanonical is layer 3: multi-path exposure. Key fields are mirrored
// under their historical aliases (camelCase flat keys and the nested
// field_items array) so consumers keyed to either shape keep working.
// The redundancy is deliberate compatibility, not an accident to clean up.
func (a *baseAdapter) ToCanonical(f Fields) map[string]any {
	out := make(map[string]any, 2*len(f)+2)
	items := make([]map[string]any, 0, len(f))
	for _, key := range canonicalKeyOrder {
		v, ok := f[key]
		if !ok || v == "" {
			continue
		}
		out[key] = v
		out[camelCase(key)] = v
		items = append(items, map[string]any{"key": key, "value": v})
	}
	out["invoice_type"] = string(a.typ)
	out["invoiceType"] = string(a.typ)
	out["field_items"] = items
	return out
}

var canonicalKeyOrder = []string{
	KeyInvoiceCode, KeyInvoiceNumber, KeyInvoiceDate,
	KeySellerName, KeySellerTaxID, KeyBuyerName, KeyBuyerTaxID,
	KeyAmountWithoutTax, KeyTaxAmount, KeyTotalAmount,
	KeyPassengerName, KeyTrainNumber, KeySeatClass,
	KeyDepartureStation, KeyArrivalStation, KeyDepartureTime,
	KeyFlightNumber, KeyAirline, KeyTicketNumber,
	KeyPickupTime, KeyDropoffTime, KeyDistanceKM, KeyPlateNumber,
}

var canonicalKeySet = func() map[string]struct{} {
	m := make(map[string]struct{}, len(canonicalKeyOrder))
	for _, k := range canonicalKeyOrder {
		m[k] = struct{}{}
	}
	return m
}()

func isCanonicalKey(k string) bool {
	_, ok := canonicalKeySet[k]
	return ok
}

func camelCase(snake string) string {
	parts := strings.Split(snake, "_")
	var b strings.Builder
	b.WriteString(parts[0])
	for _, p := range parts[1:] {
		if p == "" {
			continue
		}
		b.WriteString(strings.ToUpper(p[:1]))
		b.WriteString(p[1:])
	}
	return b.String()
}
