package adapters

import (
	"fmt"
	"strconv"
	"strings"
)

// Canonical field keys. Every adapter writes this vocabulary; raw engine
// keys never leak past ExtractFields.
const (
	KeyInvoiceCode      = "invoice_code"
	KeyInvoiceNumber    = "invoice_number"
	KeyInvoiceDate      = "invoice_date"
	KeySellerName       = "seller_name"
	KeySellerTaxID      = "seller_tax_id"
	KeyBuyerName        = "buyer_name"
	KeyBuyerTaxID       = "buyer_tax_id"
	KeyAmountWithoutTax = "amount_without_tax"
	KeyTaxAmount        = "tax_amount"
	KeyTotalAmount      = "total_amount"
	KeyPassengerName    = "passenger_name"
	KeyTrainNumber      = "train_number"
	KeySeatClass        = "seat_class"
	KeyDepartureStation = "departure_station"
	KeyArrivalStation   = "arrival_station"
	KeyDepartureTime    = "departure_time"
	KeyFlightNumber     = "flight_number"
	KeyAirline          = "airline"
	KeyTicketNumber     = "ticket_number"
	KeyPickupTime       = "pickup_time"
	KeyDropoffTime      = "dropoff_time"
	KeyDistanceKM       = "distance_km"
	KeyPlateNumber      = "plate_number"
)

// Fields is the normalized field set flowing between resolution layers.
// Values are strings: the engine emits a mix of strings and numbers and
// the storage shape is JSON, so strings are the least lossy common form.
type Fields map[string]string

// SetIfEmpty fills key only when no previous layer put a value there.
// A present value is never overwritten, least of all with an empty one.
func (f Fields) SetIfEmpty(key, value string) {
	if value == "" {
		return
	}
	if _, ok := f[key]; ok && f[key] != "" {
		return
	}
	f[key] = value
}

func (f Fields) Get(key string) string { return f[key] }

// Amount parses a monetary field, tolerating currency symbols, thousands
// separators and surrounding noise.
func (f Fields) Amount(key string) (float64, bool) {
	return parseAmount(f[key])
}

func parseAmount(s string) (float64, bool) {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r >= '0' && r <= '9', r == '.', r == '-':
			return r
		default:
			return -1
		}
	}, s)
	if cleaned == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// coerceValue turns a loosely typed engine value into its string form.
func coerceValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case float64:
		if t == float64(int64(t)) {
			return strconv.FormatInt(int64(t), 10)
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return strings.TrimSpace(fmt.Sprintf("%v", t))
	}
}
