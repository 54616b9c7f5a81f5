package constants

import "strings"

// InvoiceType is the canonical document kind stored on invoices.
type InvoiceType string

// Stable values (store these exact strings in DB).
const (
	VATInvoice   InvoiceType = "VAT_INVOICE"
	TrainTicket  InvoiceType = "TRAIN_TICKET"
	FlightTicket InvoiceType = "FLIGHT_TICKET"
	TaxiReceipt  InvoiceType = "TAXI_RECEIPT"
	Generic      InvoiceType = "GENERIC"
)

var allInvoiceTypes = []InvoiceType{
	VATInvoice,
	TrainTicket,
	FlightTicket,
	TaxiReceipt,
	Generic,
}

func InvoiceTypesAsStrings() []string {
	result := make([]string, len(allInvoiceTypes))
	for i, t := range allInvoiceTypes {
		result[i] = string(t)
	}
	return result
}

// ParseInvoiceType maps a stored string back to its enum value.
// Unknown strings fall through to Generic, never an error.
func ParseInvoiceType(s string) InvoiceType {
	normalized := strings.ToUpper(strings.TrimSpace(s))
	for _, t := range allInvoiceTypes {
		if normalized == string(t) {
			return t
		}
	}
	return Generic
}
