package adapters

import "github.com/billfold/invoice-ingest/constants"

// newGenericAdapter is the catch-all for unrecognized kinds. Nothing is
// required: a record with whatever the engine produced is always better
// than a dropped document.
func newGenericAdapter(cfg Config) Adapter {
	return &baseAdapter{
		typ: constants.Generic,
		cfg: cfg,
		keyMap: map[string]string{
			"amount":      KeyTotalAmount,
			"total":       KeyTotalAmount,
			"fare":        KeyTotalAmount,
			"date":        KeyInvoiceDate,
			"invoicecode": KeyInvoiceCode,
			"invoicenum":  KeyInvoiceNumber,
			"sellername":  KeySellerName,
		},
		required: nil,
		expected: []string{KeyTotalAmount, KeyInvoiceDate},
	}
}
