package adapters

import "github.com/billfold/invoice-ingest/constants"

// newTaxiAdapter handles taxi receipts.
func newTaxiAdapter(cfg Config) Adapter {
	return &baseAdapter{
		typ: constants.TaxiReceipt,
		cfg: cfg,
		keyMap: map[string]string{
			"fare":         KeyTotalAmount,
			"totalfare":    KeyTotalAmount,
			"amount":       KeyTotalAmount,
			"pickuptime":   KeyPickupTime,
			"boardingtime": KeyPickupTime,
			"dropofftime":  KeyDropoffTime,
			"distance":     KeyDistanceKM,
			"mileage":      KeyDistanceKM,
			"platenumber":  KeyPlateNumber,
			"taxinum":      KeyPlateNumber,
			"date":         KeyInvoiceDate,
			"invoicecode":  KeyInvoiceCode,
			"invoicenum":   KeyInvoiceNumber,
		},
		required: []string{KeyTotalAmount},
		expected: []string{
			KeyTotalAmount, KeyPickupTime, KeyDropoffTime,
			KeyDistanceKM, KeyPlateNumber, KeyInvoiceDate,
		},
	}
}
