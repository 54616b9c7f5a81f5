package adapters

import "github.com/billfold/invoice-ingest/constants"

// newVATAdapter handles VAT invoices, the richest document kind: both
// parties, tax split, and invoice code/number are expected.
func newVATAdapter(cfg Config) Adapter {
	return &baseAdapter{
		typ: constants.VATInvoice,
		cfg: cfg,
		keyMap: map[string]string{
			"invoicecode":          KeyInvoiceCode,
			"invoicenum":           KeyInvoiceNumber,
			"invoiceno":            KeyInvoiceNumber,
			"invoicedate":          KeyInvoiceDate,
			"sellername":           KeySellerName,
			"sellerregisternum":    KeySellerTaxID,
			"sellertaxid":          KeySellerTaxID,
			"purchasername":        KeyBuyerName,
			"purchaserregisternum": KeyBuyerTaxID,
			"buyername":            KeyBuyerName,
			"buyertaxid":           KeyBuyerTaxID,
			"totalamount":          KeyAmountWithoutTax,
			"totaltax":             KeyTaxAmount,
			"amountinfiguers":      KeyTotalAmount,
			"amountinfigures":      KeyTotalAmount,
			"amounttax":            KeyTotalAmount,
		},
		required: []string{KeyInvoiceNumber, KeyInvoiceDate, KeySellerName, KeyTotalAmount},
		expected: []string{
			KeyInvoiceCode, KeyInvoiceNumber, KeyInvoiceDate,
			KeySellerName, KeySellerTaxID, KeyBuyerName, KeyBuyerTaxID,
			KeyAmountWithoutTax, KeyTaxAmount, KeyTotalAmount,
		},
	}
}
