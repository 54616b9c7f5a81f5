package adapters

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/billfold/invoice-ingest/constants"
	"github.com/billfold/invoice-ingest/internal/engine"
)

func testRegistry() *Registry {
	return NewRegistry(Config{AmountEpsilon: 0.01}, nil)
}

func TestTrainFareMapsToTotalAmount(t *testing.T) {
	a := testRegistry().ForType(constants.TrainTicket)
	f := a.ExtractFields(engine.Output{Fields: map[string]any{
		"fare":        "35.50",
		"TrainNumber": "G1024",
	}})

	assert.Equal(t, "35.50", f.Get(KeyTotalAmount))
	assert.Equal(t, "G1024", f.Get(KeyTrainNumber))
	assert.Empty(t, f.Get("fare"), "raw keys never leak into the field set")
}

func TestRawKeysCaseInsensitive(t *testing.T) {
	a := testRegistry().ForType(constants.VATInvoice)
	f := a.ExtractFields(engine.Output{Fields: map[string]any{
		"InvoiceNum":  "0034567",
		"SellerName":  "某某科技有限公司",
		"InvoiceDate": "2024-03-15",
	}})

	assert.Equal(t, "0034567", f.Get(KeyInvoiceNumber))
	assert.Equal(t, "某某科技有限公司", f.Get(KeySellerName))
}

func TestCanonicalKeysPassThrough(t *testing.T) {
	a := testRegistry().ForType(constants.Generic)
	f := a.ExtractFields(engine.Output{Fields: map[string]any{
		"total_amount": 120.5,
		"seller_name":  "Acme",
	}})

	assert.Equal(t, "120.5", f.Get(KeyTotalAmount))
	assert.Equal(t, "Acme", f.Get(KeySellerName))
}

func TestSetIfEmptyNeverOverwrites(t *testing.T) {
	f := Fields{}
	f.SetIfEmpty(KeyTotalAmount, "100.00")
	f.SetIfEmpty(KeyTotalAmount, "999.99")
	assert.Equal(t, "100.00", f.Get(KeyTotalAmount))

	f.SetIfEmpty(KeySellerName, "")
	assert.Empty(t, f.Get(KeySellerName), "empty values are not written at all")
}

func TestDeriveTotalFromNetAndTax(t *testing.T) {
	a := testRegistry().ForType(constants.VATInvoice)
	f := a.ExtractFields(engine.Output{Fields: map[string]any{
		"TotalAmount": "100.00", // provider's name for the pre-tax amount
		"TotalTax":    "13.00",
	}})

	assert.Equal(t, "100.00", f.Get(KeyAmountWithoutTax))
	assert.Equal(t, "13.00", f.Get(KeyTaxAmount))
	assert.Equal(t, "113.00", f.Get(KeyTotalAmount))
}

func TestDeriveNetFromTotalAndTax(t *testing.T) {
	a := testRegistry().ForType(constants.VATInvoice)
	f := a.ExtractFields(engine.Output{Fields: map[string]any{
		"AmountInFiguers": "113.00",
		"TotalTax":        "13.00",
	}})

	assert.Equal(t, "100.00", f.Get(KeyAmountWithoutTax))
}

func TestDerivationNeverReplacesPresentValues(t *testing.T) {
	a := testRegistry().ForType(constants.VATInvoice)
	f := a.ExtractFields(engine.Output{Fields: map[string]any{
		"TotalAmount":     "100.00",
		"TotalTax":        "13.00",
		"AmountInFiguers": "112.99", // engine's own total stays, even if inconsistent
	}})

	assert.Equal(t, "112.99", f.Get(KeyTotalAmount))
}

func TestValidateAmountConsistency(t *testing.T) {
	a := testRegistry().ForType(constants.VATInvoice)

	ok := a.Validate(Fields{
		KeyInvoiceNumber:    "001",
		KeyInvoiceDate:      "2024-03-15",
		KeySellerName:       "Acme",
		KeyAmountWithoutTax: "100.00",
		KeyTaxAmount:        "13.00",
		KeyTotalAmount:      "113.00",
	})
	assert.True(t, ok.Valid)

	bad := a.Validate(Fields{
		KeyInvoiceNumber:    "001",
		KeyInvoiceDate:      "2024-03-15",
		KeySellerName:       "Acme",
		KeyAmountWithoutTax: "100.00",
		KeyTaxAmount:        "13.00",
		KeyTotalAmount:      "120.00",
	})
	assert.False(t, bad.Valid)
	require.Len(t, bad.Errors, 1)
	assert.Equal(t, KeyTotalAmount, bad.Errors[0].Field)
}

func TestValidateEpsilonTolerance(t *testing.T) {
	a := testRegistry().ForType(constants.VATInvoice)
	res := a.Validate(Fields{
		KeyInvoiceNumber:    "001",
		KeyInvoiceDate:      "2024-03-15",
		KeySellerName:       "Acme",
		KeyAmountWithoutTax: "100.00",
		KeyTaxAmount:        "13.00",
		KeyTotalAmount:      "113.005", // inside the 0.01 tolerance
	})
	assert.True(t, res.Valid)
}

func TestValidateMissingRequired(t *testing.T) {
	a := testRegistry().ForType(constants.TrainTicket)
	res := a.Validate(Fields{KeyTotalAmount: "35.50"})

	assert.False(t, res.Valid)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, KeyTrainNumber, res.Errors[0].Field)
	assert.Equal(t, "missing", res.Errors[0].Reason)
}

func TestCompletenessScore(t *testing.T) {
	a := testRegistry().ForType(constants.TrainTicket)
	res := a.Validate(Fields{
		KeyTrainNumber: "G1024",
		KeyTotalAmount: "35.50",
	})
	// 2 of 8 expected fields
	assert.InDelta(t, 0.25, res.Completeness, 0.001)
}

func TestToCanonicalExposesAllPaths(t *testing.T) {
	a := testRegistry().ForType(constants.TrainTicket)
	out := a.ToCanonical(Fields{
		KeyTrainNumber: "G1024",
		KeyTotalAmount: "35.50",
	})

	assert.Equal(t, "35.50", out["total_amount"])
	assert.Equal(t, "35.50", out["totalAmount"])
	assert.Equal(t, "G1024", out["trainNumber"])
	assert.Equal(t, "TRAIN_TICKET", out["invoice_type"])
	assert.Equal(t, "TRAIN_TICKET", out["invoiceType"])

	items, ok := out["field_items"].([]map[string]any)
	require.True(t, ok)
	require.Len(t, items, 2)
	// field_items follow canonical key order: amount first, then train number
	assert.Equal(t, "total_amount", items[0]["key"])
	assert.Equal(t, "35.50", items[0]["value"])
	assert.Equal(t, "train_number", items[1]["key"])
}

func TestToCanonicalMatchesSchema(t *testing.T) {
	a := testRegistry().ForType(constants.VATInvoice)
	out := a.ToCanonical(Fields{
		KeyInvoiceNumber:    "001",
		KeyInvoiceDate:      "2024-03-15",
		KeySellerName:       "Acme",
		KeyAmountWithoutTax: "100.00",
		KeyTaxAmount:        "13.00",
		KeyTotalAmount:      "113.00",
	})
	raw, err := json.Marshal(out)
	require.NoError(t, err)
	require.NoError(t, ValidateJSONAgainstSchema(BuildCanonicalJSONSchema(), raw))
}

func TestUnknownTypeFallsBackToGeneric(t *testing.T) {
	a := testRegistry().ForType(constants.InvoiceType("HOTEL_FOLIO"))
	assert.Equal(t, constants.Generic, a.Type())
}

func TestGenericRequiresNothing(t *testing.T) {
	a := testRegistry().ForType(constants.Generic)
	res := a.Validate(Fields{})
	assert.True(t, res.Valid, "an empty generic record is stored, not rejected")
}

func TestParseAmountTolerance(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"¥1,234.56", 1234.56},
		{"1234.56元", 1234.56},
		{" 35.50 ", 35.50},
		{"-12.00", -12.00},
		{"CNY 99", 99},
	}
	for _, tc := range cases {
		got, ok := parseAmount(tc.in)
		require.True(t, ok, tc.in)
		assert.InDelta(t, tc.want, got, 0.001, tc.in)
	}
	_, ok := parseAmount("no digits")
	assert.False(t, ok)
}
