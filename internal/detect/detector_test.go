package detect

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/billfold/invoice-ingest/constants"
	"github.com/billfold/invoice-ingest/internal/engine"
)

func testMapping(t *testing.T) Mapping {
	t.Helper()
	m, err := NewMapping(
		[]string{"result.type", "type"},
		map[string]string{
			"vat_special_invoice": "VAT_INVOICE",
			"vat_common_invoice":  "VAT_INVOICE",
			"train_ticket":        "TRAIN_TICKET",
			"air_itinerary":       "FLIGHT_TICKET",
			"taxi_receipt":        "TAXI_RECEIPT",
		},
	)
	require.NoError(t, err)
	return m
}

func TestDetectMappedTag(t *testing.T) {
	d := NewDetector(testMapping(t), nil)

	typ, conf := d.Detect(engine.Output{TypeTag: "train_ticket", Confidence: 0.92})
	assert.Equal(t, constants.TrainTicket, typ)
	assert.InDelta(t, 0.92, conf, 0.001)
}

func TestDetectTagCaseInsensitive(t *testing.T) {
	d := NewDetector(testMapping(t), nil)

	typ, _ := d.Detect(engine.Output{TypeTag: "VAT_Special_Invoice", Confidence: 0.8})
	assert.Equal(t, constants.VATInvoice, typ)
}

func TestDetectUnmappedFallsToGeneric(t *testing.T) {
	d := NewDetector(testMapping(t), nil)

	typ, conf := d.Detect(engine.Output{TypeTag: "hotel_folio", Confidence: 0.7})
	assert.Equal(t, constants.Generic, typ)
	assert.InDelta(t, 0.7, conf, 0.001, "confidence passes through even when unmapped")
}

func TestDetectMissingTagFallsToGeneric(t *testing.T) {
	d := NewDetector(testMapping(t), nil)

	typ, conf := d.Detect(engine.Output{})
	assert.Equal(t, constants.Generic, typ)
	assert.InDelta(t, DefaultConfidence, conf, 0.001)
}

func TestDetectMissingConfidenceDefaults(t *testing.T) {
	d := NewDetector(testMapping(t), nil)

	_, conf := d.Detect(engine.Output{TypeTag: "taxi_receipt"})
	assert.InDelta(t, DefaultConfidence, conf, 0.001)
}

func TestDetectReadsNestedTagPath(t *testing.T) {
	d := NewDetector(testMapping(t), nil)

	raw := json.RawMessage(`{"result":{"type":"air_itinerary","words":[]}}`)
	typ, _ := d.Detect(engine.Output{Raw: raw, Confidence: 0.88})
	assert.Equal(t, constants.FlightTicket, typ)
}

func TestDetectTagPathOrderWins(t *testing.T) {
	d := NewDetector(testMapping(t), nil)

	// both paths populated; the first configured path takes precedence
	raw := json.RawMessage(`{"result":{"type":"train_ticket"},"type":"taxi_receipt"}`)
	typ, _ := d.Detect(engine.Output{Raw: raw, Confidence: 0.9})
	assert.Equal(t, constants.TrainTicket, typ)
}

func TestDetectFallsBackToFlatTag(t *testing.T) {
	d := NewDetector(testMapping(t), nil)

	// raw carries no tag at any configured path
	raw := json.RawMessage(`{"words_result":{}}`)
	typ, _ := d.Detect(engine.Output{Raw: raw, TypeTag: "vat_common_invoice", Confidence: 0.9})
	assert.Equal(t, constants.VATInvoice, typ)
}

func TestNewMappingRejectsUnknownTarget(t *testing.T) {
	_, err := NewMapping(nil, map[string]string{"foo": "HOTEL_FOLIO"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown canonical type")
}

func TestMappingLookupTrimsAndLowercases(t *testing.T) {
	m := testMapping(t)
	typ, ok := m.Lookup("  Train_Ticket ")
	require.True(t, ok)
	assert.Equal(t, constants.TrainTicket, typ)
}
