package adapters

import "github.com/billfold/invoice-ingest/constants"

// newFlightAdapter handles flight itineraries. Fares arrive split into
// fare, fuel surcharge and civil-aviation fund; the derivation layer
// fills total_amount when the engine omits the sum.
func newFlightAdapter(cfg Config) Adapter {
	return &baseAdapter{
		typ: constants.FlightTicket,
		cfg: cfg,
		keyMap: map[string]string{
			"fare":          KeyAmountWithoutTax,
			"ticketrates":   KeyTotalAmount,
			"totalfare":     KeyTotalAmount,
			"fuelsurcharge": KeyTaxAmount,
			"flightnumber":  KeyFlightNumber,
			"flightnum":     KeyFlightNumber,
			"carrier":       KeyAirline,
			"airline":       KeyAirline,
			"passengername": KeyPassengerName,
			"name":          KeyPassengerName,
			"ticketnumber":  KeyTicketNumber,
			"ticketnum":     KeyTicketNumber,
			"from":          KeyDepartureStation,
			"to":            KeyArrivalStation,
			"departuretime": KeyDepartureTime,
			"date":          KeyInvoiceDate,
		},
		required: []string{KeyFlightNumber, KeyTotalAmount},
		expected: []string{
			KeyFlightNumber, KeyAirline, KeyPassengerName, KeyTicketNumber,
			KeyDepartureStation, KeyArrivalStation, KeyDepartureTime,
			KeyInvoiceDate, KeyTotalAmount,
		},
	}
}
