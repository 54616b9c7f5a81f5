package adapters

import "github.com/billfold/invoice-ingest/constants"

// newTrainAdapter handles train tickets. The engine reports the price
// under "fare"; mapping it to total_amount is the single most
// safety-critical entry here, since a miss silently zeroes the amount
// downstream.
func newTrainAdapter(cfg Config) Adapter {
	return &baseAdapter{
		typ: constants.TrainTicket,
		cfg: cfg,
		keyMap: map[string]string{
			"fare":               KeyTotalAmount,
			"ticketprice":        KeyTotalAmount,
			"price":              KeyTotalAmount,
			"trainnumber":        KeyTrainNumber,
			"trainnum":           KeyTrainNumber,
			"passengername":      KeyPassengerName,
			"name":               KeyPassengerName,
			"seatclass":          KeySeatClass,
			"seatcategory":       KeySeatClass,
			"startingstation":    KeyDepartureStation,
			"departurestation":   KeyDepartureStation,
			"destinationstation": KeyArrivalStation,
			"arrivalstation":     KeyArrivalStation,
			"departuretime":      KeyDepartureTime,
			"date":               KeyInvoiceDate,
			"ticketnum":          KeyTicketNumber,
		},
		required: []string{KeyTrainNumber, KeyTotalAmount},
		expected: []string{
			KeyTrainNumber, KeyPassengerName, KeySeatClass,
			KeyDepartureStation, KeyArrivalStation, KeyDepartureTime,
			KeyInvoiceDate, KeyTotalAmount,
		},
	}
}
