package ports

import (
	"context"

	"forwarding/internal/core/domain/model/shipment"
)

// ParsedShipmentDocument is the field set extracted from an uploaded shipping
// document (bill of lading, booking confirmation). Empty fields were not
// found in the document.
type ParsedShipmentDocument struct {
	Booking shipment.BookingDetails
}

// DocumentParser extracts booking fields from an uploaded shipping document.
// Backed by the external document-parsing service.
type DocumentParser interface {
	Parse(ctx context.Context, fileName string, content []byte) (ParsedShipmentDocument, error)
}
