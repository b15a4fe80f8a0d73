package ports

import (
	"context"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/shipment"
)

// ShipmentRepository defines the persistence contract for shipment documents
// and the tracking-code index that points at them.
type ShipmentRepository interface {
	// Add persists a new shipment document.
	Add(ctx context.Context, aggregate *shipment.Shipment) error

	// AddTrackingIndex writes the tracking-code-to-shipment-id index entry.
	// It is a separate write from Add; creation is not atomic across the two.
	AddTrackingIndex(ctx context.Context, aggregate *shipment.Shipment) error

	// Update overwrites an existing shipment document (last write wins).
	Update(ctx context.Context, aggregate *shipment.Shipment) error

	// Get retrieves a shipment by its internal identifier.
	Get(ctx context.Context, id kernel.ShipmentID) (*shipment.Shipment, error)

	// GetByTrackingCode resolves a public tracking code through the index and
	// returns the shipment it points at.
	GetByTrackingCode(ctx context.Context, code kernel.TrackingCode) (*shipment.Shipment, error)
}
