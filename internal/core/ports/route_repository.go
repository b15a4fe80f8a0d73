package ports

import (
	"context"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/route"
)

// RouteRepository defines the persistence contract for persisted route
// timelines. Derived routes never touch storage; Get reports whether a
// persisted list exists so the caller can fall back to derivation.
type RouteRepository interface {
	// Replace overwrites the shipment's entire node list as one unit,
	// creating it if none exists.
	Replace(ctx context.Context, aggregate *route.Route) error

	// Get retrieves the persisted route for a shipment. The second return
	// value reports whether a persisted node list exists; when false, the
	// caller derives the route from the shipment's ports instead.
	Get(ctx context.Context, shipmentID kernel.ShipmentID) (*route.Route, bool, error)
}
