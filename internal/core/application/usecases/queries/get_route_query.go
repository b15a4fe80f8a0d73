// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/pkg/guard"
)

var ErrGetRouteQueryIsNotConstructed = errors.New(
	"GetRouteQuery must be created via NewGetRouteQuery constructor",
)

// GetRouteQuery retrieves the route timeline of one shipment. When no node
// list has been persisted, the response is derived from the shipment's
// origin/destination ports and flagged as such.
type GetRouteQuery struct {
	shipmentID kernel.ShipmentID

	guard guard.ConstructorGuard
}

// NewGetRouteQuery creates a query for a shipment's route.
func NewGetRouteQuery(shipmentID kernel.ShipmentID) (GetRouteQuery, error) {
	if err := shipmentID.Validate(); err != nil {
		return GetRouteQuery{}, err
	}

	return GetRouteQuery{
		shipmentID: shipmentID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetRouteQuery) Validate() error {
	return q.guard.Validate(ErrGetRouteQueryIsNotConstructed)
}

// ShipmentID returns the target shipment identifier.
func (q GetRouteQuery) ShipmentID() kernel.ShipmentID {
	return q.shipmentID
}

// RouteNodeResponse is one port call in the route read model.
type RouteNodeResponse struct {
	Sequence     int
	PortCode     string
	PortName     string
	Role         string
	ScheduledETA *time.Time
	ScheduledETD *time.Time
	ActualETA    *time.Time
	ActualETD    *time.Time
}

// GetRouteQueryResponse is the route read model. IsDerived reports that the
// nodes were synthesized from the shipment's ports and cannot be edited
// node-by-node.
type GetRouteQueryResponse struct {
	Nodes     []RouteNodeResponse
	IsDerived bool
}
