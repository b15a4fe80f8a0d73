package queries

import (
	"errors"
	"time"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/pkg/guard"
)

var ErrTrackShipmentQueryIsNotConstructed = errors.New(
	"TrackShipmentQuery must be created via NewTrackShipmentQuery constructor",
)

// TrackShipmentQuery resolves a public tracking code to the shipment's
// customer-facing progress view. Hidden tasks never appear in the response.
type TrackShipmentQuery struct {
	trackingCode kernel.TrackingCode

	guard guard.ConstructorGuard
}

// NewTrackShipmentQuery creates a tracking query from a public code.
func NewTrackShipmentQuery(trackingCode kernel.TrackingCode) (TrackShipmentQuery, error) {
	if err := trackingCode.Validate(); err != nil {
		return TrackShipmentQuery{}, err
	}

	return TrackShipmentQuery{
		trackingCode: trackingCode,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q TrackShipmentQuery) Validate() error {
	return q.guard.Validate(ErrTrackShipmentQueryIsNotConstructed)
}

// TrackingCode returns the public tracking code being resolved.
func (q TrackShipmentQuery) TrackingCode() kernel.TrackingCode {
	return q.trackingCode
}

// TrackedTaskResponse is one visible workflow step in the tracking view.
type TrackedTaskResponse struct {
	DisplayLabel string
	Status       string
	CompletedAt  *time.Time
}

// TrackShipmentQueryResponse is the public tracking read model.
type TrackShipmentQueryResponse struct {
	ShipmentID      string
	OriginPort      string
	DestinationPort string
	LoadType        string
	Tasks           []TrackedTaskResponse
}
