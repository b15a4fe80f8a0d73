package services

import (
	"context"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/shipment"
	"forwarding/internal/pkg/errs"
)

// SequenceSource hands out the next sequence number for a generation. The
// implementation must linearize concurrent calls (a store-level transaction
// around the read-increment-write), so allocated sequences are unique and
// gap-free relative to the prior counter value. A generation with no counter
// yet starts at 1.
type SequenceSource interface {
	Next(ctx context.Context, generation kernel.Generation) (int64, error)
}

// IdentityAllocator is a domain service that mints the identity pair for a new
// shipment: the monotonic internal identifier and the random public tracking
// code.
//
// The sequence number carries the uniqueness guarantee; the tracking code is
// drawn randomly with no collision check against existing codes. At current
// volumes the birthday bound keeps the collision probability negligible, but
// the gap is known.
type IdentityAllocator struct{}

// NewIdentityAllocator creates a new IdentityAllocator instance.
func NewIdentityAllocator() IdentityAllocator {
	return IdentityAllocator{}
}

// Allocate draws the next sequence number for the generation and pairs it with
// a fresh tracking code. A failed counter transaction is reported as an
// allocation failure; nothing is consumed in that case.
func (a IdentityAllocator) Allocate(
	ctx context.Context,
	source SequenceSource,
	generation kernel.Generation,
) (shipment.Identity, error) {
	if err := generation.Validate(); err != nil {
		return shipment.Identity{}, err
	}

	sequence, err := source.Next(ctx, generation)
	if err != nil {
		return shipment.Identity{}, errs.NewAllocationFailedError(generation.Prefix(), err)
	}

	shipmentID, err := kernel.NewShipmentID(generation, sequence)
	if err != nil {
		return shipment.Identity{}, errs.NewAllocationFailedError(generation.Prefix(), err)
	}

	return shipment.Identity{
		ShipmentID:   shipmentID,
		TrackingCode: kernel.NewRandomTrackingCode(),
	}, nil
}
