package ports

import (
	"context"

	"forwarding/internal/core/domain/model/kernel"
)

// CounterRepository is the persistence contract for the per-generation
// sequence counters backing shipment identifier allocation.
//
// Next must be called inside a unit-of-work transaction: the implementation
// performs a locked read-increment-write so that concurrent allocations for
// the same generation are linearized across service instances. An in-process
// mutex is not enough.
type CounterRepository interface {
	// Next returns the next sequence number for the generation and advances
	// the counter. A generation with no counter row yet is bootstrapped and
	// yields 1.
	Next(ctx context.Context, generation kernel.Generation) (int64, error)
}
