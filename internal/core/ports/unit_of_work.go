package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and tracks aggregate changes.
// Client code must explicitly manage transaction lifecycle.
//
// Repositories obtained from a UnitOfWork join the transaction started by
// Begin; without Begin they write directly. Shipment creation relies on both
// modes: the counter increment runs inside a transaction of its own, while the
// three creation writes are deliberately issued outside one.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// CounterRepository returns a CounterRepository bound to the current
	// transaction, if one is active.
	CounterRepository() CounterRepository

	// ShipmentRepository returns a ShipmentRepository bound to the current
	// transaction, if one is active.
	ShipmentRepository() ShipmentRepository

	// TaskRepository returns a TaskRepository bound to the current
	// transaction, if one is active.
	TaskRepository() TaskRepository

	// RouteRepository returns a RouteRepository bound to the current
	// transaction, if one is active.
	RouteRepository() RouteRepository
}
