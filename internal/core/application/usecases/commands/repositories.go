// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"forwarding/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends only on the repositories it actually touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// CounterRepoFactory provides access to the sequence counter repository.
	CounterRepoFactory interface {
		CounterRepository() ports.CounterRepository
	}

	// ShipmentRepoFactory provides access to the shipment repository.
	ShipmentRepoFactory interface {
		ShipmentRepository() ports.ShipmentRepository
	}

	// TaskRepoFactory provides access to the workflow task repository.
	TaskRepoFactory interface {
		TaskRepository() ports.TaskRepository
	}

	// RouteRepoFactory provides access to the route repository.
	RouteRepoFactory interface {
		RouteRepository() ports.RouteRepository
	}

	// CreationUoW serves shipment creation: the counter transaction plus the
	// three non-transactional creation writes.
	CreationUoW interface {
		TxManager
		CounterRepoFactory
		ShipmentRepoFactory
		TaskRepoFactory
	}

	// CreationUoWFactory creates new creation unit of work instances.
	CreationUoWFactory interface {
		Create() CreationUoW
	}

	// ShipmentUoW manages shipment-document-only operations.
	ShipmentUoW interface {
		TxManager
		ShipmentRepoFactory
	}

	// ShipmentUoWFactory creates new shipment unit of work instances.
	ShipmentUoWFactory interface {
		Create() ShipmentUoW
	}

	// WorkflowUoW manages operations touching the shipment document and its
	// task graph together (terms setting, task mutation with advisory reads).
	WorkflowUoW interface {
		TxManager
		ShipmentRepoFactory
		TaskRepoFactory
	}

	// WorkflowUoWFactory creates new workflow unit of work instances.
	WorkflowUoWFactory interface {
		Create() WorkflowUoW
	}

	// RouteUoW manages route timeline operations. Route reads fall back to the
	// shipment document for derivation, so both repositories are exposed.
	RouteUoW interface {
		TxManager
		ShipmentRepoFactory
		RouteRepoFactory
	}

	// RouteUoWFactory creates new route unit of work instances.
	RouteUoWFactory interface {
		Create() RouteUoW
	}
)
