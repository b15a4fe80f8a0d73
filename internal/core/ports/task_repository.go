package ports

import (
	"context"
	"time"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/task"
)

// TaskRepository defines the persistence contract for workflow tasks and the
// per-shipment workflow shell that owns them.
type TaskRepository interface {
	// AddShell creates the empty workflow shell for a freshly created
	// shipment. Tasks are added later, when commercial terms are set.
	AddShell(ctx context.Context, shipmentID kernel.ShipmentID) error

	// AddTasks persists a generated task graph into the shipment's shell.
	AddTasks(ctx context.Context, tasks []*task.Task) error

	// Update overwrites a single task as a unit (last write wins).
	Update(ctx context.Context, aggregate *task.Task) error

	// Get retrieves one task by its identifier.
	Get(ctx context.Context, id kernel.UUID) (*task.Task, error)

	// GetByShipment retrieves all tasks of a shipment in leg order.
	GetByShipment(ctx context.Context, shipmentID kernel.ShipmentID) ([]*task.Task, error)

	// GetOverdue retrieves tasks past their due date that are neither
	// completed nor ignored. Used by the audit sweep.
	GetOverdue(ctx context.Context, asOf time.Time) ([]*task.Task, error)
}
