// Package taskrepo provides the GORM-based implementation of the workflow
// task repository, covering tasks and the per-shipment workflow shell.
package taskrepo

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/task"
	"forwarding/internal/pkg/errs"
)

// aggregateTracker tracks modified aggregates within a unit of work.
type aggregateTracker interface {
	TrackAggregate(id string, aggregate interface{})
}

// GormTaskRepository implements ports.TaskRepository using GORM.
type GormTaskRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormTaskRepository creates a task repository on the given connection.
func NewGormTaskRepository(db *gorm.DB, tracker aggregateTracker) *GormTaskRepository {
	return &GormTaskRepository{db: db, tracker: tracker}
}

// AddShell creates the empty workflow shell for a freshly created shipment.
func (r *GormTaskRepository) AddShell(ctx context.Context, shipmentID kernel.ShipmentID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	dto := WorkflowShellDTO{
		ShipmentID: shipmentID.String(),
		CreatedAt:  time.Now().UTC(),
	}
	return r.db.WithContext(ctx).Create(&dto).Error
}

// AddTasks persists a generated task graph into the shipment's shell.
func (r *GormTaskRepository) AddTasks(ctx context.Context, tasks []*task.Task) error {
	if len(tasks) == 0 {
		return errs.NewValueIsRequiredError("tasks")
	}

	dtos := make([]TaskDTO, 0, len(tasks))
	for _, aggregate := range tasks {
		if err := aggregate.Validate(); err != nil {
			return err
		}
		dtos = append(dtos, fromDomain(aggregate))
	}

	if err := r.db.WithContext(ctx).Create(&dtos).Error; err != nil {
		return err
	}

	for _, aggregate := range tasks {
		r.tracker.TrackAggregate(aggregate.ID().String(), aggregate)
	}
	return nil
}

// Update overwrites a single task as a unit. Last write wins; there is no
// version check. Select("*") forces every column out, so timestamps cleared
// by an undo are written back as NULL.
func (r *GormTaskRepository) Update(ctx context.Context, aggregate *task.Task) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&TaskDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("id").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("taskId", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID().String(), aggregate)
	return nil
}

// Get retrieves one task by its identifier.
func (r *GormTaskRepository) Get(ctx context.Context, id kernel.UUID) (*task.Task, error) {
	var dto TaskDTO
	err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("taskId", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByShipment retrieves all tasks of a shipment in leg order.
func (r *GormTaskRepository) GetByShipment(ctx context.Context, shipmentID kernel.ShipmentID) ([]*task.Task, error) {
	var dtos []TaskDTO
	err := r.db.WithContext(ctx).
		Where("shipment_id = ?", shipmentID.String()).
		Order("leg_level").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	tasks := make([]*task.Task, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, domainErr := toDomain(dto)
		if domainErr != nil {
			return nil, domainErr
		}
		tasks = append(tasks, aggregate)
	}
	return tasks, nil
}

// GetOverdue retrieves tasks past their due date that are neither completed
// nor ignored, oldest due date first.
func (r *GormTaskRepository) GetOverdue(ctx context.Context, asOf time.Time) ([]*task.Task, error) {
	var dtos []TaskDTO
	err := r.db.WithContext(ctx).
		Where("due_date IS NOT NULL AND due_date < ?", asOf).
		Where("status != ?", task.StatusCompleted.String()).
		Where("mode != ?", task.ModeIgnored.String()).
		Order("due_date").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	tasks := make([]*task.Task, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, domainErr := toDomain(dto)
		if domainErr != nil {
			return nil, domainErr
		}
		tasks = append(tasks, aggregate)
	}
	return tasks, nil
}
