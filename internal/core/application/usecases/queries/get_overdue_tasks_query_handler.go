package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"forwarding/internal/core/domain/model/kernel"
)

// GetOverdueTasksQueryHandler retrieves overdue workflow tasks across all
// shipments for the periodic audit sweep.
type GetOverdueTasksQueryHandler struct {
	db *gorm.DB
}

// NewGetOverdueTasksQueryHandler creates a handler for overdue-task queries.
func NewGetOverdueTasksQueryHandler(db *gorm.DB) GetOverdueTasksQueryHandler {
	return GetOverdueTasksQueryHandler{db: db}
}

// Handle executes the query. Completed and ignored tasks are excluded;
// everything else with a due date before asOf is overdue.
func (h GetOverdueTasksQueryHandler) Handle(
	ctx context.Context,
	query GetOverdueTasksQuery,
) ([]GetOverdueTasksQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tasks := make([]GetOverdueTasksQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			shipment_id,
			task_type,
			status,
			due_date
		FROM tasks
		WHERE due_date IS NOT NULL
		  AND due_date < ?
		  AND status != 'COMPLETED'
		  AND mode != 'IGNORED'
		ORDER BY due_date
	`, query.AsOf()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetOverdueTasksQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&resp.ShipmentID,
			&resp.TaskType,
			&resp.Status,
			&resp.DueDate,
		)
		if err != nil {
			return nil, err
		}

		taskID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = taskID

		tasks = append(tasks, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return tasks, nil
}
