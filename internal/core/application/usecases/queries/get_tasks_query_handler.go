package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/shipment"
	"forwarding/internal/core/domain/model/task"
)

// GetTasksQueryHandler retrieves a shipment's workflow task list from the
// database. The stored display name is not trusted verbatim: stale legacy
// labels are replaced by type-based fallbacks, and loose-cargo shipments get
// pickup/delivery wording on the first and last legs.
type GetTasksQueryHandler struct {
	db *gorm.DB
}

// NewGetTasksQueryHandler creates a handler for task list queries.
func NewGetTasksQueryHandler(db *gorm.DB) GetTasksQueryHandler {
	return GetTasksQueryHandler{db: db}
}

// Handle executes the query and returns tasks in leg order.
func (h GetTasksQueryHandler) Handle(ctx context.Context, query GetTasksQuery) ([]GetTasksQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tasks := make([]GetTasksQueryResponse, 0)

	sql := `
		SELECT
			t.id,
			t.task_type,
			t.leg_level,
			t.status,
			t.mode,
			t.visibility,
			t.assignee_party,
			t.third_party_name,
			t.display_name,
			t.scheduled_start,
			t.scheduled_end,
			t.actual_start,
			t.actual_end,
			t.due_date,
			t.notes,
			t.completed_at,
			s.load_type
		FROM tasks t
		JOIN shipments s ON s.id = t.shipment_id
		WHERE t.shipment_id = ?
	`
	if !query.IncludeHidden() {
		sql += ` AND t.visibility = 'VISIBLE'`
	}
	sql += ` ORDER BY t.leg_level`

	rows, err := h.db.WithContext(ctx).Raw(sql, query.ShipmentID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetTasksQueryResponse
		var id uuid.UUID
		var displayName, loadTypeStr string

		err = rows.Scan(
			&id,
			&resp.TaskType,
			&resp.LegLevel,
			&resp.Status,
			&resp.Mode,
			&resp.Visibility,
			&resp.AssigneeParty,
			&resp.ThirdPartyName,
			&displayName,
			&resp.ScheduledStart,
			&resp.ScheduledEnd,
			&resp.ActualStart,
			&resp.ActualEnd,
			&resp.DueDate,
			&resp.Notes,
			&resp.CompletedAt,
			&loadTypeStr,
		)
		if err != nil {
			return nil, err
		}

		taskID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = taskID

		taskType, typeErr := task.TypeFromString(resp.TaskType)
		if typeErr != nil {
			return nil, typeErr
		}
		mode, modeErr := task.ModeFromString(resp.Mode)
		if modeErr != nil {
			return nil, modeErr
		}
		loadType, ltErr := shipment.LoadTypeFromString(loadTypeStr)
		if ltErr != nil {
			return nil, ltErr
		}

		resp.DisplayLabel = task.DeriveDisplayLabel(taskType, displayName, loadType.IsLooseCargo())
		resp.Timing = task.TimingVocabulary(mode, taskType)
		tasks = append(tasks, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return tasks, nil
}
