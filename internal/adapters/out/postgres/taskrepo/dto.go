package taskrepo

import (
	"time"

	"github.com/google/uuid"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/task"
)

// TaskDTO is the persistence model for a workflow task. Enumerated fields are
// stored as their wire strings.
type TaskDTO struct {
	ID              uuid.UUID `gorm:"primaryKey;type:uuid"`
	ShipmentID      string    `gorm:"type:varchar(12);not null;index"`
	TaskType        string    `gorm:"type:varchar(32);not null"`
	LegLevel        int       `gorm:"not null"`
	Status          string    `gorm:"type:varchar(16);not null"`
	Mode            string    `gorm:"type:varchar(16);not null"`
	Visibility      string    `gorm:"type:varchar(16);not null"`
	AssigneeParty   string    `gorm:"type:varchar(16);not null"`
	ThirdPartyName  string
	ScheduledStart  *time.Time
	ScheduledEnd    *time.Time
	ActualStart     *time.Time
	ActualEnd       *time.Time
	DueDate         *time.Time `gorm:"index"`
	DueDateOverride bool       `gorm:"not null"`
	Notes           string
	DisplayName     string
	CompletedAt     *time.Time
}

// TableName returns the database table name for GORM.
func (TaskDTO) TableName() string {
	return "tasks"
}

// WorkflowShellDTO is the empty per-shipment workflow container created with
// the shipment, before any tasks exist.
type WorkflowShellDTO struct {
	ShipmentID string    `gorm:"primaryKey;type:varchar(12)"`
	CreatedAt  time.Time `gorm:"not null"`
}

// TableName returns the database table name for GORM.
func (WorkflowShellDTO) TableName() string {
	return "workflow_shells"
}

func fromDomain(aggregate *task.Task) TaskDTO {
	return TaskDTO{
		ID:              aggregate.ID().Bytes(),
		ShipmentID:      aggregate.ShipmentID().String(),
		TaskType:        aggregate.TaskType().String(),
		LegLevel:        aggregate.LegLevel(),
		Status:          aggregate.Status().String(),
		Mode:            aggregate.Mode().String(),
		Visibility:      aggregate.Visibility().String(),
		AssigneeParty:   aggregate.Assignee().Party().String(),
		ThirdPartyName:  aggregate.Assignee().ThirdPartyName(),
		ScheduledStart:  aggregate.ScheduledStart(),
		ScheduledEnd:    aggregate.ScheduledEnd(),
		ActualStart:     aggregate.ActualStart(),
		ActualEnd:       aggregate.ActualEnd(),
		DueDate:         aggregate.DueDate(),
		DueDateOverride: aggregate.DueDateOverride(),
		Notes:           aggregate.Notes(),
		DisplayName:     aggregate.StoredDisplayName(),
		CompletedAt:     aggregate.CompletedAt(),
	}
}

func toDomain(dto TaskDTO) (*task.Task, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	shipmentID, err := kernel.ParseShipmentID(dto.ShipmentID)
	if err != nil {
		return nil, err
	}
	taskType, err := task.TypeFromString(dto.TaskType)
	if err != nil {
		return nil, err
	}
	status, err := task.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}
	mode, err := task.ModeFromString(dto.Mode)
	if err != nil {
		return nil, err
	}
	visibility, err := task.VisibilityFromString(dto.Visibility)
	if err != nil {
		return nil, err
	}
	party, err := task.PartyFromString(dto.AssigneeParty)
	if err != nil {
		return nil, err
	}
	assignee, err := task.NewAssignee(party, dto.ThirdPartyName)
	if err != nil {
		return nil, err
	}

	return task.RestoreTask(
		id,
		shipmentID,
		taskType,
		dto.LegLevel,
		status,
		mode,
		visibility,
		assignee,
		dto.ScheduledStart,
		dto.ScheduledEnd,
		dto.ActualStart,
		dto.ActualEnd,
		dto.DueDate,
		dto.DueDateOverride,
		dto.Notes,
		dto.DisplayName,
		dto.CompletedAt,
	)
}
