package queries

import (
	"errors"
	"time"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/task"
	"forwarding/internal/pkg/guard"
)

var ErrGetTasksQueryIsNotConstructed = errors.New(
	"GetTasksQuery must be created via NewGetTasksQuery constructor",
)

// GetTasksQuery retrieves the workflow task list of one shipment.
// Customer-facing callers exclude hidden tasks.
type GetTasksQuery struct {
	shipmentID    kernel.ShipmentID
	includeHidden bool

	guard guard.ConstructorGuard
}

// NewGetTasksQuery creates a query for a shipment's workflow tasks.
// includeHidden should be set only for internal operators.
func NewGetTasksQuery(shipmentID kernel.ShipmentID, includeHidden bool) (GetTasksQuery, error) {
	if err := shipmentID.Validate(); err != nil {
		return GetTasksQuery{}, err
	}

	return GetTasksQuery{
		shipmentID:    shipmentID,
		includeHidden: includeHidden,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetTasksQuery) Validate() error {
	return q.guard.Validate(ErrGetTasksQueryIsNotConstructed)
}

// ShipmentID returns the target shipment identifier.
func (q GetTasksQuery) ShipmentID() kernel.ShipmentID {
	return q.shipmentID
}

// IncludeHidden reports whether hidden tasks are included in the response.
func (q GetTasksQuery) IncludeHidden() bool {
	return q.includeHidden
}

// GetTasksQueryResponse is one workflow task in the read model. The display
// label and timing vocabulary are derived on read, not stored.
type GetTasksQueryResponse struct {
	ID             kernel.UUID
	TaskType       string
	LegLevel       int
	Status         string
	Mode           string
	Visibility     string
	AssigneeParty  string
	ThirdPartyName string
	DisplayLabel   string
	Timing         task.TimingView
	ScheduledStart *time.Time
	ScheduledEnd   *time.Time
	ActualStart    *time.Time
	ActualEnd      *time.Time
	DueDate        *time.Time
	Notes          string
	CompletedAt    *time.Time
}
