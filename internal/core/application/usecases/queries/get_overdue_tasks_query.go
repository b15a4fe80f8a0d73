package queries

import (
	"errors"
	"time"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/pkg/errs"
	"forwarding/internal/pkg/guard"
)

var ErrGetOverdueTasksQueryIsNotConstructed = errors.New(
	"GetOverdueTasksQuery must be created via NewGetOverdueTasksQuery constructor",
)

// GetOverdueTasksQuery retrieves tasks past their due date that are neither
// completed nor ignored. Used by the periodic audit sweep; it never mutates
// anything.
type GetOverdueTasksQuery struct {
	asOf time.Time

	guard guard.ConstructorGuard
}

// NewGetOverdueTasksQuery creates an overdue-task query relative to asOf.
func NewGetOverdueTasksQuery(asOf time.Time) (GetOverdueTasksQuery, error) {
	if asOf.IsZero() {
		return GetOverdueTasksQuery{}, errs.NewValueIsRequiredError("asOf")
	}

	return GetOverdueTasksQuery{
		asOf:  asOf,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOverdueTasksQuery) Validate() error {
	return q.guard.Validate(ErrGetOverdueTasksQueryIsNotConstructed)
}

// AsOf returns the reference time for the overdue check.
func (q GetOverdueTasksQuery) AsOf() time.Time {
	return q.asOf
}

// GetOverdueTasksQueryResponse is one overdue task in the audit read model.
type GetOverdueTasksQueryResponse struct {
	ID         kernel.UUID
	ShipmentID string
	TaskType   string
	Status     string
	DueDate    time.Time
}
