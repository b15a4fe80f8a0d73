package commands

import (
	"context"
	"time"

	"forwarding/internal/core/domain/model/task"
)

// EditTaskCommandHandler applies a partial edit to one workflow task. Role
// gating and state-machine rules are enforced by the aggregate; the handler
// loads, mutates, and writes the whole task back (last write wins, no version
// check).
//
// The status field of the patch also drives completion: COMPLETED routes to
// MarkComplete so the right timestamp is stamped, and PENDING on a completed
// task routes to UndoComplete.
//
// A successful status or visibility mutation returns an advisory string
// flagging the next leg when it needs attention; the advisory never fails the
// edit.
type EditTaskCommandHandler struct {
	uowFactory WorkflowUoWFactory
}

// NewEditTaskCommandHandler creates a handler for task edits.
func NewEditTaskCommandHandler(uowFactory WorkflowUoWFactory) EditTaskCommandHandler {
	return EditTaskCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the edit and returns the optional advisory.
func (h *EditTaskCommandHandler) Handle(ctx context.Context, cmd EditTaskCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return "", err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	taskRepo := uow.TaskRepository()
	t, err := taskRepo.Get(ctx, cmd.TaskID())
	if err != nil {
		return "", err
	}

	patch := cmd.Patch()
	switch {
	case patch.Status != nil && *patch.Status == task.StatusCompleted:
		if err = t.MarkComplete(cmd.Actor(), time.Now().UTC()); err != nil {
			return "", err
		}
		patch.Status = nil
	case patch.Status != nil && *patch.Status == task.StatusPending && t.Status() == task.StatusCompleted:
		if err = t.UndoComplete(cmd.Actor()); err != nil {
			return "", err
		}
		patch.Status = nil
	}

	if err = t.Apply(cmd.Actor(), patch); err != nil {
		return "", err
	}

	if err = taskRepo.Update(ctx, t); err != nil {
		return "", err
	}

	advisory := ""
	if cmd.Patch().Status != nil || cmd.Patch().Visibility != nil {
		advisory = nextLegAdvisory(ctx, uow, t)
	}

	if err = uow.Commit(ctx); err != nil {
		return "", err
	}

	return advisory, nil
}

// nextLegAdvisory best-effort computes the follow-up warning after a task
// mutation. Read failures degrade to no advisory rather than failing the
// mutation that triggered it.
func nextLegAdvisory(ctx context.Context, uow WorkflowUoW, t *task.Task) string {
	s, err := uow.ShipmentRepository().Get(ctx, t.ShipmentID())
	if err != nil {
		return ""
	}

	siblings, err := uow.TaskRepository().GetByShipment(ctx, t.ShipmentID())
	if err != nil {
		return ""
	}

	return task.NextLegAdvisory(siblings, t, s.LoadType().IsLooseCargo())
}
