package commands

import (
	"context"
)

// UndoTaskCompletionCommandHandler reverses a task completion: the status
// returns to PENDING and the timestamp field stamped at completion is
// cleared. Mode and assignment are untouched.
type UndoTaskCompletionCommandHandler struct {
	uowFactory WorkflowUoWFactory
}

// NewUndoTaskCompletionCommandHandler creates a handler for completion undo.
func NewUndoTaskCompletionCommandHandler(uowFactory WorkflowUoWFactory) UndoTaskCompletionCommandHandler {
	return UndoTaskCompletionCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the undo.
func (h *UndoTaskCompletionCommandHandler) Handle(ctx context.Context, cmd UndoTaskCompletionCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	taskRepo := uow.TaskRepository()
	t, err := taskRepo.Get(ctx, cmd.TaskID())
	if err != nil {
		return err
	}

	if err = t.UndoComplete(cmd.Actor()); err != nil {
		return err
	}

	if err = taskRepo.Update(ctx, t); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
