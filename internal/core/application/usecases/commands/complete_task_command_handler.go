package commands

import (
	"context"
	"time"
)

// CompleteTaskCommandHandler marks a workflow task complete. The completion
// timestamp lands in the field the task's mode and type dictate: arrival time
// for a tracked port-of-discharge leg, end time for everything else.
type CompleteTaskCommandHandler struct {
	uowFactory WorkflowUoWFactory
}

// NewCompleteTaskCommandHandler creates a handler for task completion.
func NewCompleteTaskCommandHandler(uowFactory WorkflowUoWFactory) CompleteTaskCommandHandler {
	return CompleteTaskCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the completion and returns the optional next-leg advisory.
func (h *CompleteTaskCommandHandler) Handle(ctx context.Context, cmd CompleteTaskCommand) (string, error) {
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

	if err = t.MarkComplete(cmd.Actor(), time.Now().UTC()); err != nil {
		return "", err
	}

	if err = taskRepo.Update(ctx, t); err != nil {
		return "", err
	}

	advisory := nextLegAdvisory(ctx, uow, t)

	if err = uow.Commit(ctx); err != nil {
		return "", err
	}

	return advisory, nil
}
