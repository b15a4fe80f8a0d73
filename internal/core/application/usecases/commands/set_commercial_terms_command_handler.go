package commands

import (
	"context"
	"time"

	"forwarding/internal/core/domain/services"
	"forwarding/internal/pkg/errs"
)

// SetCommercialTermsCommandHandler sets a shipment's commercial terms and
// generates its workflow task graph. Terms are set once; repeating the
// command is rejected by the aggregate so the generated graph is never
// orphaned.
type SetCommercialTermsCommandHandler struct {
	uowFactory WorkflowUoWFactory
	planner    services.TaskPlanner
}

// NewSetCommercialTermsCommandHandler creates a handler for the terms command.
func NewSetCommercialTermsCommandHandler(uowFactory WorkflowUoWFactory) SetCommercialTermsCommandHandler {
	return SetCommercialTermsCommandHandler{
		uowFactory: uowFactory,
		planner:    services.NewTaskPlanner(),
	}
}

// Handle sets the terms and writes the generated tasks into the workflow
// shell within one transaction.
func (h *SetCommercialTermsCommandHandler) Handle(ctx context.Context, cmd SetCommercialTermsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !cmd.Actor().IsInternal() {
		return errs.NewPermissionDeniedError(cmd.Actor().Role().String(), "set commercial terms")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shipmentRepo := uow.ShipmentRepository()
	s, err := shipmentRepo.Get(ctx, cmd.ShipmentID())
	if err != nil {
		return err
	}

	if err = s.SetTerms(cmd.Terms(), time.Now().UTC()); err != nil {
		return err
	}

	tasks, err := h.planner.PlanWorkflow(s)
	if err != nil {
		return err
	}

	if err = shipmentRepo.Update(ctx, s); err != nil {
		return err
	}

	if err = uow.TaskRepository().AddTasks(ctx, tasks); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
