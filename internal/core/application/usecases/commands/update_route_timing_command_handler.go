package commands

import (
	"context"

	"forwarding/internal/pkg/errs"
)

// UpdateRouteTimingCommandHandler patches the timestamp fields of a single
// persisted route node. A derived route has no persisted nodes to patch; the
// command is rejected until the route is saved via replace.
type UpdateRouteTimingCommandHandler struct {
	uowFactory RouteUoWFactory
}

// NewUpdateRouteTimingCommandHandler creates a handler for timing patches.
func NewUpdateRouteTimingCommandHandler(uowFactory RouteUoWFactory) UpdateRouteTimingCommandHandler {
	return UpdateRouteTimingCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the timing patch.
func (h *UpdateRouteTimingCommandHandler) Handle(ctx context.Context, cmd UpdateRouteTimingCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !cmd.Actor().IsInternal() {
		return errs.NewPermissionDeniedError(cmd.Actor().Role().String(), "edit the route")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	routeRepo := uow.RouteRepository()
	r, persisted, err := routeRepo.Get(ctx, cmd.ShipmentID())
	if err != nil {
		return err
	}
	if !persisted {
		return errs.NewValueIsInvalidError("a derived route cannot be edited; save a full node list first")
	}

	if err = r.UpdateTiming(cmd.Sequence(), cmd.Patch()); err != nil {
		return err
	}

	if err = routeRepo.Replace(ctx, r); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
