package commands

import (
	"context"

	"forwarding/internal/core/domain/model/route"
	"forwarding/internal/pkg/errs"
)

// ReplaceRouteCommandHandler overwrites a shipment's entire route node list as
// one unit, converting a derived route into a persisted one on first save.
// The previous list is clobbered without a version check (last write wins).
//
// A malformed shape (wrong origin/destination count) is stored as given and
// reported back as warnings rather than rejected.
type ReplaceRouteCommandHandler struct {
	uowFactory RouteUoWFactory
}

// NewReplaceRouteCommandHandler creates a handler for route replacement.
func NewReplaceRouteCommandHandler(uowFactory RouteUoWFactory) ReplaceRouteCommandHandler {
	return ReplaceRouteCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle replaces the route and returns any shape warnings.
func (h *ReplaceRouteCommandHandler) Handle(ctx context.Context, cmd ReplaceRouteCommand) ([]string, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if !cmd.Actor().IsInternal() {
		return nil, errs.NewPermissionDeniedError(cmd.Actor().Role().String(), "edit the route")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	// The shipment must exist; a route is never free-standing.
	if _, err := uow.ShipmentRepository().Get(ctx, cmd.ShipmentID()); err != nil {
		return nil, err
	}

	r, err := route.NewRoute(cmd.ShipmentID(), cmd.Nodes())
	if err != nil {
		return nil, err
	}

	if err = uow.RouteRepository().Replace(ctx, r); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return r.ShapeWarnings(), nil
}
