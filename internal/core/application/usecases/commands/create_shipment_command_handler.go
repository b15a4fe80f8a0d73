package commands

import (
	"context"
	"time"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/shipment"
	"forwarding/internal/core/domain/services"
	"forwarding/internal/core/ports"
	"forwarding/internal/pkg/errs"
)

// CreateShipmentCommandHandler handles the business logic for shipment
// creation: identifier allocation, the shipment document write, the
// tracking-code index write, and the workflow shell write.
//
// Only the counter increment runs in a transaction. The three creation writes
// are issued separately with no compensating transaction; a failure after the
// document write surfaces as a partial-write error and the recommended
// recovery is reload-and-retry. Every invocation, success or failure, is
// recorded through the audit collaborator; a failed audit write never aborts
// the creation.
type CreateShipmentCommandHandler struct {
	uowFactory  CreationUoWFactory
	allocator   services.IdentityAllocator
	auditLogger ports.AuditLogger
}

// NewCreateShipmentCommandHandler creates a handler for shipment creation.
func NewCreateShipmentCommandHandler(
	uowFactory CreationUoWFactory,
	auditLogger ports.AuditLogger,
) CreateShipmentCommandHandler {
	return CreateShipmentCommandHandler{
		uowFactory:  uowFactory,
		allocator:   services.NewIdentityAllocator(),
		auditLogger: auditLogger,
	}
}

// Handle processes the shipment creation command and returns the allocated
// identity pair.
func (h *CreateShipmentCommandHandler) Handle(
	ctx context.Context,
	cmd CreateShipmentCommand,
) (shipment.Identity, error) {
	if err := cmd.Validate(); err != nil {
		h.audit(ctx, cmd, "", "VALIDATION_FAILED", err.Error())
		return shipment.Identity{}, err
	}

	identity, err := h.allocate(ctx)
	if err != nil {
		h.audit(ctx, cmd, "", "ALLOCATION_FAILED", err.Error())
		return shipment.Identity{}, err
	}

	s, err := shipment.NewShipment(
		identity,
		cmd.OriginPort(), cmd.DestinationPort(),
		cmd.LoadType(),
		cmd.CustomerID(), cmd.CounterpartyID(),
		cmd.Cargo(),
		cmd.Actor().UID(),
		time.Now().UTC(),
	)
	if err != nil {
		h.audit(ctx, cmd, identity.ShipmentID.String(), "VALIDATION_FAILED", err.Error())
		return shipment.Identity{}, err
	}

	// The three creation writes are separate operations. A crash or failure
	// between them leaves the shipment without its index entry or workflow
	// shell; that window is accepted and reported, not compensated.
	uow := h.uowFactory.Create()
	shipmentRepo := uow.ShipmentRepository()

	if err = shipmentRepo.Add(ctx, s); err != nil {
		h.audit(ctx, cmd, identity.ShipmentID.String(), "WRITE_FAILED", err.Error())
		return shipment.Identity{}, err
	}

	if err = shipmentRepo.AddTrackingIndex(ctx, s); err != nil {
		partial := errs.NewPartialWriteError(identity.ShipmentID.String(), "tracking index", err)
		h.audit(ctx, cmd, identity.ShipmentID.String(), "PARTIAL_WRITE", partial.Error())
		return shipment.Identity{}, partial
	}

	if err = uow.TaskRepository().AddShell(ctx, s.ID()); err != nil {
		partial := errs.NewPartialWriteError(identity.ShipmentID.String(), "workflow shell", err)
		h.audit(ctx, cmd, identity.ShipmentID.String(), "PARTIAL_WRITE", partial.Error())
		return shipment.Identity{}, partial
	}

	h.audit(ctx, cmd, identity.ShipmentID.String(), "CREATED", "tracking code "+identity.TrackingCode.String())
	return identity, nil
}

// allocate runs the counter increment in its own transaction so concurrent
// creations are linearized per generation.
func (h *CreateShipmentCommandHandler) allocate(ctx context.Context) (shipment.Identity, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return shipment.Identity{}, errs.NewAllocationFailedError(kernel.GenerationCurrent.Prefix(), err)
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	identity, err := h.allocator.Allocate(ctx, uow.CounterRepository(), kernel.GenerationCurrent)
	if err != nil {
		return shipment.Identity{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return shipment.Identity{}, errs.NewAllocationFailedError(kernel.GenerationCurrent.Prefix(), err)
	}

	return identity, nil
}

func (h *CreateShipmentCommandHandler) audit(
	ctx context.Context,
	cmd CreateShipmentCommand,
	shipmentID, outcome, detail string,
) {
	h.auditLogger.Record(ctx, ports.AuditEntry{
		Operation:  "CREATE_SHIPMENT",
		ShipmentID: shipmentID,
		ActorUID:   cmd.Actor().UID(),
		Outcome:    outcome,
		Detail:     detail,
	})
}
