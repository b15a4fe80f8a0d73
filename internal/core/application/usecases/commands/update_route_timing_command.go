package commands

import (
	"errors"

	"forwarding/internal/core/domain/model/account"
	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/route"
	"forwarding/internal/pkg/errs"
	"forwarding/internal/pkg/guard"
)

var ErrUpdateRouteTimingCommandIsNotConstructed = errors.New(
	"UpdateRouteTimingCommand must be created via NewUpdateRouteTimingCommand constructor",
)

// UpdateRouteTimingCommand represents a point patch of one route node's
// timestamp fields, matched by sequence. Structural changes go through
// ReplaceRouteCommand instead.
type UpdateRouteTimingCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.ShipmentID
	sequence   int
	patch      route.TimingPatch
	actor      account.Actor

	guard guard.ConstructorGuard
}

// NewUpdateRouteTimingCommand creates a command to patch a node's timing.
func NewUpdateRouteTimingCommand(
	shipmentID kernel.ShipmentID,
	sequence int,
	patch route.TimingPatch,
	actor account.Actor,
) (UpdateRouteTimingCommand, error) {
	cmd := UpdateRouteTimingCommand{
		patch: patch,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setSequence(sequence),
		cmd.setActor(actor),
	); err != nil {
		return UpdateRouteTimingCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateRouteTimingCommand) Validate() error {
	return c.guard.Validate(ErrUpdateRouteTimingCommandIsNotConstructed)
}

// ShipmentID returns the target shipment identifier.
func (c UpdateRouteTimingCommand) ShipmentID() kernel.ShipmentID {
	return c.shipmentID
}

// Sequence returns the sequence of the node being patched.
func (c UpdateRouteTimingCommand) Sequence() int {
	return c.sequence
}

// Patch returns the partial timing update.
func (c UpdateRouteTimingCommand) Patch() route.TimingPatch {
	return c.patch
}

// Actor returns the verified identity issuing the command.
func (c UpdateRouteTimingCommand) Actor() account.Actor {
	return c.actor
}

func (c *UpdateRouteTimingCommand) setShipmentID(shipmentID kernel.ShipmentID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}

func (c *UpdateRouteTimingCommand) setSequence(sequence int) error {
	if sequence < 0 {
		return errs.NewValueIsInvalidError("sequence must not be negative")
	}

	c.sequence = sequence
	return nil
}

func (c *UpdateRouteTimingCommand) setActor(actor account.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
