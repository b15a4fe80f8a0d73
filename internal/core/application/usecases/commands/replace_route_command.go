package commands

import (
	"errors"

	"forwarding/internal/core/domain/model/account"
	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/route"
	"forwarding/internal/pkg/errs"
	"forwarding/internal/pkg/guard"
)

var ErrReplaceRouteCommandIsNotConstructed = errors.New(
	"ReplaceRouteCommand must be created via NewReplaceRouteCommand constructor",
)

// ReplaceRouteCommand represents a full replacement of a shipment's route
// timeline. The node array is taken in caller order; sequences are re-derived
// from array position on save. Structural edits (insert/remove a
// transshipment) are expressed by editing the array before replacing.
type ReplaceRouteCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.ShipmentID
	nodes      []route.Node
	actor      account.Actor

	guard guard.ConstructorGuard
}

// NewReplaceRouteCommand creates a command to replace a route timeline.
func NewReplaceRouteCommand(
	shipmentID kernel.ShipmentID,
	nodes []route.Node,
	actor account.Actor,
) (ReplaceRouteCommand, error) {
	cmd := ReplaceRouteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setNodes(nodes),
		cmd.setActor(actor),
	); err != nil {
		return ReplaceRouteCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReplaceRouteCommand) Validate() error {
	return c.guard.Validate(ErrReplaceRouteCommandIsNotConstructed)
}

// ShipmentID returns the target shipment identifier.
func (c ReplaceRouteCommand) ShipmentID() kernel.ShipmentID {
	return c.shipmentID
}

// Nodes returns the full replacement node list in caller order.
func (c ReplaceRouteCommand) Nodes() []route.Node {
	return c.nodes
}

// Actor returns the verified identity issuing the command.
func (c ReplaceRouteCommand) Actor() account.Actor {
	return c.actor
}

func (c *ReplaceRouteCommand) setShipmentID(shipmentID kernel.ShipmentID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}

func (c *ReplaceRouteCommand) setNodes(nodes []route.Node) error {
	if len(nodes) == 0 {
		return errs.NewValueIsRequiredError("nodes")
	}
	for _, n := range nodes {
		if err := n.Validate(); err != nil {
			return err
		}
	}

	c.nodes = nodes
	return nil
}

func (c *ReplaceRouteCommand) setActor(actor account.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
