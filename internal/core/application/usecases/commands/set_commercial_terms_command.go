package commands

import (
	"errors"

	"forwarding/internal/core/domain/model/account"
	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/shipment"
	"forwarding/internal/pkg/guard"
)

var ErrSetCommercialTermsCommandIsNotConstructed = errors.New(
	"SetCommercialTermsCommand must be created via NewSetCommercialTermsCommand constructor",
)

// SetCommercialTermsCommand represents a request to set a shipment's
// commercial terms, which also generates its workflow task graph.
type SetCommercialTermsCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.ShipmentID
	terms      shipment.Terms
	actor      account.Actor

	guard guard.ConstructorGuard
}

// NewSetCommercialTermsCommand creates a command to set commercial terms.
func NewSetCommercialTermsCommand(
	shipmentID kernel.ShipmentID,
	terms shipment.Terms,
	actor account.Actor,
) (SetCommercialTermsCommand, error) {
	cmd := SetCommercialTermsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setTerms(terms),
		cmd.setActor(actor),
	); err != nil {
		return SetCommercialTermsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SetCommercialTermsCommand) Validate() error {
	return c.guard.Validate(ErrSetCommercialTermsCommandIsNotConstructed)
}

// ShipmentID returns the target shipment identifier.
func (c SetCommercialTermsCommand) ShipmentID() kernel.ShipmentID {
	return c.shipmentID
}

// Terms returns the commercial terms to set.
func (c SetCommercialTermsCommand) Terms() shipment.Terms {
	return c.terms
}

// Actor returns the verified identity issuing the command.
func (c SetCommercialTermsCommand) Actor() account.Actor {
	return c.actor
}

func (c *SetCommercialTermsCommand) setShipmentID(shipmentID kernel.ShipmentID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}

func (c *SetCommercialTermsCommand) setTerms(terms shipment.Terms) error {
	if err := terms.Incoterm().Validate(); err != nil {
		return err
	}
	if err := terms.TransactionType().Validate(); err != nil {
		return err
	}

	c.terms = terms
	return nil
}

func (c *SetCommercialTermsCommand) setActor(actor account.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
