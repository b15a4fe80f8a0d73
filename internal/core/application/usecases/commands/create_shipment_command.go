package commands

import (
	"errors"

	"forwarding/internal/core/domain/model/account"
	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/shipment"
	"forwarding/internal/pkg/errs"
	"forwarding/internal/pkg/guard"
)

var ErrCreateShipmentCommandIsNotConstructed = errors.New(
	"CreateShipmentCommand must be created via NewCreateShipmentCommand constructor",
)

// CreateShipmentCommand represents a request to create a new shipment.
// All required fields are validated at construction, before any identifier is
// allocated: a rejected request never consumes a sequence number.
type CreateShipmentCommand struct { //nolint:recvcheck //using for validation
	originPort      kernel.PortCode
	destinationPort kernel.PortCode
	loadType        shipment.LoadType
	customerID      kernel.UUID
	counterpartyID  kernel.UUID
	cargo           string
	actor           account.Actor

	guard guard.ConstructorGuard
}

// NewCreateShipmentCommand creates a command to register a new shipment.
// Validates the route endpoints, classification, counterparties, cargo
// description, and creator identity.
func NewCreateShipmentCommand(
	originPort, destinationPort kernel.PortCode,
	loadType shipment.LoadType,
	customerID, counterpartyID kernel.UUID,
	cargo string,
	actor account.Actor,
) (CreateShipmentCommand, error) {
	cmd := CreateShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPorts(originPort, destinationPort),
		cmd.setLoadType(loadType),
		cmd.setParties(customerID, counterpartyID),
		cmd.setCargo(cargo),
		cmd.setActor(actor),
	); err != nil {
		return CreateShipmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipmentCommandIsNotConstructed)
}

// OriginPort returns the route origin port.
func (c CreateShipmentCommand) OriginPort() kernel.PortCode {
	return c.originPort
}

// DestinationPort returns the route destination port.
func (c CreateShipmentCommand) DestinationPort() kernel.PortCode {
	return c.destinationPort
}

// LoadType returns the cargo aggregation mode.
func (c CreateShipmentCommand) LoadType() shipment.LoadType {
	return c.loadType
}

// CustomerID returns the customer company identifier.
func (c CreateShipmentCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// CounterpartyID returns the counterparty company identifier.
func (c CreateShipmentCommand) CounterpartyID() kernel.UUID {
	return c.counterpartyID
}

// Cargo returns the cargo description.
func (c CreateShipmentCommand) Cargo() string {
	return c.cargo
}

// Actor returns the verified identity creating the shipment.
func (c CreateShipmentCommand) Actor() account.Actor {
	return c.actor
}

func (c *CreateShipmentCommand) setPorts(origin, destination kernel.PortCode) error {
	if err := origin.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("originPort", err)
	}
	if err := destination.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("destinationPort", err)
	}

	c.originPort = origin
	c.destinationPort = destination
	return nil
}

func (c *CreateShipmentCommand) setLoadType(loadType shipment.LoadType) error {
	if err := loadType.Validate(); err != nil {
		return err
	}

	c.loadType = loadType
	return nil
}

func (c *CreateShipmentCommand) setParties(customerID, counterpartyID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerId", err)
	}
	if err := counterpartyID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("counterpartyId", err)
	}

	c.customerID = customerID
	c.counterpartyID = counterpartyID
	return nil
}

func (c *CreateShipmentCommand) setCargo(cargo string) error {
	if cargo == "" {
		return errs.NewValueIsRequiredError("cargoDescription")
	}

	c.cargo = cargo
	return nil
}

func (c *CreateShipmentCommand) setActor(actor account.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
