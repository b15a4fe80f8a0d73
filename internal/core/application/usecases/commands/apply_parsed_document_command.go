package commands

import (
	"errors"

	"forwarding/internal/core/domain/model/account"
	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/pkg/errs"
	"forwarding/internal/pkg/guard"
)

var ErrApplyParsedDocumentCommandIsNotConstructed = errors.New(
	"ApplyParsedDocumentCommand must be created via NewApplyParsedDocumentCommand constructor",
)

// ApplyParsedDocumentCommand represents an uploaded shipping document to parse
// and merge into the shipment's booking details.
type ApplyParsedDocumentCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.ShipmentID
	fileName   string
	content    []byte
	actor      account.Actor

	guard guard.ConstructorGuard
}

// NewApplyParsedDocumentCommand creates a command to apply a shipping document.
func NewApplyParsedDocumentCommand(
	shipmentID kernel.ShipmentID,
	fileName string,
	content []byte,
	actor account.Actor,
) (ApplyParsedDocumentCommand, error) {
	cmd := ApplyParsedDocumentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setDocument(fileName, content),
		cmd.setActor(actor),
	); err != nil {
		return ApplyParsedDocumentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ApplyParsedDocumentCommand) Validate() error {
	return c.guard.Validate(ErrApplyParsedDocumentCommandIsNotConstructed)
}

// ShipmentID returns the target shipment identifier.
func (c ApplyParsedDocumentCommand) ShipmentID() kernel.ShipmentID {
	return c.shipmentID
}

// FileName returns the uploaded document's file name.
func (c ApplyParsedDocumentCommand) FileName() string {
	return c.fileName
}

// Content returns the raw document bytes.
func (c ApplyParsedDocumentCommand) Content() []byte {
	return c.content
}

// Actor returns the verified identity issuing the command.
func (c ApplyParsedDocumentCommand) Actor() account.Actor {
	return c.actor
}

func (c *ApplyParsedDocumentCommand) setShipmentID(shipmentID kernel.ShipmentID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}

func (c *ApplyParsedDocumentCommand) setDocument(fileName string, content []byte) error {
	if fileName == "" {
		return errs.NewValueIsRequiredError("fileName")
	}
	if len(content) == 0 {
		return errs.NewValueIsRequiredError("content")
	}

	c.fileName = fileName
	c.content = content
	return nil
}

func (c *ApplyParsedDocumentCommand) setActor(actor account.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
