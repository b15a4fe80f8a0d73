package commands

import (
	"context"
	"time"

	"forwarding/internal/core/ports"
	"forwarding/internal/pkg/errs"
)

// ApplyParsedDocumentCommandHandler runs an uploaded shipping document through
// the external parser and merges the extracted booking fields into the
// shipment. Only non-empty parsed fields overwrite existing values.
type ApplyParsedDocumentCommandHandler struct {
	uowFactory ShipmentUoWFactory
	parser     ports.DocumentParser
}

// NewApplyParsedDocumentCommandHandler creates a handler for document uploads.
func NewApplyParsedDocumentCommandHandler(
	uowFactory ShipmentUoWFactory,
	parser ports.DocumentParser,
) ApplyParsedDocumentCommandHandler {
	return ApplyParsedDocumentCommandHandler{
		uowFactory: uowFactory,
		parser:     parser,
	}
}

// Handle parses the document and merges its fields.
func (h *ApplyParsedDocumentCommandHandler) Handle(ctx context.Context, cmd ApplyParsedDocumentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !cmd.Actor().IsInternal() {
		return errs.NewPermissionDeniedError(cmd.Actor().Role().String(), "apply shipping documents")
	}

	parsed, err := h.parser.Parse(ctx, cmd.FileName(), cmd.Content())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
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

	s.MergeBookingDetails(parsed.Booking, time.Now().UTC())

	if err = shipmentRepo.Update(ctx, s); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
