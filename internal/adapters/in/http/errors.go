package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"forwarding/internal/pkg/errs"
)

// writeError maps domain errors to HTTP status codes and writes the uniform
// error payload.
func writeError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrPermissionDenied):
		status = http.StatusForbidden
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	case errors.Is(err, errs.ErrPartialWrite):
		// The shipment document exists but a companion write failed. The
		// client gets the full story so support can repair the record.
		status = http.StatusInternalServerError
	}

	return ctx.JSON(status, Error{
		Code:    status,
		Message: err.Error(),
	})
}
