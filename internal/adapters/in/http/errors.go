package http

import (
	"errors"
	"net/http"

	"smartlogix/internal/core/domain/model/order"
	"smartlogix/internal/pkg/errs"
	"smartlogix/internal/pkg/tenantctx"

	"github.com/labstack/echo/v4"
)

// writeError maps domain errors onto the API's status codes. Anything
// unclassified becomes an opaque 500 so internals never leak to clients.
func writeError(ctx echo.Context, err error) error {
	status, message := classify(err)
	return ctx.JSON(status, ErrorBody{
		Code:    status,
		Message: message,
	})
}

func classify(err error) (int, string) {
	switch {
	case errors.Is(err, tenantctx.ErrTenantNotBound):
		return http.StatusUnauthorized, "authentication required"
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, errs.ErrConflict):
		return http.StatusConflict, err.Error()
	case errors.Is(err, order.ErrInvalidTransition):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest, err.Error()
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}
