package http

import (
	"errors"
	"net/http"

	"taxi/internal/core/ports"
	"taxi/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusFor maps an application error onto an HTTP status code.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrValueIsRequired), errors.Is(err, errs.ErrValueIsInvalid):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrInvalidState):
		return http.StatusConflict
	case errors.Is(err, ports.ErrOrderIsLocked):
		return http.StatusLocked
	default:
		return http.StatusInternalServerError
	}
}

// writeError renders err as an Error body. Internal failures get a generic
// message so storage details do not leak to clients.
func writeError(ctx echo.Context, err error, internalMessage string) error {
	code := statusFor(err)
	message := err.Error()
	if code == http.StatusInternalServerError {
		message = internalMessage
		ctx.Set(internalErrorKey, err)
	}

	return ctx.JSON(code, Error{
		Code:    code,
		Message: message,
	})
}
