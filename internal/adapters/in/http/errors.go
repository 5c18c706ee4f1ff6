package http

import (
	"errors"
	"net/http"

	"restaurant/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusOf maps use case errors to HTTP status codes.
func statusOf(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// fail writes err as an Error body. Internal errors are logged and not
// echoed to clients.
func (s *Server) fail(ctx echo.Context, err error) error {
	code := statusOf(err)
	message := err.Error()
	if code == http.StatusInternalServerError {
		s.logger.Error("Request failed",
			"method", ctx.Request().Method,
			"path", ctx.Path(),
			"error", err,
		)
		message = http.StatusText(code)
	}
	return ctx.JSON(code, Error{Code: code, Message: message})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: message})
}
