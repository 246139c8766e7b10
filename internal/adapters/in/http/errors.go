package http

import (
	"errors"
	"net/http"

	"negotiation/internal/generated/servers"
	"negotiation/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusFor maps application errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrInvalidArgument):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrStateIsInvalid), errors.Is(err, errs.ErrVersionIsInvalid):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// fail writes err as a servers.Error. Server errors are logged and their detail
// is not sent to the client.
func (s *Server) fail(ctx echo.Context, err error) error {
	status := statusFor(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		s.logger.WithError(err).WithField("path", ctx.Path()).Error("Request failed")
		message = "Internal server error"
	}

	return ctx.JSON(status, servers.Error{
		Code:    status,
		Message: message,
	})
}
