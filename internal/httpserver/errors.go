package httpserver

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gashorafarm/farmconnect/internal/cart"
	"github.com/gashorafarm/farmconnect/internal/service"
)

type errorClass struct {
	target error
	status int
	code   string
}

// Order matters: the first matching class wins.
var errorClasses = []errorClass{
	{service.ErrInvalidQuantity, http.StatusBadRequest, "invalid_quantity"},
	{cart.ErrInvalidItem, http.StatusBadRequest, "invalid_input"},
	{service.ErrInvalidInput, http.StatusBadRequest, "invalid_input"},
	{service.ErrInvalidCredentials, http.StatusUnauthorized, "invalid_credentials"},
	{service.ErrInvalidSession, http.StatusUnauthorized, "invalid_session"},
	{service.ErrForbidden, http.StatusForbidden, "forbidden"},
	{service.ErrNotFound, http.StatusNotFound, "not_found"},
	{service.ErrDuplicateAccount, http.StatusConflict, "duplicate_account"},
	{service.ErrConflict, http.StatusConflict, "conflict"},
	{service.ErrIllegalTransition, http.StatusUnprocessableEntity, "illegal_transition"},
	{service.ErrEmptyCart, http.StatusUnprocessableEntity, "empty_cart"},
	{service.ErrRemoteUnavailable, http.StatusServiceUnavailable, "remote_unavailable"},
}

func classify(err error) (int, string) {
	for _, ec := range errorClasses {
		if errors.Is(err, ec.target) {
			return ec.status, ec.code
		}
	}
	return http.StatusInternalServerError, "internal"
}

func apiError(status int, code, message string) *echo.HTTPError {
	return echo.NewHTTPError(status, map[string]any{"code": code, "message": message})
}

// fail logs err under event and converts it to the matching HTTP error.
func fail(l *slog.Logger, event string, err error) error {
	status, code := classify(err)
	if status >= http.StatusInternalServerError {
		l.Error(event, "status", status, "reason", code, "error", err)
		msg := "internal error"
		if status == http.StatusServiceUnavailable {
			msg = "service temporarily unavailable, try again"
		}
		return apiError(status, code, msg)
	}
	l.Warn(event, "status", status, "reason", code, "error", err)
	return apiError(status, code, err.Error())
}

func badRequest(l *slog.Logger, event, reason string, err error) error {
	l.Warn(event, "status", http.StatusBadRequest, "reason", reason, "error", err)
	return apiError(http.StatusBadRequest, "invalid_input", reason)
}
