package middleware

import (
	"net/http"

	"fleetDispatch/pkg/apperror"
	"fleetDispatch/pkg/logger"

	jsonres "fleetDispatch/pkg/response"

	"github.com/labstack/echo/v4"
)

// ErrorHandler is the echo HTTPErrorHandler: any error that escapes a handler
// still produces the { error, details } envelope.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	message := "internal server error"

	switch {
	case apperror.IsValidation(err):
		status = http.StatusBadRequest
		message = err.Error()
	case apperror.IsAlreadyRunning(err):
		status = http.StatusConflict
		message = err.Error()
	case apperror.IsStorage(err):
		status = http.StatusServiceUnavailable
		message = err.Error()
	case apperror.IsUpstream(err):
		status = http.StatusBadGateway
		message = err.Error()
	default:
		if he, ok := err.(*echo.HTTPError); ok {
			status = he.Code
			if msg, ok := he.Message.(string); ok {
				message = msg
			}
		}
	}

	if status >= http.StatusInternalServerError {
		logger.Error("request failed", "method", c.Request().Method, "path", c.Path(), "error", err)
	}

	_ = c.JSON(status, jsonres.Error("", message, nil))
}
