package rest

import (
	"net/http"

	"fleetDispatch/pkg/apperror"
)

type ResponseError struct {
	Message string `json:"error"`
	Details any    `json:"details,omitempty"`
}

// statusFor maps the error taxonomy to HTTP codes. Anything unclassified is a
// plain 500.
func statusFor(err error) int {
	switch {
	case apperror.IsValidation(err):
		return http.StatusBadRequest
	case apperror.IsAlreadyRunning(err):
		return http.StatusConflict
	case apperror.IsStorage(err):
		return http.StatusServiceUnavailable
	case apperror.IsUpstream(err):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
