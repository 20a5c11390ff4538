package types

import (
	"net/http"

	appErr "github.com/eightd-studio/engine/pkg/errors"
)

const (
	MsgInternal         = "Internal server error"
	MsgInvalidJSON      = "Invalid JSON data"
	MsgEndpointNotFound = "Endpoint not found"
	MsgMethodNotAllowed = "Method not allowed"
	MsgTooManyRequests  = "Too many requests"
)

// FromAppError builds the failure envelope and status for err. Internal
// failures never expose their message.
func FromAppError(err error) (int, APIResponse) {
	ae, ok := appErr.As(err)
	if !ok {
		return http.StatusInternalServerError, Failure(MsgInternal)
	}
	status := appErr.HTTPStatus(ae.Code)
	if status == http.StatusInternalServerError {
		return status, Failure(MsgInternal)
	}
	return status, APIResponse{Success: false, Message: ae.Message, Errors: ae.Details}
}

func Failure(message string) APIResponse {
	return APIResponse{Success: false, Message: message}
}
