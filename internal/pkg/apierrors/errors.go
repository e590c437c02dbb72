// internal/pkg/apierrors/errors.go
package apierrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorPayload is the error body shape the backend API returns
type ErrorPayload struct {
	Message  string            `json:"message"`
	Resource string            `json:"resource,omitempty"`
	Fields   map[string]string `json:"fields,omitempty"`
	Code     string            `json:"code,omitempty"`
}

// APIError is the generic API error carrying the HTTP status and an
// optional machine-readable code
type APIError struct {
	Message string
	Status  int
	Code    string
}

func (e *APIError) Error() string {
	return e.Message
}

// NewAPIError creates a generic API error
func NewAPIError(message string, status int, code string) *APIError {
	return &APIError{Message: message, Status: status, Code: code}
}

// NotFoundError indicates the requested resource does not exist (404)
type NotFoundError struct {
	Message  string
	Resource string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

// ValidationError indicates a rejected request body (400) with a
// per-field error map
type ValidationError struct {
	Message string
	Fields  map[string]string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// AuthenticationError indicates missing or invalid credentials (401)
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// NetworkError indicates the request never produced an HTTP response
// (DNS failure, refused connection, dropped transport)
type NetworkError struct {
	Message string
	Err     error
}

func (e *NetworkError) Error() string {
	return e.Message
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// NewNetworkError wraps a transport-level failure
func NewNetworkError(err error) *NetworkError {
	return &NetworkError{
		Message: "Network error. Please check your connection and try again.",
		Err:     err,
	}
}

// FromPayload builds the typed error matching a non-2xx response whose
// body decoded into an ErrorPayload
func FromPayload(status int, payload ErrorPayload) error {
	switch {
	case status == http.StatusNotFound:
		return &NotFoundError{Message: payload.Message, Resource: payload.Resource}
	case status == http.StatusBadRequest && len(payload.Fields) > 0:
		return &ValidationError{Message: payload.Message, Fields: payload.Fields}
	case status == http.StatusUnauthorized:
		return &AuthenticationError{Message: payload.Message}
	default:
		return &APIError{Message: payload.Message, Status: status, Code: payload.Code}
	}
}

// FromStatus builds a generic error for a non-2xx response whose body
// was not a recognizable JSON payload
func FromStatus(status int) error {
	return &APIError{
		Message: fmt.Sprintf("HTTP Error %d", status),
		Status:  status,
	}
}

// HTTPStatus returns the status an error should be served with when it
// is rendered back out over HTTP
func HTTPStatus(err error) int {
	var notFound *NotFoundError
	var validation *ValidationError
	var auth *AuthenticationError
	var network *NetworkError
	var api *APIError

	switch {
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &validation):
		return http.StatusBadRequest
	case errors.As(err, &auth):
		return http.StatusUnauthorized
	case errors.As(err, &network):
		return http.StatusBadGateway
	case errors.As(err, &api):
		if api.Status > 0 {
			return api.Status
		}
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// Payload renders an error back into the wire shape, so errors received
// from an upstream pass through unchanged
func Payload(err error) ErrorPayload {
	var notFound *NotFoundError
	var validation *ValidationError
	var api *APIError

	switch {
	case errors.As(err, &notFound):
		return ErrorPayload{Message: notFound.Message, Resource: notFound.Resource}
	case errors.As(err, &validation):
		return ErrorPayload{Message: validation.Message, Fields: validation.Fields}
	case errors.As(err, &api):
		return ErrorPayload{Message: api.Message, Code: api.Code}
	default:
		return ErrorPayload{Message: FriendlyMessage(err)}
	}
}

const genericMessage = "Something went wrong. Please try again."

// FriendlyMessage extracts a message safe to show to a user: the
// error's own message for recognized API errors and ordinary errors,
// a generic fallback for everything else
func FriendlyMessage(err error) string {
	if err == nil {
		return genericMessage
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return genericMessage
}
