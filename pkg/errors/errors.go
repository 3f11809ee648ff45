package errors

import (
	"errors"
	"net/http"
)

// HTTPError carries an HTTP status alongside a user-facing message.
// Delivery-layer mapError functions translate domain errors into these.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTPError.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
	}
}

// StatusOf returns the HTTP status for err: the embedded status for an
// HTTPError, 400 otherwise.
func StatusOf(err error) int {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode
	}
	return http.StatusBadRequest
}

// Common HTTP errors shared across delivery layers.
var (
	ErrInternalServer = NewHTTPError(http.StatusInternalServerError, "internal server error")
	ErrUnauthorized   = NewHTTPError(http.StatusUnauthorized, "unauthorized")
	ErrForbidden      = NewHTTPError(http.StatusForbidden, "forbidden")
)
