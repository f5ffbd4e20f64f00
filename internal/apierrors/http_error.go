package apierrors

import "net/http"

// HTTPError represents an error with an associated HTTP status code.
// Validation failures carry 4xx codes; infrastructure failures carry 500.
type HTTPError struct {
	Code    int
	Message string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTPError with the given code and message.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{
		Code:    code,
		Message: message,
	}
}

// Helpers for common error classes
func Validation(msg string) *HTTPError { return NewHTTPError(http.StatusBadRequest, msg) }
func NotFound(msg string) *HTTPError   { return NewHTTPError(http.StatusNotFound, msg) }
func Conflict(msg string) *HTTPError   { return NewHTTPError(http.StatusConflict, msg) }
func Internal(msg string) *HTTPError   { return NewHTTPError(http.StatusInternalServerError, msg) }
