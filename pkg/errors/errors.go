// Package errors holds the error type the HTTP delivery layer renders.
package errors

import (
	"fmt"
	"net/http"
)

// HTTPError is an error with the HTTP status and application code it should be rendered with.
type HTTPError struct {
	StatusCode int
	Code       int
	Message    string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("http %d (code %d): %s", e.StatusCode, e.Code, e.Message)
}

// NewHTTPError creates an HTTPError whose application code equals the status code.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Code: statusCode, Message: message}
}

// NewHTTPErrorWithCode creates an HTTPError with a distinct application code.
func NewHTTPErrorWithCode(statusCode, code int, message string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Code: code, Message: message}
}

var (
	ErrBadRequest          = NewHTTPError(http.StatusBadRequest, "Bad request")
	ErrUnauthorized        = NewHTTPError(http.StatusUnauthorized, "Unauthorized")
	ErrTooManyRequests     = NewHTTPError(http.StatusTooManyRequests, "Too many requests")
	ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "Something went wrong")
)
