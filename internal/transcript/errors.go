package transcript

import (
	"errors"
	"fmt"
)

// Domain-specific errors for the transcript package.
var (
	ErrEmptyInput   = errors.New("transcript is empty")
	ErrEmptySummary = errors.New("summary is empty")
	ErrEmptyTitle   = errors.New("task title is empty")
)

// ValidationError is returned when input or model output cannot yield a valid result.
type ValidationError struct {
	Reason string
	Err    error
}

func (e *ValidationError) Error() string {
	if e.Err == nil {
		return "validation failed: " + e.Reason
	}
	return fmt.Sprintf("validation failed: %s: %v", e.Reason, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// GatewayError wraps a failed completion call.
type GatewayError struct {
	Err error
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("completion gateway failed: %v", e.Err)
}

func (e *GatewayError) Unwrap() error {
	return e.Err
}
