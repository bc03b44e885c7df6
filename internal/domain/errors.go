package domain

import (
	"errors"
	"fmt"
)

// -----------------------------------------------------------------------------
// Domain Errors
// Every failure that reaches a caller is classified by one of these sentinels.
// Lower layers wrap them with %w so errors.Is works across package boundaries.
// -----------------------------------------------------------------------------

// Remote call errors
var (
	ErrAuthentication = errors.New("authentication failed")
	ErrTransport      = errors.New("transport error")
	ErrProtocol       = errors.New("protocol error")
	ErrRemoteFault    = errors.New("remote fault")
)

// Caller errors
var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("not found")
)

// ValidationError reports a caller input that violates a documented constraint.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("validation error: %s", e.Message)
	}
	return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
}

// Unwrap lets errors.Is(err, ErrValidation) match.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// Invalid builds a ValidationError for field.
func Invalid(field, format string, args ...any) error {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// Required reports a missing required field.
func Required(field string) error {
	return &ValidationError{Field: field, Message: "is required"}
}

// Kind returns a short label for the sentinel err wraps, used in logs.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrValidation):
		return "validation"
	case errors.Is(err, ErrAuthentication):
		return "authentication"
	case errors.Is(err, ErrTransport):
		return "transport"
	case errors.Is(err, ErrProtocol):
		return "protocol"
	case errors.Is(err, ErrRemoteFault):
		return "fault"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	default:
		return "internal"
	}
}
