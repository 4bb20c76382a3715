package validators

import (
	"errors"
	"fmt"
)

// Kinds of validation failure. A *ValidationError always wraps exactly one
// of them.
var (
	ErrMissingField    = errors.New("missing field")
	ErrInvalidEmail    = errors.New("invalid email")
	ErrInvalidPhone    = errors.New("invalid phone number")
	ErrWeakPassword    = errors.New("weak password")
	ErrSuspiciousInput = errors.New("suspicious input")
)

// ValidationError describes why a payload was rejected.
type ValidationError struct {
	// Kind is one of the package sentinels.
	Kind error
	// Field is the JSON name of the offending field.
	Field string
	// Message is safe to return to the client as is.
	Message string
}

func newValidationError(kind error, field, message string) *ValidationError {
	return &ValidationError{Kind: kind, Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Kind)
}

func (e *ValidationError) Unwrap() error {
	return e.Kind
}
