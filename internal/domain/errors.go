// Package domain defines the core business entities and errors.
package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when an entity or request payload fails
	// validation. It is usually wrapped with a more specific message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an ID is malformed or non-positive.
	ErrInvalidID = errors.New("invalid ID")

	// ErrInvalidEmail is returned when an email address is malformed.
	ErrInvalidEmail = errors.New("invalid email format")

	// ErrUnauthorized is returned when an operation is not permitted.
	ErrUnauthorized = errors.New("unauthorized operation")
)

// ValidationError carries the field and reason of the first failing
// validation rule. Validation is fail-fast: only the first broken rule
// is ever reported.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return "the \"" + e.Field + "\" field " + e.Message
}

// Unwrap returns the wrapped sentinel so errors.Is(err, ErrValidation) holds.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a ValidationError wrapping ErrValidation.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message, Err: ErrValidation}
}
