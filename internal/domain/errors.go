package domain

import "errors"

// ErrNotFound is returned by repositories and services when the requested record does not exist.
var ErrNotFound = errors.New("not found")

// ErrUnauthorized is returned when a token is missing, invalid, or lacks the required role.
var ErrUnauthorized = errors.New("unauthorized")

// ValidationError is a business-rule violation on a submitted donation.
// It is surfaced to callers as a 400 with Message as the human-readable text.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

// NewValidationError returns a ValidationError for the given field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
