package services

import (
	"errors"
	"fmt"
)

var (
	// ErrNotLoggedIn is returned by calls that need a token when there is none.
	ErrNotLoggedIn = errors.New("not logged in")
	// ErrSessionExpired is returned when the backend rejected the token; the
	// session has already been cleared.
	ErrSessionExpired = errors.New("session expired")
)

// Form fields checked before any network call.
const (
	FieldUsername = "username"
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldText     = "text"
)

// ValidationReason says what is wrong with a field.
type ValidationReason string

const (
	ReasonRequired     ValidationReason = "required"
	ReasonInvalidEmail ValidationReason = "invalid_email"
)

// ValidationError reports input rejected locally.
type ValidationError struct {
	Field  string
	Reason ValidationReason
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s: %s", e.Field, e.Reason)
}

func required(field string) *ValidationError {
	return &ValidationError{Field: field, Reason: ReasonRequired}
}
