package service

import (
	"errors"
	"fmt"
)

var (
	ErrAdminRequired      = errors.New("admin role required")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrSessionInvalid     = errors.New("session is not valid")
	ErrSignupDisabled     = errors.New("sign up is disabled")
)

// MsgDeleteRequiresAdmin is shown when a team member removal lacks privilege.
const MsgDeleteRequiresAdmin = "Unable to delete user. This requires admin privileges."

// ValidationError is returned before any database access when input is malformed.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}
