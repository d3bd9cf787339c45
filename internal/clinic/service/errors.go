package service

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCredentials covers unknown username, wrong password and
	// role mismatch alike. Collapsing them is deliberate: the login form
	// must not leak which part was wrong.
	ErrInvalidCredentials = errors.New("invalid username, password, or role")

	// ErrDuplicateIdentity is returned when registration collides on
	// username or email. It does not say which, to limit enumeration.
	ErrDuplicateIdentity = errors.New("username or email already exists")

	// ErrRateLimited means the client address is locked out of login.
	ErrRateLimited = errors.New("too many failed login attempts")

	// ErrNotOwner means the resource exists but belongs to someone else.
	ErrNotOwner = errors.New("resource not owned by caller")
)

// ValidationError carries field-level messages for re-rendering a form.
// No state is committed when one is returned.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %d field(s)", len(e.Fields))
}

// fieldError builds a single-field ValidationError.
func fieldError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

// AsValidation unwraps a *ValidationError from err, if present.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
