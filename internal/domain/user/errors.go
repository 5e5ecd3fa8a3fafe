package user

import (
	"errors"
	"strings"
)

var (
	ErrNotFound          = errors.New("user not found")
	ErrEmailTaken        = errors.New("user with this email already exists")
	ErrMalformedBody     = errors.New("invalid JSON in request body")
	ErrInvalidCredential = errors.New("invalid credentials")
	ErrLocked            = errors.New("account locked")
)

// ValidationError reports the required fields missing from a create payload.
// Messages holds the English validator message per json field name.
type ValidationError struct {
	Fields   []string
	Messages map[string]string
	err      error
}

func (e *ValidationError) Error() string {
	return "missing required user fields: " + strings.Join(e.Fields, ", ")
}

// Unwrap exposes the underlying validator errors.
func (e *ValidationError) Unwrap() error {
	return e.err
}
