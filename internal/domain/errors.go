package domain

import (
	"errors"
	"fmt"
)

// Failure taxonomy for the write path. Handlers map these to distinct status
// codes with errors.Is, so services must wrap rather than replace them.
var (
	ErrValidation   = errors.New("validation failed")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrPersistence  = errors.New("persistence failure")
)

// Auth errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = fmt.Errorf("%w: invalid token", ErrUnauthorized)
	ErrMissingToken       = fmt.Errorf("%w: missing token", ErrUnauthorized)
)

// ValidationError wraps a field-level failure so it reports as ErrValidation.
func ValidationError(detail string) error {
	return fmt.Errorf("%w: %s", ErrValidation, detail)
}

// PersistenceError wraps a store failure so it reports as ErrPersistence.
func PersistenceError(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %v", ErrPersistence, err)
}
