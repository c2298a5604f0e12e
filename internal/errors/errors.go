// internal/errors/errors.go
package apperrors

import (
	"errors"
	"fmt"
)

// ErrInvalidCredentials covers both unknown usernames and bad passwords so
// login failures are indistinguishable to the caller.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrInvalidToken is returned for missing, unknown or expired bearer tokens.
var ErrInvalidToken = errors.New("invalid or expired token")

// NotFoundError signals that a keyed lookup matched no row.
type NotFoundError struct {
	Entity string
	ID     int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %d not found", e.Entity, e.ID)
}

// Helper constructor
func NewNotFound(entity string, id int) error {
	return &NotFoundError{Entity: entity, ID: id}
}

// IsNotFound reports whether err is (or wraps) a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
