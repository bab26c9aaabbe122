package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist.
	// Entity-specific variants below wrap it.
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would violate a unique
	// constraint (e.g. a client with an email that is already taken).
	ErrDuplicate = errors.New("entity already exists")

	// ErrInvalidReference is returned when an insert or update points a
	// foreign key at a row that does not exist.
	ErrInvalidReference = errors.New("referenced entity not found")

	// ErrInUse is returned when a delete is blocked because other rows
	// still reference the entity.
	ErrInUse = errors.New("entity is referenced by other records")

	// ErrUnavailable is returned when the database cannot be reached.
	ErrUnavailable = errors.New("database unavailable")

	// Entity-specific "not found" errors.

	ErrProductNotFound     = fmt.Errorf("%w: product", ErrNotFound)
	ErrClientNotFound      = fmt.Errorf("%w: client", ErrNotFound)
	ErrPetNotFound         = fmt.Errorf("%w: pet", ErrNotFound)
	ErrAppointmentNotFound = fmt.Errorf("%w: appointment", ErrNotFound)
	ErrOrderNotFound       = fmt.Errorf("%w: order", ErrNotFound)

	// ErrEmailExists indicates that a client with the given email already
	// exists.
	ErrEmailExists = fmt.Errorf("%w: email", ErrDuplicate)
)

// IsNotFound reports whether the error is any kind of "not found" error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicate reports whether the error is any kind of "duplicate" error.
func IsDuplicate(err error) bool {
	return errors.Is(err, ErrDuplicate)
}
