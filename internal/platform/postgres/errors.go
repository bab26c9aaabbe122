// Package postgres implements the store interfaces on PostgreSQL.
package postgres

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/pepshop/pepshop-api/internal/store"
)

// PostgreSQL error codes.
const (
	uniqueViolationCode     = "23505"
	foreignKeyViolationCode = "23503"
	checkViolationCode      = "23514"
	notNullViolationCode    = "23502"

	// Class 08 covers connection exceptions.
	connectionExceptionClass = "08"
)

// MapError maps a database error to the store's error taxonomy, wrapping
// the original error so full diagnostic detail survives for logging.
// Every store operation routes its errors through this function.
func MapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %v", store.ErrNotFound, err)
	}

	if isConnectivityError(err) {
		return fmt.Errorf("%w: %v", store.ErrUnavailable, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolationCode:
			return fmt.Errorf("%w: constraint %s: %v", store.ErrDuplicate, pgErr.ConstraintName, err)
		case foreignKeyViolationCode:
			return fmt.Errorf("%w: constraint %s: %v", store.ErrInvalidReference, pgErr.ConstraintName, err)
		case checkViolationCode, notNullViolationCode:
			return fmt.Errorf("invalid column value (%s): %w", pgErr.ConstraintName, err)
		}
	}

	return err
}

// mapDeleteError is MapError with the foreign-key case reinterpreted: a FK
// violation raised by a DELETE means other rows still reference the target.
func mapDeleteError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolationCode {
		return fmt.Errorf("%w: constraint %s: %v", store.ErrInUse, pgErr.ConstraintName, err)
	}
	return MapError(err)
}

// isConnectivityError reports whether the error means the database could
// not be reached, as opposed to rejecting a statement.
func isConnectivityError(err error) bool {
	if errors.Is(err, driver.ErrBadConn) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && strings.HasPrefix(pgErr.Code, connectionExceptionClass) {
		return true
	}

	return false
}

// IsUniqueViolation reports whether the error is a unique constraint
// violation, before or after MapError.
func IsUniqueViolation(err error) bool {
	if errors.Is(err, store.ErrDuplicate) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
