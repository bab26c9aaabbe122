package postgres

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/pepshop/pepshop-api/internal/store"
)

func TestMapError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   error
		want error
	}{
		{
			name: "nil passes through",
			in:   nil,
			want: nil,
		},
		{
			name: "no rows maps to not found",
			in:   sql.ErrNoRows,
			want: store.ErrNotFound,
		},
		{
			name: "unique violation maps to duplicate",
			in:   &pgconn.PgError{Code: "23505", ConstraintName: "clients_email_key"},
			want: store.ErrDuplicate,
		},
		{
			name: "foreign key violation maps to invalid reference",
			in:   &pgconn.PgError{Code: "23503", ConstraintName: "pets_client_id_fkey"},
			want: store.ErrInvalidReference,
		},
		{
			name: "connection exception maps to unavailable",
			in:   &pgconn.PgError{Code: "08006"},
			want: store.ErrUnavailable,
		},
		{
			name: "bad connection maps to unavailable",
			in:   driver.ErrBadConn,
			want: store.ErrUnavailable,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := MapError(tc.in)
			if tc.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tc.want)
		})
	}
}

func TestMapErrorPassesUnknownThrough(t *testing.T) {
	t.Parallel()

	unknown := errors.New("some driver quirk")
	assert.Equal(t, unknown, MapError(unknown))
}

func TestMapDeleteError(t *testing.T) {
	t.Parallel()

	fkErr := &pgconn.PgError{Code: "23503", ConstraintName: "pets_client_id_fkey"}
	assert.ErrorIs(t, mapDeleteError(fkErr), store.ErrInUse)

	// Non-FK errors fall through to the regular mapping.
	assert.ErrorIs(t, mapDeleteError(sql.ErrNoRows), store.ErrNotFound)
}

func TestIsUniqueViolation(t *testing.T) {
	t.Parallel()

	raw := &pgconn.PgError{Code: "23505"}
	assert.True(t, IsUniqueViolation(raw))
	assert.True(t, IsUniqueViolation(MapError(raw)))
	assert.False(t, IsUniqueViolation(sql.ErrNoRows))
}
