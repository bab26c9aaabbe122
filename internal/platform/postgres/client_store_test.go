package postgres

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pepshop/pepshop-api/internal/domain"
	"github.com/pepshop/pepshop-api/internal/store"
)

func clientRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "name", "email", "phone", "hashed_password", "created_at", "updated_at",
	})
}

func TestClientStoreGetByEmail(t *testing.T) {
	t.Parallel()

	t.Run("found", func(t *testing.T) {
		t.Parallel()

		db, mock := newMockDB(t)
		s := NewClientStore(db, nil)
		now := time.Now().UTC()

		mock.ExpectQuery(regexp.QuoteMeta(
			"SELECT id, name, email, phone, hashed_password, created_at, updated_at FROM clients WHERE email = $1",
		)).WithArgs("ana@example.com").
			WillReturnRows(clientRows().
				AddRow(3, "Ana", "ana@example.com", nil, "$2a$10$hash", now, now))

		c, err := s.GetByEmail(context.Background(), "ana@example.com")
		require.NoError(t, err)
		assert.Equal(t, int64(3), c.ID)
		assert.Equal(t, "$2a$10$hash", c.HashedPassword)
	})

	t.Run("absent email maps to the client sentinel", func(t *testing.T) {
		t.Parallel()

		db, mock := newMockDB(t)
		s := NewClientStore(db, nil)

		mock.ExpectQuery("SELECT .+ FROM clients WHERE email").
			WithArgs("nobody@example.com").
			WillReturnError(sql.ErrNoRows)

		_, err := s.GetByEmail(context.Background(), "nobody@example.com")
		assert.ErrorIs(t, err, store.ErrClientNotFound)
	})
}

func TestClientStoreCreate(t *testing.T) {
	t.Parallel()

	t.Run("insert returns the assigned id", func(t *testing.T) {
		t.Parallel()

		db, mock := newMockDB(t)
		s := NewClientStore(db, nil)

		email := "ana@example.com"
		mock.ExpectQuery("INSERT INTO clients").
			WithArgs("Ana", email, nil, "$2a$10$hash", sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))

		c := &domain.Client{Name: "Ana", Email: &email, HashedPassword: "$2a$10$hash"}
		require.NoError(t, s.Create(context.Background(), c))
		assert.Equal(t, int64(3), c.ID)
	})

	t.Run("duplicate email maps to the email sentinel", func(t *testing.T) {
		t.Parallel()

		db, mock := newMockDB(t)
		s := NewClientStore(db, nil)

		mock.ExpectQuery("INSERT INTO clients").
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "clients_email_key"})

		email := "ana@example.com"
		c := &domain.Client{Name: "Ana", Email: &email, HashedPassword: "$2a$10$hash"}
		err := s.Create(context.Background(), c)
		assert.ErrorIs(t, err, store.ErrEmailExists)
	})
}

func TestClientStoreUpdateHashedPassword(t *testing.T) {
	t.Parallel()

	db, mock := newMockDB(t)
	s := NewClientStore(db, nil)

	mock.ExpectExec(regexp.QuoteMeta(
		"UPDATE clients SET hashed_password = $1, updated_at = $2 WHERE id = $3",
	)).WithArgs("$2a$10$newhash", sqlmock.AnyArg(), int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	hashed := "$2a$10$newhash"
	err := s.Update(context.Background(), 3, domain.ClientPatch{Password: &hashed})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClientStoreDelete(t *testing.T) {
	t.Parallel()

	t.Run("referenced client maps to in use", func(t *testing.T) {
		t.Parallel()

		db, mock := newMockDB(t)
		s := NewClientStore(db, nil)

		mock.ExpectExec("DELETE FROM clients").
			WithArgs(int64(3)).
			WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: "pets_client_id_fkey"})

		_, err := s.Delete(context.Background(), 3)
		assert.ErrorIs(t, err, store.ErrInUse)
	})

	t.Run("unreferenced client is removed", func(t *testing.T) {
		t.Parallel()

		db, mock := newMockDB(t)
		s := NewClientStore(db, nil)

		mock.ExpectExec("DELETE FROM clients").
			WithArgs(int64(3)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		count, err := s.Delete(context.Background(), 3)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})
}
