package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/pepshop/pepshop-api/internal/domain"
	"github.com/pepshop/pepshop-api/internal/platform/logger"
	"github.com/pepshop/pepshop-api/internal/store"
)

// ClientStore implements store.ClientStore on PostgreSQL.
type ClientStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewClientStore creates a PostgreSQL implementation of store.ClientStore.
func NewClientStore(db store.DBTX, log *slog.Logger) *ClientStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}
	return &ClientStore{
		db:     db,
		logger: log.With(slog.String("component", "client_store")),
	}
}

var _ store.ClientStore = (*ClientStore)(nil)

const clientColumns = "id, name, email, phone, hashed_password, created_at, updated_at"

func scanClient(row interface{ Scan(dest ...any) error }, c *domain.Client) error {
	return row.Scan(
		&c.ID,
		&c.Name,
		&c.Email,
		&c.Phone,
		&c.HashedPassword,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
}

// List implements store.ClientStore.List.
func (s *ClientStore) List(ctx context.Context) ([]domain.Client, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + clientColumns + ` FROM clients ORDER BY id`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to list clients", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	clients := make([]domain.Client, 0)
	for rows.Next() {
		var c domain.Client
		if err := scanClient(rows, &c); err != nil {
			return nil, MapError(err)
		}
		clients = append(clients, c)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}
	return clients, nil
}

// GetByID implements store.ClientStore.GetByID.
func (s *ClientStore) GetByID(ctx context.Context, id int64) (*domain.Client, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + clientColumns + ` FROM clients WHERE id = $1`
	var c domain.Client
	if err := scanClient(s.db.QueryRowContext(ctx, query, id), &c); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrClientNotFound
		}
		log.Error("failed to get client",
			slog.String("error", err.Error()),
			slog.Int64("client_id", id))
		return nil, MapError(err)
	}
	return &c, nil
}

// GetByEmail implements store.ClientStore.GetByEmail.
func (s *ClientStore) GetByEmail(ctx context.Context, email string) (*domain.Client, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + clientColumns + ` FROM clients WHERE email = $1`
	var c domain.Client
	if err := scanClient(s.db.QueryRowContext(ctx, query, email), &c); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrClientNotFound
		}
		log.Error("failed to get client by email", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	return &c, nil
}

// Create implements store.ClientStore.Create. The client must carry a
// hashed password; hashing is the service's responsibility.
func (s *ClientStore) Create(ctx context.Context, c *domain.Client) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	now := time.Now().UTC()
	query := `
		INSERT INTO clients (name, email, phone, hashed_password, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	err := s.db.QueryRowContext(ctx, query,
		c.Name, c.Email, c.Phone, c.HashedPassword, now, now,
	).Scan(&c.ID)
	if err != nil {
		if IsUniqueViolation(err) {
			log.Warn("duplicate email on client create")
			return fmt.Errorf("%w: %v", store.ErrEmailExists, err)
		}
		log.Error("failed to create client",
			slog.String("error", err.Error()),
			slog.String("name", c.Name))
		return MapError(err)
	}

	c.CreatedAt = now
	c.UpdatedAt = now
	log.Info("client created", slog.Int64("client_id", c.ID))
	return nil
}

// Update implements store.ClientStore.Update. A non-nil Password in the
// patch must already be hashed by the caller.
func (s *ClientStore) Update(ctx context.Context, id int64, patch domain.ClientPatch) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	sets := make([]string, 0, 5)
	args := make([]any, 0, 6)
	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.Name != nil {
		add("name", *patch.Name)
	}
	if patch.Email != nil {
		add("email", *patch.Email)
	}
	if patch.Phone != nil {
		add("phone", *patch.Phone)
	}
	if patch.Password != nil {
		add("hashed_password", *patch.Password)
	}
	add("updated_at", time.Now().UTC())

	args = append(args, id)
	query := fmt.Sprintf("UPDATE clients SET %s WHERE id = $%d",
		strings.Join(sets, ", "), len(args))

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		if IsUniqueViolation(err) {
			return fmt.Errorf("%w: %v", store.ErrEmailExists, err)
		}
		log.Error("failed to update client",
			slog.String("error", err.Error()),
			slog.Int64("client_id", id))
		return MapError(err)
	}
	return nil
}

// Delete implements store.ClientStore.Delete. Deleting a client that pets,
// appointments or orders still reference fails with ErrInUse; there is no
// cascade.
func (s *ClientStore) Delete(ctx context.Context, id int64) (int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete client",
			slog.String("error", err.Error()),
			slog.Int64("client_id", id))
		return 0, mapDeleteError(err)
	}

	count, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return count, nil
}
