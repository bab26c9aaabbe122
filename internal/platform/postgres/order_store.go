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

// OrderStore implements store.OrderStore on PostgreSQL.
type OrderStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewOrderStore creates a PostgreSQL implementation of store.OrderStore.
func NewOrderStore(db store.DBTX, log *slog.Logger) *OrderStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}
	return &OrderStore{
		db:     db,
		logger: log.With(slog.String("component", "order_store")),
	}
}

var _ store.OrderStore = (*OrderStore)(nil)

const orderSelect = `
	SELECT o.id, o.total, o.status, o.client_id, o.created_at, o.updated_at,
	       c.id, c.name, c.email, c.phone, c.created_at, c.updated_at
	FROM orders o
	JOIN clients c ON c.id = o.client_id
`

func scanOrder(row interface{ Scan(dest ...any) error }, o *domain.Order) error {
	var client domain.Client
	err := row.Scan(
		&o.ID,
		&o.Total,
		&o.Status,
		&o.ClientID,
		&o.CreatedAt,
		&o.UpdatedAt,
		&client.ID,
		&client.Name,
		&client.Email,
		&client.Phone,
		&client.CreatedAt,
		&client.UpdatedAt,
	)
	if err != nil {
		return err
	}
	o.Client = &client
	return nil
}

// List implements store.OrderStore.List.
func (s *OrderStore) List(ctx context.Context) ([]domain.Order, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, orderSelect+` ORDER BY o.id`)
	if err != nil {
		log.Error("failed to list orders", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	orders := make([]domain.Order, 0)
	for rows.Next() {
		var o domain.Order
		if err := scanOrder(rows, &o); err != nil {
			return nil, MapError(err)
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}
	return orders, nil
}

// GetByID implements store.OrderStore.GetByID.
func (s *OrderStore) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var o domain.Order
	if err := scanOrder(s.db.QueryRowContext(ctx, orderSelect+` WHERE o.id = $1`, id), &o); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrOrderNotFound
		}
		log.Error("failed to get order",
			slog.String("error", err.Error()),
			slog.Int64("order_id", id))
		return nil, MapError(err)
	}
	return &o, nil
}

// Create implements store.OrderStore.Create.
func (s *OrderStore) Create(ctx context.Context, o *domain.Order) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	now := time.Now().UTC()
	query := `
		INSERT INTO orders (total, status, client_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := s.db.QueryRowContext(ctx, query,
		o.Total, o.Status, o.ClientID, now, now,
	).Scan(&o.ID)
	if err != nil {
		log.Error("failed to create order",
			slog.String("error", err.Error()),
			slog.Int64("client_id", o.ClientID))
		return MapError(err)
	}

	o.CreatedAt = now
	o.UpdatedAt = now
	log.Info("order created",
		slog.Int64("order_id", o.ID),
		slog.Int64("client_id", o.ClientID))
	return nil
}

// Update implements store.OrderStore.Update.
func (s *OrderStore) Update(ctx context.Context, id int64, patch domain.OrderPatch) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	sets := make([]string, 0, 4)
	args := make([]any, 0, 5)
	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.Total != nil {
		add("total", *patch.Total)
	}
	if patch.Status != nil {
		add("status", *patch.Status)
	}
	if patch.ClientID != nil {
		add("client_id", *patch.ClientID)
	}
	add("updated_at", time.Now().UTC())

	args = append(args, id)
	query := fmt.Sprintf("UPDATE orders SET %s WHERE id = $%d",
		strings.Join(sets, ", "), len(args))

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		log.Error("failed to update order",
			slog.String("error", err.Error()),
			slog.Int64("order_id", id))
		return MapError(err)
	}
	return nil
}

// Delete implements store.OrderStore.Delete.
func (s *OrderStore) Delete(ctx context.Context, id int64) (int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete order",
			slog.String("error", err.Error()),
			slog.Int64("order_id", id))
		return 0, mapDeleteError(err)
	}

	count, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return count, nil
}
