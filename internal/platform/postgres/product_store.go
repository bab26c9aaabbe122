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

// ProductStore implements store.ProductStore on PostgreSQL.
type ProductStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewProductStore creates a PostgreSQL implementation of store.ProductStore.
// The database handle is initialized and managed by the caller.
func NewProductStore(db store.DBTX, log *slog.Logger) *ProductStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}
	return &ProductStore{
		db:     db,
		logger: log.With(slog.String("component", "product_store")),
	}
}

var _ store.ProductStore = (*ProductStore)(nil)

const productColumns = "id, name, description, price, stock, created_at, updated_at"

func scanProduct(row interface{ Scan(dest ...any) error }, p *domain.Product) error {
	return row.Scan(
		&p.ID,
		&p.Name,
		&p.Description,
		&p.Price,
		&p.Stock,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
}

// List implements store.ProductStore.List.
func (s *ProductStore) List(ctx context.Context) ([]domain.Product, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + productColumns + ` FROM products ORDER BY id`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to list products", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	products := make([]domain.Product, 0)
	for rows.Next() {
		var p domain.Product
		if err := scanProduct(rows, &p); err != nil {
			return nil, MapError(err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}
	return products, nil
}

// GetByID implements store.ProductStore.GetByID.
func (s *ProductStore) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	var p domain.Product
	if err := scanProduct(s.db.QueryRowContext(ctx, query, id), &p); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrProductNotFound
		}
		log.Error("failed to get product",
			slog.String("error", err.Error()),
			slog.Int64("product_id", id))
		return nil, MapError(err)
	}
	return &p, nil
}

// Create implements store.ProductStore.Create.
func (s *ProductStore) Create(ctx context.Context, p *domain.Product) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	now := time.Now().UTC()
	query := `
		INSERT INTO products (name, description, price, stock, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	err := s.db.QueryRowContext(ctx, query,
		p.Name, p.Description, p.Price, p.Stock, now, now,
	).Scan(&p.ID)
	if err != nil {
		log.Error("failed to create product",
			slog.String("error", err.Error()),
			slog.String("name", p.Name))
		return MapError(err)
	}

	p.CreatedAt = now
	p.UpdatedAt = now
	log.Info("product created", slog.Int64("product_id", p.ID))
	return nil
}

// Update implements store.ProductStore.Update. Only the non-nil patch
// fields are written; an empty patch still bumps updated_at.
func (s *ProductStore) Update(ctx context.Context, id int64, patch domain.ProductPatch) error {
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
	if patch.Description != nil {
		add("description", *patch.Description)
	}
	if patch.Price != nil {
		add("price", *patch.Price)
	}
	if patch.Stock != nil {
		add("stock", *patch.Stock)
	}
	add("updated_at", time.Now().UTC())

	args = append(args, id)
	query := fmt.Sprintf("UPDATE products SET %s WHERE id = $%d",
		strings.Join(sets, ", "), len(args))

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		log.Error("failed to update product",
			slog.String("error", err.Error()),
			slog.Int64("product_id", id))
		return MapError(err)
	}
	return nil
}

// Delete implements store.ProductStore.Delete.
func (s *ProductStore) Delete(ctx context.Context, id int64) (int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete product",
			slog.String("error", err.Error()),
			slog.Int64("product_id", id))
		return 0, mapDeleteError(err)
	}

	count, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return count, nil
}
