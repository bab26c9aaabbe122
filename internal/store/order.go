package store

import (
	"context"

	"github.com/pepshop/pepshop-api/internal/domain"
)

// OrderStore defines the interface for order persistence.
// Reads eagerly join the purchasing Client into Order.Client.
type OrderStore interface {
	// List returns all orders with their clients loaded.
	List(ctx context.Context) ([]domain.Order, error)

	// GetByID retrieves an order by its ID with its client loaded.
	// Returns ErrOrderNotFound if it does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Order, error)

	// Create inserts a new order and fills in its server-assigned ID and
	// timestamps. Returns ErrInvalidReference if the client does not exist.
	Create(ctx context.Context, order *domain.Order) error

	// Update applies the non-nil fields of the patch.
	Update(ctx context.Context, id int64, patch domain.OrderPatch) error

	// Delete removes the order by ID and returns the number of rows removed.
	Delete(ctx context.Context, id int64) (int64, error)
}
