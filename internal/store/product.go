package store

import (
	"context"

	"github.com/pepshop/pepshop-api/internal/domain"
)

// ProductStore defines the interface for product persistence.
type ProductStore interface {
	// List returns all products.
	List(ctx context.Context) ([]domain.Product, error)

	// GetByID retrieves a product by its ID.
	// Returns ErrProductNotFound if it does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Product, error)

	// Create inserts a new product and fills in its server-assigned ID
	// and timestamps.
	Create(ctx context.Context, product *domain.Product) error

	// Update applies the non-nil fields of the patch to the product with
	// the given ID. Updating an absent row is not an error; callers detect
	// absence by re-reading.
	Update(ctx context.Context, id int64, patch domain.ProductPatch) error

	// Delete removes the product by ID and returns the number of rows
	// removed (0 or 1).
	Delete(ctx context.Context, id int64) (int64, error)
}
