package store

import (
	"context"

	"github.com/pepshop/pepshop-api/internal/domain"
)

// ClientStore defines the interface for client persistence.
type ClientStore interface {
	// List returns all clients. Password hashes are loaded but never
	// serialized by the domain type.
	List(ctx context.Context) ([]domain.Client, error)

	// GetByID retrieves a client by its ID.
	// Returns ErrClientNotFound if it does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Client, error)

	// GetByEmail retrieves a client by exact email match.
	// Returns ErrClientNotFound if no client has that email.
	GetByEmail(ctx context.Context, email string) (*domain.Client, error)

	// Create inserts a new client and fills in its server-assigned ID and
	// timestamps. The client must already carry a hashed password; the
	// store never hashes. Returns ErrEmailExists on a taken email.
	Create(ctx context.Context, client *domain.Client) error

	// Update applies the non-nil fields of the patch. A non-nil Password
	// in the patch must already be hashed by the caller.
	Update(ctx context.Context, id int64, patch domain.ClientPatch) error

	// Delete removes the client by ID and returns the number of rows
	// removed (0 or 1). Returns ErrInUse if pets, appointments or orders
	// still reference the client.
	Delete(ctx context.Context, id int64) (int64, error)
}
