package store

import (
	"context"

	"github.com/pepshop/pepshop-api/internal/domain"
)

// PetStore defines the interface for pet persistence.
// Reads eagerly join the owning Client into Pet.Owner.
type PetStore interface {
	// List returns all pets with their owners loaded.
	List(ctx context.Context) ([]domain.Pet, error)

	// GetByID retrieves a pet by its ID with its owner loaded.
	// Returns ErrPetNotFound if it does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Pet, error)

	// Create inserts a new pet and fills in its server-assigned ID and
	// timestamps. Returns ErrInvalidReference if the owner does not exist.
	Create(ctx context.Context, pet *domain.Pet) error

	// Update applies the non-nil fields of the patch.
	Update(ctx context.Context, id int64, patch domain.PetPatch) error

	// Delete removes the pet by ID and returns the number of rows removed.
	Delete(ctx context.Context, id int64) (int64, error)
}
