package service

import (
	"context"

	"github.com/pepshop/pepshop-api/internal/domain"
	"github.com/pepshop/pepshop-api/internal/store"
)

// PetService implements pet CRUD on top of a PetStore.
type PetService struct {
	pets store.PetStore
}

// NewPetService creates a PetService with the given store.
func NewPetService(pets store.PetStore) *PetService {
	return &PetService{pets: pets}
}

// List returns all pets with their owners loaded.
func (s *PetService) List(ctx context.Context) ([]domain.Pet, error) {
	return s.pets.List(ctx)
}

// GetByID returns one pet or store.ErrPetNotFound.
func (s *PetService) GetByID(ctx context.Context, id int64) (*domain.Pet, error) {
	return s.pets.GetByID(ctx, id)
}

// Create validates and persists a new pet. Owner existence is enforced by
// the store's foreign key; a dangling reference surfaces as
// store.ErrInvalidReference.
func (s *PetService) Create(ctx context.Context, p *domain.Pet) (*domain.Pet, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := s.pets.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Update applies a partial patch, then re-reads and returns the current
// full row.
func (s *PetService) Update(ctx context.Context, id int64, patch domain.PetPatch) (*domain.Pet, error) {
	if patch.Name != nil && *patch.Name == "" {
		return nil, domain.NewValidationError("name", "must be a non-empty string")
	}
	if patch.Species != nil && *patch.Species == "" {
		return nil, domain.NewValidationError("species", "must be a non-empty string")
	}
	if patch.Age != nil && *patch.Age < 0 {
		return nil, domain.NewValidationError("age", "must be an integer greater than or equal to 0")
	}
	if patch.ClientID != nil && *patch.ClientID <= 0 {
		return nil, domain.NewValidationError("client_id", "must be a valid client id")
	}

	if err := s.pets.Update(ctx, id, patch); err != nil {
		return nil, err
	}
	return s.pets.GetByID(ctx, id)
}

// Delete removes a pet by ID and returns the removed-row count.
func (s *PetService) Delete(ctx context.Context, id int64) (int64, error) {
	return s.pets.Delete(ctx, id)
}
