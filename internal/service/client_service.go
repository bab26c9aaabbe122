package service

import (
	"context"
	"fmt"

	"github.com/pepshop/pepshop-api/internal/domain"
	"github.com/pepshop/pepshop-api/internal/service/auth"
	"github.com/pepshop/pepshop-api/internal/store"
)

// ClientService implements client CRUD on top of a ClientStore.
// Password hashing is an explicit step in the create and update paths,
// never a persistence hook.
type ClientService struct {
	clients store.ClientStore
	hasher  auth.PasswordHasher
}

// NewClientService creates a ClientService with the given store and hasher.
func NewClientService(clients store.ClientStore, hasher auth.PasswordHasher) *ClientService {
	return &ClientService{clients: clients, hasher: hasher}
}

// List returns all clients.
func (s *ClientService) List(ctx context.Context) ([]domain.Client, error) {
	return s.clients.List(ctx)
}

// GetByID returns one client or store.ErrClientNotFound.
func (s *ClientService) GetByID(ctx context.Context, id int64) (*domain.Client, error) {
	return s.clients.GetByID(ctx, id)
}

// Create validates the client, hashes its plaintext password and persists
// it. The plaintext never reaches the store.
func (s *ClientService) Create(ctx context.Context, c *domain.Client) (*domain.Client, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	hashed, err := s.hasher.Hash(c.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	c.HashedPassword = hashed
	c.Password = ""

	if err := s.clients.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Update applies a partial patch, hashing a supplied plaintext password
// before it is written, then re-reads and returns the current full row.
func (s *ClientService) Update(ctx context.Context, id int64, patch domain.ClientPatch) (*domain.Client, error) {
	if patch.Name != nil && *patch.Name == "" {
		return nil, domain.NewValidationError("name", "must be a non-empty string")
	}
	if patch.Email != nil && *patch.Email == "" {
		return nil, domain.NewValidationError("email", "must be a non-empty string when provided")
	}

	if patch.Password != nil {
		if *patch.Password == "" {
			return nil, domain.NewValidationError("password", "must be a non-empty string when provided")
		}
		hashed, err := s.hasher.Hash(*patch.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		patch.Password = &hashed
	}

	if err := s.clients.Update(ctx, id, patch); err != nil {
		return nil, err
	}
	return s.clients.GetByID(ctx, id)
}

// Delete removes a client by ID and returns the removed-row count.
// Deleting a client that pets, appointments or orders still reference
// fails with store.ErrInUse.
func (s *ClientService) Delete(ctx context.Context, id int64) (int64, error) {
	return s.clients.Delete(ctx, id)
}
