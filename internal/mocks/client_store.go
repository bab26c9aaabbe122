package mocks

import (
	"context"
	"sort"
	"time"

	"github.com/pepshop/pepshop-api/internal/domain"
	"github.com/pepshop/pepshop-api/internal/store"
)

// MockClientStore implements store.ClientStore for testing.
type MockClientStore struct {
	ListFn       func(ctx context.Context) ([]domain.Client, error)
	GetByIDFn    func(ctx context.Context, id int64) (*domain.Client, error)
	GetByEmailFn func(ctx context.Context, email string) (*domain.Client, error)
	CreateFn     func(ctx context.Context, client *domain.Client) error
	UpdateFn     func(ctx context.Context, id int64, patch domain.ClientPatch) error
	DeleteFn     func(ctx context.Context, id int64) (int64, error)

	Clients map[int64]*domain.Client
	NextID  int64
}

// NewMockClientStore creates a mock store with an empty in-memory table.
func NewMockClientStore() *MockClientStore {
	return &MockClientStore{Clients: make(map[int64]*domain.Client), NextID: 1}
}

var _ store.ClientStore = (*MockClientStore)(nil)

func (m *MockClientStore) List(ctx context.Context) ([]domain.Client, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}

	out := make([]domain.Client, 0, len(m.Clients))
	for _, c := range m.Clients {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *MockClientStore) GetByID(ctx context.Context, id int64) (*domain.Client, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	c, ok := m.Clients[id]
	if !ok {
		return nil, store.ErrClientNotFound
	}
	cp := *c
	return &cp, nil
}

func (m *MockClientStore) GetByEmail(ctx context.Context, email string) (*domain.Client, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}

	for _, c := range m.Clients {
		if c.Email != nil && *c.Email == email {
			cp := *c
			return &cp, nil
		}
	}
	return nil, store.ErrClientNotFound
}

func (m *MockClientStore) Create(ctx context.Context, client *domain.Client) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, client)
	}

	if client.Email != nil {
		for _, c := range m.Clients {
			if c.Email != nil && *c.Email == *client.Email {
				return store.ErrEmailExists
			}
		}
	}

	client.ID = m.NextID
	m.NextID++
	now := time.Now().UTC()
	client.CreatedAt = now
	client.UpdatedAt = now
	cp := *client
	m.Clients[client.ID] = &cp
	return nil
}

func (m *MockClientStore) Update(ctx context.Context, id int64, patch domain.ClientPatch) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, id, patch)
	}

	c, ok := m.Clients[id]
	if !ok {
		return nil
	}
	if patch.Name != nil {
		c.Name = *patch.Name
	}
	if patch.Email != nil {
		c.Email = patch.Email
	}
	if patch.Phone != nil {
		c.Phone = patch.Phone
	}
	if patch.Password != nil {
		c.HashedPassword = *patch.Password
	}
	c.UpdatedAt = time.Now().UTC()
	return nil
}

func (m *MockClientStore) Delete(ctx context.Context, id int64) (int64, error) {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	if _, ok := m.Clients[id]; !ok {
		return 0, nil
	}
	delete(m.Clients, id)
	return 1, nil
}
