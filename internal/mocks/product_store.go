package mocks

import (
	"context"
	"sort"
	"time"

	"github.com/pepshop/pepshop-api/internal/domain"
	"github.com/pepshop/pepshop-api/internal/store"
)

// MockProductStore implements store.ProductStore for testing.
type MockProductStore struct {
	ListFn    func(ctx context.Context) ([]domain.Product, error)
	GetByIDFn func(ctx context.Context, id int64) (*domain.Product, error)
	CreateFn  func(ctx context.Context, product *domain.Product) error
	UpdateFn  func(ctx context.Context, id int64, patch domain.ProductPatch) error
	DeleteFn  func(ctx context.Context, id int64) (int64, error)

	Products map[int64]*domain.Product
	NextID   int64
}

// NewMockProductStore creates a mock store with an empty in-memory table.
func NewMockProductStore() *MockProductStore {
	return &MockProductStore{Products: make(map[int64]*domain.Product), NextID: 1}
}

var _ store.ProductStore = (*MockProductStore)(nil)

func (m *MockProductStore) List(ctx context.Context) ([]domain.Product, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}

	out := make([]domain.Product, 0, len(m.Products))
	for _, p := range m.Products {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *MockProductStore) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	p, ok := m.Products[id]
	if !ok {
		return nil, store.ErrProductNotFound
	}
	cp := *p
	return &cp, nil
}

func (m *MockProductStore) Create(ctx context.Context, product *domain.Product) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, product)
	}

	product.ID = m.NextID
	m.NextID++
	now := time.Now().UTC()
	product.CreatedAt = now
	product.UpdatedAt = now
	cp := *product
	m.Products[product.ID] = &cp
	return nil
}

func (m *MockProductStore) Update(ctx context.Context, id int64, patch domain.ProductPatch) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, id, patch)
	}

	p, ok := m.Products[id]
	if !ok {
		return nil
	}
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Description != nil {
		p.Description = patch.Description
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.Stock != nil {
		p.Stock = *patch.Stock
	}
	p.UpdatedAt = time.Now().UTC()
	return nil
}

func (m *MockProductStore) Delete(ctx context.Context, id int64) (int64, error) {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	if _, ok := m.Products[id]; !ok {
		return 0, nil
	}
	delete(m.Products, id)
	return 1, nil
}
