package mocks

import (
	"context"
	"sort"
	"time"

	"github.com/pepshop/pepshop-api/internal/domain"
	"github.com/pepshop/pepshop-api/internal/store"
)

// MockOrderStore implements store.OrderStore for testing.
type MockOrderStore struct {
	ListFn    func(ctx context.Context) ([]domain.Order, error)
	GetByIDFn func(ctx context.Context, id int64) (*domain.Order, error)
	CreateFn  func(ctx context.Context, order *domain.Order) error
	UpdateFn  func(ctx context.Context, id int64, patch domain.OrderPatch) error
	DeleteFn  func(ctx context.Context, id int64) (int64, error)

	Orders map[int64]*domain.Order
	NextID int64
}

// NewMockOrderStore creates a mock store with an empty in-memory table.
func NewMockOrderStore() *MockOrderStore {
	return &MockOrderStore{Orders: make(map[int64]*domain.Order), NextID: 1}
}

var _ store.OrderStore = (*MockOrderStore)(nil)

func (m *MockOrderStore) List(ctx context.Context) ([]domain.Order, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}

	out := make([]domain.Order, 0, len(m.Orders))
	for _, o := range m.Orders {
		out = append(out, *o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *MockOrderStore) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	o, ok := m.Orders[id]
	if !ok {
		return nil, store.ErrOrderNotFound
	}
	cp := *o
	return &cp, nil
}

func (m *MockOrderStore) Create(ctx context.Context, order *domain.Order) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, order)
	}

	order.ID = m.NextID
	m.NextID++
	now := time.Now().UTC()
	order.CreatedAt = now
	order.UpdatedAt = now
	cp := *order
	m.Orders[order.ID] = &cp
	return nil
}

func (m *MockOrderStore) Update(ctx context.Context, id int64, patch domain.OrderPatch) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, id, patch)
	}

	o, ok := m.Orders[id]
	if !ok {
		return nil
	}
	if patch.Total != nil {
		o.Total = *patch.Total
	}
	if patch.Status != nil {
		o.Status = *patch.Status
	}
	if patch.ClientID != nil {
		o.ClientID = *patch.ClientID
	}
	o.UpdatedAt = time.Now().UTC()
	return nil
}

func (m *MockOrderStore) Delete(ctx context.Context, id int64) (int64, error) {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	if _, ok := m.Orders[id]; !ok {
		return 0, nil
	}
	delete(m.Orders, id)
	return 1, nil
}
