package service

import (
	"context"

	"github.com/pepshop/pepshop-api/internal/domain"
	"github.com/pepshop/pepshop-api/internal/store"
)

// OrderService implements order CRUD on top of an OrderStore.
type OrderService struct {
	orders store.OrderStore
}

// NewOrderService creates an OrderService with the given store.
func NewOrderService(orders store.OrderStore) *OrderService {
	return &OrderService{orders: orders}
}

// List returns all orders with their clients loaded.
func (s *OrderService) List(ctx context.Context) ([]domain.Order, error) {
	return s.orders.List(ctx)
}

// GetByID returns one order or store.ErrOrderNotFound.
func (s *OrderService) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	return s.orders.GetByID(ctx, id)
}

// Create validates and persists a new order, defaulting the status to
// "pending" when absent. The total is whatever the caller set; there are
// no line items to derive it from.
func (s *OrderService) Create(ctx context.Context, o *domain.Order) (*domain.Order, error) {
	if o.Status == "" {
		o.Status = domain.DefaultOrderStatus
	}
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if err := s.orders.Create(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

// Update applies a partial patch, then re-reads and returns the current
// full row.
func (s *OrderService) Update(ctx context.Context, id int64, patch domain.OrderPatch) (*domain.Order, error) {
	if patch.Total != nil && *patch.Total < 0 {
		return nil, domain.NewValidationError("total", "must be a number greater than or equal to 0")
	}
	if patch.Status != nil && *patch.Status == "" {
		return nil, domain.NewValidationError("status", "must be a non-empty string when provided")
	}
	if patch.ClientID != nil && *patch.ClientID <= 0 {
		return nil, domain.NewValidationError("client_id", "must be a valid client id")
	}

	if err := s.orders.Update(ctx, id, patch); err != nil {
		return nil, err
	}
	return s.orders.GetByID(ctx, id)
}

// Delete removes an order by ID and returns the removed-row count.
func (s *OrderService) Delete(ctx context.Context, id int64) (int64, error) {
	return s.orders.Delete(ctx, id)
}
