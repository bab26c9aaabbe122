// Package service contains the per-entity business logic between the HTTP
// handlers and the stores. Store handles are injected via constructors;
// there is no package-level state.
package service

import (
	"context"

	"github.com/pepshop/pepshop-api/internal/domain"
	"github.com/pepshop/pepshop-api/internal/store"
)

// ProductService implements product CRUD on top of a ProductStore.
type ProductService struct {
	products store.ProductStore
}

// NewProductService creates a ProductService with the given store.
func NewProductService(products store.ProductStore) *ProductService {
	return &ProductService{products: products}
}

// List returns all products.
func (s *ProductService) List(ctx context.Context) ([]domain.Product, error) {
	return s.products.List(ctx)
}

// GetByID returns one product or store.ErrProductNotFound.
func (s *ProductService) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	return s.products.GetByID(ctx, id)
}

// Create validates and persists a new product. Absent price and stock have
// already been normalized to 0 by the request decoding.
func (s *ProductService) Create(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := s.products.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Update applies a partial patch, then re-reads and returns the current
// full row. Returns store.ErrProductNotFound if the row no longer exists.
func (s *ProductService) Update(ctx context.Context, id int64, patch domain.ProductPatch) (*domain.Product, error) {
	if patch.Name != nil && *patch.Name == "" {
		return nil, domain.NewValidationError("name", "must be a non-empty string")
	}
	if patch.Price != nil && *patch.Price < 0 {
		return nil, domain.NewValidationError("price", "must be a number greater than or equal to 0")
	}
	if patch.Stock != nil && *patch.Stock < 0 {
		return nil, domain.NewValidationError("stock", "must be an integer greater than or equal to 0")
	}

	if err := s.products.Update(ctx, id, patch); err != nil {
		return nil, err
	}
	return s.products.GetByID(ctx, id)
}

// Delete removes a product by ID and returns the removed-row count.
func (s *ProductService) Delete(ctx context.Context, id int64) (int64, error) {
	return s.products.Delete(ctx, id)
}
