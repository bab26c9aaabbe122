package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pepshop/pepshop-api/internal/domain"
	"github.com/pepshop/pepshop-api/internal/mocks"
	"github.com/pepshop/pepshop-api/internal/store"
)

func strPtr(s string) *string     { return &s }
func intPtr(i int) *int           { return &i }
func int64Ptr(i int64) *int64     { return &i }
func floatPtr(f float64) *float64 { return &f }

func TestProductServiceCreate(t *testing.T) {
	t.Parallel()

	t.Run("valid product is persisted", func(t *testing.T) {
		t.Parallel()

		products := mocks.NewMockProductStore()
		svc := NewProductService(products)

		created, err := svc.Create(context.Background(), &domain.Product{
			Name:  "collar",
			Price: 9.99,
			Stock: 5,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(1), created.ID)
		assert.False(t, created.CreatedAt.IsZero())
		assert.Len(t, products.Products, 1)
	})

	t.Run("invalid product never reaches the store", func(t *testing.T) {
		t.Parallel()

		products := mocks.NewMockProductStore()
		products.CreateFn = func(ctx context.Context, p *domain.Product) error {
			t.Fatal("Create should not be called for an invalid product")
			return nil
		}
		svc := NewProductService(products)

		_, err := svc.Create(context.Background(), &domain.Product{Price: -1})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestProductServiceUpdate(t *testing.T) {
	t.Parallel()

	t.Run("patch is applied and the row re-read", func(t *testing.T) {
		t.Parallel()

		products := mocks.NewMockProductStore()
		svc := NewProductService(products)

		created, err := svc.Create(context.Background(), &domain.Product{Name: "collar", Price: 9.99, Stock: 5})
		require.NoError(t, err)

		updated, err := svc.Update(context.Background(), created.ID, domain.ProductPatch{
			Price: floatPtr(12.50),
		})
		require.NoError(t, err)
		assert.Equal(t, "collar", updated.Name)
		assert.Equal(t, 12.50, updated.Price)
		assert.Equal(t, 5, updated.Stock)
	})

	t.Run("updating an absent row yields not found", func(t *testing.T) {
		t.Parallel()

		svc := NewProductService(mocks.NewMockProductStore())

		_, err := svc.Update(context.Background(), 99, domain.ProductPatch{Price: floatPtr(1)})
		assert.ErrorIs(t, err, store.ErrProductNotFound)
	})

	t.Run("invalid patch values are rejected", func(t *testing.T) {
		t.Parallel()

		svc := NewProductService(mocks.NewMockProductStore())

		_, err := svc.Update(context.Background(), 1, domain.ProductPatch{Name: strPtr("")})
		assert.ErrorIs(t, err, domain.ErrValidation)

		_, err = svc.Update(context.Background(), 1, domain.ProductPatch{Price: floatPtr(-5)})
		assert.ErrorIs(t, err, domain.ErrValidation)

		_, err = svc.Update(context.Background(), 1, domain.ProductPatch{Stock: intPtr(-1)})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestProductServiceDelete(t *testing.T) {
	t.Parallel()

	products := mocks.NewMockProductStore()
	svc := NewProductService(products)

	created, err := svc.Create(context.Background(), &domain.Product{Name: "collar"})
	require.NoError(t, err)

	count, err := svc.Delete(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	count, err = svc.Delete(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestProductServiceGetByID(t *testing.T) {
	t.Parallel()

	svc := NewProductService(mocks.NewMockProductStore())

	_, err := svc.GetByID(context.Background(), 42)
	require.Error(t, err)
	assert.True(t, errors.Is(err, store.ErrNotFound))
}
