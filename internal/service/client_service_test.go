package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pepshop/pepshop-api/internal/domain"
	"github.com/pepshop/pepshop-api/internal/mocks"
	"github.com/pepshop/pepshop-api/internal/store"
)

func TestClientServiceCreate(t *testing.T) {
	t.Parallel()

	t.Run("password is hashed before the store sees it", func(t *testing.T) {
		t.Parallel()

		clients := mocks.NewMockClientStore()
		hasher := &mocks.MockPasswordHasher{}
		svc := NewClientService(clients, hasher)

		created, err := svc.Create(context.Background(), &domain.Client{
			Name:     "Ana",
			Email:    strPtr("ana@example.com"),
			Password: "secret123",
		})
		require.NoError(t, err)

		assert.Equal(t, 1, hasher.HashCallCount)
		assert.Empty(t, created.Password)
		assert.Equal(t, "hashed:secret123", created.HashedPassword)

		stored := clients.Clients[created.ID]
		require.NotNil(t, stored)
		assert.Empty(t, stored.Password)
		assert.True(t, strings.HasPrefix(stored.HashedPassword, "hashed:"))
	})

	t.Run("duplicate email surfaces the store error", func(t *testing.T) {
		t.Parallel()

		clients := mocks.NewMockClientStore()
		svc := NewClientService(clients, &mocks.MockPasswordHasher{})

		_, err := svc.Create(context.Background(), &domain.Client{
			Name: "Ana", Email: strPtr("ana@example.com"), Password: "secret",
		})
		require.NoError(t, err)

		_, err = svc.Create(context.Background(), &domain.Client{
			Name: "Other", Email: strPtr("ana@example.com"), Password: "secret",
		})
		assert.ErrorIs(t, err, store.ErrEmailExists)
	})

	t.Run("missing password fails validation", func(t *testing.T) {
		t.Parallel()

		svc := NewClientService(mocks.NewMockClientStore(), &mocks.MockPasswordHasher{})

		_, err := svc.Create(context.Background(), &domain.Client{Name: "Ana"})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestClientServiceUpdate(t *testing.T) {
	t.Parallel()

	t.Run("patched password is hashed", func(t *testing.T) {
		t.Parallel()

		clients := mocks.NewMockClientStore()
		hasher := &mocks.MockPasswordHasher{}
		svc := NewClientService(clients, hasher)

		created, err := svc.Create(context.Background(), &domain.Client{
			Name: "Ana", Password: "old-secret",
		})
		require.NoError(t, err)
		require.Equal(t, 1, hasher.HashCallCount)

		_, err = svc.Update(context.Background(), created.ID, domain.ClientPatch{
			Password: strPtr("new-secret"),
		})
		require.NoError(t, err)

		assert.Equal(t, 2, hasher.HashCallCount)
		assert.Equal(t, "hashed:new-secret", clients.Clients[created.ID].HashedPassword)
	})

	t.Run("absent fields keep their stored values", func(t *testing.T) {
		t.Parallel()

		clients := mocks.NewMockClientStore()
		svc := NewClientService(clients, &mocks.MockPasswordHasher{})

		created, err := svc.Create(context.Background(), &domain.Client{
			Name: "Ana", Email: strPtr("ana@example.com"), Phone: strPtr("555-1234"), Password: "secret",
		})
		require.NoError(t, err)

		updated, err := svc.Update(context.Background(), created.ID, domain.ClientPatch{
			Name: strPtr("Ana Maria"),
		})
		require.NoError(t, err)
		assert.Equal(t, "Ana Maria", updated.Name)
		require.NotNil(t, updated.Email)
		assert.Equal(t, "ana@example.com", *updated.Email)
		require.NotNil(t, updated.Phone)
		assert.Equal(t, "555-1234", *updated.Phone)
	})

	t.Run("empty patch password is rejected", func(t *testing.T) {
		t.Parallel()

		svc := NewClientService(mocks.NewMockClientStore(), &mocks.MockPasswordHasher{})

		_, err := svc.Update(context.Background(), 1, domain.ClientPatch{Password: strPtr("")})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("updating an absent client yields not found", func(t *testing.T) {
		t.Parallel()

		svc := NewClientService(mocks.NewMockClientStore(), &mocks.MockPasswordHasher{})

		_, err := svc.Update(context.Background(), 7, domain.ClientPatch{Name: strPtr("Ana")})
		assert.ErrorIs(t, err, store.ErrClientNotFound)
	})
}

func TestClientServiceDelete(t *testing.T) {
	t.Parallel()

	t.Run("referenced client cannot be deleted", func(t *testing.T) {
		t.Parallel()

		clients := mocks.NewMockClientStore()
		clients.DeleteFn = func(ctx context.Context, id int64) (int64, error) {
			return 0, store.ErrInUse
		}
		svc := NewClientService(clients, &mocks.MockPasswordHasher{})

		_, err := svc.Delete(context.Background(), 1)
		assert.ErrorIs(t, err, store.ErrInUse)
	})

	t.Run("delete returns the removed-row count", func(t *testing.T) {
		t.Parallel()

		clients := mocks.NewMockClientStore()
		svc := NewClientService(clients, &mocks.MockPasswordHasher{})

		created, err := svc.Create(context.Background(), &domain.Client{Name: "Ana", Password: "secret"})
		require.NoError(t, err)

		count, err := svc.Delete(context.Background(), created.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)

		count, err = svc.Delete(context.Background(), created.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(0), count)
	})
}
