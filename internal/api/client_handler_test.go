package api

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pepshop/pepshop-api/internal/mocks"
	"github.com/pepshop/pepshop-api/internal/service"
	"github.com/pepshop/pepshop-api/internal/store"
)

func newClientRouter(clients *mocks.MockClientStore) chi.Router {
	h := NewClientHandler(service.NewClientService(clients, &mocks.MockPasswordHasher{}))
	r := chi.NewRouter()
	r.Get("/clients", h.List)
	r.Post("/clients", h.Create)
	r.Get("/clients/{id}", h.GetByID)
	r.Put("/clients/{id}", h.Update)
	r.Delete("/clients/{id}", h.Delete)
	return r
}

func TestClientCreateNeverEchoesPassword(t *testing.T) {
	t.Parallel()

	clients := mocks.NewMockClientStore()
	router := newClientRouter(clients)

	rec := doJSON(t, router, http.MethodPost, "/clients", map[string]any{
		"name":     "Ana",
		"email":    "ana@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	body := rec.Body.String()
	assert.NotContains(t, body, "secret123")
	assert.NotContains(t, body, "password")
	assert.NotContains(t, body, "hashed")

	stored := clients.Clients[1]
	require.NotNil(t, stored)
	assert.Empty(t, stored.Password)
	assert.True(t, strings.HasPrefix(stored.HashedPassword, "hashed:"))
}

func TestClientDuplicateEmailConflict(t *testing.T) {
	t.Parallel()

	router := newClientRouter(mocks.NewMockClientStore())

	payload := map[string]any{
		"name":     "Ana",
		"email":    "ana@example.com",
		"password": "secret123",
	}
	rec := doJSON(t, router, http.MethodPost, "/clients", payload)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/clients", payload)
	require.Equal(t, http.StatusConflict, rec.Code)

	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, "email already exists", envelope["error"])
}

func TestClientUpdatePasswordIsHashed(t *testing.T) {
	t.Parallel()

	clients := mocks.NewMockClientStore()
	router := newClientRouter(clients)

	rec := doJSON(t, router, http.MethodPost, "/clients", map[string]any{
		"name":     "Ana",
		"password": "old-secret",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, router, http.MethodPut, "/clients/1", map[string]any{
		"password": "new-secret",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, "hashed:new-secret", clients.Clients[1].HashedPassword)
	assert.NotContains(t, rec.Body.String(), "new-secret")
}

func TestClientDeleteWhileReferenced(t *testing.T) {
	t.Parallel()

	clients := mocks.NewMockClientStore()
	clients.DeleteFn = func(ctx context.Context, id int64) (int64, error) {
		return 0, store.ErrInUse
	}
	router := newClientRouter(clients)

	rec := doJSON(t, router, http.MethodDelete, "/clients/1", nil)
	require.Equal(t, http.StatusConflict, rec.Code)

	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, "record has related data and cannot be deleted", envelope["error"])
}
