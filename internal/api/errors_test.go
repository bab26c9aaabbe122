package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pepshop/pepshop-api/internal/domain"
	"github.com/pepshop/pepshop-api/internal/service/auth"
	"github.com/pepshop/pepshop-api/internal/store"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"user not found", auth.ErrUserNotFound, http.StatusUnauthorized},
		{"incorrect password", auth.ErrIncorrectPassword, http.StatusUnauthorized},
		{"expired token", auth.ErrExpiredToken, http.StatusUnauthorized},
		{"validation error", domain.NewValidationError("name", "is required"), http.StatusBadRequest},
		{"invalid reference", store.ErrInvalidReference, http.StatusBadRequest},
		{"entity not found", store.ErrPetNotFound, http.StatusNotFound},
		{"duplicate", store.ErrEmailExists, http.StatusConflict},
		{"in use", store.ErrInUse, http.StatusConflict},
		{"unavailable", store.ErrUnavailable, http.StatusServiceUnavailable},
		{"unclassified", errors.New("driver exploded"), http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, MapErrorToStatusCode(tc.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			"validation error keeps its text",
			domain.NewValidationError("price", "must be a number greater than or equal to 0"),
			`the "price" field must be a number greater than or equal to 0`,
		},
		{"product sentinel", store.ErrProductNotFound, "product not found"},
		{"wrapped sentinel", fmt.Errorf("query failed: %w", store.ErrOrderNotFound), "order not found"},
		{"email exists", store.ErrEmailExists, "email already exists"},
		{"invalid reference", store.ErrInvalidReference, "referenced client does not exist"},
		{"in use", store.ErrInUse, "record has related data and cannot be deleted"},
		{"unavailable", store.ErrUnavailable, "database connection error, try again later"},
		{
			"raw driver detail never leaks",
			errors.New(`pq: relation "products" does not exist`),
			"internal server error",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, GetSafeErrorMessage(tc.err))
		})
	}
}
