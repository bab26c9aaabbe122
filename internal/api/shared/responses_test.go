package shared

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondWithDataKeepsEmptyList(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/products", nil)

	RespondWithData(rec, req, http.StatusOK, []string{})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"success":true,"data":[]}`, rec.Body.String())
}

func TestRespondWithSuccessOmitsData(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/products/1", nil)

	RespondWithSuccess(rec, req, http.StatusOK)

	assert.JSONEq(t, `{"success":true}`, rec.Body.String())
}

func TestRespondWithError(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/products/99", nil)

	RespondWithError(rec, req, http.StatusNotFound, "product not found")

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"success":false,"error":"product not found"}`, rec.Body.String())
}
