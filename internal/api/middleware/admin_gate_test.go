package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminGate(t *testing.T) {
	t.Parallel()

	gate := NewAdminGate("admin-token-12345")
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := gate.Require(next)

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantError  string
	}{
		{
			name:       "valid token passes through",
			header:     "Bearer admin-token-12345",
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing header",
			header:     "",
			wantStatus: http.StatusUnauthorized,
			wantError:  "token required, use header: Authorization: Bearer <token>",
		},
		{
			name:       "malformed header",
			header:     "Basic dXNlcjpwYXNz",
			wantStatus: http.StatusUnauthorized,
			wantError:  "token required, use header: Authorization: Bearer <token>",
		},
		{
			name:       "wrong token",
			header:     "Bearer not-the-admin-token",
			wantStatus: http.StatusForbidden,
			wantError:  "invalid or expired token",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodDelete, "/api/products/1", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			require.Equal(t, tc.wantStatus, rec.Code)
			if tc.wantError == "" {
				return
			}

			var envelope map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
			assert.Equal(t, false, envelope["success"])
			assert.Equal(t, tc.wantError, envelope["error"])
		})
	}
}
