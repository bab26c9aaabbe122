// Package middleware provides the cross-cutting HTTP middleware.
package middleware

import (
	"net/http"

	"github.com/pepshop/pepshop-api/internal/api/shared"
)

// Trace adds a trace ID to the request context. Applied early so every
// subsequent handler and log line can correlate on it.
func Trace(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := shared.SetTraceID(r.Context())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
