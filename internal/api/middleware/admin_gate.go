package middleware

import (
	"net/http"
	"strings"

	"github.com/pepshop/pepshop-api/internal/api/shared"
)

// AdminGate guards privileged routes with a fixed shared-secret bearer
// token, separate from the login-issued JWTs.
type AdminGate struct {
	token string
}

// NewAdminGate creates an AdminGate checking against the given secret.
func NewAdminGate(token string) *AdminGate {
	return &AdminGate{token: token}
}

// Require rejects requests without a matching "Authorization: Bearer"
// header: missing or malformed header is a 401, a mismatched token a 403.
func (g *AdminGate) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			shared.RespondWithError(w, r, http.StatusUnauthorized,
				"token required, use header: Authorization: Bearer <token>")
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token != g.token {
			shared.RespondWithError(w, r, http.StatusForbidden, "invalid or expired token")
			return
		}

		next.ServeHTTP(w, r)
	})
}
