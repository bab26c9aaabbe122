package auth

import (
	"context"

	"github.com/pepshop/pepshop-api/internal/domain"
)

// Claims is the public claim payload embedded in issued tokens.
// It carries only non-secret client data.
type Claims struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// JWTService issues and validates signed, time-limited tokens.
type JWTService interface {
	// GenerateToken signs a token carrying the client's public claims.
	GenerateToken(ctx context.Context, client *domain.Client) (string, error)

	// ValidateToken verifies signature and expiry and returns the claims.
	// Returns ErrExpiredToken or ErrInvalidToken on failure.
	ValidateToken(ctx context.Context, token string) (*Claims, error)
}
