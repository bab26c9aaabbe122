package mocks

import (
	"context"

	"github.com/pepshop/pepshop-api/internal/domain"
	"github.com/pepshop/pepshop-api/internal/service/auth"
)

// MockJWTService implements auth.JWTService for testing.
type MockJWTService struct {
	GenerateTokenFn func(ctx context.Context, client *domain.Client) (string, error)
	ValidateTokenFn func(ctx context.Context, token string) (*auth.Claims, error)

	// Default values used when the function fields are unset.
	Token       string
	Err         error
	Claims      *auth.Claims
	ValidateErr error
}

var _ auth.JWTService = (*MockJWTService)(nil)

func (m *MockJWTService) GenerateToken(ctx context.Context, client *domain.Client) (string, error) {
	if m.GenerateTokenFn != nil {
		return m.GenerateTokenFn(ctx, client)
	}
	return m.Token, m.Err
}

func (m *MockJWTService) ValidateToken(ctx context.Context, token string) (*auth.Claims, error) {
	if m.ValidateTokenFn != nil {
		return m.ValidateTokenFn(ctx, token)
	}
	if m.ValidateErr != nil {
		return nil, m.ValidateErr
	}
	return m.Claims, nil
}
