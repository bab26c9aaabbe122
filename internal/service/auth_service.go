package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/pepshop/pepshop-api/internal/platform/logger"
	"github.com/pepshop/pepshop-api/internal/service/auth"
	"github.com/pepshop/pepshop-api/internal/store"
)

// AuthService implements the login flow: look up the client by email,
// verify the password against the stored hash, issue a signed token with
// the public claim payload. Token issuance is stateless; there is no
// session state.
type AuthService struct {
	clients  store.ClientStore
	verifier auth.PasswordVerifier
	jwt      auth.JWTService
}

// NewAuthService creates an AuthService with the given dependencies.
func NewAuthService(
	clients store.ClientStore,
	verifier auth.PasswordVerifier,
	jwt auth.JWTService,
) *AuthService {
	return &AuthService{clients: clients, verifier: verifier, jwt: jwt}
}

// Login authenticates the email/password pair and returns a signed token
// plus the claims embedded in it. Returns auth.ErrUserNotFound or
// auth.ErrIncorrectPassword on credential failure; both surface as 401.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *auth.Claims, error) {
	log := logger.FromContext(ctx)

	client, err := s.clients.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Debug("login failed: unknown email")
			return "", nil, auth.ErrUserNotFound
		}
		return "", nil, err
	}

	if err := s.verifier.Compare(client.HashedPassword, password); err != nil {
		log.Debug("login failed: password mismatch",
			slog.Int64("client_id", client.ID))
		return "", nil, auth.ErrIncorrectPassword
	}

	token, err := s.jwt.GenerateToken(ctx, client)
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate token: %w", err)
	}

	claimEmail := ""
	if client.Email != nil {
		claimEmail = *client.Email
	}
	claims := &auth.Claims{
		ID:    client.ID,
		Email: claimEmail,
		Name:  client.Name,
	}

	log.Info("login succeeded", slog.Int64("client_id", client.ID))
	return token, claims, nil
}
