package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pepshop/pepshop-api/internal/config"
	"github.com/pepshop/pepshop-api/internal/domain"
)

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		JWTSecret:            "test-secret-key-thats-long-enough",
		TokenLifetimeMinutes: 120,
	}
}

func testClient() *domain.Client {
	email := "ana@example.com"
	return &domain.Client{
		ID:    42,
		Name:  "Ana",
		Email: &email,
	}
}

func TestNewJWTService(t *testing.T) {
	t.Parallel()

	_, err := NewJWTService(testAuthConfig())
	assert.NoError(t, err)

	_, err = NewJWTService(config.AuthConfig{JWTSecret: "short", TokenLifetimeMinutes: 60})
	assert.Error(t, err)
}

func TestJWTRoundTrip(t *testing.T) {
	t.Parallel()

	svc, err := NewJWTService(testAuthConfig())
	require.NoError(t, err)

	token, err := svc.GenerateToken(context.Background(), testClient())
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.ID)
	assert.Equal(t, "ana@example.com", claims.Email)
	assert.Equal(t, "Ana", claims.Name)
}

func TestJWTClientWithoutEmail(t *testing.T) {
	t.Parallel()

	svc, err := NewJWTService(testAuthConfig())
	require.NoError(t, err)

	token, err := svc.GenerateToken(context.Background(), &domain.Client{ID: 7, Name: "Ana"})
	require.NoError(t, err)

	claims, err := svc.ValidateToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.ID)
	assert.Empty(t, claims.Email)
}

func TestJWTExpiredToken(t *testing.T) {
	t.Parallel()

	svc, err := NewJWTService(testAuthConfig())
	require.NoError(t, err)
	impl := svc.(*hmacJWTService)

	issuedAt := time.Now().Add(-3 * time.Hour)
	impl.timeFunc = func() time.Time { return issuedAt }

	token, err := svc.GenerateToken(context.Background(), testClient())
	require.NoError(t, err)

	// Past the 2h lifetime plus the clock-skew leeway.
	impl.timeFunc = time.Now

	_, err = svc.ValidateToken(context.Background(), token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestJWTClockSkewLeeway(t *testing.T) {
	t.Parallel()

	svc, err := NewJWTService(testAuthConfig())
	require.NoError(t, err)
	impl := svc.(*hmacJWTService)

	issuedAt := time.Now()
	impl.timeFunc = func() time.Time { return issuedAt }

	token, err := svc.GenerateToken(context.Background(), testClient())
	require.NoError(t, err)

	// Just past expiry but inside the leeway window.
	impl.timeFunc = func() time.Time { return issuedAt.Add(2*time.Hour + time.Minute) }

	_, err = svc.ValidateToken(context.Background(), token)
	assert.NoError(t, err)
}

func TestJWTWrongSecret(t *testing.T) {
	t.Parallel()

	issuer, err := NewJWTService(testAuthConfig())
	require.NoError(t, err)

	verifier, err := NewJWTService(config.AuthConfig{
		JWTSecret:            "a-different-secret-key-entirely",
		TokenLifetimeMinutes: 120,
	})
	require.NoError(t, err)

	token, err := issuer.GenerateToken(context.Background(), testClient())
	require.NoError(t, err)

	_, err = verifier.ValidateToken(context.Background(), token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTMalformedToken(t *testing.T) {
	t.Parallel()

	svc, err := NewJWTService(testAuthConfig())
	require.NoError(t, err)

	_, err = svc.ValidateToken(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = svc.ValidateToken(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
