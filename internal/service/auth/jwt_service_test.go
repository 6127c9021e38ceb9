package auth

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskdeck/taskdeck-api/internal/config"
	"github.com/taskdeck/taskdeck-api/internal/domain"
)

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		JWTSecret:            "test-secret-key-with-32-characters!!",
		TokenLifetimeMinutes: 30,
	}
}

func testUser() *domain.User {
	return &domain.User{
		ID:       42,
		Username: "alice",
		Email:    "alice@example.com",
	}
}

func newTestService(t *testing.T, now time.Time) *hmacJWTService {
	t.Helper()

	svc, err := NewJWTService(testAuthConfig())
	require.NoError(t, err)

	impl, ok := svc.(*hmacJWTService)
	require.True(t, ok)
	impl.timeFunc = func() time.Time { return now }
	return impl
}

func TestNewJWTServiceRejectsShortSecret(t *testing.T) {
	t.Parallel()

	_, err := NewJWTService(config.AuthConfig{
		JWTSecret:            "too-short",
		TokenLifetimeMinutes: 30,
	})
	assert.Error(t, err)
}

func TestGenerateAndValidateToken(t *testing.T) {
	t.Parallel()

	issuedAt := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	svc := newTestService(t, issuedAt)
	user := testUser()

	token, err := svc.GenerateToken(context.Background(), user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(context.Background(), token)
	require.NoError(t, err)

	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.Email, claims.Email)
	assert.NotEmpty(t, claims.TokenID, "token must carry a unique identifier")
	assert.Equal(t, issuedAt.Add(30*time.Minute).Unix(), claims.ExpiresAt.Unix())
}

func TestTokenIdentifiersAreUnique(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, time.Now())
	user := testUser()

	seen := make(map[string]bool)
	for i := 0; i < 10; i++ {
		token, err := svc.GenerateToken(context.Background(), user)
		require.NoError(t, err)

		claims, err := svc.ValidateToken(context.Background(), token)
		require.NoError(t, err)
		assert.False(t, seen[claims.TokenID], "token identifier reused")
		seen[claims.TokenID] = true
	}
}

func TestValidateTokenExpiry(t *testing.T) {
	t.Parallel()

	issuedAt := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	svc := newTestService(t, issuedAt)

	token, err := svc.GenerateToken(context.Background(), testUser())
	require.NoError(t, err)

	tests := []struct {
		name    string
		now     time.Time
		wantErr error
	}{
		{
			name: "valid just after issuance",
			now:  issuedAt.Add(time.Second),
		},
		{
			name: "valid just before expiry",
			now:  issuedAt.Add(30*time.Minute - time.Second),
		},
		{
			name:    "rejected at expiry",
			now:     issuedAt.Add(30 * time.Minute),
			wantErr: ErrExpiredToken,
		},
		{
			name:    "rejected after expiry",
			now:     issuedAt.Add(31 * time.Minute),
			wantErr: ErrExpiredToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc.timeFunc = func() time.Time { return tt.now }

			_, err := svc.ValidateToken(context.Background(), token)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateTokenRejectsInvalidInput(t *testing.T) {
	t.Parallel()

	now := time.Now()
	svc := newTestService(t, now)

	goodToken, err := svc.GenerateToken(context.Background(), testUser())
	require.NoError(t, err)

	// Same config, different secret.
	otherCfg := testAuthConfig()
	otherCfg.JWTSecret = strings.Repeat("x", 32)
	otherSvc, err := NewJWTService(otherCfg)
	require.NoError(t, err)
	foreignToken, err := otherSvc.GenerateToken(context.Background(), testUser())
	require.NoError(t, err)

	tests := []struct {
		name    string
		token   string
		wantErr error
	}{
		{name: "empty token", token: "", wantErr: ErrMissingToken},
		{name: "malformed token", token: "not-a-jwt", wantErr: ErrInvalidToken},
		{name: "tampered token", token: goodToken + "x", wantErr: ErrInvalidToken},
		{name: "wrong signing key", token: foreignToken, wantErr: ErrInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ValidateToken(context.Background(), tt.token)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
