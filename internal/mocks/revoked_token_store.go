package mocks

import (
	"context"
	"time"

	"github.com/taskdeck/taskdeck-api/internal/domain"
	"github.com/taskdeck/taskdeck-api/internal/store"
)

// MockRevokedTokenStore implements store.RevokedTokenStore for testing
type MockRevokedTokenStore struct {
	// Function fields for customizable behavior
	RevokeFn    func(ctx context.Context, token *domain.RevokedToken) error
	IsRevokedFn func(ctx context.Context, tokenID string) (bool, error)

	// Data for default implementation
	Revoked        map[string]*domain.RevokedToken
	RevokeError    error
	IsRevokedError error
}

// NewMockRevokedTokenStore creates a new mock store with initialized defaults
func NewMockRevokedTokenStore() *MockRevokedTokenStore {
	return &MockRevokedTokenStore{
		Revoked: make(map[string]*domain.RevokedToken),
	}
}

// Revoke implements the store.RevokedTokenStore interface
func (m *MockRevokedTokenStore) Revoke(ctx context.Context, token *domain.RevokedToken) error {
	if m.RevokeFn != nil {
		return m.RevokeFn(ctx, token)
	}

	if m.RevokeError != nil {
		return m.RevokeError
	}

	if _, exists := m.Revoked[token.TokenID]; exists {
		return store.ErrTokenAlreadyRevoked
	}
	m.Revoked[token.TokenID] = token
	return nil
}

// IsRevoked implements the store.RevokedTokenStore interface
func (m *MockRevokedTokenStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	if m.IsRevokedFn != nil {
		return m.IsRevokedFn(ctx, tokenID)
	}

	if m.IsRevokedError != nil {
		return false, m.IsRevokedError
	}

	_, exists := m.Revoked[tokenID]
	return exists, nil
}

// DeleteExpired implements the store.RevokedTokenStore interface
func (m *MockRevokedTokenStore) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	var deleted int64
	for id, token := range m.Revoked {
		if !token.ExpiresAt.After(now) {
			delete(m.Revoked, id)
			deleted++
		}
	}
	return deleted, nil
}

// Ensure MockRevokedTokenStore implements store.RevokedTokenStore
var _ store.RevokedTokenStore = (*MockRevokedTokenStore)(nil)
