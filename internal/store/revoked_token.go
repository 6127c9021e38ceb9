package store

import (
	"context"
	"time"

	"github.com/taskdeck/taskdeck-api/internal/domain"
)

// RevokedTokenStore defines the interface for the token denylist.
type RevokedTokenStore interface {
	// Revoke adds a token identifier to the denylist.
	// Returns ErrTokenAlreadyRevoked if the identifier is already present.
	Revoke(ctx context.Context, token *domain.RevokedToken) error

	// IsRevoked reports whether the given token identifier is on the
	// denylist.
	IsRevoked(ctx context.Context, tokenID string) (bool, error)

	// DeleteExpired removes denylist entries whose token expiry is at or
	// before now. An expired token can never be re-accepted, so pruning
	// these entries cannot resurrect a revoked token.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
