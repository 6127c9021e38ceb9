// Package auth provides the session primitives: JWT minting and
// verification, and password hashing.
package auth

import (
	"context"
	"time"

	"github.com/taskdeck/taskdeck-api/internal/domain"
)

// JWTService defines operations for managing JWT bearer tokens.
type JWTService interface {
	// GenerateToken creates a signed bearer token for the given user.
	// The token carries the user's email as subject, the numeric user id,
	// a freshly generated unique token identifier, and an absolute expiry
	// fixed at issuance time plus the configured lifetime.
	GenerateToken(ctx context.Context, user *domain.User) (string, error)

	// ValidateToken verifies the signature and expiry of the token string
	// and extracts its claims. Returns ErrExpiredToken, ErrInvalidToken,
	// or ErrMissingClaims on failure. Validation is a pure computation;
	// revocation is checked separately against the denylist store.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims holds the verified fields extracted from a bearer token.
type Claims struct {
	// UserID is the numeric id of the user the token was issued for.
	UserID int64

	// Email is the token subject: the user's login email.
	Email string

	// TokenID is the unique token identifier (the jti claim), used as the
	// denylist key.
	TokenID string

	IssuedAt  time.Time
	ExpiresAt time.Time
}
