package domain

import (
	"fmt"
	"time"
)

// ErrEmptyTokenID is returned when a revocation entry carries no token
// identifier. Wraps ErrValidation like the other entity sentinels.
var ErrEmptyTokenID = fmt.Errorf("%w: token identifier cannot be empty", ErrValidation)

// RevokedToken is a denylist entry barring a specific token from future use.
// Once present, the entry permanently invalidates the token it names; the
// token's own expiry (carried here as ExpiresAt) bounds how long the entry
// is worth keeping, since an expired token can never be re-accepted anyway.
type RevokedToken struct {
	TokenID   string    `json:"token_id"`
	ExpiresAt time.Time `json:"expires_at"`
	RevokedAt time.Time `json:"revoked_at"`
}

// NewRevokedToken creates a denylist entry for the given token identifier
// and token expiry.
func NewRevokedToken(tokenID string, expiresAt time.Time) (*RevokedToken, error) {
	if tokenID == "" {
		return nil, ErrEmptyTokenID
	}

	return &RevokedToken{
		TokenID:   tokenID,
		ExpiresAt: expiresAt,
		RevokedAt: time.Now().UTC(),
	}, nil
}
