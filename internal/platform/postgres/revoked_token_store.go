package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/taskdeck/taskdeck-api/internal/domain"
	"github.com/taskdeck/taskdeck-api/internal/store"
)

// RevokedTokenStore implements the store.RevokedTokenStore interface using
// a PostgreSQL table as the token denylist.
type RevokedTokenStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewRevokedTokenStore creates a new PostgreSQL implementation of the
// RevokedTokenStore interface.
func NewRevokedTokenStore(db store.DBTX, logger *slog.Logger) *RevokedTokenStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &RevokedTokenStore{
		db:     db,
		logger: logger.With(slog.String("component", "revoked_token_store")),
	}
}

// Ensure RevokedTokenStore implements store.RevokedTokenStore interface
var _ store.RevokedTokenStore = (*RevokedTokenStore)(nil)

// WithTx returns a copy of the store bound to the given transaction, for use
// inside store.RunInTransaction.
func (s *RevokedTokenStore) WithTx(tx *sql.Tx) *RevokedTokenStore {
	return &RevokedTokenStore{
		db:     tx,
		logger: s.logger,
	}
}

// Revoke implements store.RevokedTokenStore.Revoke
func (s *RevokedTokenStore) Revoke(ctx context.Context, token *domain.RevokedToken) error {
	query := `
		INSERT INTO revoked_tokens (token_id, expires_at, revoked_at)
		VALUES ($1, $2, $3)`

	_, err := s.db.ExecContext(ctx, query, token.TokenID, token.ExpiresAt, token.RevokedAt)
	if err != nil {
		if IsUniqueViolation(err) {
			return fmt.Errorf("%w: %v", store.ErrTokenAlreadyRevoked, err)
		}
		return MapError(err)
	}

	s.logger.InfoContext(ctx, "token revoked", slog.String("token_id", token.TokenID))
	return nil
}

// IsRevoked implements store.RevokedTokenStore.IsRevoked
func (s *RevokedTokenStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM revoked_tokens WHERE token_id = $1)`

	var revoked bool
	if err := s.db.QueryRowContext(ctx, query, tokenID).Scan(&revoked); err != nil {
		return false, MapError(err)
	}

	return revoked, nil
}

// DeleteExpired implements store.RevokedTokenStore.DeleteExpired
func (s *RevokedTokenStore) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	query := `DELETE FROM revoked_tokens WHERE expires_at <= $1`

	result, err := s.db.ExecContext(ctx, query, now)
	if err != nil {
		return 0, MapError(err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	if deleted > 0 {
		s.logger.InfoContext(ctx, "pruned expired denylist entries", slog.Int64("deleted", deleted))
	}
	return deleted, nil
}
