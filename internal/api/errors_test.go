package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taskdeck/taskdeck-api/internal/domain"
	"github.com/taskdeck/taskdeck-api/internal/service/auth"
	"github.com/taskdeck/taskdeck-api/internal/store"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "invalid token", err: auth.ErrInvalidToken, want: http.StatusUnauthorized},
		{name: "expired token", err: auth.ErrExpiredToken, want: http.StatusUnauthorized},
		{name: "missing token", err: auth.ErrMissingToken, want: http.StatusUnauthorized},
		{name: "missing claims", err: auth.ErrMissingClaims, want: http.StatusUnauthorized},
		{name: "token already revoked", err: store.ErrTokenAlreadyRevoked, want: http.StatusUnauthorized},
		{name: "task not found", err: store.ErrTaskNotFound, want: http.StatusNotFound},
		{name: "user not found", err: store.ErrUserNotFound, want: http.StatusNotFound},
		{name: "email exists", err: store.ErrEmailExists, want: http.StatusConflict},
		{name: "invalid date", err: domain.ErrInvalidDate, want: http.StatusBadRequest},
		{name: "validation root", err: domain.ErrValidation, want: http.StatusBadRequest},
		// Field sentinels wrap ErrValidation, so they map through the same branch.
		{name: "empty title", err: domain.ErrEmptyTitle, want: http.StatusBadRequest},
		{name: "invalid email", err: domain.ErrInvalidEmail, want: http.StatusBadRequest},
		{name: "invalid entity", err: store.ErrInvalidEntity, want: http.StatusBadRequest},
		{name: "wrapped not found", err: fmt.Errorf("loading task: %w", store.ErrTaskNotFound), want: http.StatusNotFound},
		{name: "unknown error", err: errors.New("disk on fire"), want: http.StatusInternalServerError},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, MapErrorToStatusCode(tc.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil error", err: nil, want: "An unexpected error occurred"},
		{name: "expired token", err: auth.ErrExpiredToken, want: "Token expired"},
		{name: "invalid token", err: auth.ErrInvalidToken, want: "Invalid token"},
		{name: "revoked token", err: store.ErrTokenAlreadyRevoked, want: "Token has been revoked"},
		{name: "task not found", err: store.ErrTaskNotFound, want: "Task not found"},
		{name: "user not found", err: store.ErrUserNotFound, want: "User not found"},
		{name: "email exists", err: store.ErrEmailExists, want: "Email already exists"},
		{name: "invalid date", err: domain.ErrInvalidDate, want: "Date must be in YYYY-MM-DD format"},
		{name: "empty title", err: domain.ErrEmptyTitle, want: "Invalid entity data"},
		{name: "invalid entity with cause", err: fmt.Errorf("%w: %w", store.ErrInvalidEntity, domain.ErrEmptyOwner), want: "Invalid entity data"},
		{name: "unknown error", err: errors.New("pq: relation tasks does not exist"), want: "An unexpected error occurred"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, GetSafeErrorMessage(tc.err))
		})
	}
}
