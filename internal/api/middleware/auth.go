package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/taskdeck/taskdeck-api/internal/api/shared"
	"github.com/taskdeck/taskdeck-api/internal/domain"
	"github.com/taskdeck/taskdeck-api/internal/platform/logger"
	"github.com/taskdeck/taskdeck-api/internal/service/auth"
	"github.com/taskdeck/taskdeck-api/internal/store"
)

// AuthMiddleware resolves the caller's identity from a bearer token for
// protected routes. The resolution runs in full on every request; there is
// no session cache. Order matters: signature and expiry first, then claims
// presence, then user lookup, then the revocation list.
type AuthMiddleware struct {
	jwtService    auth.JWTService
	userStore     store.UserStore
	revokedTokens store.RevokedTokenStore
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(
	jwtService auth.JWTService,
	userStore store.UserStore,
	revokedTokens store.RevokedTokenStore,
) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService:    jwtService,
		userStore:     userStore,
		revokedTokens: revokedTokens,
	}
}

// Authenticate validates the bearer token from the Authorization header,
// resolves the user it names, checks the revocation list, and adds the
// resolved identity and claims to the request context.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		token, ok := shared.BearerToken(r)
		if !ok {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Authorization header required")
			return
		}

		claims, err := m.jwtService.ValidateToken(r.Context(), token)
		if err != nil {
			switch {
			case errors.Is(err, auth.ErrExpiredToken):
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Token expired")
			case errors.Is(err, auth.ErrInvalidToken),
				errors.Is(err, auth.ErrMissingToken),
				errors.Is(err, auth.ErrMissingClaims):
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid token")
			default:
				log.Error("failed to validate token", "error", err)
				shared.RespondWithError(w, r, http.StatusInternalServerError, "Authentication error")
			}
			return
		}

		// The user may have been deleted after the token was issued.
		user, err := m.userStore.GetByEmail(r.Context(), claims.Email)
		if err != nil {
			if errors.Is(err, store.ErrUserNotFound) {
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Could not validate credentials")
				return
			}
			log.Error("failed to resolve user from token", "error", err)
			shared.RespondWithError(w, r, http.StatusInternalServerError, "Authentication error")
			return
		}

		revoked, err := m.revokedTokens.IsRevoked(r.Context(), claims.TokenID)
		if err != nil {
			log.Error("failed to check token revocation", "error", err, "token_id", claims.TokenID)
			shared.RespondWithError(w, r, http.StatusInternalServerError, "Authentication error")
			return
		}
		if revoked {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Token has been revoked")
			return
		}

		ctx := context.WithValue(r.Context(), shared.IdentityContextKey, user)
		ctx = context.WithValue(ctx, shared.ClaimsContextKey, claims)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetIdentity extracts the resolved user from the request context.
// Returns the user and a boolean indicating if it was found.
func GetIdentity(r *http.Request) (*domain.User, bool) {
	user, ok := r.Context().Value(shared.IdentityContextKey).(*domain.User)
	return user, ok
}

// GetClaims extracts the verified token claims from the request context.
func GetClaims(r *http.Request) (*auth.Claims, bool) {
	claims, ok := r.Context().Value(shared.ClaimsContextKey).(*auth.Claims)
	return claims, ok
}
