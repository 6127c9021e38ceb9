package api

import (
	"errors"
	"net/http"

	"github.com/taskdeck/taskdeck-api/internal/api/middleware"
	"github.com/taskdeck/taskdeck-api/internal/api/shared"
	"github.com/taskdeck/taskdeck-api/internal/domain"
	"github.com/taskdeck/taskdeck-api/internal/service/auth"
	"github.com/taskdeck/taskdeck-api/internal/store"
)

// AuthHandler handles authentication-related API requests.
type AuthHandler struct {
	userStore      store.UserStore
	revokedTokens  store.RevokedTokenStore
	jwtService     auth.JWTService
	passwordHasher auth.PasswordHasher
	passwordVerify auth.PasswordVerifier
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(
	userStore store.UserStore,
	revokedTokens store.RevokedTokenStore,
	jwtService auth.JWTService,
	passwordHasher auth.PasswordHasher,
	passwordVerify auth.PasswordVerifier,
) *AuthHandler {
	return &AuthHandler{
		userStore:      userStore,
		revokedTokens:  revokedTokens,
		jwtService:     jwtService,
		passwordHasher: passwordHasher,
		passwordVerify: passwordVerify,
	}
}

// Register handles the POST /auth/register endpoint.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	// The plaintext is hashed here and discarded; it is never stored or
	// logged.
	hashed, err := h.passwordHasher.Hash(req.Password)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Failed to create user", err)
		return
	}

	user, err := domain.NewUser(req.Username, req.Email, hashed)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid user data: "+err.Error())
		return
	}

	if err := h.userStore.Create(r.Context(), user); err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			shared.RespondWithError(w, r, http.StatusConflict, "Email already exists")
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Failed to create user", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, RegisterResponse{
		Username: user.Username,
		Email:    user.Email,
	})
}

// Login handles the POST /auth/login endpoint.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Incorrect email or password")
		return
	}

	user, err := h.userStore.GetByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Could not validate credentials")
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Failed to authenticate user", err)
		return
	}

	if err := h.passwordVerify.Compare(user.HashedPassword, req.Password); err != nil {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Could not validate credentials")
		return
	}

	token, err := h.jwtService.GenerateToken(r.Context(), user)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Failed to generate authentication token", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, LoginResponse{
		User: UserResponse{
			ID:       user.ID,
			Username: user.Username,
			Email:    user.Email,
		},
		AccessToken: token,
		TokenType:   "bearer",
	})
}

// Logout handles the GET /auth/logout endpoint. It permanently revokes the
// presented token by inserting its identifier into the denylist. Revoking a
// token that is already on the denylist is rejected, not treated as success.
// Other tokens issued to the same user remain valid.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	tokenString, ok := shared.BearerToken(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authorization header required")
		return
	}

	claims, err := h.jwtService.ValidateToken(r.Context(), tokenString)
	if err != nil {
		shared.RespondWithError(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err))
		return
	}

	revoked, err := domain.NewRevokedToken(claims.TokenID, claims.ExpiresAt)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid token")
		return
	}

	if err := h.revokedTokens.Revoke(r.Context(), revoked); err != nil {
		if errors.Is(err, store.ErrTokenAlreadyRevoked) {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Token has been revoked")
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Failed to log out", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{
		Message: "Logged out successfully",
	})
}

// CurrentUser handles the GET /users/current endpoint. The authentication
// middleware has already resolved the identity; this just echoes it back.
func (h *AuthHandler) CurrentUser(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetIdentity(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Could not validate credentials")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, UserResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
	})
}
