package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apiMiddleware "github.com/taskdeck/taskdeck-api/internal/api/middleware"
	"github.com/taskdeck/taskdeck-api/internal/config"
	"github.com/taskdeck/taskdeck-api/internal/mocks"
	"github.com/taskdeck/taskdeck-api/internal/service/auth"
)

// newFlowRouter wires the full route surface against in-memory stores and a
// real token service, so that requests exercise the same auth path as the
// running server.
func newFlowRouter(t *testing.T) http.Handler {
	t.Helper()

	jwtService, err := auth.NewJWTService(config.AuthConfig{
		JWTSecret:            "0123456789abcdef0123456789abcdef",
		TokenLifetimeMinutes: 30,
	})
	require.NoError(t, err)

	userStore := mocks.NewMockUserStore()
	taskStore := mocks.NewMockTaskStore()
	revokedTokens := mocks.NewMockRevokedTokenStore()
	passwords := auth.NewBcryptHasher()

	authHandler := NewAuthHandler(userStore, revokedTokens, jwtService, passwords, passwords)
	taskHandler := NewTaskHandler(taskStore)
	authMiddleware := apiMiddleware.NewAuthMiddleware(jwtService, userStore, revokedTokens)

	r := chi.NewRouter()
	r.Post("/auth/register", authHandler.Register)
	r.Post("/auth/login", authHandler.Login)
	r.Get("/auth/logout", authHandler.Logout)
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.Authenticate)
		r.Get("/users/current", authHandler.CurrentUser)
		r.Get("/tasks", taskHandler.List)
		r.Post("/tasks", taskHandler.Create)
		r.Get("/tasks/{id}", taskHandler.Get)
		r.Put("/tasks/{id}", taskHandler.Update)
		r.Delete("/tasks/{id}", taskHandler.Delete)
	})
	return r
}

func doJSON(t *testing.T, router http.Handler, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func decodeBody(recorder *httptest.ResponseRecorder, v any) error {
	return json.NewDecoder(recorder.Body).Decode(v)
}

func TestSessionLifecycle(t *testing.T) {
	t.Parallel()

	router := newFlowRouter(t)

	// Register.
	resp := doJSON(t, router, "POST", "/auth/register",
		`{"username":"carol","email":"carol@example.com","password":"opensesame"}`, "")
	require.Equal(t, http.StatusCreated, resp.Code)

	// A protected route without a token is rejected.
	resp = doJSON(t, router, "GET", "/tasks", "", "")
	require.Equal(t, http.StatusUnauthorized, resp.Code)

	// Login with the wrong password fails.
	resp = doJSON(t, router, "POST", "/auth/login",
		`{"email":"carol@example.com","password":"wrong"}`, "")
	require.Equal(t, http.StatusUnauthorized, resp.Code)

	// Login with the right password yields a bearer token.
	resp = doJSON(t, router, "POST", "/auth/login",
		`{"email":"carol@example.com","password":"opensesame"}`, "")
	require.Equal(t, http.StatusOK, resp.Code)

	var login LoginResponse
	require.NoError(t, decodeBody(resp, &login))
	require.NotEmpty(t, login.AccessToken)
	assert.Equal(t, "bearer", login.TokenType)
	assert.Equal(t, "carol@example.com", login.User.Email)
	token := login.AccessToken

	// The token opens the protected surface.
	resp = doJSON(t, router, "GET", "/users/current", "", token)
	require.Equal(t, http.StatusOK, resp.Code)

	resp = doJSON(t, router, "POST", "/tasks",
		`{"title":"Buy milk","date":"2026-09-01"}`, token)
	require.Equal(t, http.StatusCreated, resp.Code)

	resp = doJSON(t, router, "GET", "/tasks", "", token)
	require.Equal(t, http.StatusOK, resp.Code)

	var tasks []TaskResponse
	require.NoError(t, decodeBody(resp, &tasks))
	require.Len(t, tasks, 1)
	assert.Equal(t, "Buy milk", tasks[0].Title)

	// Logout revokes the token; every later use of it fails.
	resp = doJSON(t, router, "GET", "/auth/logout", "", token)
	require.Equal(t, http.StatusOK, resp.Code)

	resp = doJSON(t, router, "GET", "/tasks", "", token)
	assert.Equal(t, http.StatusUnauthorized, resp.Code)

	// Logging out twice is an error, not a no-op.
	resp = doJSON(t, router, "GET", "/auth/logout", "", token)
	assert.Equal(t, http.StatusUnauthorized, resp.Code)

	// A fresh login issues a distinct, working token.
	resp = doJSON(t, router, "POST", "/auth/login",
		`{"email":"carol@example.com","password":"opensesame"}`, "")
	require.Equal(t, http.StatusOK, resp.Code)
	require.NoError(t, decodeBody(resp, &login))
	require.NotEqual(t, token, login.AccessToken)

	resp = doJSON(t, router, "GET", "/tasks", "", login.AccessToken)
	assert.Equal(t, http.StatusOK, resp.Code)
}
