package shared

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateRequest(t *testing.T) {
	t.Parallel()

	type loginForm struct {
		Email    string `validate:"required,email"`
		Password string `validate:"required"`
	}

	assert.NoError(t, ValidateRequest(loginForm{Email: "alice@example.com", Password: "pw"}))
	assert.Error(t, ValidateRequest(loginForm{Email: "not-an-email", Password: "pw"}))
	assert.Error(t, ValidateRequest(loginForm{Email: "alice@example.com"}))
}

func TestBearerToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		header    string
		wantToken string
		wantOK    bool
	}{
		{name: "valid bearer", header: "Bearer abc.def.ghi", wantToken: "abc.def.ghi", wantOK: true},
		{name: "missing header", header: ""},
		{name: "wrong scheme", header: "Basic dXNlcjpwdw=="},
		{name: "lowercase scheme", header: "bearer abc"},
		{name: "scheme only", header: "Bearer "},
		{name: "no space", header: "Bearerabc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			token, ok := BearerToken(req)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}
