package middleware

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/lumina/internal/server/handlers"
	"github.com/iudanet/lumina/internal/server/jwt"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func setupTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestAuthMiddleware_Success(t *testing.T) {
	manager := jwt.NewManager(testSecret, 15*time.Minute, time.Hour)
	token, _, err := manager.GenerateAccessToken("user123", "testuser")
	require.NoError(t, err)

	var gotUserID, gotUsername string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var ok bool
		gotUserID, ok = handlers.GetUserID(r.Context())
		require.True(t, ok)
		gotUsername, _ = handlers.GetUsername(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/collections/events", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	AuthMiddleware(setupTestLogger(), manager)(next).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "user123", gotUserID)
	assert.Equal(t, "testuser", gotUsername)
}

func TestAuthMiddleware_Rejects(t *testing.T) {
	manager := jwt.NewManager(testSecret, 15*time.Minute, time.Hour)
	foreign := jwt.NewManager("another-secret-another-secret-xx", 15*time.Minute, time.Hour)
	foreignToken, _, err := foreign.GenerateAccessToken("user123", "testuser")
	require.NoError(t, err)
	expired := jwt.NewManager(testSecret, -time.Minute, time.Hour)
	expiredToken, _, err := expired.GenerateAccessToken("user123", "testuser")
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
	}{
		{name: "missing header", header: ""},
		{name: "basic scheme", header: "Basic dXNlcjpwYXNz"},
		{name: "bearer without token", header: "Bearer "},
		{name: "no space", header: "Bearertoken"},
		{name: "garbage token", header: "Bearer invalid.token.here"},
		{name: "wrong secret", header: "Bearer " + foreignToken},
		{name: "expired", header: "Bearer " + expiredToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) { called = true })

			req := httptest.NewRequest(http.MethodGet, "/api/v1/collections/events", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()

			AuthMiddleware(setupTestLogger(), manager)(next).ServeHTTP(w, req)

			assert.False(t, called)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.NotEmpty(t, w.Header().Get("WWW-Authenticate"))
		})
	}
}

func TestAuthMiddleware_CaseInsensitiveScheme(t *testing.T) {
	manager := jwt.NewManager(testSecret, 15*time.Minute, time.Hour)
	token, _, err := manager.GenerateAccessToken("user123", "testuser")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "bearer "+token)
	w := httptest.NewRecorder()

	AuthMiddleware(setupTestLogger(), manager)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.Copy(w, bytes.NewBufferString("ok"))
	})).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", w.Body.String())
}
