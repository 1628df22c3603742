package server

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/lumina/internal/config"
	"github.com/iudanet/lumina/internal/server/storage/sqlite"
	"github.com/iudanet/lumina/pkg/api"
)

func testConfig() *config.Server {
	return &config.Server{
		Addr:             "127.0.0.1:0",
		JWTSecret:        strings.Repeat("s", 32),
		TokenCleanupCron: "@every 1h",
		AccessTokenTTL:   15 * time.Minute,
		RefreshTokenTTL:  time.Hour,
		RateLimitWindow:  time.Minute,
		RateLimit:        100,
	}
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	store, err := sqlite.New(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	srv, err := New(testConfig(), store, slog.New(slog.NewTextHandler(io.Discard, nil)), "test")
	require.NoError(t, err)
	t.Cleanup(srv.Close)

	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func call(t *testing.T, ts *httptest.Server, method, path, token string, body, out any) int {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client().Do(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	if out != nil && resp.StatusCode < 300 {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func TestNew_InvalidConfig(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := testConfig()
	cfg.JWTSecret = "short"
	_, err := New(cfg, nil, logger, "test")
	assert.Error(t, err)

	cfg = testConfig()
	cfg.TokenCleanupCron = "every tuesday"
	_, err = New(cfg, nil, logger, "test")
	assert.ErrorContains(t, err, "invalid token cleanup schedule")
}

func TestServer_BackupFlow(t *testing.T) {
	ts := newTestServer(t)

	var health api.HealthResponse
	require.Equal(t, http.StatusOK, call(t, ts, http.MethodGet, "/api/v1/health", "", nil, &health))
	assert.Equal(t, "ok", health.Status)

	hash := strings.Repeat("ab", 32)
	salt := base64.StdEncoding.EncodeToString(bytes.Repeat([]byte{7}, 32))

	require.Equal(t, http.StatusCreated, call(t, ts, http.MethodPost, "/api/v1/auth/register", "",
		api.RegisterRequest{Username: "alice", AuthKeyHash: hash, PublicSalt: salt}, nil))

	var saltResp api.SaltResponse
	require.Equal(t, http.StatusOK, call(t, ts, http.MethodGet, "/api/v1/auth/salt/alice", "", nil, &saltResp))
	assert.Equal(t, salt, saltResp.PublicSalt)

	var tokens api.TokenResponse
	require.Equal(t, http.StatusOK, call(t, ts, http.MethodPost, "/api/v1/auth/login", "",
		api.LoginRequest{Username: "alice", AuthKeyHash: hash}, &tokens))

	// Без токена коллекции недоступны
	assert.Equal(t, http.StatusUnauthorized, call(t, ts, http.MethodGet, "/api/v1/collections/events", "", nil, nil))

	assert.Equal(t, http.StatusNotFound, call(t, ts, http.MethodGet, "/api/v1/collections/events", tokens.AccessToken, nil, nil))

	data := base64.StdEncoding.EncodeToString([]byte("sealed-events"))
	var put api.PutCollectionResponse
	require.Equal(t, http.StatusOK, call(t, ts, http.MethodPut, "/api/v1/collections/events", tokens.AccessToken,
		api.PutCollectionRequest{Data: data, BaseRevision: 0}, &put))
	assert.Equal(t, api.PutCollectionResponse{Revision: 1}, put)

	// Устаревший клиент все равно перезаписывает
	require.Equal(t, http.StatusOK, call(t, ts, http.MethodPut, "/api/v1/collections/events", tokens.AccessToken,
		api.PutCollectionRequest{Data: data, BaseRevision: 0}, &put))
	assert.Equal(t, api.PutCollectionResponse{Revision: 2, Overwrote: true}, put)

	var got api.CollectionResponse
	require.Equal(t, http.StatusOK, call(t, ts, http.MethodGet, "/api/v1/collections/events", tokens.AccessToken, nil, &got))
	assert.Equal(t, data, got.Data)
	assert.Equal(t, int64(2), got.Revision)

	var refreshed api.TokenResponse
	require.Equal(t, http.StatusOK, call(t, ts, http.MethodPost, "/api/v1/auth/refresh", "",
		api.RefreshRequest{RefreshToken: tokens.RefreshToken}, &refreshed))

	require.Equal(t, http.StatusNoContent, call(t, ts, http.MethodPost, "/api/v1/auth/logout", "",
		api.LogoutRequest{RefreshToken: refreshed.RefreshToken}, nil))
	assert.Equal(t, http.StatusUnauthorized, call(t, ts, http.MethodPost, "/api/v1/auth/refresh", "",
		api.RefreshRequest{RefreshToken: refreshed.RefreshToken}, nil))
}

func TestServer_MethodNotAllowed(t *testing.T) {
	ts := newTestServer(t)
	assert.Equal(t, http.StatusMethodNotAllowed, call(t, ts, http.MethodDelete, "/api/v1/collections/events", "", nil, nil))
}
