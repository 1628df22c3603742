package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/iudanet/lumina/internal/models"
	"github.com/iudanet/lumina/internal/server/storage"
)

func setupTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// memoryStorage хранит пользователей и токены в map поверх moq-моков
type memoryStorage struct {
	users  map[string]*models.User
	tokens map[string]*models.RefreshToken
	mu     sync.Mutex
}

func newMemoryStorage() (*memoryStorage, *storage.UserStorageMock, *storage.TokenStorageMock) {
	m := &memoryStorage{
		users:  make(map[string]*models.User),
		tokens: make(map[string]*models.RefreshToken),
	}

	users := &storage.UserStorageMock{
		CreateUserFunc: func(_ context.Context, user *models.User) error {
			m.mu.Lock()
			defer m.mu.Unlock()
			for _, u := range m.users {
				if u.Username == user.Username {
					return storage.ErrUserAlreadyExists
				}
			}
			m.users[user.ID] = user
			return nil
		},
		GetUserByUsernameFunc: func(_ context.Context, username string) (*models.User, error) {
			m.mu.Lock()
			defer m.mu.Unlock()
			for _, u := range m.users {
				if u.Username == username {
					return u, nil
				}
			}
			return nil, storage.ErrUserNotFound
		},
		GetUserByIDFunc: func(_ context.Context, userID string) (*models.User, error) {
			m.mu.Lock()
			defer m.mu.Unlock()
			if u, ok := m.users[userID]; ok {
				return u, nil
			}
			return nil, storage.ErrUserNotFound
		},
		UpdateLastLoginFunc: func(_ context.Context, userID string, lastLogin time.Time) error {
			m.mu.Lock()
			defer m.mu.Unlock()
			u, ok := m.users[userID]
			if !ok {
				return storage.ErrUserNotFound
			}
			u.LastLogin = &lastLogin
			return nil
		},
	}

	tokens := &storage.TokenStorageMock{
		SaveRefreshTokenFunc: func(_ context.Context, token *models.RefreshToken) error {
			m.mu.Lock()
			defer m.mu.Unlock()
			m.tokens[token.TokenHash] = token
			return nil
		},
		GetRefreshTokenFunc: func(_ context.Context, tokenHash string) (*models.RefreshToken, error) {
			m.mu.Lock()
			defer m.mu.Unlock()
			if t, ok := m.tokens[tokenHash]; ok {
				return t, nil
			}
			return nil, storage.ErrTokenNotFound
		},
		DeleteRefreshTokenFunc: func(_ context.Context, tokenHash string) error {
			m.mu.Lock()
			defer m.mu.Unlock()
			if _, ok := m.tokens[tokenHash]; !ok {
				return storage.ErrTokenNotFound
			}
			delete(m.tokens, tokenHash)
			return nil
		},
	}

	return m, users, tokens
}

// doJSON выполняет запрос к handler с JSON телом
func doJSON(t *testing.T, h http.HandlerFunc, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h(w, req)
	return w
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(w.Body).Decode(&v))
	return v
}
