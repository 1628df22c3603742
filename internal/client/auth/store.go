package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/iudanet/lumina/internal/client/storage"
	"github.com/iudanet/lumina/internal/crypto"
)

// aad токенов: шифротекст одного токена нельзя подставить на место другого
var (
	accessTokenAAD  = []byte("lumina/session/access")
	refreshTokenAAD = []byte("lumina/session/refresh")
)

// ErrWrongPassword master password не подходит к сохраненной сессии
var ErrWrongPassword = errors.New("wrong master password")

// SessionStore шифрует токены перед записью в хранилище и расшифровывает при чтении.
// Ключ шифрования выводится из master password и нигде не сохраняется.
type SessionStore struct {
	storage storage.AuthStorage
}

// NewSessionStore creates a session store on top of the raw auth storage
func NewSessionStore(s storage.AuthStorage) *SessionStore {
	return &SessionStore{storage: s}
}

// Save encrypts the session tokens and stores the session
func (s *SessionStore) Save(ctx context.Context, auth *storage.AuthData, key []byte) error {
	if auth == nil {
		return fmt.Errorf("auth data is nil")
	}

	access, err := crypto.SealToBase64([]byte(auth.AccessToken), key, accessTokenAAD)
	if err != nil {
		return fmt.Errorf("failed to encrypt access token: %w", err)
	}
	refresh, err := crypto.SealToBase64([]byte(auth.RefreshToken), key, refreshTokenAAD)
	if err != nil {
		return fmt.Errorf("failed to encrypt refresh token: %w", err)
	}

	sealed := *auth
	sealed.AccessToken = access
	sealed.RefreshToken = refresh

	return s.storage.SaveAuth(ctx, &sealed)
}

// Load returns the stored session with decrypted tokens.
// Returns ErrWrongPassword when key does not open the tokens.
func (s *SessionStore) Load(ctx context.Context, key []byte) (*storage.AuthData, error) {
	stored, err := s.storage.GetAuth(ctx)
	if err != nil {
		return nil, err
	}

	access, err := crypto.OpenFromBase64(stored.AccessToken, key, accessTokenAAD)
	if err != nil {
		return nil, openError(err)
	}
	refresh, err := crypto.OpenFromBase64(stored.RefreshToken, key, refreshTokenAAD)
	if err != nil {
		return nil, openError(err)
	}

	auth := *stored
	auth.AccessToken = string(access)
	auth.RefreshToken = string(refresh)
	return &auth, nil
}

// Info returns the stored session without touching the tokens.
// Tokens in the result stay encrypted.
func (s *SessionStore) Info(ctx context.Context) (*storage.AuthData, error) {
	return s.storage.GetAuth(ctx)
}

// Delete removes the stored session
func (s *SessionStore) Delete(ctx context.Context) error {
	return s.storage.DeleteAuth(ctx)
}

func openError(err error) error {
	if errors.Is(err, crypto.ErrDecrypt) {
		return ErrWrongPassword
	}
	return fmt.Errorf("failed to decrypt session: %w", err)
}
