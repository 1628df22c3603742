package storage

import (
	"context"
	"time"
)

//go:generate moq -out auth_mock.go . AuthStorage

// AuthStorage defines interface for storing the sync server session on client.
// This is the lowest storage layer: tokens arrive already encrypted by auth.SessionStore
// and are stored as-is.
type AuthStorage interface {
	// SaveAuth stores authentication data as-is
	SaveAuth(ctx context.Context, auth *AuthData) error

	// GetAuth retrieves stored authentication data as-is
	// Returns ErrAuthNotFound if no auth data exists
	GetAuth(ctx context.Context) (*AuthData, error)

	// DeleteAuth removes stored authentication data (logout)
	// Returns ErrAuthNotFound if no auth data exists
	DeleteAuth(ctx context.Context) error
}

// AuthData represents the sync server session.
// Tokens are plaintext in memory and base64 AES-GCM ciphertext in BoltDB;
// the conversion happens in auth.SessionStore.
type AuthData struct {
	Username     string `json:"username"`
	UserID       string `json:"user_id"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	PublicSalt   string `json:"public_salt"`
	ExpiresAt    int64  `json:"expires_at"` // unix seconds
}

// Expired reports whether the access token has expired at now
func (a *AuthData) Expired(now time.Time) bool {
	return now.Unix() >= a.ExpiresAt
}
