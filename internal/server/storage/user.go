package storage

import (
	"context"
	"time"

	"github.com/iudanet/lumina/internal/models"
)

//go:generate moq -out user_mock.go . UserStorage

// UserStorage keeps sync accounts: username, password verifier and the
// public salt the client derives its keys from.
type UserStorage interface {
	// CreateUser fails with ErrUserAlreadyExists on a taken username
	CreateUser(ctx context.Context, user *models.User) error
	// GetUserByUsername and GetUserByID fail with ErrUserNotFound
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
	UpdateLastLogin(ctx context.Context, userID string, at time.Time) error
}
