package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/lumina/internal/models"
	"github.com/iudanet/lumina/internal/server/storage"
)

func TestUserStorage_CreateUser(t *testing.T) {
	ctx := context.Background()
	s := setupTestStorage(t)

	tests := []struct {
		user *models.User
		name string
	}{
		{
			name: "create new user successfully",
			user: &models.User{
				ID:          uuid.New().String(),
				Username:    "testuser1",
				AuthKeyHash: "hash123",
				PublicSalt:  "salt123",
				CreatedAt:   time.Now(),
			},
		},
		{
			name: "create user with last login",
			user: &models.User{
				ID:          uuid.New().String(),
				Username:    "testuser2",
				AuthKeyHash: "hash456",
				PublicSalt:  "salt456",
				CreatedAt:   time.Now(),
				LastLogin:   timePtr(time.Now()),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, s.CreateUser(ctx, tt.user))

			retrieved, err := s.GetUserByID(ctx, tt.user.ID)
			require.NoError(t, err)
			assert.Equal(t, tt.user.ID, retrieved.ID)
			assert.Equal(t, tt.user.Username, retrieved.Username)
			assert.Equal(t, tt.user.AuthKeyHash, retrieved.AuthKeyHash)
			assert.Equal(t, tt.user.PublicSalt, retrieved.PublicSalt)
			assert.WithinDuration(t, tt.user.CreatedAt, retrieved.CreatedAt, time.Second)
			assert.Equal(t, tt.user.LastLogin != nil, retrieved.LastLogin != nil)
		})
	}
}

func TestUserStorage_CreateUser_DuplicateUsername(t *testing.T) {
	ctx := context.Background()
	s := setupTestStorage(t)

	user1 := &models.User{
		ID:          uuid.New().String(),
		Username:    "duplicate",
		AuthKeyHash: "hash1",
		PublicSalt:  "salt1",
		CreatedAt:   time.Now(),
	}
	require.NoError(t, s.CreateUser(ctx, user1))

	user2 := &models.User{
		ID:          uuid.New().String(),
		Username:    "duplicate",
		AuthKeyHash: "hash2",
		PublicSalt:  "salt2",
		CreatedAt:   time.Now(),
	}
	err := s.CreateUser(ctx, user2)
	assert.ErrorIs(t, err, storage.ErrUserAlreadyExists)
}

func TestUserStorage_GetUserByUsername(t *testing.T) {
	ctx := context.Background()
	s := setupTestStorage(t)

	user := &models.User{
		ID:          uuid.New().String(),
		Username:    "alice",
		AuthKeyHash: "hash",
		PublicSalt:  "salt",
		CreatedAt:   time.Now(),
	}
	require.NoError(t, s.CreateUser(ctx, user))

	tests := []struct {
		wantErr  error
		name     string
		username string
	}{
		{name: "existing user", username: "alice"},
		{name: "unknown user", username: "bob", wantErr: storage.ErrUserNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.GetUserByUsername(ctx, tt.username)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, user.ID, got.ID)
			assert.Nil(t, got.LastLogin)
		})
	}
}

func TestUserStorage_GetUserByID_NotFound(t *testing.T) {
	s := setupTestStorage(t)

	_, err := s.GetUserByID(context.Background(), uuid.New().String())
	assert.ErrorIs(t, err, storage.ErrUserNotFound)
}

func TestUserStorage_UpdateLastLogin(t *testing.T) {
	ctx := context.Background()
	s := setupTestStorage(t)
	userID := createTestUser(t, ctx, s)

	loginAt := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	require.NoError(t, s.UpdateLastLogin(ctx, userID, loginAt))

	user, err := s.GetUserByID(ctx, userID)
	require.NoError(t, err)
	require.NotNil(t, user.LastLogin)
	assert.True(t, loginAt.Equal(*user.LastLogin))

	err = s.UpdateLastLogin(ctx, "nonexistent", loginAt)
	assert.ErrorIs(t, err, storage.ErrUserNotFound)
}

func timePtr(t time.Time) *time.Time {
	return &t
}
