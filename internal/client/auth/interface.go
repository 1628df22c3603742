package auth

import (
	"context"

	"github.com/iudanet/lumina/pkg/api"
)

//go:generate moq -out api_mock.go . API

// API is the part of the backup server API used for authentication
type API interface {
	Register(ctx context.Context, req api.RegisterRequest) (*api.RegisterResponse, error)
	GetSalt(ctx context.Context, username string) (*api.SaltResponse, error)
	Login(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*api.TokenResponse, error)
	Logout(ctx context.Context, refreshToken string) error
}
