package storage

import "errors"

// Sentinel errors returned by every server storage backend.
// Handlers map them onto HTTP statuses.
var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("username already taken")
	ErrTokenNotFound     = errors.New("refresh token not found")

	// ErrCollectionNotFound means the user never pushed this kind
	ErrCollectionNotFound = errors.New("collection not found")
)
