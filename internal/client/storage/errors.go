package storage

import "errors"

var (
	// ErrAuthNotFound means nobody is logged in on this device
	ErrAuthNotFound = errors.New("no saved session")

	// ErrStorageUnavailable wraps every failure of the BoltDB file itself.
	// Callers keep their in-memory state when they see it.
	ErrStorageUnavailable = errors.New("storage unavailable")

	ErrStorageClosed = errors.New("storage is closed")
)
