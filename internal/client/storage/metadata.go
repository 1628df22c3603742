package storage

import (
	"context"

	"github.com/iudanet/lumina/internal/models"
)

//go:generate moq -out metadata_mock.go . MetadataStorage

// MetadataStorage defines interface for storing client sync metadata
type MetadataStorage interface {
	// SaveSyncedRevision saves the server revision of the collection after a successful push or pull
	SaveSyncedRevision(ctx context.Context, kind models.Kind, revision int64) error

	// GetSyncedRevision retrieves the last known server revision of the collection
	// Returns 0 if the collection has never been synced
	GetSyncedRevision(ctx context.Context, kind models.Kind) (int64, error)
}
