package storage

import (
	"context"

	"github.com/iudanet/lumina/internal/models"
)

//go:generate moq -out collections_mock.go . CollectionStorage

// CollectionStorage defines the key-value substrate for whole-collection persistence.
// It works with opaque serialized blobs and knows nothing about entity shape.
type CollectionStorage interface {
	// LoadCollection returns the stored blob and its revision.
	// Returns (nil, 0, nil) if the collection has never been saved.
	LoadCollection(ctx context.Context, kind models.Kind) ([]byte, int64, error)

	// SaveCollection replaces the stored blob unconditionally and returns the new revision.
	// Every call is one durable write; nothing is batched.
	SaveCollection(ctx context.Context, kind models.Kind, data []byte) (int64, error)

	// CollectionRevision returns the current revision (0 if never saved)
	CollectionRevision(ctx context.Context, kind models.Kind) (int64, error)

	// ClearCollections removes every collection; revisions keep counting
	ClearCollections(ctx context.Context) error
}
