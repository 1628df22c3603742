package storage

import (
	"context"
	"time"

	"github.com/iudanet/lumina/internal/models"
)

//go:generate moq -out collection_mock.go . CollectionStorage

// PutResult результат перезаписи коллекции на сервере.
type PutResult struct {
	Revision  int64 // новая ревизия
	Overwrote bool  // на сервере была ревизия, отличная от base
}

// CollectionStorage хранит зашифрованные копии коллекций пользователей.
// Одна запись на пару (user, kind), запись всегда целиком.
type CollectionStorage interface {
	// GetCollection returns the stored backup
	// Returns ErrCollectionNotFound if the collection was never pushed
	GetCollection(ctx context.Context, userID string, kind models.Kind) (*models.CollectionBackup, error)

	// PutCollection overwrites the backup unconditionally and bumps its revision.
	// baseRevision is the revision the client last saw; it only affects PutResult.Overwrote.
	PutCollection(ctx context.Context, userID string, kind models.Kind, data []byte, baseRevision int64, now time.Time) (PutResult, error)
}
