package boltdb

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/lumina/internal/models"
)

// LoadCollection returns the stored blob and its revision.
// Returns (nil, 0, nil) if the collection has never been saved.
func (s *Storage) LoadCollection(ctx context.Context, kind models.Kind) ([]byte, int64, error) {
	if err := s.checkOpen(); err != nil {
		return nil, 0, err
	}

	var (
		data     []byte
		revision int64
	)

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketCollections)
		if bucket == nil {
			return fmt.Errorf("collections bucket not found")
		}

		key := []byte(kind.StorageKey())
		if v := bucket.Get(key); v != nil {
			// Память bbolt валидна только внутри транзакции, копируем
			data = make([]byte, len(v))
			copy(data, v)
		}

		revision = readRevision(tx, key)
		return nil
	})
	if err != nil {
		return nil, 0, unavailable(fmt.Sprintf("load %s", kind), err)
	}

	return data, revision, nil
}

// SaveCollection replaces the stored blob and bumps the revision in one transaction
func (s *Storage) SaveCollection(ctx context.Context, kind models.Kind, data []byte) (int64, error) {
	if err := s.checkOpen(); err != nil {
		return 0, err
	}

	var revision int64

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketCollections)
		if bucket == nil {
			return fmt.Errorf("collections bucket not found")
		}

		key := []byte(kind.StorageKey())

		// Перезаписываем коллекцию целиком
		if err := bucket.Put(key, data); err != nil {
			return fmt.Errorf("failed to put collection: %w", err)
		}

		revision = readRevision(tx, key) + 1
		return writeRevision(tx, key, revision)
	})
	if err != nil {
		return 0, unavailable(fmt.Sprintf("save %s", kind), err)
	}

	return revision, nil
}

// CollectionRevision returns the current revision (0 if never saved)
func (s *Storage) CollectionRevision(ctx context.Context, kind models.Kind) (int64, error) {
	if err := s.checkOpen(); err != nil {
		return 0, err
	}

	var revision int64
	err := s.db.View(func(tx *bbolt.Tx) error {
		revision = readRevision(tx, []byte(kind.StorageKey()))
		return nil
	})
	if err != nil {
		return 0, unavailable(fmt.Sprintf("revision %s", kind), err)
	}

	return revision, nil
}

// ClearCollections removes every collection. Revisions are kept, so the next
// save continues the counter and a stale writer still sees the overwrite.
func (s *Storage) ClearCollections(ctx context.Context) error {
	if err := s.checkOpen(); err != nil {
		return err
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.DeleteBucket(bucketCollections); err != nil && !errors.Is(err, bbolt.ErrBucketNotFound) {
			return fmt.Errorf("failed to delete collections bucket: %w", err)
		}
		if _, err := tx.CreateBucket(bucketCollections); err != nil {
			return fmt.Errorf("failed to recreate collections bucket: %w", err)
		}
		return nil
	})
	if err != nil {
		return unavailable("clear collections", err)
	}

	return nil
}
