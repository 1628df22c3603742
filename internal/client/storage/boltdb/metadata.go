package boltdb

import (
	"context"
	"encoding/binary"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/lumina/internal/models"
)

// Ревизии сервера живут в metadata и не сбрасываются вместе с коллекциями
func syncedRevisionKey(kind models.Kind) []byte {
	return []byte("synced_revision:" + string(kind))
}

// SaveSyncedRevision records the server revision seen on the last push or pull.
func (s *Storage) SaveSyncedRevision(ctx context.Context, kind models.Kind, revision int64) error {
	if err := s.checkOpen(); err != nil {
		return err
	}

	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(revision))

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}
		return bucket.Put(syncedRevisionKey(kind), buf[:])
	})
	if err != nil {
		return unavailable(fmt.Sprintf("save synced revision of %s", kind), err)
	}
	return nil
}

// GetSyncedRevision returns 0 for a collection that was never synced.
func (s *Storage) GetSyncedRevision(ctx context.Context, kind models.Kind) (int64, error) {
	if err := s.checkOpen(); err != nil {
		return 0, err
	}

	var revision int64
	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}
		if v := bucket.Get(syncedRevisionKey(kind)); len(v) == 8 {
			revision = int64(binary.BigEndian.Uint64(v))
		}
		return nil
	})
	if err != nil {
		return 0, unavailable(fmt.Sprintf("read synced revision of %s", kind), err)
	}
	return revision, nil
}
