package boltdb

import (
	"context"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"github.com/iudanet/lumina/internal/client/storage"
)

var (
	// BoltDB bucket names
	bucketAuth        = []byte("auth")
	bucketCollections = []byte("collections")
	bucketRevisions   = []byte("revisions")
	bucketMetadata    = []byte("metadata")

	allBuckets = [][]byte{bucketAuth, bucketCollections, bucketRevisions, bucketMetadata}
)

// Compile-time checks
var (
	_ storage.CollectionStorage = (*Storage)(nil)
	_ storage.AuthStorage       = (*Storage)(nil)
	_ storage.MetadataStorage   = (*Storage)(nil)
)

// Storage represents BoltDB storage implementation for client
type Storage struct {
	db *bbolt.DB
}

// New creates a new BoltDB storage instance
// dbPath is the path to the BoltDB database file
func New(ctx context.Context, dbPath string) (*Storage, error) {
	// Открываем BoltDB. Таймаут нужен, чтобы второй процесс с тем же файлом
	// получил ошибку вместо бесконечного ожидания flock
	db, err := bbolt.Open(dbPath, 0600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open boltdb: %w", err)
	}

	s := &Storage{db: db}

	// Инициализируем buckets
	if err := s.initBuckets(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize buckets: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
// Repeated calls are no-ops.
func (s *Storage) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// Path returns the database file path
func (s *Storage) Path() string {
	if s.db == nil {
		return ""
	}
	return s.db.Path()
}

// initBuckets создает необходимые buckets если они не существуют
func (s *Storage) initBuckets() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		for _, name := range allBuckets {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return fmt.Errorf("failed to create %s bucket: %w", name, err)
			}
		}
		return nil
	})
}

// unavailable помечает ошибку субстрата как storage.ErrStorageUnavailable
func unavailable(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", storage.ErrStorageUnavailable, op, err)
}

// checkOpen возвращает ошибку, если база уже закрыта
func (s *Storage) checkOpen() error {
	if s.db == nil {
		return fmt.Errorf("%w: %w", storage.ErrStorageUnavailable, storage.ErrStorageClosed)
	}
	return nil
}
