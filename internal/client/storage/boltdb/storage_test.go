package boltdb

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"

	"github.com/iudanet/lumina/internal/client/storage"
	"github.com/iudanet/lumina/internal/models"
)

func missingBuckets(t *testing.T, db *bbolt.DB) []string {
	t.Helper()

	var missing []string
	require.NoError(t, db.View(func(tx *bbolt.Tx) error {
		for _, name := range allBuckets {
			if tx.Bucket(name) == nil {
				missing = append(missing, string(name))
			}
		}
		return nil
	}))
	return missing
}

func TestNew_CreatesFileAndBuckets(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "lumina.db")

	store, err := New(context.Background(), dbPath)
	require.NoError(t, err)
	defer store.Close()

	assert.FileExists(t, dbPath)
	assert.Equal(t, dbPath, store.Path())
	assert.Empty(t, missingBuckets(t, store.db))
}

func TestNew_Errors(t *testing.T) {
	t.Run("bad path", func(t *testing.T) {
		store, err := New(context.Background(), filepath.Join(t.TempDir(), "no", "such", "dir", "lumina.db"))
		assert.Error(t, err)
		assert.Nil(t, store)
	})

	t.Run("locked by another handle", func(t *testing.T) {
		dbPath := filepath.Join(t.TempDir(), "lumina.db")
		first, err := New(context.Background(), dbPath)
		require.NoError(t, err)
		defer first.Close()

		// flock держит первый дескриптор, второй отваливается по таймауту
		second, err := New(context.Background(), dbPath)
		assert.Error(t, err)
		assert.Nil(t, second)
	})
}

func TestInitBuckets_RestoresDroppedBuckets(t *testing.T) {
	store := newTestStorage(t)

	require.NoError(t, store.db.Update(func(tx *bbolt.Tx) error {
		for _, name := range allBuckets {
			if err := tx.DeleteBucket(name); err != nil {
				return err
			}
		}
		return nil
	}))
	require.Len(t, missingBuckets(t, store.db), len(allBuckets))

	require.NoError(t, store.initBuckets())
	assert.Empty(t, missingBuckets(t, store.db))

	// Повторный вызов идемпотентен
	require.NoError(t, store.initBuckets())
}

func TestClose_Idempotent(t *testing.T) {
	store := newTestStorage(t)

	require.NoError(t, store.Close())
	assert.Nil(t, store.db)
	assert.Empty(t, store.Path())
	assert.NoError(t, store.Close())
}

func TestClosedStorage_ReturnsUnavailable(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)
	require.NoError(t, store.Close())

	calls := map[string]func() error{
		"load collection": func() error {
			_, _, err := store.LoadCollection(ctx, models.KindOutfits)
			return err
		},
		"save collection": func() error {
			_, err := store.SaveCollection(ctx, models.KindEvents, []byte("[]"))
			return err
		},
		"save auth": func() error {
			return store.SaveAuth(ctx, &storage.AuthData{Username: "alice"})
		},
		"get auth": func() error {
			_, err := store.GetAuth(ctx)
			return err
		},
		"synced revision": func() error {
			_, err := store.GetSyncedRevision(ctx, models.KindVision)
			return err
		},
	}

	for name, call := range calls {
		t.Run(name, func(t *testing.T) {
			err := call()
			assert.ErrorIs(t, err, storage.ErrStorageUnavailable)
			assert.ErrorIs(t, err, storage.ErrStorageClosed)
		})
	}
}
