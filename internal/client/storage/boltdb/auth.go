package boltdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/lumina/internal/client/storage"
)

// Клиент держит не более одной сессии, поэтому ключ фиксирован
var sessionKey = []byte("session")

var errNoAuthBucket = errors.New("auth bucket not found")

// withAuthBucket выполняет fn над bucket сессии. Ошибки субстрата
// помечаются как недоступность хранилища, ErrAuthNotFound проходит как есть.
func (s *Storage) withAuthBucket(op string, writable bool, fn func(b *bbolt.Bucket) error) error {
	if err := s.checkOpen(); err != nil {
		return err
	}

	run := s.db.View
	if writable {
		run = s.db.Update
	}

	err := run(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketAuth)
		if b == nil {
			return errNoAuthBucket
		}
		return fn(b)
	})
	switch {
	case err == nil:
		return nil
	case errors.Is(err, storage.ErrAuthNotFound):
		return err
	default:
		return unavailable(op, err)
	}
}

// SaveAuth replaces the stored session
func (s *Storage) SaveAuth(ctx context.Context, auth *storage.AuthData) error {
	raw, err := json.Marshal(auth)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	return s.withAuthBucket("save session", true, func(b *bbolt.Bucket) error {
		return b.Put(sessionKey, raw)
	})
}

// GetAuth returns the stored session or storage.ErrAuthNotFound
func (s *Storage) GetAuth(ctx context.Context) (*storage.AuthData, error) {
	var auth storage.AuthData

	err := s.withAuthBucket("load session", false, func(b *bbolt.Bucket) error {
		raw := b.Get(sessionKey)
		if raw == nil {
			return storage.ErrAuthNotFound
		}
		// Unmarshal копирует строки, поэтому raw не переживает транзакцию
		return json.Unmarshal(raw, &auth)
	})
	if err != nil {
		return nil, err
	}

	return &auth, nil
}

// DeleteAuth drops the stored session on logout
func (s *Storage) DeleteAuth(ctx context.Context) error {
	return s.withAuthBucket("delete session", true, func(b *bbolt.Bucket) error {
		if b.Get(sessionKey) == nil {
			return storage.ErrAuthNotFound
		}
		return b.Delete(sessionKey)
	})
}
