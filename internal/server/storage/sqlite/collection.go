package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/lumina/internal/models"
	"github.com/iudanet/lumina/internal/server/storage"
)

// GetCollection returns the stored backup of one collection
func (s *Storage) GetCollection(ctx context.Context, userID string, kind models.Kind) (*models.CollectionBackup, error) {
	query := `
		SELECT user_id, kind, data, revision, updated_at
		FROM collections
		WHERE user_id = ? AND kind = ?
	`

	backup := &models.CollectionBackup{}
	var k string

	err := s.db.QueryRowContext(ctx, query, userID, string(kind)).Scan(
		&backup.UserID,
		&k,
		&backup.Data,
		&backup.Revision,
		&backup.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrCollectionNotFound
		}
		return nil, fmt.Errorf("failed to get collection: %w", err)
	}
	backup.Kind = models.Kind(k)

	return backup, nil
}

// PutCollection overwrites the backup and bumps its revision in one transaction.
// Запись безусловная: конфликт только отмечается в PutResult.Overwrote.
func (s *Storage) PutCollection(
	ctx context.Context,
	userID string,
	kind models.Kind,
	data []byte,
	baseRevision int64,
	now time.Time,
) (storage.PutResult, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return storage.PutResult{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	var current int64
	err = tx.QueryRowContext(ctx,
		`SELECT revision FROM collections WHERE user_id = ? AND kind = ?`,
		userID, string(kind),
	).Scan(&current)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return storage.PutResult{}, fmt.Errorf("failed to read revision: %w", err)
	}

	next := current + 1
	_, err = tx.ExecContext(ctx, `
		INSERT INTO collections (user_id, kind, data, revision, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (user_id, kind) DO UPDATE SET
			data = excluded.data,
			revision = excluded.revision,
			updated_at = excluded.updated_at
	`, userID, string(kind), data, next, now.UTC())
	if err != nil {
		return storage.PutResult{}, fmt.Errorf("failed to write collection: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return storage.PutResult{}, fmt.Errorf("failed to commit collection: %w", err)
	}

	return storage.PutResult{
		Revision:  next,
		Overwrote: current != baseRevision,
	}, nil
}
