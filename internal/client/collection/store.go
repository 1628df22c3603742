// Package collection provides typed whole-collection load/save on top of the
// byte-level client storage.
package collection

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/iudanet/lumina/internal/client/storage"
	"github.com/iudanet/lumina/internal/models"
	"github.com/iudanet/lumina/internal/validation"
)

// ErrInvalidCollection is returned by Save and Commit for items that would
// not pass validation on the next load.
var ErrInvalidCollection = errors.New("invalid collection")

// Snapshot is a loaded collection together with the revision it was read at.
type Snapshot[T models.Entity] struct {
	Items    []T
	Revision int64
}

// CommitResult describes the outcome of a Commit.
type CommitResult struct {
	Revision int64
	// Overwrote is true when another writer saved the collection after
	// the base revision. The commit still replaced its data.
	Overwrote bool
}

// Store reads and replaces the whole collection of kind T.
type Store[T models.Entity] struct {
	backend storage.CollectionStorage
	logger  *slog.Logger
	kind    models.Kind
}

// New creates a store for the collection of entity type T.
func New[T models.Entity](backend storage.CollectionStorage, logger *slog.Logger) *Store[T] {
	if logger == nil {
		logger = slog.Default()
	}
	var zero T
	return &Store[T]{
		backend: backend,
		logger:  logger,
		kind:    zero.Kind(),
	}
}

// Kind returns the collection kind handled by the store.
func (s *Store[T]) Kind() models.Kind {
	return s.kind
}

// Load returns the stored collection. A collection that was never saved is
// returned as an empty non-nil slice.
func (s *Store[T]) Load(ctx context.Context) ([]T, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return snap.Items, nil
}

// Snapshot returns the stored collection and its revision.
// Undecodable or invalid data yields an empty collection and a warning.
func (s *Store[T]) Snapshot(ctx context.Context) (Snapshot[T], error) {
	data, revision, err := s.backend.LoadCollection(ctx, s.kind)
	if err != nil {
		return Snapshot[T]{}, fmt.Errorf("failed to load %s: %w", s.kind, err)
	}

	return Snapshot[T]{
		Items:    s.decode(data),
		Revision: revision,
	}, nil
}

// Save replaces the stored collection with items.
func (s *Store[T]) Save(ctx context.Context, items []T) error {
	_, err := s.write(ctx, items)
	return err
}

// Commit replaces the stored collection with items like Save does and reports
// whether a save by another writer happened after baseRevision.
func (s *Store[T]) Commit(ctx context.Context, items []T, baseRevision int64) (CommitResult, error) {
	revision, err := s.write(ctx, items)
	if err != nil {
		return CommitResult{}, err
	}

	return CommitResult{
		Revision:  revision,
		Overwrote: revision != baseRevision+1,
	}, nil
}

func (s *Store[T]) write(ctx context.Context, items []T) (int64, error) {
	// Невалидный блоб при следующей загрузке превратится в пустую коллекцию
	if err := validation.ValidateCollection(items); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidCollection, err)
	}

	data, err := Encode(items)
	if err != nil {
		return 0, fmt.Errorf("failed to encode %s: %w", s.kind, err)
	}

	revision, err := s.backend.SaveCollection(ctx, s.kind, data)
	if err != nil {
		return 0, fmt.Errorf("failed to save %s: %w", s.kind, err)
	}

	s.logger.Debug("collection saved",
		"kind", s.kind,
		"items", len(items),
		"revision", revision)

	return revision, nil
}

func (s *Store[T]) decode(data []byte) []T {
	if len(data) == 0 {
		return []T{}
	}

	items, err := Decode[T](data)
	if err != nil {
		s.logger.Warn("stored collection is unreadable, using empty collection",
			"kind", s.kind,
			"error", err)
		return []T{}
	}

	return items
}

// Encode serializes a collection. A nil slice is stored as an empty array.
func Encode[T models.Entity](items []T) ([]byte, error) {
	if items == nil {
		items = []T{}
	}
	return json.Marshal(items)
}

// Decode parses and validates a serialized collection.
func Decode[T models.Entity](data []byte) ([]T, error) {
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("failed to unmarshal collection: %w", err)
	}
	// "null" тоже считаем пустой коллекцией
	if items == nil {
		items = []T{}
	}

	if err := validation.ValidateCollection(items); err != nil {
		return nil, err
	}

	return items, nil
}
