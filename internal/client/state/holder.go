// Package state holds the in-memory collections of the client and persists
// every mutation immediately.
package state

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/lumina/internal/client/collection"
	"github.com/iudanet/lumina/internal/client/storage"
	"github.com/iudanet/lumina/internal/models"
)

var (
	// ErrNotActivated is returned by mutations before Activate succeeded
	ErrNotActivated = errors.New("state holder is not activated")
	// ErrEntityNotFound is returned by updates for an unknown id
	ErrEntityNotFound = errors.New("entity not found")
)

// Option configures a Holder.
type Option func(*Holder)

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(h *Holder) {
		h.logger = logger
	}
}

// WithClock sets the time source used for seeds and timestamps.
func WithClock(now func() time.Time) Option {
	return func(h *Holder) {
		h.now = now
	}
}

// WithIDGenerator sets the generator for entity ids.
func WithIDGenerator(newID func() string) Option {
	return func(h *Holder) {
		h.newID = newID
	}
}

// slot хранит коллекцию одного типа и ревизию, на которой она была прочитана
type slot[T models.Entity] struct {
	store    *collection.Store[T]
	items    []T
	revision int64
	// seeded: items пришли из seed и еще не сохранялись
	seeded bool
}

func (s *slot[T]) load(ctx context.Context) error {
	snap, err := s.store.Snapshot(ctx)
	if err != nil {
		return err
	}
	s.items = snap.Items
	s.revision = snap.Revision
	s.seeded = false
	return nil
}

// replace сохраняет коллекцию и только после успешной записи меняет состояние в памяти
func (s *slot[T]) replace(ctx context.Context, logger *slog.Logger, items []T) error {
	next := slices.Clone(items)
	if next == nil {
		next = []T{}
	}

	res, err := s.store.Commit(ctx, next, s.revision)
	if err != nil {
		return err
	}

	if res.Overwrote {
		logger.Warn("collection overwritten by another writer",
			"kind", s.store.Kind(),
			"base_revision", s.revision,
			"revision", res.Revision)
	}

	s.items = next
	s.revision = res.Revision
	s.seeded = false
	return nil
}

func (s *slot[T]) persistSeed(ctx context.Context, logger *slog.Logger) error {
	if !s.seeded {
		return nil
	}
	return s.replace(ctx, logger, s.items)
}

// Holder is the single in-memory source of truth for the three collections.
// Every mutation goes through ReplaceAll and is saved before it becomes visible.
type Holder struct {
	backend storage.CollectionStorage
	logger  *slog.Logger
	now     func() time.Time
	newID   func() string

	outfits slot[models.Outfit]
	vision  slot[models.VisionItem]
	events  slot[models.Event]

	mu     sync.Mutex
	active bool
}

// NewHolder creates a holder over the given collection storage.
// The holder is empty until Activate is called.
func NewHolder(backend storage.CollectionStorage, opts ...Option) *Holder {
	h := &Holder{
		backend: backend,
		logger:  slog.Default(),
		now:     time.Now,
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(h)
	}

	h.outfits.store = collection.New[models.Outfit](backend, h.logger)
	h.vision.store = collection.New[models.VisionItem](backend, h.logger)
	h.events.store = collection.New[models.Event](backend, h.logger)

	return h
}

// Activate loads all collections. Outfits and events that load empty are
// replaced in memory by a seed entry; the seed is persisted by the next save.
func (h *Holder) Activate(ctx context.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.activateLocked(ctx)
}

func (h *Holder) activateLocked(ctx context.Context) error {
	h.active = false

	if err := h.outfits.load(ctx); err != nil {
		return fmt.Errorf("failed to activate: %w", err)
	}
	if err := h.vision.load(ctx); err != nil {
		return fmt.Errorf("failed to activate: %w", err)
	}
	if err := h.events.load(ctx); err != nil {
		return fmt.Errorf("failed to activate: %w", err)
	}

	now := h.now()
	if len(h.outfits.items) == 0 {
		h.outfits.items = []models.Outfit{SeedOutfit(now)}
		h.outfits.seeded = true
		h.logger.Debug("seeded outfits collection")
	}
	if len(h.events.items) == 0 {
		h.events.items = []models.Event{SeedEvent(now)}
		h.events.seeded = true
		h.logger.Debug("seeded events collection")
	}

	h.active = true
	return nil
}

// Reset clears every stored collection and activates the holder again.
func (h *Holder) Reset(ctx context.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.backend.ClearCollections(ctx); err != nil {
		return fmt.Errorf("failed to clear collections: %w", err)
	}

	h.logger.Info("local collections cleared")
	return h.activateLocked(ctx)
}

// PersistSeeds saves the collections that are shown from a seed but were
// never stored, so the stored state matches what the user sees.
func (h *Holder) PersistSeeds(ctx context.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if !h.active {
		return ErrNotActivated
	}
	if err := h.outfits.persistSeed(ctx, h.logger); err != nil {
		return fmt.Errorf("failed to save outfits seed: %w", err)
	}
	if err := h.events.persistSeed(ctx, h.logger); err != nil {
		return fmt.Errorf("failed to save events seed: %w", err)
	}
	return nil
}

// Active reports whether Activate succeeded.
func (h *Holder) Active() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.active
}

// Now returns the current time of the holder clock.
func (h *Holder) Now() time.Time {
	return h.now()
}

// NewID returns a fresh entity id.
func (h *Holder) NewID() string {
	return h.newID()
}

// slotFor выбирает слот по типу сущности
func slotFor[T models.Entity](h *Holder) *slot[T] {
	var zero T
	switch any(zero).(type) {
	case models.Outfit:
		return any(&h.outfits).(*slot[T])
	case models.VisionItem:
		return any(&h.vision).(*slot[T])
	default:
		return any(&h.events).(*slot[T])
	}
}

// ReplaceAll saves items as the whole collection of kind T and makes it the
// in-memory state. On error the in-memory collection is left unchanged.
func ReplaceAll[T models.Entity](ctx context.Context, h *Holder, items []T) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if !h.active {
		return ErrNotActivated
	}
	return slotFor[T](h).replace(ctx, h.logger, items)
}

// Items returns a copy of the in-memory collection of kind T.
func Items[T models.Entity](h *Holder) []T {
	h.mu.Lock()
	defer h.mu.Unlock()

	items := slices.Clone(slotFor[T](h).items)
	if items == nil {
		items = []T{}
	}
	return items
}

// Revision returns the storage revision the in-memory collection of kind T
// corresponds to.
func Revision[T models.Entity](h *Holder) int64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return slotFor[T](h).revision
}

// mutate применяет fn к текущей коллекции и сохраняет результат
func mutate[T models.Entity](ctx context.Context, h *Holder, fn func([]T) ([]T, error)) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if !h.active {
		return ErrNotActivated
	}

	s := slotFor[T](h)
	next, err := fn(slices.Clone(s.items))
	if err != nil {
		return err
	}
	return s.replace(ctx, h.logger, next)
}

func prepend[T models.Entity](ctx context.Context, h *Holder, item T) error {
	return mutate(ctx, h, func(items []T) ([]T, error) {
		return append([]T{item}, items...), nil
	})
}

func update[T models.Entity](ctx context.Context, h *Holder, item T) error {
	return mutate(ctx, h, func(items []T) ([]T, error) {
		i := slices.IndexFunc(items, func(it T) bool { return it.Key() == item.Key() })
		if i < 0 {
			return nil, fmt.Errorf("%w: %s %q", ErrEntityNotFound, item.Kind(), item.Key())
		}
		items[i] = item
		return items, nil
	})
}

// Outfits returns a copy of the outfit registry.
func (h *Holder) Outfits() []models.Outfit { return Items[models.Outfit](h) }

// VisionItems returns a copy of the vision board.
func (h *Holder) VisionItems() []models.VisionItem { return Items[models.VisionItem](h) }

// Events returns a copy of the calendar events.
func (h *Holder) Events() []models.Event { return Items[models.Event](h) }

// AddOutfit prepends an outfit. Empty id and timestamp are filled in.
func (h *Holder) AddOutfit(ctx context.Context, o models.Outfit) (models.Outfit, error) {
	if o.ID == "" {
		o.ID = h.newID()
	}
	if o.DateAdded == "" {
		o.DateAdded = FormatTimestamp(h.now())
	}
	if err := prepend(ctx, h, o); err != nil {
		return models.Outfit{}, err
	}
	return o, nil
}

// AddVisionItem prepends a vision board item. An empty id is filled in.
func (h *Holder) AddVisionItem(ctx context.Context, v models.VisionItem) (models.VisionItem, error) {
	if v.ID == "" {
		v.ID = h.newID()
	}
	if err := prepend(ctx, h, v); err != nil {
		return models.VisionItem{}, err
	}
	return v, nil
}

// AddEvent prepends an event. An empty id is filled in.
func (h *Holder) AddEvent(ctx context.Context, e models.Event) (models.Event, error) {
	if e.ID == "" {
		e.ID = h.newID()
	}
	if err := prepend(ctx, h, e); err != nil {
		return models.Event{}, err
	}
	return e, nil
}

// UpdateOutfit replaces the outfit with the same id in place.
func (h *Holder) UpdateOutfit(ctx context.Context, o models.Outfit) error {
	return update(ctx, h, o)
}

// errUnchanged прерывает mutate без сохранения
var errUnchanged = errors.New("collection unchanged")

// ImportEvents prepends events whose ids are not in the calendar yet, keeping
// their order, in one save. Returns the number of added events.
func (h *Holder) ImportEvents(ctx context.Context, events []models.Event) (int, error) {
	added := 0
	err := mutate(ctx, h, func(items []models.Event) ([]models.Event, error) {
		seen := make(map[string]struct{}, len(items)+len(events))
		for _, e := range items {
			seen[e.ID] = struct{}{}
		}

		var fresh []models.Event
		for _, e := range events {
			if _, ok := seen[e.ID]; ok {
				continue
			}
			seen[e.ID] = struct{}{}
			fresh = append(fresh, e)
		}
		if len(fresh) == 0 {
			return nil, errUnchanged
		}

		added = len(fresh)
		return append(fresh, items...), nil
	})
	if errors.Is(err, errUnchanged) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return added, nil
}

// UpdateEvent replaces the event with the same id in place.
func (h *Holder) UpdateEvent(ctx context.Context, e models.Event) error {
	return update(ctx, h, e)
}
