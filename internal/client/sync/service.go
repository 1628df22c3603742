package sync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	httpClient "github.com/iudanet/lumina/internal/client/api"
	"github.com/iudanet/lumina/internal/client/collection"
	"github.com/iudanet/lumina/internal/client/storage"
	"github.com/iudanet/lumina/internal/crypto"
	"github.com/iudanet/lumina/internal/models"
	"github.com/iudanet/lumina/pkg/api"
)

//go:generate moq -out api_mock.go . CollectionsAPI

// ErrNotOnServer коллекция еще ни разу не отправлялась на сервер
var ErrNotOnServer = errors.New("collection has never been pushed")

// CollectionsAPI is the part of the backup server API used for collection transfer
type CollectionsAPI interface {
	GetCollection(ctx context.Context, accessToken string, kind models.Kind) (*api.CollectionResponse, error)
	PutCollection(ctx context.Context, accessToken string, kind models.Kind, req api.PutCollectionRequest) (*api.PutCollectionResponse, error)
}

// Credentials доступ к серверу и ключ шифрования коллекций
type Credentials struct {
	AccessToken string
	Key         []byte
}

// PushResult contains the outcome of one uploaded collection
type PushResult struct {
	Kind     models.Kind
	Revision int64
	// Overwrote - на сервере была копия, которую этот клиент не видел
	Overwrote bool
}

// PullResult contains the outcome of one downloaded collection
type PullResult struct {
	Kind     models.Kind
	Revision int64
	Items    int
}

// Service копирует коллекции целиком между локальным хранилищем и сервером.
// Сервер видит только шифротекст.
type Service struct {
	api         CollectionsAPI
	collections storage.CollectionStorage
	metadata    storage.MetadataStorage
	logger      *slog.Logger
}

// NewService creates a new sync service
func NewService(apiClient CollectionsAPI, collections storage.CollectionStorage, metadata storage.MetadataStorage, logger *slog.Logger) *Service {
	return &Service{
		api:         apiClient,
		collections: collections,
		metadata:    metadata,
		logger:      logger,
	}
}

// Push encrypts the local collection and replaces the server copy with it
func (s *Service) Push(ctx context.Context, creds Credentials, kind models.Kind) (*PushResult, error) {
	data, _, err := s.collections.LoadCollection(ctx, kind)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", kind, err)
	}
	if len(data) == 0 {
		data = []byte("[]")
	}

	sealed, err := crypto.SealToBase64(data, creds.Key, []byte(kind.StorageKey()))
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt %s: %w", kind, err)
	}

	base, err := s.metadata.GetSyncedRevision(ctx, kind)
	if err != nil {
		return nil, fmt.Errorf("failed to get synced revision: %w", err)
	}

	resp, err := s.api.PutCollection(ctx, creds.AccessToken, kind, api.PutCollectionRequest{
		Data:         sealed,
		BaseRevision: base,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to push %s: %w", kind, err)
	}

	if err := s.metadata.SaveSyncedRevision(ctx, kind, resp.Revision); err != nil {
		return nil, fmt.Errorf("failed to save synced revision: %w", err)
	}

	if resp.Overwrote {
		s.logger.Warn("Server copy was changed by another device and has been overwritten",
			"kind", kind,
			"base_revision", base,
			"revision", resp.Revision)
	}
	s.logger.Info("Collection pushed", "kind", kind, "revision", resp.Revision)

	return &PushResult{Kind: kind, Revision: resp.Revision, Overwrote: resp.Overwrote}, nil
}

// Pull downloads the server copy, checks it and overwrites the local collection.
// A copy that fails to decrypt or validate leaves the local collection untouched.
func (s *Service) Pull(ctx context.Context, creds Credentials, kind models.Kind) (*PullResult, error) {
	resp, err := s.api.GetCollection(ctx, creds.AccessToken, kind)
	if err != nil {
		if errors.Is(err, httpClient.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", kind, ErrNotOnServer)
		}
		return nil, fmt.Errorf("failed to pull %s: %w", kind, err)
	}

	data, err := crypto.OpenFromBase64(resp.Data, creds.Key, []byte(kind.StorageKey()))
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt %s: %w", kind, err)
	}

	items, err := countValid(kind, data)
	if err != nil {
		return nil, fmt.Errorf("server copy of %s is invalid: %w", kind, err)
	}

	if _, err := s.collections.SaveCollection(ctx, kind, data); err != nil {
		return nil, fmt.Errorf("failed to save %s: %w", kind, err)
	}
	if err := s.metadata.SaveSyncedRevision(ctx, kind, resp.Revision); err != nil {
		return nil, fmt.Errorf("failed to save synced revision: %w", err)
	}

	s.logger.Info("Collection pulled", "kind", kind, "revision", resp.Revision, "items", items)
	return &PullResult{Kind: kind, Revision: resp.Revision, Items: items}, nil
}

// countValid decodes the blob with the entity type of kind
func countValid(kind models.Kind, data []byte) (int, error) {
	switch kind {
	case models.KindOutfits:
		items, err := collection.Decode[models.Outfit](data)
		return len(items), err
	case models.KindVision:
		items, err := collection.Decode[models.VisionItem](data)
		return len(items), err
	case models.KindEvents:
		items, err := collection.Decode[models.Event](data)
		return len(items), err
	default:
		return 0, fmt.Errorf("unknown collection kind %q", kind)
	}
}
