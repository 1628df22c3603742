package sync

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpClient "github.com/iudanet/lumina/internal/client/api"
	"github.com/iudanet/lumina/internal/client/storage/boltdb"
	"github.com/iudanet/lumina/internal/crypto"
	"github.com/iudanet/lumina/internal/models"
	"github.com/iudanet/lumina/pkg/api"
)

const eventsJSON = `[{"id":"e1","title":"Café com Sarah","date":"2026-10-19","type":"social"}]`

func setupTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestStorage(t *testing.T) *boltdb.Storage {
	t.Helper()

	store, err := boltdb.New(context.Background(), filepath.Join(t.TempDir(), "lumina.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})
	return store
}

type serverCopy struct {
	data     string
	revision int64
}

// fakeServer хранит копии в памяти с семантикой last write wins
func fakeServer() (*CollectionsAPIMock, map[models.Kind]*serverCopy) {
	copies := map[models.Kind]*serverCopy{}
	mock := &CollectionsAPIMock{
		GetCollectionFunc: func(_ context.Context, _ string, kind models.Kind) (*api.CollectionResponse, error) {
			c, ok := copies[kind]
			if !ok {
				return nil, &httpClient.StatusError{StatusCode: 404, Message: "collection not found"}
			}
			return &api.CollectionResponse{Kind: string(kind), Data: c.data, Revision: c.revision}, nil
		},
		PutCollectionFunc: func(_ context.Context, _ string, kind models.Kind, req api.PutCollectionRequest) (*api.PutCollectionResponse, error) {
			c, ok := copies[kind]
			if !ok {
				c = &serverCopy{}
				copies[kind] = c
			}
			overwrote := c.revision != req.BaseRevision
			c.revision++
			c.data = req.Data
			return &api.PutCollectionResponse{Revision: c.revision, Overwrote: overwrote}, nil
		},
	}
	return mock, copies
}

func testCreds(fill byte) Credentials {
	key := make([]byte, crypto.KeySize)
	for i := range key {
		key[i] = fill
	}
	return Credentials{AccessToken: "token", Key: key}
}

func TestService_PushThenPullOnAnotherDevice(t *testing.T) {
	ctx := context.Background()
	mockAPI, copies := fakeServer()
	creds := testCreds(7)

	laptop := newTestStorage(t)
	_, err := laptop.SaveCollection(ctx, models.KindEvents, []byte(eventsJSON))
	require.NoError(t, err)

	pushed, err := NewService(mockAPI, laptop, laptop, setupTestLogger()).Push(ctx, creds, models.KindEvents)
	require.NoError(t, err)
	assert.Equal(t, int64(1), pushed.Revision)
	assert.False(t, pushed.Overwrote)
	assert.Equal(t, "token", mockAPI.PutCollectionCalls()[0].AccessToken)

	// сервер не видит открытый текст
	assert.NotContains(t, copies[models.KindEvents].data, "Sarah")

	phone := newTestStorage(t)
	pulled, err := NewService(mockAPI, phone, phone, setupTestLogger()).Pull(ctx, creds, models.KindEvents)
	require.NoError(t, err)
	assert.Equal(t, 1, pulled.Items)
	assert.Equal(t, int64(1), pulled.Revision)

	data, _, err := phone.LoadCollection(ctx, models.KindEvents)
	require.NoError(t, err)
	assert.JSONEq(t, eventsJSON, string(data))

	synced, err := phone.GetSyncedRevision(ctx, models.KindEvents)
	require.NoError(t, err)
	assert.Equal(t, int64(1), synced)
}

func TestService_PushNeverSavedSendsEmptyArray(t *testing.T) {
	ctx := context.Background()
	mockAPI, copies := fakeServer()
	creds := testCreds(1)
	store := newTestStorage(t)

	_, err := NewService(mockAPI, store, store, setupTestLogger()).Push(ctx, creds, models.KindVision)
	require.NoError(t, err)

	plain, err := crypto.OpenFromBase64(copies[models.KindVision].data, creds.Key, []byte(models.KindVision.StorageKey()))
	require.NoError(t, err)
	assert.Equal(t, "[]", string(plain))
}

func TestService_PushReportsOverwrite(t *testing.T) {
	ctx := context.Background()
	mockAPI, _ := fakeServer()
	creds := testCreds(3)

	first := newTestStorage(t)
	second := newTestStorage(t)

	_, err := NewService(mockAPI, first, first, setupTestLogger()).Push(ctx, creds, models.KindEvents)
	require.NoError(t, err)

	// второй клиент не делал pull и не знает о ревизии 1
	res, err := NewService(mockAPI, second, second, setupTestLogger()).Push(ctx, creds, models.KindEvents)
	require.NoError(t, err)
	assert.True(t, res.Overwrote)
	assert.Equal(t, int64(2), res.Revision)
	assert.Equal(t, int64(0), mockAPI.PutCollectionCalls()[1].Req.BaseRevision)

	// теперь второй клиент в курсе последней ревизии
	res, err = NewService(mockAPI, second, second, setupTestLogger()).Push(ctx, creds, models.KindEvents)
	require.NoError(t, err)
	assert.False(t, res.Overwrote)
	assert.Equal(t, int64(3), res.Revision)
}

func TestService_PushFailureKeepsSyncedRevision(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)
	require.NoError(t, store.SaveSyncedRevision(ctx, models.KindOutfits, 4))

	mockAPI := &CollectionsAPIMock{
		PutCollectionFunc: func(_ context.Context, _ string, _ models.Kind, _ api.PutCollectionRequest) (*api.PutCollectionResponse, error) {
			return nil, errors.New("connection refused")
		},
	}

	_, err := NewService(mockAPI, store, store, setupTestLogger()).Push(ctx, testCreds(1), models.KindOutfits)
	require.Error(t, err)
	assert.Equal(t, int64(4), mockAPI.PutCollectionCalls()[0].Req.BaseRevision)

	synced, err := store.GetSyncedRevision(ctx, models.KindOutfits)
	require.NoError(t, err)
	assert.Equal(t, int64(4), synced)
}

func TestService_PullNeverPushed(t *testing.T) {
	mockAPI, _ := fakeServer()
	store := newTestStorage(t)

	_, err := NewService(mockAPI, store, store, setupTestLogger()).Pull(context.Background(), testCreds(1), models.KindEvents)
	assert.ErrorIs(t, err, ErrNotOnServer)
}

func TestService_PullRejectedLeavesLocalUntouched(t *testing.T) {
	ctx := context.Background()
	local := `[{"id":"e0","title":"Dentist","date":"2026-01-02","type":"appointment"}]`

	tests := []struct {
		name    string
		plain   string
		key     byte
		wantErr string
	}{
		{name: "wrong key", plain: eventsJSON, key: 9, wantErr: "failed to decrypt"},
		{name: "not json", plain: "{broken", key: 1, wantErr: "invalid"},
		{name: "invalid entity", plain: `[{"id":"e1","title":"x","date":"tomorrow","type":"social"}]`, key: 1, wantErr: "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newTestStorage(t)
			_, err := store.SaveCollection(ctx, models.KindEvents, []byte(local))
			require.NoError(t, err)

			sealed, err := crypto.SealToBase64([]byte(tt.plain), testCreds(tt.key).Key, []byte(models.KindEvents.StorageKey()))
			require.NoError(t, err)
			mockAPI := &CollectionsAPIMock{
				GetCollectionFunc: func(_ context.Context, _ string, _ models.Kind) (*api.CollectionResponse, error) {
					return &api.CollectionResponse{Data: sealed, Revision: 5}, nil
				},
			}

			_, err = NewService(mockAPI, store, store, setupTestLogger()).Pull(ctx, testCreds(1), models.KindEvents)
			require.Error(t, err)
			assert.ErrorContains(t, err, tt.wantErr)

			data, _, err := store.LoadCollection(ctx, models.KindEvents)
			require.NoError(t, err)
			assert.Equal(t, local, string(data))

			synced, err := store.GetSyncedRevision(ctx, models.KindEvents)
			require.NoError(t, err)
			assert.Equal(t, int64(0), synced)
		})
	}
}

func TestService_PullRejectsCopyOfAnotherKind(t *testing.T) {
	ctx := context.Background()
	creds := testCreds(1)

	// шифротекст events, подложенный как outfits, не расшифруется из-за AAD
	sealed, err := crypto.SealToBase64([]byte(eventsJSON), creds.Key, []byte(models.KindEvents.StorageKey()))
	require.NoError(t, err)
	mockAPI := &CollectionsAPIMock{
		GetCollectionFunc: func(_ context.Context, _ string, _ models.Kind) (*api.CollectionResponse, error) {
			return &api.CollectionResponse{Data: sealed, Revision: 1}, nil
		},
	}

	store := newTestStorage(t)
	_, err = NewService(mockAPI, store, store, setupTestLogger()).Pull(ctx, creds, models.KindOutfits)
	assert.ErrorIs(t, err, crypto.ErrDecrypt)
}
