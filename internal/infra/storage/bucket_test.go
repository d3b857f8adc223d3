package storage

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"workforce/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "gocloud.dev/blob/memblob"
)

func newMemBucket(t *testing.T) service.ObjectStorage {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store, err := NewBucketStorage(context.Background(), "mem://", logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	return store
}

func TestBucketUploadDownloadRoundTrip(t *testing.T) {
	store := newMemBucket(t)
	ctx := context.Background()

	require.NoError(t, store.Upload(ctx, "local/database.json", []byte(`{"version":"1.0"}`)))

	exists, err := store.Exists(ctx, "local/database.json")
	require.NoError(t, err)
	assert.True(t, exists)

	data, err := store.Download(ctx, "local/database.json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"version":"1.0"}`, string(data))
}

func TestBucketUploadOverwrites(t *testing.T) {
	store := newMemBucket(t)
	ctx := context.Background()

	require.NoError(t, store.Upload(ctx, "x", []byte("old")))
	require.NoError(t, store.Upload(ctx, "x", []byte("new")))

	data, err := store.Download(ctx, "x")
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))
}

func TestBucketMissingObject(t *testing.T) {
	store := newMemBucket(t)
	ctx := context.Background()

	exists, err := store.Exists(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = store.Download(ctx, "missing")
	assert.ErrorIs(t, err, service.ErrObjectNotFound)
}
