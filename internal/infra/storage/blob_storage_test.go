package storage

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"scoop/config"
	domainerrors "scoop/internal/domain/errors"
	"scoop/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
	"gocloud.dev/blob/memblob"
)

func TestBlobStorage_PutOpenDelete(t *testing.T) {
	ctx := context.Background()
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	store := NewBlobStorage(bucket, "https://cdn.example.com/photos")

	url, err := store.Put(ctx, "creams/abc.png", "image/png", strings.NewReader("png-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/photos/creams/abc.png", url)

	r, contentType, err := store.Open(ctx, "creams/abc.png")
	require.NoError(t, err)
	body, err := io.ReadAll(r)
	require.NoError(t, err)
	require.NoError(t, r.Close())
	assert.Equal(t, "png-bytes", string(body))
	assert.Equal(t, "image/png", contentType)

	require.NoError(t, store.Delete(ctx, "creams/abc.png"))
	_, _, err = store.Open(ctx, "creams/abc.png")
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))

	assert.NoError(t, store.Delete(ctx, "creams/abc.png"), "deleting a missing photo is not an error")
}

func TestBlobStorage_DefaultBaseURL(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	url, err := NewBlobStorage(bucket, "").Put(context.Background(), "k.jpg", "image/jpeg", strings.NewReader("x"))
	require.NoError(t, err)
	assert.Equal(t, PhotoRoute+"k.jpg", url)
}

func TestNew_OpensConfiguredBucket(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	store, err := New(Params{
		Lc:     lc,
		Ctx:    context.Background(),
		Config: &config.Config{Storage: &config.StorageConfig{BucketURL: "mem://"}},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)
	assert.NotNil(t, store)

	lc.RequireStart().RequireStop()
}

func TestNew_RejectsUnknownScheme(t *testing.T) {
	_, err := New(Params{
		Lc:     fxtest.NewLifecycle(t),
		Ctx:    context.Background(),
		Config: &config.Config{Storage: &config.StorageConfig{BucketURL: "nope://bucket"}},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	assert.Error(t, err)
}
