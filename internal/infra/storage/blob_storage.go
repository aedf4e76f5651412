// Package storage keeps uploaded catalog photos in a gocloud.dev bucket.
package storage

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"scoop/config"
	domainerrors "scoop/internal/domain/errors"
	"scoop/internal/domain/service"
	"scoop/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/gcsblob"  // gs:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
	"gocloud.dev/gcerrors"
)

const (
	defaultBucketURL = "mem://"
	// PhotoRoute is where photos are served when no public base URL is set.
	PhotoRoute = "/api/v1/photos/"
)

type blobStorage struct {
	bucket  *blob.Bucket
	baseURL string
}

// Params holds dependencies for the photo storage, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured bucket and closes it on shutdown.
func New(params Params) (service.PhotoStorage, error) {
	bucketURL, baseURL := defaultBucketURL, ""
	if cfg := params.Config.Storage; cfg != nil {
		if cfg.BucketURL != "" {
			bucketURL = cfg.BucketURL
		}
		baseURL = cfg.PublicBaseURL
	}

	bucket, err := blob.OpenBucket(params.Ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", bucketURL)
	}

	params.Logger.Info("Photo storage ready", slog.String("bucket", bucketURL))
	params.Lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return NewBlobStorage(bucket, baseURL), nil
}

// NewBlobStorage wraps an open bucket.
func NewBlobStorage(bucket *blob.Bucket, baseURL string) service.PhotoStorage {
	if baseURL == "" {
		baseURL = PhotoRoute
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	return &blobStorage{bucket: bucket, baseURL: baseURL}
}

func (s *blobStorage) Put(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	w, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return "", errors.Wrapf(err, "failed to open writer for %s", key)
	}
	if _, err := io.Copy(w, body); err != nil {
		_ = w.Close()
		return "", errors.Wrapf(err, "failed to write %s", key)
	}
	if err := w.Close(); err != nil {
		return "", errors.Wrapf(err, "failed to commit %s", key)
	}

	return s.baseURL + key, nil
}

func (s *blobStorage) Open(ctx context.Context, key string) (io.ReadCloser, string, error) {
	r, err := s.bucket.NewReader(ctx, key, nil)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, "", domainerrors.ErrNotFound.WithMessage("Photo not found")
		}

		return nil, "", errors.Wrapf(err, "failed to open %s", key)
	}

	return r, r.ContentType(), nil
}

func (s *blobStorage) Delete(ctx context.Context, key string) error {
	err := s.bucket.Delete(ctx, key)
	if err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrapf(err, "failed to delete %s", key)
	}

	return nil
}
