package service

import (
	"context"
	"io"
)

// PhotoStorage stores catalog photos and returns where they can be fetched.
type PhotoStorage interface {
	// Put writes the object and returns its public URL.
	Put(ctx context.Context, key, contentType string, body io.Reader) (string, error)

	// Open streams a stored object along with its content type.
	Open(ctx context.Context, key string) (io.ReadCloser, string, error)

	Delete(ctx context.Context, key string) error
}
