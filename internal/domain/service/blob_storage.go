package service

import (
	"context"
	"errors"
	"io"
)

// ErrObjectNotFound is returned by Open when no object exists at the key.
var ErrObjectNotFound = errors.New("object not found")

// BlobStorage stores binary objects under identity-scoped keys and exposes durable public URLs.
type BlobStorage interface {
	// Put writes data at key, replacing any previous object.
	Put(ctx context.Context, key string, data []byte, contentType string) error

	// Open returns a reader for the object at key along with its content type.
	Open(ctx context.Context, key string) (io.ReadCloser, string, error)

	// PublicURL returns the retrieval URL of key.
	PublicURL(key string) string
}
