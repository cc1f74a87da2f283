package storage

import (
	"context"
	"io"
	"log/slog"
	"net/url"
	"strings"

	"knect/config"
	"knect/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"

	// Registered URL schemes: file://, mem://, gs://
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
)

const defaultBucketURL = "mem://"

type bucketStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
}

// Params holds dependencies for BlobStorage, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured bucket and closes it on shutdown.
func New(params Params) (service.BlobStorage, error) {
	bucketURL := defaultBucketURL
	publicBaseURL := ""
	if cfg := params.Config.Storage; cfg != nil {
		if cfg.BucketURL != "" {
			bucketURL = cfg.BucketURL
		}
		publicBaseURL = cfg.PublicBaseURL
	}

	bucket, err := blob.OpenBucket(params.Ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", bucketURL)
	}

	params.Logger.Info("Avatar storage opened",
		slog.String("bucket", redactBucketURL(bucketURL)),
		slog.String("public_base_url", publicBaseURL),
	)

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return errors.WithStack(bucket.Close())
		},
	})

	return NewBucketStorage(bucket, publicBaseURL), nil
}

// NewBucketStorage wraps an opened bucket.
func NewBucketStorage(bucket *blob.Bucket, publicBaseURL string) service.BlobStorage {
	return &bucketStorage{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

func (s *bucketStorage) Put(ctx context.Context, key string, data []byte, contentType string) error {
	opts := &blob.WriterOptions{
		ContentType:  contentType,
		CacheControl: "public, max-age=31536000",
	}

	if err := s.bucket.WriteAll(ctx, key, data, opts); err != nil {
		return errors.Wrapf(err, "failed to write object %s", key)
	}

	return nil
}

func (s *bucketStorage) Open(ctx context.Context, key string) (io.ReadCloser, string, error) {
	reader, err := s.bucket.NewReader(ctx, key, nil)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, "", service.ErrObjectNotFound
		}

		return nil, "", errors.Wrapf(err, "failed to open object %s", key)
	}

	return reader, reader.ContentType(), nil
}

func (s *bucketStorage) PublicURL(key string) string {
	escaped := (&url.URL{Path: key}).EscapedPath()
	if s.publicBaseURL == "" {
		return "/" + strings.TrimLeft(escaped, "/")
	}

	return s.publicBaseURL + "/" + strings.TrimLeft(escaped, "/")
}

func redactBucketURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return "invalid"
	}
	u.User = nil
	u.RawQuery = ""

	return u.String()
}
