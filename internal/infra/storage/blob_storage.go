// Package storage provides object storage backends for listing images.
package storage

import (
	"context"
	"io"
	"log/slog"
	"net/url"
	"strings"

	"dcars/config"
	"dcars/internal/domain/constants"
	"dcars/internal/domain/service"
	"dcars/internal/errors"
	"dcars/internal/infra/supabase"

	supa "github.com/supabase-community/supabase-go"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/gcsblob"  // gs:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
	"gocloud.dev/gcerrors"
)

// blobStorage implements ImageStorage on any gocloud.dev bucket.
type blobStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
}

// NewBlobStorage wraps an opened bucket. Public URLs are publicBaseURL joined with the object key.
func NewBlobStorage(bucket *blob.Bucket, publicBaseURL string) service.ImageStorage {
	return &blobStorage{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

// Upload writes the object and returns its public URL.
func (s *blobStorage) Upload(ctx context.Context, path, contentType string, body io.Reader) (string, error) {
	w, err := s.bucket.NewWriter(ctx, path, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return "", errors.Wrapf(err, "open writer for %s", path)
	}

	if _, err := io.Copy(w, body); err != nil {
		_ = w.Close()

		return "", errors.Wrapf(err, "write %s", path)
	}

	if err := w.Close(); err != nil {
		return "", errors.Wrapf(err, "commit %s", path)
	}

	return s.publicBaseURL + "/" + escapeKey(path), nil
}

// Delete removes objects, ignoring ones that do not exist.
func (s *blobStorage) Delete(ctx context.Context, paths ...string) error {
	for _, path := range paths {
		if err := s.bucket.Delete(ctx, path); err != nil && gcerrors.Code(err) != gcerrors.NotFound {
			return errors.Wrapf(err, "delete %s", path)
		}
	}

	return nil
}

func escapeKey(key string) string {
	parts := strings.Split(key, "/")
	for i, part := range parts {
		parts[i] = url.PathEscape(part)
	}

	return strings.Join(parts, "/")
}

// Params holds dependencies for the configured ImageStorage, injected by Fx
type Params struct {
	fx.In

	Lc       fx.Lifecycle
	Ctx      context.Context
	Config   *config.Config
	Logger   *slog.Logger
	Supabase *supa.Client `optional:"true"`
}

// NewImageStorage selects the storage backend from configuration
func NewImageStorage(params Params) (service.ImageStorage, error) {
	cfg := params.Config.Storage

	switch cfg.Provider {
	case "", constants.StorageProviderSupabase:
		if params.Supabase == nil {
			return nil, errors.New("supabase client is required for supabase storage")
		}
		params.Logger.Info("Using Supabase storage", slog.String("bucket", params.Config.Supabase.StorageBucket))

		return supabase.NewImageStorage(params.Supabase.Storage, params.Config.Supabase.StorageBucket, params.Logger), nil

	case constants.StorageProviderBlob:
		if cfg.BucketURL == "" {
			return nil, errors.New("bucket url is required for blob storage")
		}

		bucket, err := blob.OpenBucket(params.Ctx, cfg.BucketURL)
		if err != nil {
			return nil, errors.Wrapf(err, "open bucket %s", cfg.BucketURL)
		}

		params.Lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				return errors.WithStack(bucket.Close())
			},
		})
		params.Logger.Info("Using blob storage", slog.String("bucket_url", cfg.BucketURL))

		return NewBlobStorage(bucket, cfg.PublicBaseURL), nil

	default:
		return nil, errors.Errorf("unknown storage provider: %s", cfg.Provider)
	}
}

// Module provides the storage FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewImageStorage),
)
