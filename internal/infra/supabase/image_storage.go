package supabase

import (
	"context"
	"io"
	"log/slog"

	"dcars/internal/domain/service"
	"dcars/internal/errors"

	storage_go "github.com/supabase-community/storage-go"
)

type imageStorage struct {
	storage *storage_go.Client
	bucket  string
	logger  *slog.Logger
}

// NewImageStorage creates an ImageStorage writing to a public Supabase Storage bucket.
func NewImageStorage(storage *storage_go.Client, bucket string, logger *slog.Logger) service.ImageStorage {
	return &imageStorage{
		storage: storage,
		bucket:  bucket,
		logger:  logger,
	}
}

// Upload stores the object, replacing any previous object at path, and returns its public URL.
func (s *imageStorage) Upload(ctx context.Context, path, contentType string, body io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", errors.WithStack(err)
	}

	upsert := true
	if _, err := s.storage.UploadFile(s.bucket, path, body, storage_go.FileOptions{
		ContentType: &contentType,
		Upsert:      &upsert,
	}); err != nil {
		return "", errors.Wrapf(err, "upload %s", path)
	}

	return s.storage.GetPublicUrl(s.bucket, path).SignedURL, nil
}

// Delete removes objects from the bucket.
func (s *imageStorage) Delete(ctx context.Context, paths ...string) error {
	if len(paths) == 0 {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	if _, err := s.storage.RemoveFile(s.bucket, paths); err != nil {
		return errors.Wrapf(err, "remove %d objects", len(paths))
	}

	s.logger.Debug("Removed storage objects", slog.Int("count", len(paths)))

	return nil
}
