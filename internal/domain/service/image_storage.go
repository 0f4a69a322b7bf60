package service

import (
	"context"
	"io"
)

// ImageStorage stores listing photos and avatars in object storage.
type ImageStorage interface {
	// Upload writes the object at path and returns its public URL.
	Upload(ctx context.Context, path, contentType string, body io.Reader) (string, error)

	// Delete removes objects. Missing objects are not an error.
	Delete(ctx context.Context, paths ...string) error
}
