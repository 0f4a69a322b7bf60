// Package impl contains the implementation of the application's business logic.
package impl

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"

	"dcars/config"
	deliverycontext "dcars/internal/delivery/context"
	"dcars/internal/domain/entity"
	domainerrors "dcars/internal/domain/errors"
	"dcars/internal/errors"
	"dcars/internal/usecase"

	"github.com/gabriel-vasile/mimetype"
)

// contextLogger returns a request-scoped logger if available, otherwise the fallback.
func contextLogger(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, fallback)
}

// clampPage applies the configured listing page defaults.
func clampPage(cfg *config.Config, page entity.PageRequest) entity.PageRequest {
	return page.Clamp(cfg.Listing.DefaultPageSize, cfg.Listing.MaxPageSize)
}

// imageSniffLen is how much of an upload is read to detect its type.
const imageSniffLen = 3072

// validateImage checks an upload against the image rules and returns the file extension to store it under.
// The type is detected from the content; the client's filename and Content-Type are not trusted.
// On success file.ContentType holds the detected type and file.Body still yields the whole upload.
func validateImage(file *usecase.FileUpload, maxBytes int64) (string, error) {
	if file == nil || file.Body == nil {
		return "", errors.Wrap(domainerrors.ErrInvalidImage, "missing file")
	}

	if file.Size <= 0 || (maxBytes > 0 && file.Size > maxBytes) {
		return "", errors.Wrapf(domainerrors.ErrInvalidImage, "size %d", file.Size)
	}

	head := make([]byte, imageSniffLen)
	n, err := io.ReadFull(file.Body, head)
	if err != nil && !errors.IsAny(err, io.EOF, io.ErrUnexpectedEOF) {
		return "", errors.Wrap(err, "read upload")
	}
	head = head[:n]

	detected := mimetype.Detect(head)
	if !strings.HasPrefix(detected.String(), "image/") || detected.Extension() == "" {
		return "", errors.Wrapf(domainerrors.ErrInvalidImage, "content is %s", detected.String())
	}

	file.ContentType = detected.String()
	file.Body = io.MultiReader(bytes.NewReader(head), file.Body)

	return detected.Extension(), nil
}

// trimmed returns a trimmed copy of an optional string.
func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)

	return &v
}

// excerpt shortens text for notification bodies.
func excerpt(text string, limit int) string {
	runes := []rune(strings.TrimSpace(text))
	if len(runes) <= limit {
		return string(runes)
	}

	return strings.TrimSpace(string(runes[:limit-1])) + "…"
}
