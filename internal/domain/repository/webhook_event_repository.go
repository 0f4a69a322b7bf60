package repository

import (
	"context"

	"dcars/internal/domain/entity"
	"dcars/internal/errors"
)

// ErrDuplicateWebhookEvent is returned when a provider event was already recorded.
var ErrDuplicateWebhookEvent = errors.New("webhook event already processed")

// WebhookEventRepository is the idempotency ledger for payment provider callbacks.
type WebhookEventRepository interface {
	// RecordEvent stores a provider event, failing with ErrDuplicateWebhookEvent if it was seen before.
	RecordEvent(ctx context.Context, event *entity.WebhookEvent) error
}
