package usecase

import (
	"context"

	"dcars/internal/domain/entity"
)

// WebhookResult reports what a provider callback did.
type WebhookResult struct {
	EventID   string                    `json:"event_id"`
	Action    entity.PaymentEventAction `json:"action"`
	Duplicate bool                      `json:"duplicate"`
	Ignored   bool                      `json:"ignored"`
}

// PaymentWebhookUsecase applies verified provider callbacks.
type PaymentWebhookUsecase interface {
	// Handle verifies the payload signature and applies the event exactly once.
	Handle(ctx context.Context, provider entity.PaymentProvider, payload []byte, signature string) (*WebhookResult, error)
}
