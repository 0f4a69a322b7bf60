package entity

import (
	"time"

	"github.com/google/uuid"
)

// WebhookEvent records a processed provider event for idempotency.
type WebhookEvent struct {
	ID          uuid.UUID       `json:"id"`
	Provider    PaymentProvider `json:"provider"`
	EventID     string          `json:"event_id"`
	EventType   string          `json:"event_type"`
	ProcessedAt time.Time       `json:"processed_at"`
}

// PaymentEventAction is the normalized outcome a provider event maps to.
type PaymentEventAction string

const (
	PaymentActionComplete           PaymentEventAction = "complete"
	PaymentActionFail               PaymentEventAction = "fail"
	PaymentActionRefund             PaymentEventAction = "refund"
	PaymentActionCancelSubscription PaymentEventAction = "cancel_subscription"
	PaymentActionIgnore             PaymentEventAction = "ignore"
)

// PaymentEvent is a verified provider callback reduced to what the marketplace needs.
type PaymentEvent struct {
	Provider          PaymentProvider
	EventID           string
	EventType         string
	Action            PaymentEventAction
	Reference         string
	ProviderReference string
	// SubscriptionRef is the provider's subscription identifier, set on cancellations.
	SubscriptionRef string
	// CustomerEmail is the payer's email as the provider knows it.
	CustomerEmail string
	// AmountMinor is the amount paid, or the total refunded so far on refunds.
	AmountMinor int64
	Currency    string
}
