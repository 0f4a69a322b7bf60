package entity

import (
	"time"

	"github.com/google/uuid"
)

// SubscriptionStatus is the billing state of a seller plan.
type SubscriptionStatus string

const (
	SubscriptionStatusPending  SubscriptionStatus = "pending"
	SubscriptionStatusActive   SubscriptionStatus = "active"
	SubscriptionStatusPastDue  SubscriptionStatus = "past_due"
	SubscriptionStatusCanceled SubscriptionStatus = "canceled"
	SubscriptionStatusExpired  SubscriptionStatus = "expired"
)

// Subscription is a seller's paid plan.
type Subscription struct {
	ID                     uuid.UUID          `json:"id"`
	UserID                 uuid.UUID          `json:"user_id"`
	PlanCode               string             `json:"plan_code"`
	Status                 SubscriptionStatus `json:"status"`
	Provider               PaymentProvider    `json:"provider"`
	ProviderSubscriptionID string             `json:"provider_subscription_id,omitempty"`
	CurrentPeriodStart     *time.Time         `json:"current_period_start,omitempty"`
	CurrentPeriodEnd       *time.Time         `json:"current_period_end,omitempty"`
	CancelAtPeriodEnd      bool               `json:"cancel_at_period_end"`
	CreatedAt              time.Time          `json:"created_at"`
	UpdatedAt              time.Time          `json:"updated_at"`
}

// IsCurrent reports whether the plan grants its limits at the given time.
func (s *Subscription) IsCurrent(now time.Time) bool {
	if s.Status != SubscriptionStatusActive && s.Status != SubscriptionStatusPastDue {
		return false
	}

	return s.CurrentPeriodEnd == nil || s.CurrentPeriodEnd.After(now)
}

// Plan is a purchasable seller plan. Plans are configured, not stored.
type Plan struct {
	Code         string `json:"code"`
	Name         string `json:"name"`
	PriceMinor   int64  `json:"price_minor"`
	Currency     string `json:"currency"`
	ListingLimit int    `json:"listing_limit"`
	PeriodDays   int    `json:"period_days"`
	Featured     bool   `json:"featured"`
}

// Unlimited reports whether the plan has no listing cap.
func (p Plan) Unlimited() bool {
	return p.ListingLimit <= 0
}
