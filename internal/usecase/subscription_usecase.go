package usecase

import (
	"context"

	"dcars/internal/domain/entity"

	"github.com/google/uuid"
)

// SubscriptionUsecase exposes seller plans.
type SubscriptionUsecase interface {
	ListPlans(ctx context.Context) []entity.Plan

	// GetCurrent returns the caller's current plan subscription.
	GetCurrent(ctx context.Context, userID uuid.UUID) (*entity.Subscription, error)

	// Cancel stops renewal; the plan stays usable until the period ends.
	Cancel(ctx context.Context, userID uuid.UUID) (*entity.Subscription, error)

	// Entitlements returns what the user's current plan allows, or the free tier without one.
	Entitlements(ctx context.Context, userID uuid.UUID) (*Entitlements, error)
}

// Entitlements are the limits a seller works under.
type Entitlements struct {
	PlanCode string `json:"plan_code,omitempty"`
	// ListingLimit caps draft and active listings; 0 means unlimited.
	ListingLimit int  `json:"listing_limit"`
	Featured     bool `json:"featured"`
}
