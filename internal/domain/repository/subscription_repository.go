package repository

import (
	"context"
	"time"

	"dcars/internal/domain/entity"
	"dcars/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for subscription persistence.
var (
	// ErrSubscriptionNotFound is returned when a subscription is not found.
	ErrSubscriptionNotFound = errors.New("subscription not found")
)

// SubscriptionRepository defines the interface for seller plan subscriptions.
type SubscriptionRepository interface {
	// CreateSubscription persists a new subscription.
	CreateSubscription(ctx context.Context, sub *entity.Subscription) error

	// FindSubscriptionByID retrieves a subscription by its ID.
	FindSubscriptionByID(ctx context.Context, id uuid.UUID) (*entity.Subscription, error)

	// FindCurrentSubscription retrieves the user's latest active or past due subscription.
	FindCurrentSubscription(ctx context.Context, userID uuid.UUID) (*entity.Subscription, error)

	// FindSubscriptionByProviderID retrieves a subscription by the provider's identifier.
	FindSubscriptionByProviderID(ctx context.Context, provider entity.PaymentProvider, providerSubscriptionID string) (*entity.Subscription, error)

	// FindDueSubscriptions returns active or past due subscriptions whose period ended before now.
	FindDueSubscriptions(ctx context.Context, now time.Time) ([]*entity.Subscription, error)

	// UpdateSubscription saves all mutable subscription columns.
	UpdateSubscription(ctx context.Context, sub *entity.Subscription) error
}
