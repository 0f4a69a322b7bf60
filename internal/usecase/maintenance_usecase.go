package usecase

import (
	"context"
	"time"
)

// MaintenanceReport counts what a maintenance run changed.
type MaintenanceReport struct {
	ExpiredListings      int   `json:"expired_listings"`
	ExpiredSubscriptions int   `json:"expired_subscriptions"`
	PurgedNotifications  int64 `json:"purged_notifications"`
}

// MaintenanceUsecase runs periodic housekeeping.
type MaintenanceUsecase interface {
	ExpireListings(ctx context.Context, now time.Time) (int, error)
	ExpireSubscriptions(ctx context.Context, now time.Time) (int, error)
	PurgeNotifications(ctx context.Context, before time.Time) (int64, error)

	// RunAll runs every job once, using the configured notification retention.
	RunAll(ctx context.Context, now time.Time) (*MaintenanceReport, error)
}
