package repository

import (
	"context"
	"time"

	"dcars/internal/domain/entity"

	"github.com/google/uuid"
)

// DashboardRepository reads aggregate figures for dashboards.
// A nil sellerID aggregates over the whole marketplace.
type DashboardRepository interface {
	ListingStatusCounts(ctx context.Context, sellerID *uuid.UUID) ([]entity.StatusCount, error)
	ListingTotals(ctx context.Context, sellerID uuid.UUID) (views, favorites int64, err error)
	TopListings(ctx context.Context, sellerID uuid.UUID, limit int) ([]entity.ListingViews, error)
	ConversationCount(ctx context.Context, userID uuid.UUID) (int64, error)
	CompletedSales(ctx context.Context, sellerID *uuid.UUID) (count, amountMinor int64, err error)
	CompletedAmountsSince(ctx context.Context, sellerID *uuid.UUID, since time.Time) ([]entity.DatedAmount, error)
	UserRoleCounts(ctx context.Context) ([]entity.StatusCount, error)
	TransactionStatusCounts(ctx context.Context) ([]entity.StatusCount, error)
	ProfilesCreatedSince(ctx context.Context, since time.Time) ([]time.Time, error)
}
