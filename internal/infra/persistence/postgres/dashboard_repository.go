package postgres

import (
	"context"
	"time"

	"dcars/internal/domain/entity"
	"dcars/internal/domain/repository"
	"dcars/internal/errors"
	"dcars/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// dashboardRepository implements the repository.DashboardRepository interface.
// Every query is routed to a read replica when one is configured.
type dashboardRepository struct {
	db *gorm.DB
}

// NewDashboardRepository is the constructor for dashboardRepository.
func NewDashboardRepository(db *gorm.DB) repository.DashboardRepository {
	return &dashboardRepository{
		db: db,
	}
}

func (repo *dashboardRepository) read(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).Clauses(dbresolver.Read)
}

// ListingStatusCounts counts listings per status.
func (repo *dashboardRepository) ListingStatusCounts(ctx context.Context, sellerID *uuid.UUID) ([]entity.StatusCount, error) {
	query := repo.read(ctx).
		Model(&model.VehicleModel{}).
		Select("status, COUNT(*) AS count")
	if sellerID != nil {
		query = query.Where("seller_id = ?", *sellerID)
	}

	var counts []entity.StatusCount
	if err := query.Group("status").Order("status").Scan(&counts).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count listings by status")
	}

	return counts, nil
}

type listingTotals struct {
	Views     int64
	Favorites int64
}

// ListingTotals sums views and favorites over a seller's listings.
func (repo *dashboardRepository) ListingTotals(ctx context.Context, sellerID uuid.UUID) (views, favorites int64, err error) {
	var totals listingTotals

	if err := repo.read(ctx).
		Raw(`SELECT
				COALESCE((SELECT SUM(view_count) FROM vehicles WHERE seller_id = ? AND deleted_at IS NULL), 0) AS views,
				(SELECT COUNT(*) FROM favorites JOIN vehicles ON vehicles.id = favorites.vehicle_id
					WHERE vehicles.seller_id = ? AND vehicles.deleted_at IS NULL) AS favorites`,
			sellerID, sellerID).
		Scan(&totals).Error; err != nil {
		return 0, 0, errors.Wrap(err, "failed to sum listing totals")
	}

	return totals.Views, totals.Favorites, nil
}

// TopListings returns a seller's most viewed listings.
func (repo *dashboardRepository) TopListings(ctx context.Context, sellerID uuid.UUID, limit int) ([]entity.ListingViews, error) {
	var listings []entity.ListingViews

	if err := repo.read(ctx).
		Raw(`SELECT vehicles.id AS vehicle_id, vehicles.title, vehicles.view_count,
				(SELECT COUNT(*) FROM favorites WHERE favorites.vehicle_id = vehicles.id) AS favorites
			FROM vehicles
			WHERE vehicles.seller_id = ? AND vehicles.deleted_at IS NULL
			ORDER BY vehicles.view_count DESC, vehicles.created_at DESC
			LIMIT ?`, sellerID, limit).
		Scan(&listings).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load top listings")
	}

	return listings, nil
}

// ConversationCount counts conversations the user takes part in.
func (repo *dashboardRepository) ConversationCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.read(ctx).
		Model(&model.ConversationModel{}).
		Where("buyer_id = ? OR seller_id = ?", userID, userID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count conversations")
	}

	return count, nil
}

type salesTotals struct {
	Count  int64
	Amount int64
}

// CompletedSales counts completed transactions and sums their amounts.
func (repo *dashboardRepository) CompletedSales(ctx context.Context, sellerID *uuid.UUID) (count, amountMinor int64, err error) {
	query := repo.read(ctx).
		Model(&model.TransactionModel{}).
		Select("COUNT(*) AS count, COALESCE(SUM(amount_minor), 0) AS amount").
		Where("status = ?", string(entity.TransactionStatusCompleted))
	if sellerID != nil {
		query = query.Where("seller_id = ?", *sellerID)
	}

	var totals salesTotals
	if err := query.Scan(&totals).Error; err != nil {
		return 0, 0, errors.Wrap(err, "failed to sum completed sales")
	}

	return totals.Count, totals.Amount, nil
}

// CompletedAmountsSince lists completed transaction amounts since a point in time.
func (repo *dashboardRepository) CompletedAmountsSince(ctx context.Context, sellerID *uuid.UUID, since time.Time) ([]entity.DatedAmount, error) {
	query := repo.read(ctx).
		Model(&model.TransactionModel{}).
		Select("completed_at AS at, amount_minor AS amount").
		Where("status = ? AND completed_at >= ?", string(entity.TransactionStatusCompleted), since)
	if sellerID != nil {
		query = query.Where("seller_id = ?", *sellerID)
	}

	var amounts []entity.DatedAmount
	if err := query.Order("completed_at ASC").Scan(&amounts).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load completed amounts")
	}

	return amounts, nil
}

// UserRoleCounts counts profiles per role.
func (repo *dashboardRepository) UserRoleCounts(ctx context.Context) ([]entity.StatusCount, error) {
	var counts []entity.StatusCount

	if err := repo.read(ctx).
		Model(&model.ProfileModel{}).
		Select("role AS status, COUNT(*) AS count").
		Group("role").
		Order("role").
		Scan(&counts).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count users by role")
	}

	return counts, nil
}

// TransactionStatusCounts counts transactions per status.
func (repo *dashboardRepository) TransactionStatusCounts(ctx context.Context) ([]entity.StatusCount, error) {
	var counts []entity.StatusCount

	if err := repo.read(ctx).
		Model(&model.TransactionModel{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Order("status").
		Scan(&counts).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count transactions by status")
	}

	return counts, nil
}

// ProfilesCreatedSince lists profile creation times since a point in time.
func (repo *dashboardRepository) ProfilesCreatedSince(ctx context.Context, since time.Time) ([]time.Time, error) {
	var createdAt []time.Time

	if err := repo.read(ctx).
		Model(&model.ProfileModel{}).
		Where("created_at >= ?", since).
		Order("created_at ASC").
		Pluck("created_at", &createdAt).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load profile creation times")
	}

	return createdAt, nil
}
