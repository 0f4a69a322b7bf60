package postgres

import (
	"context"

	"dcars/internal/domain/entity"
	domainerrors "dcars/internal/domain/errors"
	"dcars/internal/domain/repository"
	"dcars/internal/errors"
	"dcars/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// favoriteRepository implements the repository.FavoriteRepository interface.
type favoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository is the constructor for favoriteRepository.
func NewFavoriteRepository(db *gorm.DB) repository.FavoriteRepository {
	return &favoriteRepository{
		db: db,
	}
}

// AddFavorite saves a listing for a user. Saving twice is a no-op.
func (repo *favoriteRepository) AddFavorite(ctx context.Context, favorite *entity.Favorite) error {
	favoriteM := &model.FavoriteModel{
		UserID:    favorite.UserID,
		VehicleID: favorite.VehicleID,
		CreatedAt: favorite.CreatedAt,
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(favoriteM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrVehicleNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to add favorite")
	}

	favorite.CreatedAt = favoriteM.CreatedAt

	return nil
}

// RemoveFavorite removes a saved listing. Removing a missing favorite is a no-op.
func (repo *favoriteRepository) RemoveFavorite(ctx context.Context, userID, vehicleID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND vehicle_id = ?", userID, vehicleID).
		Delete(&model.FavoriteModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to remove favorite")
	}

	return nil
}

// IsFavorite reports whether the user saved the listing.
func (repo *favoriteRepository) IsFavorite(ctx context.Context, userID, vehicleID uuid.UUID) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.FavoriteModel{}).
		Where("user_id = ? AND vehicle_id = ?", userID, vehicleID).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check favorite")
	}

	return count > 0, nil
}

// ListFavoriteVehicles returns one page of saved listings, most recently saved first.
func (repo *favoriteRepository) ListFavoriteVehicles(ctx context.Context, userID uuid.UUID, page entity.PageRequest) ([]*entity.Vehicle, int64, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.VehicleModel{}).
		Joins("JOIN favorites ON favorites.vehicle_id = vehicles.id").
		Where("favorites.user_id = ?", userID).
		Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count favorites")
	}

	var vehicleModels []*model.VehicleModel
	if err := query.
		Preload("Images", imagesByPosition).
		Order("favorites.created_at DESC").
		Offset(page.Offset()).
		Limit(page.PageSize).
		Find(&vehicleModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list favorite vehicles")
	}

	return toVehicleDomains(vehicleModels), total, nil
}
