package usecase

import (
	"context"

	"dcars/internal/domain/entity"

	"github.com/google/uuid"
)

// FavoriteUsecase manages saved listings.
type FavoriteUsecase interface {
	// Add saves a listing. Saving twice is a no-op.
	Add(ctx context.Context, userID, vehicleID uuid.UUID) error
	Remove(ctx context.Context, userID, vehicleID uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID, page entity.PageRequest) (entity.Page[*entity.Vehicle], error)
	IsFavorite(ctx context.Context, userID, vehicleID uuid.UUID) (bool, error)
}
