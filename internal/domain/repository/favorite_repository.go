package repository

import (
	"context"

	"dcars/internal/domain/entity"

	"github.com/google/uuid"
)

// FavoriteRepository defines the interface for saved listings.
type FavoriteRepository interface {
	// AddFavorite saves a listing for a user. Saving twice is a no-op.
	AddFavorite(ctx context.Context, favorite *entity.Favorite) error

	// RemoveFavorite removes a saved listing. Removing a missing favorite is a no-op.
	RemoveFavorite(ctx context.Context, userID, vehicleID uuid.UUID) error

	// IsFavorite reports whether the user saved the listing.
	IsFavorite(ctx context.Context, userID, vehicleID uuid.UUID) (bool, error)

	// ListFavoriteVehicles returns one page of saved listings, newest first.
	ListFavoriteVehicles(ctx context.Context, userID uuid.UUID, page entity.PageRequest) ([]*entity.Vehicle, int64, error)
}
