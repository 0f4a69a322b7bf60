package impl

import (
	"context"
	"log/slog"

	"dcars/config"
	"dcars/internal/domain/entity"
	domainerrors "dcars/internal/domain/errors"
	"dcars/internal/domain/repository"
	"dcars/internal/errors"
	"dcars/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type favoriteService struct {
	favoriteRepo  repository.FavoriteRepository
	vehicleRepo   repository.VehicleRepository
	notifications usecase.NotificationUsecase
	cfg           *config.Config
	logger        *slog.Logger
}

// FavoriteServiceParams holds dependencies for FavoriteService, injected by Fx.
type FavoriteServiceParams struct {
	fx.In

	FavoriteRepo  repository.FavoriteRepository
	VehicleRepo   repository.VehicleRepository
	Notifications usecase.NotificationUsecase
	Config        *config.Config
	Logger        *slog.Logger
}

// NewFavoriteService is the constructor for favoriteService.
func NewFavoriteService(params FavoriteServiceParams) usecase.FavoriteUsecase {
	return &favoriteService{
		favoriteRepo:  params.FavoriteRepo,
		vehicleRepo:   params.VehicleRepo,
		notifications: params.Notifications,
		cfg:           params.Config,
		logger:        params.Logger,
	}
}

// Add saves an active listing. Saving it again is a no-op and does not notify the seller twice.
func (srv *favoriteService) Add(ctx context.Context, userID, vehicleID uuid.UUID) error {
	vehicle, err := srv.vehicleRepo.FindVehicleByID(ctx, vehicleID)
	if err != nil {
		return mapVehicleError(err, "failed to find vehicle")
	}
	if vehicle.Status != entity.VehicleStatusActive {
		return errors.Wrap(domainerrors.ErrVehicleNotFound, "listing is not public")
	}

	already, err := srv.favoriteRepo.IsFavorite(ctx, userID, vehicleID)
	if err != nil {
		return errors.Wrap(err, "failed to check favorite")
	}
	if already {
		return nil
	}

	if err := srv.favoriteRepo.AddFavorite(ctx, &entity.Favorite{UserID: userID, VehicleID: vehicleID}); err != nil {
		return mapVehicleError(err, "failed to add favorite")
	}

	if vehicle.SellerID != userID {
		notifyQuietly(ctx, srv.notifications, srv.logger, &usecase.NotifyInput{
			UserID: vehicle.SellerID,
			Type:   entity.NotificationTypeFavorite,
			Title:  "Someone saved your listing",
			Body:   vehicle.Title,
			Data:   map[string]string{"vehicle_id": vehicle.ID.String()},
		})
	}

	return nil
}

// Remove forgets a saved listing.
func (srv *favoriteService) Remove(ctx context.Context, userID, vehicleID uuid.UUID) error {
	if err := srv.favoriteRepo.RemoveFavorite(ctx, userID, vehicleID); err != nil {
		return errors.Wrap(err, "failed to remove favorite")
	}

	return nil
}

// List returns the user's saved listings, most recently saved first.
func (srv *favoriteService) List(ctx context.Context, userID uuid.UUID, page entity.PageRequest) (entity.Page[*entity.Vehicle], error) {
	page = clampPage(srv.cfg, page)

	vehicles, total, err := srv.favoriteRepo.ListFavoriteVehicles(ctx, userID, page)
	if err != nil {
		return entity.Page[*entity.Vehicle]{}, errors.Wrap(err, "failed to list favorites")
	}

	return entity.NewPage(vehicles, total, page), nil
}

// IsFavorite reports whether the user saved the listing.
func (srv *favoriteService) IsFavorite(ctx context.Context, userID, vehicleID uuid.UUID) (bool, error) {
	ok, err := srv.favoriteRepo.IsFavorite(ctx, userID, vehicleID)
	if err != nil {
		return false, errors.Wrap(err, "failed to check favorite")
	}

	return ok, nil
}
