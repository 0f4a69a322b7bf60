package impl

import (
	"context"
	"testing"

	"dcars/internal/domain/entity"
	domainerrors "dcars/internal/domain/errors"
	mockRepo "dcars/internal/mocks/repository"
	mockUsecase "dcars/internal/mocks/usecase"
	"dcars/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestFavoriteService(t *testing.T) (usecase.FavoriteUsecase, *mockRepo.MockFavoriteRepository, *mockRepo.MockVehicleRepository, *mockUsecase.MockNotificationUsecase) {
	favoriteRepo := mockRepo.NewMockFavoriteRepository(t)
	vehicleRepo := mockRepo.NewMockVehicleRepository(t)
	notifications := mockUsecase.NewMockNotificationUsecase(t)

	svc := NewFavoriteService(FavoriteServiceParams{
		FavoriteRepo:  favoriteRepo,
		VehicleRepo:   vehicleRepo,
		Notifications: notifications,
		Config:        newTestConfig(),
		Logger:        discardLogger(),
	})

	return svc, favoriteRepo, vehicleRepo, notifications
}

func TestFavoriteService_Add_NotifiesSeller(t *testing.T) {
	svc, favoriteRepo, vehicleRepo, notifications := createTestFavoriteService(t)

	ctx := context.Background()
	userID := uuid.New()
	vehicle := &entity.Vehicle{ID: uuid.New(), SellerID: uuid.New(), Title: "Honda Civic", Status: entity.VehicleStatusActive}

	vehicleRepo.EXPECT().FindVehicleByID(ctx, vehicle.ID).Return(vehicle, nil)
	favoriteRepo.EXPECT().IsFavorite(ctx, userID, vehicle.ID).Return(false, nil)
	favoriteRepo.EXPECT().
		AddFavorite(ctx, &entity.Favorite{UserID: userID, VehicleID: vehicle.ID}).
		Return(nil)
	notifications.EXPECT().
		Notify(ctx, mock.MatchedBy(func(in *usecase.NotifyInput) bool {
			return in.UserID == vehicle.SellerID &&
				in.Type == entity.NotificationTypeFavorite &&
				in.Data["vehicle_id"] == vehicle.ID.String()
		})).
		Return(&entity.Notification{}, nil)

	err := svc.Add(ctx, userID, vehicle.ID)

	require.NoError(t, err)
}

func TestFavoriteService_Add_AlreadySaved(t *testing.T) {
	svc, favoriteRepo, vehicleRepo, _ := createTestFavoriteService(t)

	ctx := context.Background()
	userID := uuid.New()
	vehicle := &entity.Vehicle{ID: uuid.New(), SellerID: uuid.New(), Status: entity.VehicleStatusActive}

	vehicleRepo.EXPECT().FindVehicleByID(ctx, vehicle.ID).Return(vehicle, nil)
	favoriteRepo.EXPECT().IsFavorite(ctx, userID, vehicle.ID).Return(true, nil)

	err := svc.Add(ctx, userID, vehicle.ID)

	require.NoError(t, err)
}

func TestFavoriteService_Add_OwnListingDoesNotNotify(t *testing.T) {
	svc, favoriteRepo, vehicleRepo, _ := createTestFavoriteService(t)

	ctx := context.Background()
	userID := uuid.New()
	vehicle := &entity.Vehicle{ID: uuid.New(), SellerID: userID, Status: entity.VehicleStatusActive}

	vehicleRepo.EXPECT().FindVehicleByID(ctx, vehicle.ID).Return(vehicle, nil)
	favoriteRepo.EXPECT().IsFavorite(ctx, userID, vehicle.ID).Return(false, nil)
	favoriteRepo.EXPECT().AddFavorite(ctx, mock.Anything).Return(nil)

	err := svc.Add(ctx, userID, vehicle.ID)

	require.NoError(t, err)
}

func TestFavoriteService_Add_NotificationFailureIgnored(t *testing.T) {
	svc, favoriteRepo, vehicleRepo, notifications := createTestFavoriteService(t)

	ctx := context.Background()
	userID := uuid.New()
	vehicle := &entity.Vehicle{ID: uuid.New(), SellerID: uuid.New(), Status: entity.VehicleStatusActive}

	vehicleRepo.EXPECT().FindVehicleByID(ctx, vehicle.ID).Return(vehicle, nil)
	favoriteRepo.EXPECT().IsFavorite(ctx, userID, vehicle.ID).Return(false, nil)
	favoriteRepo.EXPECT().AddFavorite(ctx, mock.Anything).Return(nil)
	notifications.EXPECT().Notify(ctx, mock.Anything).Return(nil, errors.New("inbox down"))

	err := svc.Add(ctx, userID, vehicle.ID)

	require.NoError(t, err)
}

func TestFavoriteService_Add_InactiveListing(t *testing.T) {
	svc, _, vehicleRepo, _ := createTestFavoriteService(t)

	ctx := context.Background()
	vehicle := &entity.Vehicle{ID: uuid.New(), SellerID: uuid.New(), Status: entity.VehicleStatusSold}

	vehicleRepo.EXPECT().FindVehicleByID(ctx, vehicle.ID).Return(vehicle, nil)

	err := svc.Add(ctx, uuid.New(), vehicle.ID)

	assert.ErrorIs(t, err, domainerrors.ErrVehicleNotFound)
}

func TestFavoriteService_List(t *testing.T) {
	svc, favoriteRepo, _, _ := createTestFavoriteService(t)

	ctx := context.Background()
	userID := uuid.New()

	favoriteRepo.EXPECT().
		ListFavoriteVehicles(ctx, userID, entity.PageRequest{Page: 2, PageSize: 20}).
		Return([]*entity.Vehicle{{ID: uuid.New()}}, int64(21), nil)

	page, err := svc.List(ctx, userID, entity.PageRequest{Page: 2})

	require.NoError(t, err)
	assert.Len(t, page.Items, 1)
	assert.Equal(t, 2, page.TotalPages)
}
