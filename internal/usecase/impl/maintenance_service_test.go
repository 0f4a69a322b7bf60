package impl

import (
	"context"
	"testing"

	"dcars/internal/domain/entity"
	"dcars/internal/domain/repository"
	mockRepo "dcars/internal/mocks/repository"
	mockUsecase "dcars/internal/mocks/usecase"
	"dcars/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// maintenanceServiceFixtures holds all test dependencies for maintenance service tests.
type maintenanceServiceFixtures struct {
	service          usecase.MaintenanceUsecase
	factory          *mockRepo.MockRepositoryFactory
	vehicleRepo      *mockRepo.MockVehicleRepository
	subscriptionRepo *mockRepo.MockSubscriptionRepository
	notificationRepo *mockRepo.MockNotificationRepository
	notifications    *mockUsecase.MockNotificationUsecase
}

func createTestMaintenanceService(t *testing.T) maintenanceServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)

	fx := maintenanceServiceFixtures{
		factory:          mockRepo.NewMockRepositoryFactory(t),
		vehicleRepo:      mockRepo.NewMockVehicleRepository(t),
		subscriptionRepo: mockRepo.NewMockSubscriptionRepository(t),
		notificationRepo: mockRepo.NewMockNotificationRepository(t),
		notifications:    mockUsecase.NewMockNotificationUsecase(t),
	}

	txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(fx.factory)
		}).
		Maybe()
	fx.factory.EXPECT().NewSubscriptionRepository().Return(fx.subscriptionRepo).Maybe()

	fx.service = NewMaintenanceService(MaintenanceServiceParams{
		TxManager:        txManager,
		VehicleRepo:      fx.vehicleRepo,
		SubscriptionRepo: fx.subscriptionRepo,
		NotificationRepo: fx.notificationRepo,
		Notifications:    fx.notifications,
		Config:           newTestConfig(),
		Logger:           discardLogger(),
	})

	return fx
}

func TestMaintenanceService_ExpireListings(t *testing.T) {
	fx := createTestMaintenanceService(t)

	ctx := context.Background()
	expired := []*entity.Vehicle{
		{ID: uuid.New(), SellerID: uuid.New(), Title: "Golf"},
		{ID: uuid.New(), SellerID: uuid.New(), Title: "Polo"},
	}

	fx.vehicleRepo.EXPECT().ExpireListings(ctx, fixedNow).Return(expired, nil)
	fx.notifications.EXPECT().
		Notify(ctx, mock.MatchedBy(func(in *usecase.NotifyInput) bool {
			return in.Type == entity.NotificationTypeListingExpired
		})).
		Return(&entity.Notification{}, nil).
		Times(2)

	count, err := fx.service.ExpireListings(ctx, fixedNow)

	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestMaintenanceService_ExpireSubscriptions(t *testing.T) {
	fx := createTestMaintenanceService(t)

	ctx := context.Background()
	canceling := &entity.Subscription{ID: uuid.New(), UserID: uuid.New(), PlanCode: "pro", Status: entity.SubscriptionStatusActive, CancelAtPeriodEnd: true}
	lapsed := &entity.Subscription{ID: uuid.New(), UserID: uuid.New(), PlanCode: "dealer", Status: entity.SubscriptionStatusPastDue}

	fx.subscriptionRepo.EXPECT().FindDueSubscriptions(ctx, fixedNow).Return([]*entity.Subscription{canceling, lapsed}, nil)
	fx.subscriptionRepo.EXPECT().UpdateSubscription(ctx, canceling).Return(nil)
	fx.subscriptionRepo.EXPECT().UpdateSubscription(ctx, lapsed).Return(nil)
	fx.notifications.EXPECT().Notify(ctx, mock.Anything).Return(&entity.Notification{}, nil).Times(2)

	count, err := fx.service.ExpireSubscriptions(ctx, fixedNow)

	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Equal(t, entity.SubscriptionStatusCanceled, canceling.Status)
	assert.Equal(t, entity.SubscriptionStatusExpired, lapsed.Status)
}

func TestMaintenanceService_ExpireSubscriptions_RollsBackWithoutNotifying(t *testing.T) {
	fx := createTestMaintenanceService(t)

	ctx := context.Background()
	sub := &entity.Subscription{ID: uuid.New(), UserID: uuid.New(), Status: entity.SubscriptionStatusActive}

	fx.subscriptionRepo.EXPECT().FindDueSubscriptions(ctx, fixedNow).Return([]*entity.Subscription{sub}, nil)
	fx.subscriptionRepo.EXPECT().UpdateSubscription(ctx, sub).Return(errors.New("deadlock detected"))

	count, err := fx.service.ExpireSubscriptions(ctx, fixedNow)

	require.Error(t, err)
	assert.Zero(t, count)
}

func TestMaintenanceService_RunAll(t *testing.T) {
	fx := createTestMaintenanceService(t)

	ctx := context.Background()

	fx.vehicleRepo.EXPECT().ExpireListings(ctx, fixedNow).Return(nil, errors.New("db down"))
	fx.subscriptionRepo.EXPECT().FindDueSubscriptions(ctx, fixedNow).Return(nil, nil)
	fx.notificationRepo.EXPECT().PurgeReadNotifications(ctx, fixedNow.AddDate(0, 0, -30)).Return(int64(12), nil)

	report, err := fx.service.RunAll(ctx, fixedNow)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "db down")
	assert.Equal(t, 0, report.ExpiredListings)
	assert.Equal(t, 0, report.ExpiredSubscriptions)
	assert.Equal(t, int64(12), report.PurgedNotifications)
}
