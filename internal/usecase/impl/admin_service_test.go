package impl

import (
	"context"
	"testing"

	"dcars/internal/domain/entity"
	domainerrors "dcars/internal/domain/errors"
	"dcars/internal/domain/repository"
	mockRepo "dcars/internal/mocks/repository"
	mockService "dcars/internal/mocks/service"
	mockUsecase "dcars/internal/mocks/usecase"
	"dcars/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// adminServiceFixtures holds all test dependencies for admin service tests.
type adminServiceFixtures struct {
	service       usecase.AdminUsecase
	profileRepo   *mockRepo.MockProfileRepository
	vehicleRepo   *mockRepo.MockVehicleRepository
	paymentRepo   *mockRepo.MockPaymentRepository
	notifications *mockUsecase.MockNotificationUsecase
	monitor       *mockService.MockSystemMonitor
}

func createTestAdminService(t *testing.T) adminServiceFixtures {
	fx := adminServiceFixtures{
		profileRepo:   mockRepo.NewMockProfileRepository(t),
		vehicleRepo:   mockRepo.NewMockVehicleRepository(t),
		paymentRepo:   mockRepo.NewMockPaymentRepository(t),
		notifications: mockUsecase.NewMockNotificationUsecase(t),
		monitor:       mockService.NewMockSystemMonitor(t),
	}

	fx.service = NewAdminService(AdminServiceParams{
		ProfileRepo:   fx.profileRepo,
		VehicleRepo:   fx.vehicleRepo,
		PaymentRepo:   fx.paymentRepo,
		Notifications: fx.notifications,
		Monitor:       fx.monitor,
		Config:        newTestConfig(),
		Logger:        discardLogger(),
	})

	return fx
}

func TestAdminService_ListUsers(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()

	fx.profileRepo.EXPECT().
		ListProfiles(ctx, entity.ProfileFilter{Query: "ada", Role: entity.RoleSeller, Page: entity.PageRequest{Page: 1, PageSize: 20}}).
		Return([]*entity.Profile{{ID: uuid.New()}}, int64(1), nil)

	page, err := fx.service.ListUsers(ctx, entity.ProfileFilter{Query: "  ada ", Role: entity.RoleSeller})

	require.NoError(t, err)
	assert.Len(t, page.Items, 1)
}

func TestAdminService_ListUsers_InvalidRole(t *testing.T) {
	fx := createTestAdminService(t)

	_, err := fx.service.ListUsers(context.Background(), entity.ProfileFilter{Role: "owner"})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidRole)
}

func TestAdminService_SetRole(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	adminID, userID := uuid.New(), uuid.New()

	fx.profileRepo.EXPECT().FindProfileByID(ctx, userID).Return(&entity.Profile{ID: userID, Role: entity.RoleBuyer}, nil)
	fx.profileRepo.EXPECT().UpdateRole(ctx, userID, entity.RoleDealer).Return(nil)

	profile, err := fx.service.SetRole(ctx, adminID, userID, entity.RoleDealer)

	require.NoError(t, err)
	assert.Equal(t, entity.RoleDealer, profile.Role)
}

func TestAdminService_SetRole_Self(t *testing.T) {
	fx := createTestAdminService(t)

	adminID := uuid.New()

	_, err := fx.service.SetRole(context.Background(), adminID, adminID, entity.RoleBuyer)

	requireAppError(t, err, domainerrors.ErrForbidden.ErrorCode())
}

func TestAdminService_SetSuspended(t *testing.T) {
	tests := []struct {
		name       string
		current    bool
		suspended  bool
		wantUpdate bool
	}{
		{name: "suspend active user", current: false, suspended: true, wantUpdate: true},
		{name: "reinstate suspended user", current: true, suspended: false, wantUpdate: true},
		{name: "already suspended", current: true, suspended: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAdminService(t)

			ctx := context.Background()
			userID := uuid.New()

			fx.profileRepo.EXPECT().FindProfileByID(ctx, userID).Return(&entity.Profile{ID: userID, IsSuspended: tt.current}, nil)
			if tt.wantUpdate {
				fx.profileRepo.EXPECT().SetSuspended(ctx, userID, tt.suspended).Return(nil)
				fx.notifications.EXPECT().
					Notify(ctx, mock.MatchedBy(func(in *usecase.NotifyInput) bool {
						return in.UserID == userID && in.Type == entity.NotificationTypeAccount
					})).
					Return(&entity.Notification{}, nil)
			}

			profile, err := fx.service.SetSuspended(ctx, uuid.New(), userID, tt.suspended)

			require.NoError(t, err)
			assert.Equal(t, tt.suspended, profile.IsSuspended)
		})
	}
}

func TestAdminService_SetSuspended_Self(t *testing.T) {
	fx := createTestAdminService(t)

	adminID := uuid.New()

	_, err := fx.service.SetSuspended(context.Background(), adminID, adminID, true)

	requireAppError(t, err, domainerrors.ErrForbidden.ErrorCode())
}

func TestAdminService_PromoteByEmail(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.profileRepo.EXPECT().FindProfileByEmail(ctx, "ops@dcars.example").Return(&entity.Profile{ID: userID, Role: entity.RoleBuyer}, nil)
	fx.profileRepo.EXPECT().FindProfileByID(ctx, userID).Return(&entity.Profile{ID: userID, Role: entity.RoleBuyer}, nil)
	fx.profileRepo.EXPECT().UpdateRole(ctx, userID, entity.RoleAdmin).Return(nil)

	profile, err := fx.service.PromoteByEmail(ctx, " Ops@DCars.example ", entity.RoleAdmin)

	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, profile.Role)
}

func TestAdminService_PromoteByEmail_Unknown(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()

	fx.profileRepo.EXPECT().FindProfileByEmail(ctx, "nobody@dcars.example").Return(nil, repository.ErrProfileNotFound)

	_, err := fx.service.PromoteByEmail(ctx, "nobody@dcars.example", entity.RoleAdmin)

	assert.ErrorIs(t, err, domainerrors.ErrProfileNotFound)
}

func TestAdminService_ModerateVehicle(t *testing.T) {
	tests := []struct {
		name       string
		status     entity.VehicleStatus
		action     usecase.ModerationAction
		expect     func(repo *mockRepo.MockVehicleRepository, id uuid.UUID)
		wantNotify bool
		wantErr    error
		wantCode   string
	}{
		{
			name:   "archive active listing",
			status: entity.VehicleStatusActive,
			action: usecase.ModerationArchive,
			expect: func(repo *mockRepo.MockVehicleRepository, id uuid.UUID) {
				repo.EXPECT().UpdateVehicleStatus(mock.Anything, id, entity.VehicleStatusArchived).Return(nil)
			},
			wantNotify: true,
		},
		{
			name:   "archive archived listing",
			status: entity.VehicleStatusArchived,
			action: usecase.ModerationArchive,
		},
		{
			name:   "restore archived listing",
			status: entity.VehicleStatusArchived,
			action: usecase.ModerationRestore,
			expect: func(repo *mockRepo.MockVehicleRepository, id uuid.UUID) {
				repo.EXPECT().UpdateVehicleStatus(mock.Anything, id, entity.VehicleStatusActive).Return(nil)
			},
			wantNotify: true,
		},
		{
			name:    "restore active listing",
			status:  entity.VehicleStatusActive,
			action:  usecase.ModerationRestore,
			wantErr: domainerrors.ErrInvalidVehicleStatus,
		},
		{
			name:   "delete listing",
			status: entity.VehicleStatusSold,
			action: usecase.ModerationDelete,
			expect: func(repo *mockRepo.MockVehicleRepository, id uuid.UUID) {
				repo.EXPECT().DeleteVehicle(mock.Anything, id).Return(nil)
			},
			wantNotify: true,
		},
		{
			name:     "unknown action",
			status:   entity.VehicleStatusActive,
			action:   "feature",
			wantCode: domainerrors.ErrValidationFailed.ErrorCode(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAdminService(t)

			ctx := context.Background()
			vehicle := &entity.Vehicle{ID: uuid.New(), SellerID: uuid.New(), Title: "Kia Rio", Status: tt.status}

			fx.vehicleRepo.EXPECT().FindVehicleByID(ctx, vehicle.ID).Return(vehicle, nil)
			if tt.expect != nil {
				tt.expect(fx.vehicleRepo, vehicle.ID)
			}
			if tt.wantNotify {
				fx.notifications.EXPECT().
					Notify(ctx, mock.MatchedBy(func(in *usecase.NotifyInput) bool {
						return in.UserID == vehicle.SellerID && in.Body == "Kia Rio: spam" && in.Data["action"] == string(tt.action)
					})).
					Return(&entity.Notification{}, nil)
			}

			err := fx.service.ModerateVehicle(ctx, vehicle.ID, tt.action, " spam ")

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.wantCode != "":
				requireAppError(t, err, tt.wantCode)
			default:
				require.NoError(t, err)
			}
		})
	}
}

func TestAdminService_ListTransactions_InvalidStatus(t *testing.T) {
	fx := createTestAdminService(t)

	_, err := fx.service.ListTransactions(context.Background(), "settled", entity.PageRequest{})

	requireAppError(t, err, domainerrors.ErrValidationFailed.ErrorCode())
}

func TestAdminService_ListVehicles_AnyStatus(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()

	fx.vehicleRepo.EXPECT().
		SearchVehicles(ctx, mock.MatchedBy(func(f entity.VehicleFilter) bool { return len(f.Statuses) == 0 })).
		Return([]*entity.Vehicle{}, int64(0), nil)

	_, err := fx.service.ListVehicles(ctx, "", entity.PageRequest{})

	require.NoError(t, err)
}

func TestAdminService_SystemStats(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	stats := &entity.SystemStats{Hostname: "api-1", CPUCores: 4}

	fx.monitor.EXPECT().Snapshot(ctx).Return(stats, nil)

	got, err := fx.service.SystemStats(ctx)

	require.NoError(t, err)
	assert.Equal(t, stats, got)
}
