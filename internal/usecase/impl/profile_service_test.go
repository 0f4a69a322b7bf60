package impl

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"dcars/internal/domain/entity"
	domainerrors "dcars/internal/domain/errors"
	"dcars/internal/domain/repository"
	mockRepo "dcars/internal/mocks/repository"
	mockService "dcars/internal/mocks/service"
	"dcars/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// profileServiceFixtures holds all test dependencies for profile service tests.
type profileServiceFixtures struct {
	service     usecase.ProfileUsecase
	profileRepo *mockRepo.MockProfileRepository
	vehicleRepo *mockRepo.MockVehicleRepository
	storage     *mockService.MockImageStorage
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	profileRepo := mockRepo.NewMockProfileRepository(t)
	vehicleRepo := mockRepo.NewMockVehicleRepository(t)
	storage := mockService.NewMockImageStorage(t)

	return profileServiceFixtures{
		service: NewProfileService(ProfileServiceParams{
			ProfileRepo: profileRepo,
			VehicleRepo: vehicleRepo,
			Storage:     storage,
			Config:      newTestConfig(),
			Logger:      discardLogger(),
		}),
		profileRepo: profileRepo,
		vehicleRepo: vehicleRepo,
		storage:     storage,
	}
}

func strPtr(s string) *string { return &s }

func TestProfileService_GetMe_NotFound(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.profileRepo.EXPECT().FindProfileByID(ctx, userID).Return(nil, repository.ErrProfileNotFound)

	_, err := fx.service.GetMe(ctx, userID)

	assert.ErrorIs(t, err, domainerrors.ErrProfileNotFound)
}

func TestProfileService_UpdateMe_Success(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	existing := &entity.Profile{ID: userID, FullName: "Old", City: "Lagos", Role: entity.RoleBuyer}

	fx.profileRepo.EXPECT().FindProfileByID(ctx, userID).Return(existing, nil)
	fx.profileRepo.EXPECT().
		UpdateProfile(ctx, mock.MatchedBy(func(p *entity.Profile) bool {
			return p.FullName == "New Name" && p.City == "Lagos" && p.Phone == "+234 555"
		})).
		Return(nil)

	profile, err := fx.service.UpdateMe(ctx, userID, &usecase.UpdateProfileInput{
		FullName: strPtr("  New Name "),
		Phone:    strPtr("+234 555"),
	})

	require.NoError(t, err)
	assert.Equal(t, "New Name", profile.FullName)
	assert.Equal(t, "Lagos", profile.City)
}

func TestProfileService_UpdateMe_DealerNeedsName(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.profileRepo.EXPECT().
		FindProfileByID(ctx, userID).
		Return(&entity.Profile{ID: userID, Role: entity.RoleDealer, DealerName: "Motors"}, nil)

	_, err := fx.service.UpdateMe(ctx, userID, &usecase.UpdateProfileInput{DealerName: strPtr("  ")})

	requireAppError(t, err, domainerrors.ErrValidationFailed.ErrorCode())
}

func TestProfileService_GetPublicProfile(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	createdAt := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	fx.profileRepo.EXPECT().FindProfileByID(ctx, userID).Return(&entity.Profile{
		ID:        userID,
		Email:     "private@example.com",
		FullName:  "Ada",
		Role:      entity.RoleSeller,
		CreatedAt: createdAt,
	}, nil)
	fx.vehicleRepo.EXPECT().
		CountVehiclesBySeller(ctx, userID, []entity.VehicleStatus{entity.VehicleStatusActive}).
		Return(int64(4), nil)

	public, err := fx.service.GetPublicProfile(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, "Ada", public.FullName)
	assert.Equal(t, int64(4), public.ActiveListings)
	assert.Equal(t, createdAt, public.MemberSince)
}

func TestProfileService_GetPublicProfile_SuspendedHidden(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.profileRepo.EXPECT().FindProfileByID(ctx, userID).Return(&entity.Profile{ID: userID, IsSuspended: true}, nil)

	_, err := fx.service.GetPublicProfile(ctx, userID)

	assert.ErrorIs(t, err, domainerrors.ErrProfileNotFound)
}

func TestProfileService_UploadAvatar_Success(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()

	var stored []byte
	fx.profileRepo.EXPECT().FindProfileByID(ctx, userID).Return(&entity.Profile{ID: userID}, nil)
	fx.storage.EXPECT().
		Upload(ctx, mock.MatchedBy(func(path string) bool {
			return strings.HasPrefix(path, "avatars/"+userID.String()+"/") && strings.HasSuffix(path, ".png")
		}), "image/png", mock.Anything).
		RunAndReturn(func(_ context.Context, _, _ string, body io.Reader) (string, error) {
			var err error
			stored, err = io.ReadAll(body)

			return "https://cdn.example.com/avatar.png", err
		})
	fx.profileRepo.EXPECT().
		UpdateProfile(ctx, mock.MatchedBy(func(p *entity.Profile) bool {
			return p.AvatarURL == "https://cdn.example.com/avatar.png"
		})).
		Return(nil)

	profile, err := fx.service.UploadAvatar(ctx, userID, &usecase.FileUpload{
		Filename:    "me",
		ContentType: "application/octet-stream",
		Size:        int64(len(pngBytes)),
		Body:        bytes.NewReader(pngBytes),
	})

	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/avatar.png", profile.AvatarURL)
	assert.Equal(t, pngBytes, stored)
}

func TestProfileService_UploadAvatar_RejectsNonImage(t *testing.T) {
	tests := []struct {
		name        string
		filename    string
		contentType string
		body        string
	}{
		{name: "pdf", filename: "notes.pdf", contentType: "application/pdf", body: "%PDF-1.7\n"},
		{name: "html labelled as png", filename: "cute.png", contentType: "image/png", body: "<!DOCTYPE html><html><script>alert(1)</script></html>"},
		{name: "html file name", filename: "page.html", contentType: "image/jpeg", body: "<html><body>hi</body></html>"},
		{name: "empty body", filename: "me.png", contentType: "image/png", body: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestProfileService(t)

			_, err := fx.service.UploadAvatar(context.Background(), uuid.New(), &usecase.FileUpload{
				Filename:    tt.filename,
				ContentType: tt.contentType,
				Size:        int64(len(tt.body)) + 1,
				Body:        strings.NewReader(tt.body),
			})

			assert.ErrorIs(t, err, domainerrors.ErrInvalidImage)
		})
	}
}

func TestProfileService_UploadAvatar_TooLarge(t *testing.T) {
	fx := createTestProfileService(t)

	_, err := fx.service.UploadAvatar(context.Background(), uuid.New(), &usecase.FileUpload{
		Filename:    "big.jpg",
		ContentType: "image/jpeg",
		Size:        2 << 20,
		Body:        strings.NewReader("jpg"),
	})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidImage)
}

func TestProfileService_UploadAvatar_StorageFailure(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.profileRepo.EXPECT().FindProfileByID(ctx, userID).Return(&entity.Profile{ID: userID}, nil)
	fx.storage.EXPECT().Upload(ctx, mock.Anything, "image/jpeg", mock.Anything).Return("", errors.New("bucket unavailable"))

	_, err := fx.service.UploadAvatar(ctx, userID, &usecase.FileUpload{
		Filename:    "me.jpg",
		ContentType: "image/jpeg",
		Size:        int64(len(jpegBytes)),
		Body:        bytes.NewReader(jpegBytes),
	})

	requireAppError(t, err, domainerrors.ErrStorageFailed.ErrorCode())
}

func TestProfileService_BecomeSeller(t *testing.T) {
	tests := []struct {
		name       string
		current    entity.Role
		dealerName string
		wantRole   entity.Role
		wantUpdate bool
	}{
		{name: "buyer to seller", current: entity.RoleBuyer, wantRole: entity.RoleSeller, wantUpdate: true},
		{name: "buyer to dealer", current: entity.RoleBuyer, dealerName: "Ace Motors", wantRole: entity.RoleDealer, wantUpdate: true},
		{name: "seller to dealer", current: entity.RoleSeller, dealerName: "Ace Motors", wantRole: entity.RoleDealer, wantUpdate: true},
		{name: "seller stays seller", current: entity.RoleSeller, wantRole: entity.RoleSeller},
		{name: "dealer keeps status", current: entity.RoleDealer, wantRole: entity.RoleDealer},
		{name: "admin untouched", current: entity.RoleAdmin, dealerName: "Ace Motors", wantRole: entity.RoleAdmin},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestProfileService(t)

			ctx := context.Background()
			userID := uuid.New()

			fx.profileRepo.EXPECT().FindProfileByID(ctx, userID).Return(&entity.Profile{ID: userID, Role: tt.current}, nil)
			if tt.wantUpdate {
				fx.profileRepo.EXPECT().
					UpdateProfile(ctx, mock.MatchedBy(func(p *entity.Profile) bool { return p.Role == tt.wantRole })).
					Return(nil)
			}

			profile, err := fx.service.BecomeSeller(ctx, userID, &usecase.BecomeSellerInput{DealerName: tt.dealerName})

			require.NoError(t, err)
			assert.Equal(t, tt.wantRole, profile.Role)
			if tt.wantRole == entity.RoleDealer && tt.dealerName != "" {
				assert.Equal(t, tt.dealerName, profile.DealerName)
			}
		})
	}
}
