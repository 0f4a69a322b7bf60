package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"dcars/config"
	"dcars/internal/domain/entity"
	domainerrors "dcars/internal/domain/errors"
	"dcars/internal/domain/repository"
	"dcars/internal/domain/service"
	"dcars/internal/errors"
	"dcars/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	profileRepo repository.ProfileRepository
	vehicleRepo repository.VehicleRepository
	storage     service.ImageStorage
	cfg         *config.Config
	logger      *slog.Logger
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	ProfileRepo repository.ProfileRepository
	VehicleRepo repository.VehicleRepository
	Storage     service.ImageStorage
	Config      *config.Config
	Logger      *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		profileRepo: params.ProfileRepo,
		vehicleRepo: params.VehicleRepo,
		storage:     params.Storage,
		cfg:         params.Config,
		logger:      params.Logger,
	}
}

// GetMe retrieves the caller's own profile.
func (srv *profileService) GetMe(ctx context.Context, userID uuid.UUID) (*entity.Profile, error) {
	return srv.findProfile(ctx, userID)
}

// UpdateMe applies a partial update to the caller's profile.
func (srv *profileService) UpdateMe(ctx context.Context, userID uuid.UUID, input *usecase.UpdateProfileInput) (*entity.Profile, error) {
	profile, err := srv.findProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	applyProfileUpdate(profile, entity.ProfileUpdate{
		FullName:   trimmed(input.FullName),
		Phone:      trimmed(input.Phone),
		AvatarURL:  trimmed(input.AvatarURL),
		Bio:        trimmed(input.Bio),
		City:       trimmed(input.City),
		DealerName: trimmed(input.DealerName),
	})

	if profile.Role == entity.RoleDealer && profile.DealerName == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("dealer_name is required for dealers"), "missing dealer name")
	}

	if err := srv.profileRepo.UpdateProfile(ctx, profile); err != nil {
		return nil, mapProfileNotFound(err, "failed to update profile")
	}

	return profile, nil
}

// GetPublicProfile returns the public view of a profile with its active listing count.
func (srv *profileService) GetPublicProfile(ctx context.Context, id uuid.UUID) (*entity.PublicProfile, error) {
	profile, err := srv.findProfile(ctx, id)
	if err != nil {
		return nil, err
	}
	if profile.IsSuspended {
		return nil, errors.Wrap(domainerrors.ErrProfileNotFound, "profile is suspended")
	}

	active, err := srv.vehicleRepo.CountVehiclesBySeller(ctx, id, []entity.VehicleStatus{entity.VehicleStatusActive})
	if err != nil {
		return nil, errors.Wrap(err, "failed to count active listings")
	}

	return &entity.PublicProfile{
		ID:             profile.ID,
		FullName:       profile.FullName,
		AvatarURL:      profile.AvatarURL,
		Bio:            profile.Bio,
		City:           profile.City,
		Role:           profile.Role,
		DealerName:     profile.DealerName,
		IsVerified:     profile.IsVerified,
		ActiveListings: active,
		MemberSince:    profile.CreatedAt,
	}, nil
}

// UploadAvatar stores a new avatar image and points the profile at it.
func (srv *profileService) UploadAvatar(ctx context.Context, userID uuid.UUID, file *usecase.FileUpload) (*entity.Profile, error) {
	ext, err := validateImage(file, srv.cfg.Storage.MaxImageBytes)
	if err != nil {
		return nil, err
	}

	profile, err := srv.findProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	path := fmt.Sprintf("avatars/%s/%s%s", userID, uuid.New(), ext)
	url, err := srv.storage.Upload(ctx, path, file.ContentType, file.Body)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrStorageFailed.WithDetails(err.Error()), "failed to upload avatar")
	}

	profile.AvatarURL = url
	if err := srv.profileRepo.UpdateProfile(ctx, profile); err != nil {
		if delErr := srv.storage.Delete(ctx, path); delErr != nil {
			contextLogger(ctx, srv.logger).Warn("Failed to remove orphaned avatar",
				slog.String("path", path),
				slog.Any("error", delErr),
			)
		}

		return nil, mapProfileNotFound(err, "failed to save avatar")
	}

	return profile, nil
}

// BecomeSeller upgrades a buyer to seller, or to dealer when a dealer name is given.
func (srv *profileService) BecomeSeller(ctx context.Context, userID uuid.UUID, input *usecase.BecomeSellerInput) (*entity.Profile, error) {
	profile, err := srv.findProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	dealerName := strings.TrimSpace(input.DealerName)

	role := entity.RoleSeller
	if dealerName != "" {
		role = entity.RoleDealer
	}

	switch {
	case profile.Role == entity.RoleAdmin:
		return profile, nil
	case profile.Role == role && (dealerName == "" || dealerName == profile.DealerName):
		return profile, nil
	case profile.Role == entity.RoleDealer && role == entity.RoleSeller:
		// Dealers keep their status when asking for a plain seller upgrade.
		return profile, nil
	}

	profile.Role = role
	if dealerName != "" {
		profile.DealerName = dealerName
	}

	if err := srv.profileRepo.UpdateProfile(ctx, profile); err != nil {
		return nil, mapProfileNotFound(err, "failed to upgrade profile")
	}

	contextLogger(ctx, srv.logger).Info("Profile upgraded to seller",
		slog.String("user_id", userID.String()),
		slog.String("role", role.String()),
	)

	return profile, nil
}

func (srv *profileService) findProfile(ctx context.Context, id uuid.UUID) (*entity.Profile, error) {
	profile, err := srv.profileRepo.FindProfileByID(ctx, id)
	if err != nil {
		return nil, mapProfileNotFound(err, "failed to find profile")
	}

	return profile, nil
}

func applyProfileUpdate(profile *entity.Profile, update entity.ProfileUpdate) {
	if update.FullName != nil {
		profile.FullName = *update.FullName
	}
	if update.Phone != nil {
		profile.Phone = *update.Phone
	}
	if update.AvatarURL != nil {
		profile.AvatarURL = *update.AvatarURL
	}
	if update.Bio != nil {
		profile.Bio = *update.Bio
	}
	if update.City != nil {
		profile.City = *update.City
	}
	if update.DealerName != nil {
		profile.DealerName = *update.DealerName
	}
}
