package impl

import (
	"context"
	"log/slog"
	"strings"

	"dcars/internal/domain/entity"
	domainerrors "dcars/internal/domain/errors"
	"dcars/internal/domain/repository"
	"dcars/internal/errors"
	"dcars/internal/usecase"

	"github.com/google/uuid"
)

type deviceService struct {
	deviceRepo repository.DeviceRepository
	logger     *slog.Logger
}

// NewDeviceService creates a new device service instance
func NewDeviceService(deviceRepo repository.DeviceRepository, logger *slog.Logger) usecase.DeviceUsecase {
	return &deviceService{
		deviceRepo: deviceRepo,
		logger:     logger,
	}
}

// RegisterDevice registers a new device or refreshes the token of a known one
func (s *deviceService) RegisterDevice(ctx context.Context, userID uuid.UUID, deviceInfo *usecase.DeviceInfo) (*entity.UserDevice, error) {
	devices, err := s.deviceRepo.FindDevicesByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find devices by user")
	}

	for _, device := range devices {
		if device.DeviceID != deviceInfo.DeviceID {
			continue
		}

		if err := s.deviceRepo.UpdateFCMToken(ctx, device.ID, deviceInfo.FCMToken); err != nil {
			return nil, errors.Wrap(err, "failed to update FCM token")
		}

		updated, err := s.deviceRepo.FindDeviceByID(ctx, device.ID)
		if err != nil {
			return nil, mapDeviceError(err, "failed to find device by ID")
		}

		return updated, nil
	}

	device := &entity.UserDevice{
		UserID:   userID,
		FCMToken: deviceInfo.FCMToken,
		DeviceID: deviceInfo.DeviceID,
		Platform: strings.ToLower(deviceInfo.Platform),
		IsActive: true,
	}

	if err := s.deviceRepo.CreateDevice(ctx, device); err != nil {
		if errors.Is(err, repository.ErrDuplicateDevice) {
			return nil, errors.Wrap(domainerrors.ErrConflict.WithDetails("device is registered to another account"), "duplicate device")
		}

		return nil, errors.Wrap(err, "failed to create device")
	}

	contextLogger(ctx, s.logger).Info("Device registered",
		slog.String("user_id", userID.String()),
		slog.String("platform", device.Platform),
	)

	return device, nil
}

// UpdateFCMToken updates the FCM token for a device the user owns
func (s *deviceService) UpdateFCMToken(ctx context.Context, userID uuid.UUID, deviceID uuid.UUID, fcmToken string) error {
	if _, err := s.findOwned(ctx, userID, deviceID); err != nil {
		return err
	}

	if err := s.deviceRepo.UpdateFCMToken(ctx, deviceID, fcmToken); err != nil {
		return mapDeviceError(err, "failed to update FCM token")
	}

	return nil
}

// GetUserDevices retrieves all active devices for a user
func (s *deviceService) GetUserDevices(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error) {
	devices, err := s.deviceRepo.FindActiveDevicesByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find active devices by user")
	}

	return devices, nil
}

// DeactivateDevice deactivates a device (soft delete)
func (s *deviceService) DeactivateDevice(ctx context.Context, userID, deviceID uuid.UUID) error {
	if _, err := s.findOwned(ctx, userID, deviceID); err != nil {
		return err
	}

	if err := s.deviceRepo.DeleteDevice(ctx, deviceID); err != nil {
		return mapDeviceError(err, "failed to delete device")
	}

	return nil
}

// findOwned hides other users' devices behind not found.
func (s *deviceService) findOwned(ctx context.Context, userID, deviceID uuid.UUID) (*entity.UserDevice, error) {
	device, err := s.deviceRepo.FindDeviceByID(ctx, deviceID)
	if err != nil {
		return nil, mapDeviceError(err, "failed to find device by ID")
	}
	if device.UserID != userID {
		return nil, errors.Wrap(domainerrors.ErrDeviceNotFound, "device belongs to another user")
	}

	return device, nil
}

func mapDeviceError(err error, message string) error {
	if errors.Is(err, repository.ErrDeviceNotFound) {
		return errors.Wrap(domainerrors.ErrDeviceNotFound, message)
	}

	return errors.Wrap(err, message)
}
