package handler

import (
	"log/slog"
	"net/http"

	"dcars/internal/delivery/api/response"
	"dcars/internal/errors"
	"dcars/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DeviceHandlerParams holds dependencies for DeviceHandler, injected by Fx.
type DeviceHandlerParams struct {
	fx.In

	DeviceUC usecase.DeviceUsecase
	Logger   *slog.Logger
}

// DeviceHandler holds dependencies for device-related handlers
type DeviceHandler struct {
	deviceUC usecase.DeviceUsecase
	logger   *slog.Logger
}

// NewDeviceHandler is the constructor for DeviceHandler
func NewDeviceHandler(params DeviceHandlerParams) *DeviceHandler {
	return &DeviceHandler{
		deviceUC: params.DeviceUC,
		logger:   params.Logger,
	}
}

// UpdateFCMTokenRequest represents the request body for updating FCM token
type UpdateFCMTokenRequest struct {
	FCMToken string `json:"fcm_token" validate:"required,max=4096"`
}

// RegisterDevice registers the caller's device for push notifications.
func (h *DeviceHandler) RegisterDevice(c echo.Context) error {
	profile, err := currentProfile(c)
	if err != nil {
		return err
	}

	var req usecase.DeviceInfo
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	device, err := h.deviceUC.RegisterDevice(c.Request().Context(), profile.ID, &req)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, device)
}

// GetUserDevices lists the caller's active devices.
func (h *DeviceHandler) GetUserDevices(c echo.Context) error {
	profile, err := currentProfile(c)
	if err != nil {
		return err
	}

	devices, err := h.deviceUC.GetUserDevices(c.Request().Context(), profile.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, devices)
}

// UpdateFCMToken replaces the push token of one device.
func (h *DeviceHandler) UpdateFCMToken(c echo.Context) error {
	profile, err := currentProfile(c)
	if err != nil {
		return err
	}

	deviceID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req UpdateFCMTokenRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.deviceUC.UpdateFCMToken(c.Request().Context(), profile.ID, deviceID, req.FCMToken); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// DeactivateDevice stops pushes to one device.
func (h *DeviceHandler) DeactivateDevice(c echo.Context) error {
	profile, err := currentProfile(c)
	if err != nil {
		return err
	}

	deviceID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.deviceUC.DeactivateDevice(c.Request().Context(), profile.ID, deviceID); err != nil {
		return errors.WithStack(err)
	}

	h.logger.Debug("Device deactivated", slog.String("device_id", deviceID.String()))

	return c.NoContent(http.StatusNoContent)
}
