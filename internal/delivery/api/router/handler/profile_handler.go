package handler

import (
	"dcars/internal/delivery/api/response"
	"dcars/internal/errors"
	"dcars/internal/usecase"

	"github.com/labstack/echo/v4"
)

// ProfileHandler serves the caller's profile and public seller profiles.
type ProfileHandler struct {
	profileUC usecase.ProfileUsecase
}

// NewProfileHandler is the constructor for ProfileHandler.
func NewProfileHandler(profileUC usecase.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{profileUC: profileUC}
}

// GetMe returns the caller's profile.
func (h *ProfileHandler) GetMe(c echo.Context) error {
	profile, err := currentProfile(c)
	if err != nil {
		return err
	}

	me, err := h.profileUC.GetMe(c.Request().Context(), profile.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, me)
}

// UpdateMe applies a partial profile update.
func (h *ProfileHandler) UpdateMe(c echo.Context) error {
	profile, err := currentProfile(c)
	if err != nil {
		return err
	}

	var input usecase.UpdateProfileInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	updated, err := h.profileUC.UpdateMe(c.Request().Context(), profile.ID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, updated)
}

// UploadAvatar stores a new avatar from the "file" multipart field.
func (h *ProfileHandler) UploadAvatar(c echo.Context) error {
	profile, err := currentProfile(c)
	if err != nil {
		return err
	}

	upload, closer, err := formUpload(c)
	if err != nil {
		return err
	}
	defer closer.Close()

	updated, err := h.profileUC.UploadAvatar(c.Request().Context(), profile.ID, upload)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, updated)
}

// BecomeSeller upgrades a buyer to seller or dealer.
func (h *ProfileHandler) BecomeSeller(c echo.Context) error {
	profile, err := currentProfile(c)
	if err != nil {
		return err
	}

	var input usecase.BecomeSellerInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	updated, err := h.profileUC.BecomeSeller(c.Request().Context(), profile.ID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, updated)
}

// GetPublic returns a seller's public profile.
func (h *ProfileHandler) GetPublic(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	profile, err := h.profileUC.GetPublicProfile(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, profile)
}
