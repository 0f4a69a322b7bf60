package handler

import (
	"net/http"

	"dcars/internal/delivery/api/response"
	"dcars/internal/errors"
	"dcars/internal/usecase"

	"github.com/labstack/echo/v4"
)

// FavoriteHandler serves the caller's saved listings.
type FavoriteHandler struct {
	favoriteUC usecase.FavoriteUsecase
}

// NewFavoriteHandler is the constructor for FavoriteHandler.
func NewFavoriteHandler(favoriteUC usecase.FavoriteUsecase) *FavoriteHandler {
	return &FavoriteHandler{favoriteUC: favoriteUC}
}

// List returns saved listings, newest save first.
func (h *FavoriteHandler) List(c echo.Context) error {
	profile, err := currentProfile(c)
	if err != nil {
		return err
	}

	page, err := pageRequest(c)
	if err != nil {
		return err
	}

	result, err := h.favoriteUC.List(c.Request().Context(), profile.ID, page)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, result)
}

// Add saves a listing. Repeating the call is harmless.
func (h *FavoriteHandler) Add(c echo.Context) error {
	profile, err := currentProfile(c)
	if err != nil {
		return err
	}

	vehicleID, err := pathUUID(c, "vehicleId")
	if err != nil {
		return err
	}

	if err := h.favoriteUC.Add(c.Request().Context(), profile.ID, vehicleID); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// Remove unsaves a listing.
func (h *FavoriteHandler) Remove(c echo.Context) error {
	profile, err := currentProfile(c)
	if err != nil {
		return err
	}

	vehicleID, err := pathUUID(c, "vehicleId")
	if err != nil {
		return err
	}

	if err := h.favoriteUC.Remove(c.Request().Context(), profile.ID, vehicleID); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// Status reports whether the caller saved a listing.
func (h *FavoriteHandler) Status(c echo.Context) error {
	profile, err := currentProfile(c)
	if err != nil {
		return err
	}

	vehicleID, err := pathUUID(c, "vehicleId")
	if err != nil {
		return err
	}

	saved, err := h.favoriteUC.IsFavorite(c.Request().Context(), profile.ID, vehicleID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, map[string]bool{"favorite": saved})
}
