package handler

import (
	"dcars/internal/delivery/api/response"
	"dcars/internal/errors"
	"dcars/internal/usecase"

	"github.com/labstack/echo/v4"
)

// DashboardHandler serves seller and admin dashboards.
type DashboardHandler struct {
	dashboardUC usecase.DashboardUsecase
}

// NewDashboardHandler is the constructor for DashboardHandler.
func NewDashboardHandler(dashboardUC usecase.DashboardUsecase) *DashboardHandler {
	return &DashboardHandler{dashboardUC: dashboardUC}
}

// Seller returns the caller's seller dashboard.
func (h *DashboardHandler) Seller(c echo.Context) error {
	profile, err := currentProfile(c)
	if err != nil {
		return err
	}

	dashboard, err := h.dashboardUC.Seller(c.Request().Context(), profile.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, dashboard)
}

// Admin returns the marketplace dashboard.
func (h *DashboardHandler) Admin(c echo.Context) error {
	dashboard, err := h.dashboardUC.Admin(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, dashboard)
}
