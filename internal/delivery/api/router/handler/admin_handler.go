package handler

import (
	"net/http"
	"strings"

	"dcars/internal/delivery/api/response"
	"dcars/internal/domain/entity"
	"dcars/internal/errors"
	"dcars/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AdminHandler serves moderation endpoints. Every route requires the admin role.
type AdminHandler struct {
	adminUC usecase.AdminUsecase
}

// NewAdminHandler is the constructor for AdminHandler.
func NewAdminHandler(adminUC usecase.AdminUsecase) *AdminHandler {
	return &AdminHandler{adminUC: adminUC}
}

type setRoleRequest struct {
	Role entity.Role `json:"role" validate:"required,oneof=buyer seller dealer admin"`
}

type setSuspendedRequest struct {
	Suspended *bool `json:"suspended" validate:"required"`
}

type moderateVehicleRequest struct {
	Action usecase.ModerationAction `json:"action" validate:"required,oneof=archive restore delete"`
	Reason string                   `json:"reason" validate:"omitempty,max=500"`
}

// ListUsers searches profiles by ?q=, ?role= and ?suspended=.
func (h *AdminHandler) ListUsers(c echo.Context) error {
	page, err := pageRequest(c)
	if err != nil {
		return err
	}

	suspended, err := optionalQueryBool(c, "suspended")
	if err != nil {
		return err
	}

	result, err := h.adminUC.ListUsers(c.Request().Context(), entity.ProfileFilter{
		Query:     strings.TrimSpace(c.QueryParam("q")),
		Role:      entity.Role(c.QueryParam("role")),
		Suspended: suspended,
		Page:      page,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, result)
}

// SetRole changes a user's role.
func (h *AdminHandler) SetRole(c echo.Context) error {
	admin, err := currentProfile(c)
	if err != nil {
		return err
	}

	userID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req setRoleRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	profile, err := h.adminUC.SetRole(c.Request().Context(), admin.ID, userID, req.Role)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, profile)
}

// SetSuspended suspends or reinstates a user.
func (h *AdminHandler) SetSuspended(c echo.Context) error {
	admin, err := currentProfile(c)
	if err != nil {
		return err
	}

	userID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req setSuspendedRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	profile, err := h.adminUC.SetSuspended(c.Request().Context(), admin.ID, userID, *req.Suspended)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, profile)
}

// ListVehicles lists listings in any status; ?status= narrows.
func (h *AdminHandler) ListVehicles(c echo.Context) error {
	page, err := pageRequest(c)
	if err != nil {
		return err
	}

	result, err := h.adminUC.ListVehicles(c.Request().Context(), entity.VehicleStatus(c.QueryParam("status")), page)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, result)
}

// ModerateVehicle archives, restores or deletes a listing.
func (h *AdminHandler) ModerateVehicle(c echo.Context) error {
	vehicleID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req moderateVehicleRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.adminUC.ModerateVehicle(c.Request().Context(), vehicleID, req.Action, req.Reason); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ListTransactions lists payments; ?status= narrows.
func (h *AdminHandler) ListTransactions(c echo.Context) error {
	page, err := pageRequest(c)
	if err != nil {
		return err
	}

	result, err := h.adminUC.ListTransactions(c.Request().Context(), entity.TransactionStatus(c.QueryParam("status")), page)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, result)
}

// SystemStats reports host resource usage.
func (h *AdminHandler) SystemStats(c echo.Context) error {
	stats, err := h.adminUC.SystemStats(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, stats)
}
