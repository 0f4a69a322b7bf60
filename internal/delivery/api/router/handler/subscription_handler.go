package handler

import (
	"dcars/internal/delivery/api/response"
	"dcars/internal/errors"
	"dcars/internal/usecase"

	"github.com/labstack/echo/v4"
)

// SubscriptionHandler serves seller plans.
type SubscriptionHandler struct {
	subscriptionUC usecase.SubscriptionUsecase
}

// NewSubscriptionHandler is the constructor for SubscriptionHandler.
func NewSubscriptionHandler(subscriptionUC usecase.SubscriptionUsecase) *SubscriptionHandler {
	return &SubscriptionHandler{subscriptionUC: subscriptionUC}
}

// ListPlans returns the purchasable plans.
func (h *SubscriptionHandler) ListPlans(c echo.Context) error {
	return response.OK(c, h.subscriptionUC.ListPlans(c.Request().Context()))
}

// Current returns the caller's current subscription.
func (h *SubscriptionHandler) Current(c echo.Context) error {
	profile, err := currentProfile(c)
	if err != nil {
		return err
	}

	sub, err := h.subscriptionUC.GetCurrent(c.Request().Context(), profile.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, sub)
}

// Cancel stops renewal at the end of the paid period.
func (h *SubscriptionHandler) Cancel(c echo.Context) error {
	profile, err := currentProfile(c)
	if err != nil {
		return err
	}

	sub, err := h.subscriptionUC.Cancel(c.Request().Context(), profile.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, sub)
}

// Entitlements returns the caller's listing limits.
func (h *SubscriptionHandler) Entitlements(c echo.Context) error {
	profile, err := currentProfile(c)
	if err != nil {
		return err
	}

	ent, err := h.subscriptionUC.Entitlements(c.Request().Context(), profile.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, ent)
}
