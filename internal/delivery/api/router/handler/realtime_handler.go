package handler

import (
	"net/http"

	"dcars/internal/errors"
	"dcars/internal/infra/realtime"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// connectionServer upgrades a request into a live connection for a user.
type connectionServer interface {
	Serve(w http.ResponseWriter, r *http.Request, userID uuid.UUID) error
}

// RealtimeHandler upgrades authenticated requests to websockets.
type RealtimeHandler struct {
	hub connectionServer
}

// NewRealtimeHandler is the constructor for RealtimeHandler.
func NewRealtimeHandler(hub *realtime.Hub) *RealtimeHandler {
	return &RealtimeHandler{hub: hub}
}

// Connect hands the connection to the hub, which owns it from here on.
func (h *RealtimeHandler) Connect(c echo.Context) error {
	profile, err := currentProfile(c)
	if err != nil {
		return err
	}

	return errors.WithStack(h.hub.Serve(c.Response(), c.Request(), profile.ID))
}
