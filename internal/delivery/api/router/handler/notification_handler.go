package handler

import (
	"net/http"

	"dcars/internal/delivery/api/response"
	"dcars/internal/domain/entity"
	"dcars/internal/errors"
	"dcars/internal/usecase"

	"github.com/labstack/echo/v4"
)

// NotificationHandler serves the caller's notification inbox.
type NotificationHandler struct {
	notificationUC usecase.NotificationUsecase
}

// NewNotificationHandler is the constructor for NotificationHandler.
func NewNotificationHandler(notificationUC usecase.NotificationUsecase) *NotificationHandler {
	return &NotificationHandler{notificationUC: notificationUC}
}

// List returns notifications, newest first; ?unread=true narrows to unread ones.
func (h *NotificationHandler) List(c echo.Context) error {
	profile, err := currentProfile(c)
	if err != nil {
		return err
	}

	page, err := pageRequest(c)
	if err != nil {
		return err
	}

	unread, err := optionalQueryBool(c, "unread")
	if err != nil {
		return err
	}

	filter := entity.NotificationFilter{Page: page, UnreadOnly: unread != nil && *unread}

	result, err := h.notificationUC.List(c.Request().Context(), profile.ID, filter)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, result)
}

// UnreadCount returns the number of unread notifications.
func (h *NotificationHandler) UnreadCount(c echo.Context) error {
	profile, err := currentProfile(c)
	if err != nil {
		return err
	}

	count, err := h.notificationUC.UnreadCount(c.Request().Context(), profile.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, map[string]int64{"unread": count})
}

// MarkRead marks one notification read.
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	profile, err := currentProfile(c)
	if err != nil {
		return err
	}

	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.notificationUC.MarkRead(c.Request().Context(), profile.ID, id); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// MarkAllRead marks every notification read.
func (h *NotificationHandler) MarkAllRead(c echo.Context) error {
	profile, err := currentProfile(c)
	if err != nil {
		return err
	}

	updated, err := h.notificationUC.MarkAllRead(c.Request().Context(), profile.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, map[string]int64{"updated": updated})
}

// Delete removes one notification.
func (h *NotificationHandler) Delete(c echo.Context) error {
	profile, err := currentProfile(c)
	if err != nil {
		return err
	}

	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.notificationUC.Delete(c.Request().Context(), profile.ID, id); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}
