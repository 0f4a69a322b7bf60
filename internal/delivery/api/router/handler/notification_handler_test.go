package handler

import (
	"net/http"
	"testing"

	domainerrors "dcars/internal/domain/errors"
	"dcars/internal/domain/entity"
	"dcars/internal/errors"
	mockUsecase "dcars/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNotificationHandler_List_UnreadOnly(t *testing.T) {
	notificationUC := mockUsecase.NewMockNotificationUsecase(t)
	h := NewNotificationHandler(notificationUC)

	user := testProfile(entity.RoleBuyer)
	e := newTestEcho()
	e.GET("/notifications", h.List, asUser(user))

	notificationUC.EXPECT().
		List(mock.Anything, user.ID, mock.MatchedBy(func(f entity.NotificationFilter) bool {
			return f.UnreadOnly && f.Page.Page == 1
		})).
		Return(entity.NewPage([]*entity.Notification{{ID: uuid.New(), UserID: user.ID}}, 1, entity.PageRequest{Page: 1, PageSize: 20}), nil)

	rec := doRequest(e, http.MethodGet, "/notifications?unread=true", "")

	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestNotificationHandler_UnreadCount(t *testing.T) {
	notificationUC := mockUsecase.NewMockNotificationUsecase(t)
	h := NewNotificationHandler(notificationUC)

	user := testProfile(entity.RoleBuyer)
	e := newTestEcho()
	e.GET("/notifications/unread-count", h.UnreadCount, asUser(user))

	notificationUC.EXPECT().UnreadCount(mock.Anything, user.ID).Return(int64(4), nil)

	rec := doRequest(e, http.MethodGet, "/notifications/unread-count", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]int64
	decodeData(t, rec, &body)
	assert.Equal(t, int64(4), body["unread"])
}

func TestNotificationHandler_MarkRead_OtherUsersNotification(t *testing.T) {
	notificationUC := mockUsecase.NewMockNotificationUsecase(t)
	h := NewNotificationHandler(notificationUC)

	user := testProfile(entity.RoleBuyer)
	e := newTestEcho()
	e.POST("/notifications/:id/read", h.MarkRead, asUser(user))

	id := uuid.New()
	notificationUC.EXPECT().MarkRead(mock.Anything, user.ID, id).Return(errors.WithStack(domainerrors.ErrNotFound))

	rec := doRequest(e, http.MethodPost, "/notifications/"+id.String()+"/read", "")

	requireErrorCode(t, rec, http.StatusNotFound, domainerrors.ErrNotFound.ErrorCode())
}

func TestNotificationHandler_MarkAllRead(t *testing.T) {
	notificationUC := mockUsecase.NewMockNotificationUsecase(t)
	h := NewNotificationHandler(notificationUC)

	user := testProfile(entity.RoleBuyer)
	e := newTestEcho()
	e.POST("/notifications/read-all", h.MarkAllRead, asUser(user))

	notificationUC.EXPECT().MarkAllRead(mock.Anything, user.ID).Return(int64(7), nil)

	rec := doRequest(e, http.MethodPost, "/notifications/read-all", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]int64
	decodeData(t, rec, &body)
	assert.Equal(t, int64(7), body["updated"])
}

func TestNotificationHandler_Delete(t *testing.T) {
	notificationUC := mockUsecase.NewMockNotificationUsecase(t)
	h := NewNotificationHandler(notificationUC)

	user := testProfile(entity.RoleBuyer)
	e := newTestEcho()
	e.DELETE("/notifications/:id", h.Delete, asUser(user))

	id := uuid.New()
	notificationUC.EXPECT().Delete(mock.Anything, user.ID, id).Return(nil)

	rec := doRequest(e, http.MethodDelete, "/notifications/"+id.String(), "")

	assert.Equal(t, http.StatusNoContent, rec.Code)
}
