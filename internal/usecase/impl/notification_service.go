package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"dcars/config"
	deliverycontext "dcars/internal/delivery/context"
	"dcars/internal/domain/entity"
	domainerrors "dcars/internal/domain/errors"
	"dcars/internal/domain/repository"
	"dcars/internal/domain/service"
	"dcars/internal/errors"
	"dcars/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// notificationService persists in-app notifications and fans them out to
// realtime connections and the push worker.
type notificationService struct {
	notificationRepo repository.NotificationRepository
	realtime         service.RealtimeNotifier
	publisher        service.EventPublisher
	cfg              *config.Config
	logger           *slog.Logger
	now              func() time.Time
}

// NotificationServiceParams holds dependencies for NotificationService, injected by Fx.
type NotificationServiceParams struct {
	fx.In

	NotificationRepo repository.NotificationRepository
	Realtime         service.RealtimeNotifier
	Publisher        service.EventPublisher
	Config           *config.Config
	Logger           *slog.Logger
}

// NewNotificationService is the constructor for notificationService.
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	return &notificationService{
		notificationRepo: params.NotificationRepo,
		realtime:         params.Realtime,
		publisher:        params.Publisher,
		cfg:              params.Config,
		logger:           params.Logger,
		now:              time.Now,
	}
}

// Notify stores the notification, then delivers it over realtime and push.
// Delivery failures are logged; the stored notification is the source of truth.
func (srv *notificationService) Notify(ctx context.Context, input *usecase.NotifyInput) (*entity.Notification, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("title is required"), "empty notification title")
	}

	notification := &entity.Notification{
		UserID: input.UserID,
		Type:   input.Type,
		Title:  title,
		Body:   strings.TrimSpace(input.Body),
		Data:   input.Data,
	}
	if notification.Type == "" {
		notification.Type = entity.NotificationTypeSystem
	}

	if err := srv.notificationRepo.CreateNotification(ctx, notification); err != nil {
		return nil, errors.Wrap(err, "failed to create notification")
	}

	srv.realtime.SendToUser(notification.UserID, service.RealtimeNotificationCreated, notification)

	event := &service.PushEvent{
		RequestID:      deliverycontext.GetRequestIDFromContext(ctx),
		NotificationID: notification.ID.String(),
		Type:           string(notification.Type),
		UserIDs:        []string{notification.UserID.String()},
		Title:          notification.Title,
		Body:           notification.Body,
		Data:           notification.Data,
	}
	if err := srv.publisher.PublishPushEvent(ctx, event); err != nil {
		contextLogger(ctx, srv.logger).Warn("Failed to publish push event",
			slog.String("notification_id", notification.ID.String()),
			slog.Any("error", err),
		)
	}

	return notification, nil
}

// List returns the user's notifications, newest first.
func (srv *notificationService) List(ctx context.Context, userID uuid.UUID, filter entity.NotificationFilter) (entity.Page[*entity.Notification], error) {
	filter.Page = clampPage(srv.cfg, filter.Page)

	items, total, err := srv.notificationRepo.ListNotifications(ctx, userID, filter)
	if err != nil {
		return entity.Page[*entity.Notification]{}, errors.Wrap(err, "failed to list notifications")
	}

	return entity.NewPage(items, total, filter.Page), nil
}

// MarkRead marks one of the user's notifications as read.
func (srv *notificationService) MarkRead(ctx context.Context, userID, id uuid.UUID) error {
	notification, err := srv.findOwned(ctx, userID, id)
	if err != nil {
		return err
	}
	if notification.IsRead() {
		return nil
	}

	if err := srv.notificationRepo.MarkNotificationRead(ctx, id, srv.now()); err != nil {
		return srv.mapNotificationError(err, "failed to mark notification read")
	}

	return nil
}

// MarkAllRead marks every unread notification of the user as read.
func (srv *notificationService) MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	count, err := srv.notificationRepo.MarkAllNotificationsRead(ctx, userID, srv.now())
	if err != nil {
		return 0, errors.Wrap(err, "failed to mark notifications read")
	}

	return count, nil
}

// UnreadCount returns the number of unread notifications.
func (srv *notificationService) UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	count, err := srv.notificationRepo.CountUnreadNotifications(ctx, userID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to count unread notifications")
	}

	return count, nil
}

// Delete removes one of the user's notifications.
func (srv *notificationService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if _, err := srv.findOwned(ctx, userID, id); err != nil {
		return err
	}

	if err := srv.notificationRepo.DeleteNotification(ctx, id); err != nil {
		return srv.mapNotificationError(err, "failed to delete notification")
	}

	return nil
}

// findOwned loads a notification, hiding other users' notifications behind not found.
func (srv *notificationService) findOwned(ctx context.Context, userID, id uuid.UUID) (*entity.Notification, error) {
	notification, err := srv.notificationRepo.FindNotificationByID(ctx, id)
	if err != nil {
		return nil, srv.mapNotificationError(err, "failed to find notification")
	}
	if notification.UserID != userID {
		return nil, errors.Wrap(domainerrors.ErrNotificationNotFound, "notification belongs to another user")
	}

	return notification, nil
}

func (srv *notificationService) mapNotificationError(err error, message string) error {
	if errors.Is(err, repository.ErrNotificationNotFound) {
		return errors.Wrap(domainerrors.ErrNotificationNotFound, message)
	}

	return errors.Wrap(err, message)
}

// notifyQuietly sends a notification on behalf of another use case. Failures are
// logged and never fail the caller's operation.
func notifyQuietly(ctx context.Context, notifier usecase.NotificationUsecase, logger *slog.Logger, input *usecase.NotifyInput) {
	if _, err := notifier.Notify(ctx, input); err != nil {
		contextLogger(ctx, logger).Warn("Failed to send notification",
			slog.String("user_id", input.UserID.String()),
			slog.String("type", string(input.Type)),
			slog.Any("error", err),
		)
	}
}
