package repository

import (
	"context"
	"time"

	"dcars/internal/domain/entity"
	"dcars/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for notification persistence.
var (
	// ErrNotificationNotFound is returned when a notification is not found.
	ErrNotificationNotFound = errors.New("notification not found")
)

// NotificationRepository defines the interface for the notification inbox.
type NotificationRepository interface {
	// CreateNotification persists a new notification.
	CreateNotification(ctx context.Context, notification *entity.Notification) error

	// FindNotificationByID retrieves a notification by its ID.
	FindNotificationByID(ctx context.Context, id uuid.UUID) (*entity.Notification, error)

	// ListNotifications returns one page of the user's notifications, newest first.
	ListNotifications(ctx context.Context, userID uuid.UUID, filter entity.NotificationFilter) ([]*entity.Notification, int64, error)

	// MarkNotificationRead marks one notification as read.
	MarkNotificationRead(ctx context.Context, id uuid.UUID, at time.Time) error

	// MarkAllNotificationsRead marks every unread notification of the user as read.
	MarkAllNotificationsRead(ctx context.Context, userID uuid.UUID, at time.Time) (int64, error)

	// CountUnreadNotifications counts the user's unread notifications.
	CountUnreadNotifications(ctx context.Context, userID uuid.UUID) (int64, error)

	// DeleteNotification removes a notification.
	DeleteNotification(ctx context.Context, id uuid.UUID) error

	// PurgeReadNotifications deletes read notifications created before the cutoff.
	PurgeReadNotifications(ctx context.Context, before time.Time) (int64, error)
}
