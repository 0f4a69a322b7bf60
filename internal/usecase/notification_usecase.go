package usecase

import (
	"context"

	"dcars/internal/domain/entity"

	"github.com/google/uuid"
)

// NotificationUsecase manages the inbox and fans new notifications out.
type NotificationUsecase interface {
	// Notify persists a notification, pushes it over realtime connections and publishes a push event.
	// Delivery failures after persistence are logged, not returned.
	Notify(ctx context.Context, input *NotifyInput) (*entity.Notification, error)

	List(ctx context.Context, userID uuid.UUID, filter entity.NotificationFilter) (entity.Page[*entity.Notification], error)
	MarkRead(ctx context.Context, userID, id uuid.UUID) error
	MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error)
	UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

// NotifyInput describes a notification for one user.
type NotifyInput struct {
	UserID uuid.UUID
	Type   entity.NotificationType
	Title  string
	Body   string
	Data   map[string]string
}
