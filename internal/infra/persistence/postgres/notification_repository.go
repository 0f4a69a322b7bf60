package postgres

import (
	"context"
	"time"

	"dcars/internal/domain/entity"
	domainerrors "dcars/internal/domain/errors"
	"dcars/internal/domain/repository"
	"dcars/internal/errors"
	"dcars/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// notificationRepository implements the repository.NotificationRepository interface.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepository{
		db: db,
	}
}

// CreateNotification persists a new notification.
func (repo *notificationRepository) CreateNotification(ctx context.Context, notification *entity.Notification) error {
	if notification.ID == uuid.Nil {
		notification.ID = uuid.New()
	}
	notificationM := fromNotificationDomain(notification)

	if err := repo.db.WithContext(ctx).Create(notificationM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrProfileNotFound.WrapMessage("invalid recipient reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create notification")
	}

	notification.CreatedAt = notificationM.CreatedAt

	return nil
}

// FindNotificationByID retrieves a notification by its ID.
func (repo *notificationRepository) FindNotificationByID(ctx context.Context, id uuid.UUID) (*entity.Notification, error) {
	var notificationM model.NotificationModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&notificationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotificationNotFound
		}

		return nil, errors.Wrap(err, "failed to find notification by ID")
	}

	return toNotificationDomain(&notificationM), nil
}

// ListNotifications returns one page of the user's notifications, newest first.
func (repo *notificationRepository) ListNotifications(
	ctx context.Context,
	userID uuid.UUID,
	filter entity.NotificationFilter,
) ([]*entity.Notification, int64, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("user_id = ?", userID)
	if filter.UnreadOnly {
		query = query.Where("read_at IS NULL")
	}
	query = query.Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count notifications")
	}

	var notificationModels []*model.NotificationModel
	if err := query.
		Order("created_at DESC").
		Offset(filter.Page.Offset()).
		Limit(filter.Page.PageSize).
		Find(&notificationModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list notifications")
	}

	notifications := make([]*entity.Notification, 0, len(notificationModels))
	for _, notificationM := range notificationModels {
		notifications = append(notifications, toNotificationDomain(notificationM))
	}

	return notifications, total, nil
}

// MarkNotificationRead marks one notification as read. Already read notifications keep their timestamp.
func (repo *notificationRepository) MarkNotificationRead(ctx context.Context, id uuid.UUID, at time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("id = ?", id).
		Update("read_at", gorm.Expr("COALESCE(read_at, ?)", at))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark notification read")
	}

	if result.RowsAffected == 0 {
		return repository.ErrNotificationNotFound
	}

	return nil
}

// MarkAllNotificationsRead marks every unread notification of the user as read.
func (repo *notificationRepository) MarkAllNotificationsRead(ctx context.Context, userID uuid.UUID, at time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("user_id = ? AND read_at IS NULL", userID).
		Update("read_at", at)

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to mark notifications read")
	}

	return result.RowsAffected, nil
}

// CountUnreadNotifications counts the user's unread notifications.
func (repo *notificationRepository) CountUnreadNotifications(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("user_id = ? AND read_at IS NULL", userID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count unread notifications")
	}

	return count, nil
}

// DeleteNotification removes a notification.
func (repo *notificationRepository) DeleteNotification(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.NotificationModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete notification")
	}

	if result.RowsAffected == 0 {
		return repository.ErrNotificationNotFound
	}

	return nil
}

// PurgeReadNotifications deletes read notifications created before the cutoff.
func (repo *notificationRepository) PurgeReadNotifications(ctx context.Context, before time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("read_at IS NOT NULL AND created_at < ?", before).
		Delete(&model.NotificationModel{})

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to purge notifications")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

func toNotificationDomain(data *model.NotificationModel) *entity.Notification {
	if data == nil {
		return nil
	}

	return &entity.Notification{
		ID:        data.ID,
		UserID:    data.UserID,
		Type:      entity.NotificationType(data.Type),
		Title:     data.Title,
		Body:      data.Body,
		Data:      data.Data,
		ReadAt:    data.ReadAt,
		CreatedAt: data.CreatedAt,
	}
}

func fromNotificationDomain(data *entity.Notification) *model.NotificationModel {
	return &model.NotificationModel{
		ID:        data.ID,
		UserID:    data.UserID,
		Type:      string(data.Type),
		Title:     data.Title,
		Body:      data.Body,
		Data:      data.Data,
		ReadAt:    data.ReadAt,
		CreatedAt: data.CreatedAt,
	}
}
