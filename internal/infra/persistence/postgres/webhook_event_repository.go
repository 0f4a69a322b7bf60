package postgres

import (
	"context"
	"time"

	"dcars/internal/domain/entity"
	domainerrors "dcars/internal/domain/errors"
	"dcars/internal/domain/repository"
	"dcars/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// webhookEventRepository implements the repository.WebhookEventRepository interface.
type webhookEventRepository struct {
	db *gorm.DB
}

// NewWebhookEventRepository is the constructor for webhookEventRepository.
func NewWebhookEventRepository(db *gorm.DB) repository.WebhookEventRepository {
	return &webhookEventRepository{
		db: db,
	}
}

// RecordEvent stores a provider event; the (provider, event_id) unique index rejects replays.
func (repo *webhookEventRepository) RecordEvent(ctx context.Context, event *entity.WebhookEvent) error {
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	if event.ProcessedAt.IsZero() {
		event.ProcessedAt = time.Now().UTC()
	}

	eventM := &model.WebhookEventModel{
		ID:          event.ID,
		Provider:    string(event.Provider),
		EventID:     event.EventID,
		EventType:   event.EventType,
		ProcessedAt: event.ProcessedAt,
	}

	if err := repo.db.WithContext(ctx).Create(eventM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateWebhookEvent
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to record webhook event")
	}

	return nil
}
