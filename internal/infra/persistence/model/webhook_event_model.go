package model

import (
	"time"

	"github.com/google/uuid"
)

// WebhookEventModel is the GORM-specific struct for the 'webhook_events' table.
type WebhookEventModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Provider    string    `gorm:"type:varchar(20);not null;uniqueIndex:idx_webhook_events_provider_event"`
	EventID     string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_webhook_events_provider_event"`
	EventType   string    `gorm:"type:varchar(100);not null"`
	ProcessedAt time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (WebhookEventModel) TableName() string {
	return "webhook_events"
}
