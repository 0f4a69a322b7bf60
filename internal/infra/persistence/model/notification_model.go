package model

import (
	"time"

	"github.com/google/uuid"
)

// NotificationModel is the GORM-specific struct for the 'notifications' table.
type NotificationModel struct {
	ID        uuid.UUID         `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID         `gorm:"type:uuid;not null;index"`
	Type      string            `gorm:"type:varchar(40);not null"`
	Title     string            `gorm:"type:varchar(200);not null"`
	Body      string            `gorm:"type:text;not null"`
	Data      map[string]string `gorm:"type:jsonb;serializer:json"`
	ReadAt    *time.Time
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (NotificationModel) TableName() string {
	return "notifications"
}
