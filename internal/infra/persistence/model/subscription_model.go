package model

import (
	"time"

	"github.com/google/uuid"
)

// SubscriptionModel is the GORM-specific struct for the 'subscriptions' table.
type SubscriptionModel struct {
	ID                     uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID                 uuid.UUID `gorm:"type:uuid;not null;index"`
	PlanCode               string    `gorm:"type:varchar(40);not null"`
	Status                 string    `gorm:"type:varchar(20);not null;index"`
	Provider               string    `gorm:"type:varchar(20);not null"`
	ProviderSubscriptionID string    `gorm:"type:varchar(255);index"`
	CurrentPeriodStart     *time.Time
	CurrentPeriodEnd       *time.Time
	CancelAtPeriodEnd      bool `gorm:"not null"`
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

// TableName explicitly sets the table name for GORM.
func (SubscriptionModel) TableName() string {
	return "subscriptions"
}
