package model

import (
	"time"

	"github.com/google/uuid"
)

// TransactionModel is the GORM-specific struct for the 'transactions' table.
type TransactionModel struct {
	ID                uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Reference         string     `gorm:"type:varchar(64);not null;uniqueIndex"`
	BuyerID           uuid.UUID  `gorm:"type:uuid;not null;index"`
	SellerID          *uuid.UUID `gorm:"type:uuid;index"`
	VehicleID         *uuid.UUID `gorm:"type:uuid"`
	SubscriptionID    *uuid.UUID `gorm:"type:uuid"`
	PlanCode          string     `gorm:"type:varchar(40)"`
	Kind              string     `gorm:"type:varchar(30);not null"`
	AmountMinor       int64      `gorm:"not null"`
	Currency          string     `gorm:"type:char(3);not null"`
	Provider          string     `gorm:"type:varchar(20);not null"`
	ProviderReference string     `gorm:"type:varchar(255)"`
	Status            string     `gorm:"type:varchar(20);not null;index"`
	CompletedAt       *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (TransactionModel) TableName() string {
	return "transactions"
}
