package model

import (
	"time"

	"github.com/google/uuid"
)

// ConversationModel is the GORM-specific struct for the 'conversations' table.
type ConversationModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	VehicleID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_conversations_vehicle_buyer"`
	BuyerID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_conversations_vehicle_buyer;index"`
	SellerID      uuid.UUID `gorm:"type:uuid;not null;index"`
	LastMessageAt *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (ConversationModel) TableName() string {
	return "conversations"
}

// MessageModel is the GORM-specific struct for the 'messages' table.
type MessageModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	ConversationID uuid.UUID `gorm:"type:uuid;not null;index"`
	SenderID       uuid.UUID `gorm:"type:uuid;not null"`
	Body           string    `gorm:"type:text;not null"`
	ReadAt         *time.Time
	CreatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (MessageModel) TableName() string {
	return "messages"
}
