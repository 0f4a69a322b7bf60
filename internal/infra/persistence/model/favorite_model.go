package model

import (
	"time"

	"github.com/google/uuid"
)

// FavoriteModel is the GORM-specific struct for the 'favorites' table.
type FavoriteModel struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	VehicleID uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (FavoriteModel) TableName() string {
	return "favorites"
}
