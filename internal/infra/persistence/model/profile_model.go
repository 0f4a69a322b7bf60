// Package model contains the GORM table mappings. IDs are assigned by the repositories.
package model

import (
	"time"

	"github.com/google/uuid"
)

// ProfileModel is the GORM-specific struct for the 'profiles' table.
// Its ID equals the Supabase auth user ID.
type ProfileModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email       string    `gorm:"type:varchar(320);not null;uniqueIndex"`
	FullName    string    `gorm:"type:varchar(200);not null"`
	Phone       string    `gorm:"type:varchar(50)"`
	AvatarURL   string    `gorm:"type:text"`
	Bio         string    `gorm:"type:text"`
	City        string    `gorm:"type:varchar(120)"`
	Role        string    `gorm:"type:varchar(20);not null;index"`
	DealerName  string    `gorm:"type:varchar(200)"`
	IsVerified  bool      `gorm:"not null"`
	IsSuspended bool      `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "profiles"
}
