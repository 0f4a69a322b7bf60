package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VehicleModel is the GORM-specific struct for the 'vehicles' table.
type VehicleModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	SellerID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Title         string    `gorm:"type:varchar(200);not null"`
	Make          string    `gorm:"type:varchar(80);not null;index"`
	Model         string    `gorm:"type:varchar(80);not null"`
	Year          int       `gorm:"not null"`
	PriceMinor    int64     `gorm:"not null"`
	Currency      string    `gorm:"type:char(3);not null"`
	MileageKm     int       `gorm:"not null"`
	FuelType      string    `gorm:"type:varchar(20);not null"`
	Transmission  string    `gorm:"type:varchar(20);not null"`
	BodyType      string    `gorm:"type:varchar(40)"`
	Condition     string    `gorm:"type:varchar(20);not null"`
	Color         string    `gorm:"type:varchar(40)"`
	Description   string    `gorm:"type:text"`
	City          string    `gorm:"type:varchar(120);index"`
	Latitude      *float64
	Longitude     *float64
	Status        string `gorm:"type:varchar(20);not null;index"`
	ViewCount     int64  `gorm:"not null"`
	FeaturedUntil *time.Time
	PublishedAt   *time.Time
	ExpiresAt     *time.Time `gorm:"index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     gorm.DeletedAt `gorm:"index"`

	Images []VehicleImageModel `gorm:"foreignKey:VehicleID"`
}

// TableName explicitly sets the table name for GORM.
func (VehicleModel) TableName() string {
	return "vehicles"
}

// VehicleImageModel is the GORM-specific struct for the 'vehicle_images' table.
type VehicleImageModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	VehicleID   uuid.UUID `gorm:"type:uuid;not null;index"`
	StoragePath string    `gorm:"type:text;not null"`
	URL         string    `gorm:"type:text;not null"`
	Position    int       `gorm:"not null"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (VehicleImageModel) TableName() string {
	return "vehicle_images"
}
