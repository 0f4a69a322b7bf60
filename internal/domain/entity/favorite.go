package entity

import (
	"time"

	"github.com/google/uuid"
)

// Favorite marks a listing saved by a user.
type Favorite struct {
	UserID    uuid.UUID `json:"user_id"`
	VehicleID uuid.UUID `json:"vehicle_id"`
	CreatedAt time.Time `json:"created_at"`
}
