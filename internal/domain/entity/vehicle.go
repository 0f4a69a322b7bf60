package entity

import (
	"time"

	"github.com/google/uuid"
)

// VehicleStatus is the lifecycle state of a listing.
type VehicleStatus string

const (
	VehicleStatusDraft    VehicleStatus = "draft"
	VehicleStatusActive   VehicleStatus = "active"
	VehicleStatusSold     VehicleStatus = "sold"
	VehicleStatusArchived VehicleStatus = "archived"
	VehicleStatusExpired  VehicleStatus = "expired"
)

// IsValid checks if the status is a known value.
func (s VehicleStatus) IsValid() bool {
	switch s {
	case VehicleStatusDraft, VehicleStatusActive, VehicleStatusSold, VehicleStatusArchived, VehicleStatusExpired:
		return true
	default:
		return false
	}
}

// CanPublish reports whether a listing in this status may go live.
func (s VehicleStatus) CanPublish() bool {
	return s == VehicleStatusDraft || s == VehicleStatusExpired || s == VehicleStatusArchived
}

// FuelType values accepted on listings.
const (
	FuelPetrol   = "petrol"
	FuelDiesel   = "diesel"
	FuelHybrid   = "hybrid"
	FuelElectric = "electric"
	FuelLPG      = "lpg"
	FuelOther    = "other"
)

// Transmission values accepted on listings.
const (
	TransmissionManual    = "manual"
	TransmissionAutomatic = "automatic"
)

// Condition values accepted on listings.
const (
	ConditionNew       = "new"
	ConditionUsed      = "used"
	ConditionCertified = "certified"
)

// Vehicle is a listing published by a seller.
// Prices are stored in minor currency units to avoid float rounding.
type Vehicle struct {
	ID            uuid.UUID      `json:"id"`
	SellerID      uuid.UUID      `json:"seller_id"`
	Title         string         `json:"title"`
	Make          string         `json:"make"`
	Model         string         `json:"model"`
	Year          int            `json:"year"`
	PriceMinor    int64          `json:"price_minor"`
	Currency      string         `json:"currency"`
	MileageKm     int            `json:"mileage_km"`
	FuelType      string         `json:"fuel_type"`
	Transmission  string         `json:"transmission"`
	BodyType      string         `json:"body_type,omitempty"`
	Condition     string         `json:"condition"`
	Color         string         `json:"color,omitempty"`
	Description   string         `json:"description,omitempty"`
	City          string         `json:"city,omitempty"`
	Latitude      *float64       `json:"latitude,omitempty"`
	Longitude     *float64       `json:"longitude,omitempty"`
	Status        VehicleStatus  `json:"status"`
	ViewCount     int64          `json:"view_count"`
	FeaturedUntil *time.Time     `json:"featured_until,omitempty"`
	PublishedAt   *time.Time     `json:"published_at,omitempty"`
	ExpiresAt     *time.Time     `json:"expires_at,omitempty"`
	Images        []VehicleImage `json:"images"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`

	// DistanceKm is only set on geo searches.
	DistanceKm *float64 `json:"distance_km,omitempty"`
}

// HasLocation reports whether the listing carries coordinates.
func (v *Vehicle) HasLocation() bool {
	return v.Latitude != nil && v.Longitude != nil
}

// IsFeatured reports whether the listing is featured at the given time.
func (v *Vehicle) IsFeatured(now time.Time) bool {
	return v.FeaturedUntil != nil && v.FeaturedUntil.After(now)
}

// VehicleImage is one photo of a listing kept in object storage.
type VehicleImage struct {
	ID          uuid.UUID `json:"id"`
	VehicleID   uuid.UUID `json:"vehicle_id"`
	StoragePath string    `json:"-"`
	URL         string    `json:"url"`
	Position    int       `json:"position"`
	CreatedAt   time.Time `json:"created_at"`
}

// VehicleUpdate carries optional listing changes; nil fields are left untouched.
type VehicleUpdate struct {
	Title        *string
	Make         *string
	Model        *string
	Year         *int
	PriceMinor   *int64
	Currency     *string
	MileageKm    *int
	FuelType     *string
	Transmission *string
	BodyType     *string
	Condition    *string
	Color        *string
	Description  *string
	City         *string
	Latitude     *float64
	Longitude    *float64
}

// VehicleSort names the supported orderings for searches.
type VehicleSort string

const (
	SortNewest     VehicleSort = "newest"
	SortOldest     VehicleSort = "oldest"
	SortPriceAsc   VehicleSort = "price_asc"
	SortPriceDesc  VehicleSort = "price_desc"
	SortMileageAsc VehicleSort = "mileage_asc"
	SortYearDesc   VehicleSort = "year_desc"
	SortDistance   VehicleSort = "distance"
)

// IsValid checks if the sort is a known value.
func (s VehicleSort) IsValid() bool {
	switch s {
	case SortNewest, SortOldest, SortPriceAsc, SortPriceDesc, SortMileageAsc, SortYearDesc, SortDistance:
		return true
	default:
		return false
	}
}

// GeoFilter restricts a search to a radius around a point.
type GeoFilter struct {
	Latitude  float64
	Longitude float64
	RadiusKm  float64
}

// VehicleFilter is the full set of search criteria for listings.
type VehicleFilter struct {
	Query        string
	Make         string
	Model        string
	MinPrice     *int64
	MaxPrice     *int64
	MinYear      *int
	MaxYear      *int
	MaxMileage   *int
	FuelType     string
	Transmission string
	BodyType     string
	Condition    string
	City         string
	SellerID     *uuid.UUID
	Statuses     []VehicleStatus
	Near         *GeoFilter
	Sort         VehicleSort
	Page         PageRequest
}

// MakeCount is a make with the number of active listings, used for filter menus.
type MakeCount struct {
	Make  string `json:"make"`
	Count int64  `json:"count"`
}
