package repository

import (
	"context"
	"time"

	"dcars/internal/domain/entity"
	"dcars/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for vehicle persistence.
var (
	// ErrVehicleNotFound is returned when a listing is not found or was deleted.
	ErrVehicleNotFound = errors.New("vehicle not found")
	// ErrVehicleImageNotFound is returned when a listing image is not found.
	ErrVehicleImageNotFound = errors.New("vehicle image not found")
)

// VehicleRepository defines the interface for listing-related database operations.
type VehicleRepository interface {
	// CreateVehicle persists a new listing.
	CreateVehicle(ctx context.Context, vehicle *entity.Vehicle) error

	// FindVehicleByID retrieves a listing with its images ordered by position.
	FindVehicleByID(ctx context.Context, id uuid.UUID) (*entity.Vehicle, error)

	// FindVehiclesByIDs retrieves listings without images.
	FindVehiclesByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Vehicle, error)

	// UpdateVehicle saves all mutable listing columns.
	UpdateVehicle(ctx context.Context, vehicle *entity.Vehicle) error

	// UpdateVehicleStatus sets a listing's status.
	UpdateVehicleStatus(ctx context.Context, id uuid.UUID, status entity.VehicleStatus) error

	// DeleteVehicle soft-deletes a listing.
	DeleteVehicle(ctx context.Context, id uuid.UUID) error

	// IncrementViewCount adds one view to a listing.
	IncrementViewCount(ctx context.Context, id uuid.UUID) error

	// SearchVehicles returns one page of listings matching the filter and the total match count.
	SearchVehicles(ctx context.Context, filter entity.VehicleFilter) ([]*entity.Vehicle, int64, error)

	// CountVehiclesBySeller counts a seller's listings in the given statuses.
	CountVehiclesBySeller(ctx context.Context, sellerID uuid.UUID, statuses []entity.VehicleStatus) (int64, error)

	// ListMakes returns distinct makes of active listings with their counts.
	ListMakes(ctx context.Context) ([]entity.MakeCount, error)

	// ExpireListings marks active listings whose expiry passed as expired and returns them.
	ExpireListings(ctx context.Context, now time.Time) ([]*entity.Vehicle, error)

	// AddImage persists a listing image.
	AddImage(ctx context.Context, image *entity.VehicleImage) error

	// FindImageByID retrieves a listing image.
	FindImageByID(ctx context.Context, id uuid.UUID) (*entity.VehicleImage, error)

	// CountImages counts a listing's images.
	CountImages(ctx context.Context, vehicleID uuid.UUID) (int64, error)

	// DeleteImage removes a listing image.
	DeleteImage(ctx context.Context, id uuid.UUID) error

	// ReorderImages sets image positions to their index in imageIDs.
	ReorderImages(ctx context.Context, vehicleID uuid.UUID, imageIDs []uuid.UUID) error
}
