package usecase

import (
	"context"

	"dcars/internal/domain/entity"

	"github.com/google/uuid"
)

// VehicleUsecase manages listings, their images and search.
type VehicleUsecase interface {
	Create(ctx context.Context, actor Actor, input *VehicleInput) (*entity.Vehicle, error)
	Update(ctx context.Context, actor Actor, id uuid.UUID, input *VehicleUpdateInput) (*entity.Vehicle, error)
	Delete(ctx context.Context, actor Actor, id uuid.UUID) error

	// Get returns a listing. Non-active listings are visible to the owner and admins only.
	// viewer is nil for anonymous requests.
	Get(ctx context.Context, viewer *Actor, id uuid.UUID) (*entity.Vehicle, error)

	Publish(ctx context.Context, actor Actor, id uuid.UUID) (*entity.Vehicle, error)
	MarkSold(ctx context.Context, actor Actor, id uuid.UUID) (*entity.Vehicle, error)
	Archive(ctx context.Context, actor Actor, id uuid.UUID) (*entity.Vehicle, error)

	// Search returns active listings matching the filter.
	Search(ctx context.Context, filter entity.VehicleFilter) (entity.Page[*entity.Vehicle], error)

	// ListMine returns the caller's listings, optionally narrowed to one status.
	ListMine(ctx context.Context, actor Actor, status entity.VehicleStatus, page entity.PageRequest) (entity.Page[*entity.Vehicle], error)

	Makes(ctx context.Context) ([]entity.MakeCount, error)

	UploadImage(ctx context.Context, actor Actor, vehicleID uuid.UUID, file *FileUpload) (*entity.VehicleImage, error)
	DeleteImage(ctx context.Context, actor Actor, vehicleID, imageID uuid.UUID) error
	ReorderImages(ctx context.Context, actor Actor, vehicleID uuid.UUID, imageIDs []uuid.UUID) (*entity.Vehicle, error)

	// ShareQR returns a PNG QR code pointing at the public listing page.
	ShareQR(ctx context.Context, id uuid.UUID) ([]byte, error)
}

// VehicleInput defines a new listing.
type VehicleInput struct {
	Title        string   `json:"title" validate:"required,max=160"`
	Make         string   `json:"make" validate:"required,max=60"`
	Model        string   `json:"model" validate:"required,max=60"`
	Year         int      `json:"year" validate:"required,min=1900"`
	PriceMinor   int64    `json:"price_minor" validate:"required,gt=0"`
	Currency     string   `json:"currency" validate:"omitempty,currency"`
	MileageKm    int      `json:"mileage_km" validate:"gte=0"`
	FuelType     string   `json:"fuel_type" validate:"required,oneof=petrol diesel hybrid electric lpg other"`
	Transmission string   `json:"transmission" validate:"required,oneof=manual automatic"`
	BodyType     string   `json:"body_type" validate:"omitempty,max=40"`
	Condition    string   `json:"condition" validate:"required,oneof=new used certified"`
	Color        string   `json:"color" validate:"omitempty,max=40"`
	Description  string   `json:"description" validate:"omitempty,max=5000"`
	City         string   `json:"city" validate:"omitempty,max=120"`
	Latitude     *float64 `json:"latitude" validate:"omitempty,latitude"`
	Longitude    *float64 `json:"longitude" validate:"omitempty,longitude"`
}

// VehicleUpdateInput carries listing changes; nil fields are left untouched.
type VehicleUpdateInput struct {
	Title        *string  `json:"title,omitempty" validate:"omitempty,min=1,max=160"`
	Make         *string  `json:"make,omitempty" validate:"omitempty,min=1,max=60"`
	Model        *string  `json:"model,omitempty" validate:"omitempty,min=1,max=60"`
	Year         *int     `json:"year,omitempty" validate:"omitempty,min=1900"`
	PriceMinor   *int64   `json:"price_minor,omitempty" validate:"omitempty,gt=0"`
	Currency     *string  `json:"currency,omitempty" validate:"omitempty,currency"`
	MileageKm    *int     `json:"mileage_km,omitempty" validate:"omitempty,gte=0"`
	FuelType     *string  `json:"fuel_type,omitempty" validate:"omitempty,oneof=petrol diesel hybrid electric lpg other"`
	Transmission *string  `json:"transmission,omitempty" validate:"omitempty,oneof=manual automatic"`
	BodyType     *string  `json:"body_type,omitempty" validate:"omitempty,max=40"`
	Condition    *string  `json:"condition,omitempty" validate:"omitempty,oneof=new used certified"`
	Color        *string  `json:"color,omitempty" validate:"omitempty,max=40"`
	Description  *string  `json:"description,omitempty" validate:"omitempty,max=5000"`
	City         *string  `json:"city,omitempty" validate:"omitempty,max=120"`
	Latitude     *float64 `json:"latitude,omitempty" validate:"omitempty,latitude"`
	Longitude    *float64 `json:"longitude,omitempty" validate:"omitempty,longitude"`
}
