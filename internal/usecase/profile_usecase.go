package usecase

import (
	"context"

	"dcars/internal/domain/entity"

	"github.com/google/uuid"
)

// ProfileUsecase defines the interface for profile-related business operations.
type ProfileUsecase interface {
	GetMe(ctx context.Context, userID uuid.UUID) (*entity.Profile, error)
	UpdateMe(ctx context.Context, userID uuid.UUID, input *UpdateProfileInput) (*entity.Profile, error)
	GetPublicProfile(ctx context.Context, id uuid.UUID) (*entity.PublicProfile, error)
	UploadAvatar(ctx context.Context, userID uuid.UUID, file *FileUpload) (*entity.Profile, error)
	BecomeSeller(ctx context.Context, userID uuid.UUID, input *BecomeSellerInput) (*entity.Profile, error)
}

// --- Input DTOs ---

// UpdateProfileInput defines the editable profile fields. Nil fields are left untouched.
type UpdateProfileInput struct {
	FullName   *string `json:"full_name,omitempty" validate:"omitempty,min=1,max=120"`
	Phone      *string `json:"phone,omitempty" validate:"omitempty,max=32"`
	Bio        *string `json:"bio,omitempty" validate:"omitempty,max=1000"`
	City       *string `json:"city,omitempty" validate:"omitempty,max=120"`
	AvatarURL  *string `json:"avatar_url,omitempty" validate:"omitempty,url"`
	DealerName *string `json:"dealer_name,omitempty" validate:"omitempty,max=120"`
}

// BecomeSellerInput upgrades a buyer. A dealer name makes the profile a dealer.
type BecomeSellerInput struct {
	DealerName string `json:"dealer_name" validate:"omitempty,max=120"`
}
