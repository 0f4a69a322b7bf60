package repository

import (
	"context"

	"dcars/internal/domain/entity"
	"dcars/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for profile persistence.
var (
	// ErrProfileNotFound is returned when a profile is not found.
	ErrProfileNotFound = errors.New("profile not found")
	// ErrDuplicateProfile is returned when a profile already exists for the ID or email.
	ErrDuplicateProfile = errors.New("profile already exists")
)

// ProfileRepository defines the interface for profile-related database operations.
type ProfileRepository interface {
	// CreateProfile persists a new profile. The ID must be the auth user's ID.
	CreateProfile(ctx context.Context, profile *entity.Profile) error

	// FindProfileByID retrieves a profile by its ID.
	FindProfileByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error)

	// FindProfileByEmail retrieves a profile by email, case-insensitively.
	FindProfileByEmail(ctx context.Context, email string) (*entity.Profile, error)

	// FindProfilesByIDs retrieves the profiles that exist among ids.
	FindProfilesByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Profile, error)

	// UpdateProfile saves editable profile fields and role.
	UpdateProfile(ctx context.Context, profile *entity.Profile) error

	// UpdateRole sets a profile's role.
	UpdateRole(ctx context.Context, id uuid.UUID, role entity.Role) error

	// SetSuspended flags or unflags a profile as suspended.
	SetSuspended(ctx context.Context, id uuid.UUID, suspended bool) error

	// ListProfiles returns one page of profiles matching the filter and the total match count.
	ListProfiles(ctx context.Context, filter entity.ProfileFilter) ([]*entity.Profile, int64, error)
}
