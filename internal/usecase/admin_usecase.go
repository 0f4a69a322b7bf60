package usecase

import (
	"context"

	"dcars/internal/domain/entity"

	"github.com/google/uuid"
)

// ModerationAction is what an admin does to a listing.
type ModerationAction string

const (
	ModerationArchive ModerationAction = "archive"
	ModerationRestore ModerationAction = "restore"
	ModerationDelete  ModerationAction = "delete"
)

// AdminUsecase holds marketplace moderation.
type AdminUsecase interface {
	ListUsers(ctx context.Context, filter entity.ProfileFilter) (entity.Page[*entity.Profile], error)
	SetRole(ctx context.Context, adminID, userID uuid.UUID, role entity.Role) (*entity.Profile, error)
	SetSuspended(ctx context.Context, adminID, userID uuid.UUID, suspended bool) (*entity.Profile, error)

	// PromoteByEmail sets the role of the profile with the given email. Used by the admin CLI.
	PromoteByEmail(ctx context.Context, email string, role entity.Role) (*entity.Profile, error)

	ListVehicles(ctx context.Context, status entity.VehicleStatus, page entity.PageRequest) (entity.Page[*entity.Vehicle], error)
	ModerateVehicle(ctx context.Context, vehicleID uuid.UUID, action ModerationAction, reason string) error
	ListTransactions(ctx context.Context, status entity.TransactionStatus, page entity.PageRequest) (entity.Page[*entity.Transaction], error)
	SystemStats(ctx context.Context) (*entity.SystemStats, error)
}
