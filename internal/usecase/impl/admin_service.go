package impl

import (
	"context"
	"log/slog"
	"strings"

	"dcars/config"
	"dcars/internal/domain/entity"
	domainerrors "dcars/internal/domain/errors"
	"dcars/internal/domain/repository"
	"dcars/internal/domain/service"
	"dcars/internal/errors"
	"dcars/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// adminService implements marketplace administration.
type adminService struct {
	profileRepo   repository.ProfileRepository
	vehicleRepo   repository.VehicleRepository
	paymentRepo   repository.PaymentRepository
	notifications usecase.NotificationUsecase
	monitor       service.SystemMonitor
	cfg           *config.Config
	logger        *slog.Logger
}

// AdminServiceParams holds dependencies for AdminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	ProfileRepo   repository.ProfileRepository
	VehicleRepo   repository.VehicleRepository
	PaymentRepo   repository.PaymentRepository
	Notifications usecase.NotificationUsecase
	Monitor       service.SystemMonitor
	Config        *config.Config
	Logger        *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	return &adminService{
		profileRepo:   params.ProfileRepo,
		vehicleRepo:   params.VehicleRepo,
		paymentRepo:   params.PaymentRepo,
		notifications: params.Notifications,
		monitor:       params.Monitor,
		cfg:           params.Config,
		logger:        params.Logger,
	}
}

// ListUsers searches profiles by name or email, role and suspension.
func (srv *adminService) ListUsers(ctx context.Context, filter entity.ProfileFilter) (entity.Page[*entity.Profile], error) {
	if filter.Role != "" && !filter.Role.IsValid() {
		return entity.Page[*entity.Profile]{}, errors.Wrapf(domainerrors.ErrInvalidRole, "role %q", filter.Role)
	}
	filter.Query = strings.TrimSpace(filter.Query)
	filter.Page = clampPage(srv.cfg, filter.Page)

	profiles, total, err := srv.profileRepo.ListProfiles(ctx, filter)
	if err != nil {
		return entity.Page[*entity.Profile]{}, errors.Wrap(err, "failed to list profiles")
	}

	return entity.NewPage(profiles, total, filter.Page), nil
}

// SetRole changes a user's role. Admins cannot change their own role.
func (srv *adminService) SetRole(ctx context.Context, adminID, userID uuid.UUID, role entity.Role) (*entity.Profile, error) {
	if !role.IsValid() {
		return nil, errors.Wrapf(domainerrors.ErrInvalidRole, "role %q", role)
	}
	if adminID == userID {
		return nil, errors.Wrap(domainerrors.ErrForbidden.WithDetails("admins cannot change their own role"), "self role change")
	}

	profile, err := srv.applyRole(ctx, userID, role)
	if err != nil {
		return nil, err
	}

	contextLogger(ctx, srv.logger).Info("User role changed",
		slog.String("admin_id", adminID.String()),
		slog.String("user_id", userID.String()),
		slog.String("role", role.String()),
	)

	return profile, nil
}

// SetSuspended suspends or reinstates a user. Admins cannot suspend themselves.
func (srv *adminService) SetSuspended(ctx context.Context, adminID, userID uuid.UUID, suspended bool) (*entity.Profile, error) {
	if adminID == userID && suspended {
		return nil, errors.Wrap(domainerrors.ErrForbidden.WithDetails("admins cannot suspend themselves"), "self suspension")
	}

	profile, err := srv.profileRepo.FindProfileByID(ctx, userID)
	if err != nil {
		return nil, mapProfileNotFound(err, "failed to find profile")
	}
	if profile.IsSuspended == suspended {
		return profile, nil
	}

	if err := srv.profileRepo.SetSuspended(ctx, userID, suspended); err != nil {
		return nil, mapProfileNotFound(err, "failed to update suspension")
	}
	profile.IsSuspended = suspended

	title := "Your account was reinstated"
	if suspended {
		title = "Your account was suspended"
	}
	notifyQuietly(ctx, srv.notifications, srv.logger, &usecase.NotifyInput{
		UserID: userID,
		Type:   entity.NotificationTypeAccount,
		Title:  title,
	})

	contextLogger(ctx, srv.logger).Info("User suspension changed",
		slog.String("admin_id", adminID.String()),
		slog.String("user_id", userID.String()),
		slog.Bool("suspended", suspended),
	)

	return profile, nil
}

// PromoteByEmail sets the role of the user with the given email. It backs the admin CLI.
func (srv *adminService) PromoteByEmail(ctx context.Context, email string, role entity.Role) (*entity.Profile, error) {
	if !role.IsValid() {
		return nil, errors.Wrapf(domainerrors.ErrInvalidRole, "role %q", role)
	}

	profile, err := srv.profileRepo.FindProfileByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, mapProfileNotFound(err, "failed to find profile")
	}

	return srv.applyRole(ctx, profile.ID, role)
}

func (srv *adminService) applyRole(ctx context.Context, userID uuid.UUID, role entity.Role) (*entity.Profile, error) {
	profile, err := srv.profileRepo.FindProfileByID(ctx, userID)
	if err != nil {
		return nil, mapProfileNotFound(err, "failed to find profile")
	}
	if profile.Role == role {
		return profile, nil
	}

	if err := srv.profileRepo.UpdateRole(ctx, userID, role); err != nil {
		return nil, mapProfileNotFound(err, "failed to update role")
	}
	profile.Role = role

	return profile, nil
}

// ListVehicles lists listings in any status for moderation.
func (srv *adminService) ListVehicles(ctx context.Context, status entity.VehicleStatus, page entity.PageRequest) (entity.Page[*entity.Vehicle], error) {
	filter := entity.VehicleFilter{
		Sort: entity.SortNewest,
		Page: clampPage(srv.cfg, page),
	}
	if status != "" {
		if !status.IsValid() {
			return entity.Page[*entity.Vehicle]{}, errors.Wrapf(domainerrors.ErrInvalidVehicleStatus, "unknown status %q", status)
		}
		filter.Statuses = []entity.VehicleStatus{status}
	}

	vehicles, total, err := srv.vehicleRepo.SearchVehicles(ctx, filter)
	if err != nil {
		return entity.Page[*entity.Vehicle]{}, errors.Wrap(err, "failed to list vehicles")
	}

	return entity.NewPage(vehicles, total, filter.Page), nil
}

// ModerateVehicle archives, restores or deletes a listing and tells its seller.
func (srv *adminService) ModerateVehicle(ctx context.Context, vehicleID uuid.UUID, action usecase.ModerationAction, reason string) error {
	vehicle, err := srv.vehicleRepo.FindVehicleByID(ctx, vehicleID)
	if err != nil {
		return mapVehicleError(err, "failed to find vehicle")
	}

	var title string
	switch action {
	case usecase.ModerationArchive:
		if vehicle.Status == entity.VehicleStatusArchived {
			return nil
		}
		err = srv.vehicleRepo.UpdateVehicleStatus(ctx, vehicleID, entity.VehicleStatusArchived)
		title = "Your listing was hidden by a moderator"
	case usecase.ModerationRestore:
		if vehicle.Status != entity.VehicleStatusArchived {
			return errors.Wrapf(domainerrors.ErrInvalidVehicleStatus, "cannot restore a %s listing", vehicle.Status)
		}
		err = srv.vehicleRepo.UpdateVehicleStatus(ctx, vehicleID, entity.VehicleStatusActive)
		title = "Your listing was restored"
	case usecase.ModerationDelete:
		err = srv.vehicleRepo.DeleteVehicle(ctx, vehicleID)
		title = "Your listing was removed by a moderator"
	default:
		return errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("action must be archive, restore or delete"), "unknown moderation action")
	}
	if err != nil {
		return mapVehicleError(err, "failed to moderate vehicle")
	}

	body := vehicle.Title
	if reason = strings.TrimSpace(reason); reason != "" {
		body = vehicle.Title + ": " + reason
	}
	notifyQuietly(ctx, srv.notifications, srv.logger, &usecase.NotifyInput{
		UserID: vehicle.SellerID,
		Type:   entity.NotificationTypeSystem,
		Title:  title,
		Body:   body,
		Data:   map[string]string{"vehicle_id": vehicleID.String(), "action": string(action)},
	})

	contextLogger(ctx, srv.logger).Info("Vehicle moderated",
		slog.String("vehicle_id", vehicleID.String()),
		slog.String("action", string(action)),
	)

	return nil
}

// ListTransactions lists all transactions, optionally by status.
func (srv *adminService) ListTransactions(ctx context.Context, status entity.TransactionStatus, page entity.PageRequest) (entity.Page[*entity.Transaction], error) {
	if status != "" && !status.IsValid() {
		return entity.Page[*entity.Transaction]{}, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("unknown transaction status"), string(status))
	}

	filter := entity.TransactionFilter{Status: status, Page: clampPage(srv.cfg, page)}

	items, total, err := srv.paymentRepo.ListTransactions(ctx, filter)
	if err != nil {
		return entity.Page[*entity.Transaction]{}, errors.Wrap(err, "failed to list transactions")
	}

	return entity.NewPage(items, total, filter.Page), nil
}

// SystemStats reports host resource usage.
func (srv *adminService) SystemStats(ctx context.Context) (*entity.SystemStats, error) {
	stats, err := srv.monitor.Snapshot(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read system stats")
	}

	return stats, nil
}

func mapProfileNotFound(err error, message string) error {
	if errors.Is(err, repository.ErrProfileNotFound) {
		return errors.Wrap(domainerrors.ErrProfileNotFound, message)
	}

	return errors.Wrap(err, message)
}
