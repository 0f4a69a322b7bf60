package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"dcars/config"
	"dcars/internal/domain/entity"
	"dcars/internal/domain/repository"
	"dcars/internal/errors"
	"dcars/internal/usecase"

	"go.uber.org/fx"
)

const defaultNotificationRetentionDays = 90

// maintenanceService runs the periodic housekeeping jobs.
type maintenanceService struct {
	txManager        repository.TransactionManager
	vehicleRepo      repository.VehicleRepository
	subscriptionRepo repository.SubscriptionRepository
	notificationRepo repository.NotificationRepository
	notifications    usecase.NotificationUsecase
	cfg              *config.Config
	logger           *slog.Logger
}

// MaintenanceServiceParams holds dependencies for MaintenanceService, injected by Fx.
type MaintenanceServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	VehicleRepo      repository.VehicleRepository
	SubscriptionRepo repository.SubscriptionRepository
	NotificationRepo repository.NotificationRepository
	Notifications    usecase.NotificationUsecase
	Config           *config.Config
	Logger           *slog.Logger
}

// NewMaintenanceService is the constructor for maintenanceService.
func NewMaintenanceService(params MaintenanceServiceParams) usecase.MaintenanceUsecase {
	return &maintenanceService{
		txManager:        params.TxManager,
		vehicleRepo:      params.VehicleRepo,
		subscriptionRepo: params.SubscriptionRepo,
		notificationRepo: params.NotificationRepo,
		notifications:    params.Notifications,
		cfg:              params.Config,
		logger:           params.Logger,
	}
}

// ExpireListings moves active listings past their expiry to expired and tells their sellers.
func (srv *maintenanceService) ExpireListings(ctx context.Context, now time.Time) (int, error) {
	vehicles, err := srv.vehicleRepo.ExpireListings(ctx, now)
	if err != nil {
		return 0, errors.Wrap(err, "failed to expire listings")
	}

	for _, vehicle := range vehicles {
		notifyQuietly(ctx, srv.notifications, srv.logger, &usecase.NotifyInput{
			UserID: vehicle.SellerID,
			Type:   entity.NotificationTypeListingExpired,
			Title:  "Your listing expired",
			Body:   fmt.Sprintf("%s is no longer visible. Publish it again to relist it.", vehicle.Title),
			Data:   map[string]string{"vehicle_id": vehicle.ID.String()},
		})
	}

	if len(vehicles) > 0 {
		srv.logger.Info("Expired listings", slog.Int("count", len(vehicles)))
	}

	return len(vehicles), nil
}

// ExpireSubscriptions ends subscriptions whose period is over. Subscriptions set to
// cancel at period end become canceled, the rest expired.
func (srv *maintenanceService) ExpireSubscriptions(ctx context.Context, now time.Time) (int, error) {
	var ended []*entity.Subscription

	err := srv.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		subRepo := txRepoFactory.NewSubscriptionRepository()

		due, err := subRepo.FindDueSubscriptions(ctx, now)
		if err != nil {
			return errors.Wrap(err, "failed to find due subscriptions")
		}

		for _, sub := range due {
			sub.Status = entity.SubscriptionStatusExpired
			if sub.CancelAtPeriodEnd {
				sub.Status = entity.SubscriptionStatusCanceled
			}

			if err := subRepo.UpdateSubscription(ctx, sub); err != nil {
				return errors.Wrapf(err, "failed to end subscription %s", sub.ID)
			}
		}
		ended = due

		return nil
	})
	if err != nil {
		return 0, err
	}

	for _, sub := range ended {
		notifyQuietly(ctx, srv.notifications, srv.logger, &usecase.NotifyInput{
			UserID: sub.UserID,
			Type:   entity.NotificationTypeSubscription,
			Title:  "Your plan ended",
			Body:   fmt.Sprintf("Your %s plan is no longer active.", sub.PlanCode),
			Data:   map[string]string{"subscription_id": sub.ID.String(), "status": string(sub.Status)},
		})
	}

	if len(ended) > 0 {
		srv.logger.Info("Ended subscriptions", slog.Int("count", len(ended)))
	}

	return len(ended), nil
}

// PurgeNotifications deletes read notifications created before the cutoff.
func (srv *maintenanceService) PurgeNotifications(ctx context.Context, before time.Time) (int64, error) {
	count, err := srv.notificationRepo.PurgeReadNotifications(ctx, before)
	if err != nil {
		return 0, errors.Wrap(err, "failed to purge notifications")
	}

	if count > 0 {
		srv.logger.Info("Purged read notifications", slog.Int64("count", count))
	}

	return count, nil
}

// RunAll runs every job once. A failing job does not stop the others.
func (srv *maintenanceService) RunAll(ctx context.Context, now time.Time) (*usecase.MaintenanceReport, error) {
	report := &usecase.MaintenanceReport{}

	var errs []error

	listings, err := srv.ExpireListings(ctx, now)
	errs = append(errs, err)
	report.ExpiredListings = listings

	subs, err := srv.ExpireSubscriptions(ctx, now)
	errs = append(errs, err)
	report.ExpiredSubscriptions = subs

	purged, err := srv.PurgeNotifications(ctx, now.AddDate(0, 0, -srv.retentionDays()))
	errs = append(errs, err)
	report.PurgedNotifications = purged

	return report, errors.Join(errs...)
}

// retentionDays is how long read notifications are kept.
func (srv *maintenanceService) retentionDays() int {
	if srv.cfg.Scheduler != nil && srv.cfg.Scheduler.NotificationRetentionDays > 0 {
		return srv.cfg.Scheduler.NotificationRetentionDays
	}

	return defaultNotificationRetentionDays
}
