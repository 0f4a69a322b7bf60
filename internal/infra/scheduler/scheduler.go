// Package scheduler runs maintenance jobs on cron schedules inside the API process.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"dcars/config"
	"dcars/internal/domain/lifecycle"
	"dcars/internal/errors"
	"dcars/internal/usecase"

	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
)

// Default schedules, in standard five-field cron syntax.
const (
	defaultListingExpirySpec      = "*/15 * * * *"
	defaultSubscriptionExpirySpec = "0 * * * *"
	defaultNotificationPurgeSpec  = "30 3 * * *"
)

// Scheduler wraps a cron runner bound to the maintenance use case.
type Scheduler struct {
	cron        *cron.Cron
	maintenance usecase.MaintenanceUsecase
	retention   time.Duration
	logger      *slog.Logger
	now         func() time.Time
}

// Params defines the dependencies of the fx provider.
type Params struct {
	fx.In

	Lc          fx.Lifecycle
	Config      *config.Config
	Logger      *slog.Logger
	Maintenance usecase.MaintenanceUsecase
}

// New builds the scheduler and registers start/stop hooks when scheduling is enabled.
func New(params Params) (*Scheduler, error) {
	cfg := params.Config.Scheduler

	s := &Scheduler{
		cron:        cron.New(cron.WithChain(cron.Recover(cronLogger{params.Logger}))),
		maintenance: params.Maintenance,
		retention:   time.Duration(cfg.NotificationRetentionDays) * 24 * time.Hour,
		logger:      params.Logger,
		now:         time.Now,
	}

	if !cfg.Enabled {
		params.Logger.Info("Scheduler disabled")

		return s, nil
	}

	if err := s.register(cfg); err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			s.logger.Info("Starting scheduler", slog.Int("jobs", len(s.cron.Entries())))
			s.cron.Start()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			return s.Stop(ctx)
		},
	})

	return s, nil
}

func (s *Scheduler) register(cfg *config.SchedulerConfig) error {
	jobs := []struct {
		name string
		spec string
		run  func(ctx context.Context) (int64, error)
	}{
		{
			name: "expire_listings",
			spec: specOrDefault(cfg.ListingExpirySpec, defaultListingExpirySpec),
			run: func(ctx context.Context) (int64, error) {
				n, err := s.maintenance.ExpireListings(ctx, s.now())

				return int64(n), err
			},
		},
		{
			name: "expire_subscriptions",
			spec: specOrDefault(cfg.SubscriptionExpirySpec, defaultSubscriptionExpirySpec),
			run: func(ctx context.Context) (int64, error) {
				n, err := s.maintenance.ExpireSubscriptions(ctx, s.now())

				return int64(n), err
			},
		},
		{
			name: "purge_notifications",
			spec: specOrDefault(cfg.NotificationPurgeSpec, defaultNotificationPurgeSpec),
			run: func(ctx context.Context) (int64, error) {
				return s.maintenance.PurgeNotifications(ctx, s.now().Add(-s.retention))
			},
		},
	}

	for _, job := range jobs {
		if _, err := s.cron.AddFunc(job.spec, s.wrap(job.name, job.run)); err != nil {
			return errors.Wrapf(err, "invalid cron spec %q for %s", job.spec, job.name)
		}
	}

	return nil
}

// wrap bounds each run with a timeout and logs its outcome.
func (s *Scheduler) wrap(name string, run func(ctx context.Context) (int64, error)) func() {
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		start := time.Now()
		affected, err := run(ctx)
		if err != nil {
			s.logger.Error("[Scheduler] Job failed", slog.String("job", name), slog.Any("error", err))

			return
		}

		s.logger.Info("[Scheduler] Job finished",
			slog.String("job", name),
			slog.Int64("affected", affected),
			slog.Duration("took", time.Since(start)),
		)
	}
}

// Entries returns the registered jobs.
func (s *Scheduler) Entries() []cron.Entry {
	return s.cron.Entries()
}

// Stop halts scheduling and waits for running jobs.
func (s *Scheduler) Stop(ctx context.Context) error {
	s.logger.Info("Stopping scheduler")

	waitCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	select {
	case <-s.cron.Stop().Done():
		return nil
	case <-waitCtx.Done():
		return errors.Wrap(waitCtx.Err(), "scheduler jobs did not finish")
	}
}

func specOrDefault(spec, fallback string) string {
	if spec == "" {
		return fallback
	}

	return spec
}

// cronLogger adapts slog to cron.Logger.
type cronLogger struct {
	logger *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug("[Cron] "+msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error("[Cron] "+msg, append(keysAndValues, slog.Any("error", err))...)
}
