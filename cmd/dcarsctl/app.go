package main

import (
	"context"
	"log/slog"

	"dcars/config"
	"dcars/internal/domain/lifecycle"
	"dcars/internal/errors"
	logs "dcars/internal/infra/log"
	"dcars/internal/infra/persistence/postgres"
	"dcars/internal/infra/pubsub"
	"dcars/internal/infra/realtime"
	"dcars/internal/infra/system"
	"dcars/internal/usecase/impl"

	"go.uber.org/fx"
)

// cliOptions is the subset of the server graph the commands need. Constructors run only when a target asks for them.
func cliOptions() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
		),
		fx.Provide(
			postgres.NewProfileRepository,
			postgres.NewVehicleRepository,
			postgres.NewPaymentRepository,
			postgres.NewSubscriptionRepository,
			postgres.NewNotificationRepository,
			postgres.NewTransactionManager,
		),
		fx.Provide(
			pubsub.NewEventPublisher,
			realtime.New,
			realtime.NewRealtimeNotifier,
			system.NewSystemMonitor,
		),
		fx.Provide(
			impl.NewNotificationService,
			impl.NewAdminService,
			impl.NewMaintenanceService,
		),
	)
}

// withApp starts the dependency graph, fills targets and runs fn before stopping it again.
func withApp(ctx context.Context, targets []any, fn func(ctx context.Context) error) (err error) {
	app := fx.New(
		fx.NopLogger,
		cliOptions(),
		fx.Populate(targets...),
	)
	if err := app.Err(); err != nil {
		return errors.Wrap(err, "failed to build dependencies")
	}

	startCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		return errors.Wrap(err, "failed to start dependencies")
	}

	defer func() {
		stopCtx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
		defer cancel()

		if stopErr := app.Stop(stopCtx); stopErr != nil {
			slog.Warn("Failed to stop dependencies", slog.Any("error", stopErr))
		}
	}()

	return fn(ctx)
}
