package main

import (
	"context"
	"log/slog"
	"os"

	"dcars/config"
	"dcars/internal/delivery"
	"dcars/internal/delivery/api"
	apimiddleware "dcars/internal/delivery/api/middleware"
	"dcars/internal/delivery/api/router/handler"
	"dcars/internal/domain/service"
	"dcars/internal/infra/auth"
	logs "dcars/internal/infra/log"
	"dcars/internal/infra/payment"
	"dcars/internal/infra/persistence/postgres"
	"dcars/internal/infra/pubsub"
	"dcars/internal/infra/qrcode"
	"dcars/internal/infra/ratelimit"
	"dcars/internal/infra/realtime"
	"dcars/internal/infra/scheduler"
	"dcars/internal/infra/storage"
	"dcars/internal/infra/supabase"
	"dcars/internal/infra/system"
	"dcars/internal/infra/telegram"
	"dcars/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startScheduler,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewProfileRepository,
			postgres.NewVehicleRepository,
			postgres.NewFavoriteRepository,
			postgres.NewConversationRepository,
			postgres.NewPaymentRepository,
			postgres.NewSubscriptionRepository,
			postgres.NewWebhookEventRepository,
			postgres.NewNotificationRepository,
			postgres.NewDeviceRepository,
			postgres.NewDashboardRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		supabase.Module,
		fx.Provide(
			auth.NewJWTVerifier,
			storage.NewImageStorage,
			pubsub.NewEventPublisher,
			telegram.NewAdminAlerter,
			system.NewSystemMonitor,
			ratelimit.NewMessageRateLimiter,
			realtime.New,
			realtime.NewRealtimeNotifier,
			scheduler.New,
			newQRCodeService,
			fx.Annotate(
				payment.NewStripeVerifier,
				fx.ResultTags(`group:"payment_verifiers"`),
			),
			fx.Annotate(
				payment.NewPaystackVerifier,
				fx.ResultTags(`group:"payment_verifiers"`),
			),
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return qrcode.NewQRCodeService(256, "M", "")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewProfileService,
			impl.NewVehicleService,
			impl.NewFavoriteService,
			impl.NewMessagingService,
			impl.NewTransactionService,
			impl.NewWebhookService,
			impl.NewSubscriptionService,
			impl.NewNotificationService,
			impl.NewDeviceService,
			impl.NewDashboardService,
			impl.NewAdminService,
			impl.NewMaintenanceService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			apimiddleware.NewAuthMiddleware,
			apimiddleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewProfileHandler,
			handler.NewVehicleHandler,
			handler.NewFavoriteHandler,
			handler.NewMessageHandler,
			handler.NewRealtimeHandler,
			handler.NewTransactionHandler,
			handler.NewWebhookHandler,
			handler.NewSubscriptionHandler,
			handler.NewNotificationHandler,
			handler.NewDeviceHandler,
			handler.NewDashboardHandler,
			handler.NewAdminHandler,
			handler.NewTestHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// startScheduler forces construction of the maintenance scheduler, which registers its own lifecycle hooks.
func startScheduler(*scheduler.Scheduler) {}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
