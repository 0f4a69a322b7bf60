package impl

import (
	"context"
	"log/slog"
	"time"

	"dcars/config"
	"dcars/internal/domain/entity"
	domainerrors "dcars/internal/domain/errors"
	"dcars/internal/domain/repository"
	"dcars/internal/errors"
	"dcars/internal/usecase"

	"github.com/google/uuid"
)

type subscriptionService struct {
	subscriptionRepo repository.SubscriptionRepository
	cfg              *config.Config
	logger           *slog.Logger
	now              func() time.Time
}

// NewSubscriptionService creates the seller plan use case. Plans come from configuration.
func NewSubscriptionService(subscriptionRepo repository.SubscriptionRepository, cfg *config.Config, logger *slog.Logger) usecase.SubscriptionUsecase {
	return &subscriptionService{
		subscriptionRepo: subscriptionRepo,
		cfg:              cfg,
		logger:           logger,
		now:              time.Now,
	}
}

// ListPlans returns the configured plans priced in the payments currency.
func (srv *subscriptionService) ListPlans(_ context.Context) []entity.Plan {
	return plansFromConfig(srv.cfg)
}

// GetCurrent returns the user's current subscription.
func (srv *subscriptionService) GetCurrent(ctx context.Context, userID uuid.UUID) (*entity.Subscription, error) {
	sub, err := srv.subscriptionRepo.FindCurrentSubscription(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrSubscriptionNotFound) {
			return nil, errors.Wrap(domainerrors.ErrSubscriptionNotFound, "no current subscription")
		}

		return nil, errors.Wrap(err, "failed to find current subscription")
	}

	return sub, nil
}

// Cancel stops renewal. The plan stays usable until the end of the paid period.
func (srv *subscriptionService) Cancel(ctx context.Context, userID uuid.UUID) (*entity.Subscription, error) {
	sub, err := srv.GetCurrent(ctx, userID)
	if err != nil {
		return nil, err
	}

	if sub.CancelAtPeriodEnd {
		return sub, nil
	}

	sub.CancelAtPeriodEnd = true
	if err := srv.subscriptionRepo.UpdateSubscription(ctx, sub); err != nil {
		return nil, errors.Wrap(err, "failed to cancel subscription")
	}

	contextLogger(ctx, srv.logger).Info("Subscription set to cancel at period end",
		slog.String("user_id", userID.String()),
		slog.String("subscription_id", sub.ID.String()),
	)

	return sub, nil
}

// Entitlements resolves the limits of the user's current plan, or the free tier without one.
func (srv *subscriptionService) Entitlements(ctx context.Context, userID uuid.UUID) (*usecase.Entitlements, error) {
	free := &usecase.Entitlements{ListingLimit: srv.cfg.Listing.FreeListingLimit}

	sub, err := srv.subscriptionRepo.FindCurrentSubscription(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrSubscriptionNotFound) {
			return free, nil
		}

		return nil, errors.Wrap(err, "failed to find current subscription")
	}

	if !sub.IsCurrent(srv.now()) {
		return free, nil
	}

	plan, ok := srv.cfg.PlanByCode(sub.PlanCode)
	if !ok {
		contextLogger(ctx, srv.logger).Warn("Subscription references unknown plan",
			slog.String("subscription_id", sub.ID.String()),
			slog.String("plan_code", sub.PlanCode),
		)

		return free, nil
	}

	return &usecase.Entitlements{
		PlanCode:     plan.Code,
		ListingLimit: plan.ListingLimit,
		Featured:     plan.Featured,
	}, nil
}

func plansFromConfig(cfg *config.Config) []entity.Plan {
	plans := make([]entity.Plan, 0, len(cfg.Plans))
	for _, plan := range cfg.Plans {
		plans = append(plans, planFromConfig(cfg, plan))
	}

	return plans
}

func planFromConfig(cfg *config.Config, plan config.PlanConfig) entity.Plan {
	return entity.Plan{
		Code:         plan.Code,
		Name:         plan.Name,
		PriceMinor:   plan.PriceMinor,
		Currency:     cfg.Payments.Currency,
		ListingLimit: plan.ListingLimit,
		PeriodDays:   plan.PeriodDays,
		Featured:     plan.Featured,
	}
}
