package postgres

import (
	"context"
	"time"

	"dcars/internal/domain/entity"
	domainerrors "dcars/internal/domain/errors"
	"dcars/internal/domain/repository"
	"dcars/internal/errors"
	"dcars/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var currentSubscriptionStatuses = []string{
	string(entity.SubscriptionStatusActive),
	string(entity.SubscriptionStatusPastDue),
}

// subscriptionRepository implements the repository.SubscriptionRepository interface.
type subscriptionRepository struct {
	db *gorm.DB
}

// NewSubscriptionRepository is the constructor for subscriptionRepository.
func NewSubscriptionRepository(db *gorm.DB) repository.SubscriptionRepository {
	return &subscriptionRepository{
		db: db,
	}
}

// CreateSubscription persists a new subscription.
func (repo *subscriptionRepository) CreateSubscription(ctx context.Context, sub *entity.Subscription) error {
	if sub.ID == uuid.Nil {
		sub.ID = uuid.New()
	}
	subM := fromSubscriptionDomain(sub)

	if err := repo.db.WithContext(ctx).Create(subM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrProfileNotFound.WrapMessage("invalid subscriber reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create subscription")
	}

	sub.CreatedAt = subM.CreatedAt
	sub.UpdatedAt = subM.UpdatedAt

	return nil
}

// FindSubscriptionByID retrieves a subscription by its ID.
func (repo *subscriptionRepository) FindSubscriptionByID(ctx context.Context, id uuid.UUID) (*entity.Subscription, error) {
	var subM model.SubscriptionModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&subM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSubscriptionNotFound
		}

		return nil, errors.Wrap(err, "failed to find subscription by ID")
	}

	return toSubscriptionDomain(&subM), nil
}

// FindCurrentSubscription retrieves the user's latest active or past due subscription.
func (repo *subscriptionRepository) FindCurrentSubscription(ctx context.Context, userID uuid.UUID) (*entity.Subscription, error) {
	var subM model.SubscriptionModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND status IN ?", userID, currentSubscriptionStatuses).
		Order("current_period_end DESC NULLS FIRST").
		First(&subM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSubscriptionNotFound
		}

		return nil, errors.Wrap(err, "failed to find current subscription")
	}

	return toSubscriptionDomain(&subM), nil
}

// FindSubscriptionByProviderID retrieves a subscription by the provider's identifier.
func (repo *subscriptionRepository) FindSubscriptionByProviderID(
	ctx context.Context,
	provider entity.PaymentProvider,
	providerSubscriptionID string,
) (*entity.Subscription, error) {
	var subM model.SubscriptionModel

	if err := repo.db.WithContext(ctx).
		Where("provider = ? AND provider_subscription_id = ?", string(provider), providerSubscriptionID).
		First(&subM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSubscriptionNotFound
		}

		return nil, errors.Wrap(err, "failed to find subscription by provider ID")
	}

	return toSubscriptionDomain(&subM), nil
}

// FindDueSubscriptions returns active or past due subscriptions whose period ended before now.
func (repo *subscriptionRepository) FindDueSubscriptions(ctx context.Context, now time.Time) ([]*entity.Subscription, error) {
	var subModels []*model.SubscriptionModel

	if err := repo.db.WithContext(ctx).
		Where("status IN ? AND current_period_end IS NOT NULL AND current_period_end <= ?", currentSubscriptionStatuses, now).
		Order("current_period_end ASC").
		Find(&subModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find due subscriptions")
	}

	subs := make([]*entity.Subscription, 0, len(subModels))
	for _, subM := range subModels {
		subs = append(subs, toSubscriptionDomain(subM))
	}

	return subs, nil
}

// UpdateSubscription saves all mutable subscription columns.
func (repo *subscriptionRepository) UpdateSubscription(ctx context.Context, sub *entity.Subscription) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SubscriptionModel{}).
		Where("id = ?", sub.ID).
		Updates(map[string]any{
			"plan_code":                sub.PlanCode,
			"status":                   string(sub.Status),
			"provider":                 string(sub.Provider),
			"provider_subscription_id": sub.ProviderSubscriptionID,
			"current_period_start":     sub.CurrentPeriodStart,
			"current_period_end":       sub.CurrentPeriodEnd,
			"cancel_at_period_end":     sub.CancelAtPeriodEnd,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update subscription")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSubscriptionNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toSubscriptionDomain(data *model.SubscriptionModel) *entity.Subscription {
	if data == nil {
		return nil
	}

	return &entity.Subscription{
		ID:                     data.ID,
		UserID:                 data.UserID,
		PlanCode:               data.PlanCode,
		Status:                 entity.SubscriptionStatus(data.Status),
		Provider:               entity.PaymentProvider(data.Provider),
		ProviderSubscriptionID: data.ProviderSubscriptionID,
		CurrentPeriodStart:     data.CurrentPeriodStart,
		CurrentPeriodEnd:       data.CurrentPeriodEnd,
		CancelAtPeriodEnd:      data.CancelAtPeriodEnd,
		CreatedAt:              data.CreatedAt,
		UpdatedAt:              data.UpdatedAt,
	}
}

func fromSubscriptionDomain(data *entity.Subscription) *model.SubscriptionModel {
	return &model.SubscriptionModel{
		ID:                     data.ID,
		UserID:                 data.UserID,
		PlanCode:               data.PlanCode,
		Status:                 string(data.Status),
		Provider:               string(data.Provider),
		ProviderSubscriptionID: data.ProviderSubscriptionID,
		CurrentPeriodStart:     data.CurrentPeriodStart,
		CurrentPeriodEnd:       data.CurrentPeriodEnd,
		CancelAtPeriodEnd:      data.CancelAtPeriodEnd,
		CreatedAt:              data.CreatedAt,
		UpdatedAt:              data.UpdatedAt,
	}
}
