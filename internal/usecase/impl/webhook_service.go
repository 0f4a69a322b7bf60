package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"dcars/config"
	"dcars/internal/domain/entity"
	domainerrors "dcars/internal/domain/errors"
	"dcars/internal/domain/repository"
	"dcars/internal/domain/service"
	"dcars/internal/errors"
	"dcars/internal/usecase"
	"dcars/internal/util"

	"go.uber.org/fx"
)

const defaultPlanPeriodDays = 30

// webhookService settles transactions from verified payment provider events.
type webhookService struct {
	verifiers     map[entity.PaymentProvider]service.PaymentVerifier
	txManager     repository.TransactionManager
	notifications usecase.NotificationUsecase
	alerter       service.AdminAlerter
	cfg           *config.Config
	logger        *slog.Logger
	now           func() time.Time
}

// WebhookServiceParams holds dependencies for WebhookService, injected by Fx.
type WebhookServiceParams struct {
	fx.In

	Verifiers     []service.PaymentVerifier `group:"payment_verifiers"`
	TxManager     repository.TransactionManager
	Notifications usecase.NotificationUsecase
	Alerter       service.AdminAlerter
	Config        *config.Config
	Logger        *slog.Logger
}

// NewWebhookService is the constructor for webhookService.
func NewWebhookService(params WebhookServiceParams) usecase.PaymentWebhookUsecase {
	verifiers := make(map[entity.PaymentProvider]service.PaymentVerifier, len(params.Verifiers))
	for _, verifier := range params.Verifiers {
		verifiers[verifier.Provider()] = verifier
	}

	return &webhookService{
		verifiers:     verifiers,
		txManager:     params.TxManager,
		notifications: params.Notifications,
		alerter:       params.Alerter,
		cfg:           params.Config,
		logger:        params.Logger,
		now:           time.Now,
	}
}

// settlement carries the side effects to run once the database transaction committed.
type settlement struct {
	notify []*usecase.NotifyInput
	alert  string
}

// Handle verifies and applies a webhook. Each provider event is applied at most once.
func (srv *webhookService) Handle(ctx context.Context, provider entity.PaymentProvider, payload []byte, signature string) (*usecase.WebhookResult, error) {
	verifier, ok := srv.verifiers[provider]
	if !ok {
		return nil, errors.Wrapf(domainerrors.ErrInvalidPaymentProvider, "provider %q", provider)
	}

	event, err := verifier.ParseEvent(payload, signature)
	if err != nil {
		if errors.Is(err, service.ErrInvalidSignature) {
			return nil, errors.Wrap(domainerrors.ErrInvalidWebhookSignature, err.Error())
		}

		return nil, errors.Wrap(domainerrors.ErrInvalidWebhookPayload, err.Error())
	}

	logger := contextLogger(ctx, srv.logger).With(
		slog.String("provider", string(provider)),
		slog.String("event_id", event.EventID),
		slog.String("event_type", event.EventType),
	)

	result := &usecase.WebhookResult{EventID: event.EventID, Action: event.Action}
	effects := &settlement{}

	err = srv.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		recordErr := txRepoFactory.NewWebhookEventRepository().RecordEvent(ctx, &entity.WebhookEvent{
			Provider:    event.Provider,
			EventID:     event.EventID,
			EventType:   event.EventType,
			ProcessedAt: srv.now(),
		})
		if errors.Is(recordErr, repository.ErrDuplicateWebhookEvent) {
			result.Duplicate = true

			return nil
		}
		if recordErr != nil {
			return errors.Wrap(recordErr, "failed to record webhook event")
		}

		applied, applyErr := srv.apply(ctx, txRepoFactory, event, effects)
		if applyErr != nil {
			return applyErr
		}
		result.Ignored = !applied

		return nil
	})
	if err != nil {
		logger.Error("Failed to apply payment webhook", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrTransactionFailed, err.Error())
	}

	switch {
	case result.Duplicate:
		logger.Info("Duplicate payment webhook acknowledged")
	case result.Ignored:
		logger.Info("Payment webhook ignored", slog.String("reference", event.Reference))
	default:
		logger.Info("Payment webhook applied",
			slog.String("action", string(event.Action)),
			slog.String("reference", event.Reference),
		)
	}

	srv.runEffects(ctx, effects)

	return result, nil
}

// apply runs the event's action inside the database transaction. It reports
// false when the event did not change anything.
func (srv *webhookService) apply(ctx context.Context, factory repository.RepositoryFactory, event *entity.PaymentEvent, effects *settlement) (bool, error) {
	switch event.Action {
	case entity.PaymentActionComplete:
		return srv.complete(ctx, factory, event, effects)
	case entity.PaymentActionFail:
		return srv.fail(ctx, factory, event, effects)
	case entity.PaymentActionRefund:
		return srv.refund(ctx, factory, event, effects)
	case entity.PaymentActionCancelSubscription:
		return srv.cancelSubscription(ctx, factory, event, effects)
	default:
		return false, nil
	}
}

func (srv *webhookService) complete(ctx context.Context, factory repository.RepositoryFactory, event *entity.PaymentEvent, effects *settlement) (bool, error) {
	paymentRepo := factory.NewPaymentRepository()

	txn, found, err := findByReference(ctx, paymentRepo, event.Reference)
	if err != nil || !found {
		return false, err
	}
	if txn.Status != entity.TransactionStatusPending && txn.Status != entity.TransactionStatusFailed {
		return false, nil
	}

	if !coversTransaction(event, txn) {
		paid := util.FormatMinor(event.AmountMinor, event.Currency)
		expected := util.FormatMinor(txn.AmountMinor, txn.Currency)
		contextLogger(ctx, srv.logger).Warn("Payment does not cover the transaction",
			slog.String("reference", txn.Reference),
			slog.String("paid", paid),
			slog.String("expected", expected),
		)
		effects.alert = fmt.Sprintf("Payment held for review: %s paid %s, expected %s via %s", txn.Reference, paid, expected, txn.Provider)

		return false, nil
	}

	now := srv.now()
	if err := paymentRepo.UpdateTransactionStatus(ctx, txn.ID, entity.TransactionStatusCompleted, event.ProviderReference, &now); err != nil {
		return false, errors.Wrap(err, "failed to complete transaction")
	}
	txn.Status = entity.TransactionStatusCompleted

	amount := util.FormatMinor(txn.AmountMinor, txn.Currency)

	switch txn.Kind {
	case entity.TransactionKindVehiclePurchase:
		if txn.VehicleID != nil {
			if err := factory.NewVehicleRepository().UpdateVehicleStatus(ctx, *txn.VehicleID, entity.VehicleStatusSold); err != nil {
				return false, errors.Wrap(err, "failed to mark vehicle sold")
			}
		}
		if txn.SellerID != nil {
			effects.notify = append(effects.notify, &usecase.NotifyInput{
				UserID: *txn.SellerID,
				Type:   entity.NotificationTypeListingSold,
				Title:  "Your vehicle was sold",
				Body:   fmt.Sprintf("Payment of %s received for %s.", amount, txn.Reference),
				Data:   transactionData(txn),
			})
		}
	case entity.TransactionKindDeposit:
		if txn.SellerID != nil {
			effects.notify = append(effects.notify, &usecase.NotifyInput{
				UserID: *txn.SellerID,
				Type:   entity.NotificationTypePayment,
				Title:  "Deposit received",
				Body:   fmt.Sprintf("A buyer paid a deposit of %s.", amount),
				Data:   transactionData(txn),
			})
		}
	case entity.TransactionKindSubscription:
		if err := srv.activatePlan(ctx, factory.NewSubscriptionRepository(), txn, event, now); err != nil {
			return false, err
		}
	}

	effects.notify = append(effects.notify, &usecase.NotifyInput{
		UserID: txn.BuyerID,
		Type:   entity.NotificationTypePayment,
		Title:  "Payment confirmed",
		Body:   fmt.Sprintf("Your payment of %s (%s) was confirmed.", amount, txn.Reference),
		Data:   transactionData(txn),
	})
	effects.alert = fmt.Sprintf("Payment completed: %s %s via %s (%s)", txn.Kind, amount, txn.Provider, txn.Reference)

	return true, nil
}

// activatePlan starts the paid plan, or extends it when the same plan is still running.
func (srv *webhookService) activatePlan(ctx context.Context, subRepo repository.SubscriptionRepository, txn *entity.Transaction, event *entity.PaymentEvent, now time.Time) error {
	periodDays := defaultPlanPeriodDays
	if plan, ok := srv.cfg.PlanByCode(txn.PlanCode); ok && plan.PeriodDays > 0 {
		periodDays = plan.PeriodDays
	}

	current, err := subRepo.FindCurrentSubscription(ctx, txn.BuyerID)
	if err != nil && !errors.Is(err, repository.ErrSubscriptionNotFound) {
		return errors.Wrap(err, "failed to find current subscription")
	}

	if current != nil {
		start := now
		if current.PlanCode == txn.PlanCode && current.IsCurrent(now) && current.CurrentPeriodEnd != nil {
			start = *current.CurrentPeriodEnd
		}
		end := start.AddDate(0, 0, periodDays)

		current.PlanCode = txn.PlanCode
		current.Status = entity.SubscriptionStatusActive
		current.Provider = txn.Provider
		current.CancelAtPeriodEnd = false
		if event.SubscriptionRef != "" {
			current.ProviderSubscriptionID = event.SubscriptionRef
		}
		if current.CurrentPeriodStart == nil || start.Equal(now) {
			current.CurrentPeriodStart = &now
		}
		current.CurrentPeriodEnd = &end

		if err := subRepo.UpdateSubscription(ctx, current); err != nil {
			return errors.Wrap(err, "failed to extend subscription")
		}

		return nil
	}

	end := now.AddDate(0, 0, periodDays)
	sub := &entity.Subscription{
		UserID:                 txn.BuyerID,
		PlanCode:               txn.PlanCode,
		Status:                 entity.SubscriptionStatusActive,
		Provider:               txn.Provider,
		ProviderSubscriptionID: event.SubscriptionRef,
		CurrentPeriodStart:     &now,
		CurrentPeriodEnd:       &end,
	}
	if err := subRepo.CreateSubscription(ctx, sub); err != nil {
		return errors.Wrap(err, "failed to create subscription")
	}

	return nil
}

func (srv *webhookService) fail(ctx context.Context, factory repository.RepositoryFactory, event *entity.PaymentEvent, effects *settlement) (bool, error) {
	paymentRepo := factory.NewPaymentRepository()

	txn, found, err := findForEvent(ctx, paymentRepo, event)
	if err != nil || !found {
		return false, err
	}
	if txn.Status != entity.TransactionStatusPending {
		return false, nil
	}

	if err := paymentRepo.UpdateTransactionStatus(ctx, txn.ID, entity.TransactionStatusFailed, event.ProviderReference, nil); err != nil {
		return false, errors.Wrap(err, "failed to fail transaction")
	}
	txn.Status = entity.TransactionStatusFailed

	effects.notify = append(effects.notify, &usecase.NotifyInput{
		UserID: txn.BuyerID,
		Type:   entity.NotificationTypePayment,
		Title:  "Payment failed",
		Body:   fmt.Sprintf("Your payment for %s did not go through.", txn.Reference),
		Data:   transactionData(txn),
	})

	return true, nil
}

func (srv *webhookService) refund(ctx context.Context, factory repository.RepositoryFactory, event *entity.PaymentEvent, effects *settlement) (bool, error) {
	paymentRepo := factory.NewPaymentRepository()

	txn, found, err := findForEvent(ctx, paymentRepo, event)
	if err != nil || !found {
		return false, err
	}
	if txn.Status != entity.TransactionStatusCompleted {
		return false, nil
	}

	// A refund amount of zero means the provider did not report one; treat it as full.
	if event.AmountMinor > 0 && event.AmountMinor < txn.AmountMinor {
		srv.partialRefund(txn, event, effects)

		return true, nil
	}

	if err := paymentRepo.UpdateTransactionStatus(ctx, txn.ID, entity.TransactionStatusRefunded, "", txn.CompletedAt); err != nil {
		return false, errors.Wrap(err, "failed to refund transaction")
	}
	txn.Status = entity.TransactionStatusRefunded

	if txn.Kind == entity.TransactionKindVehiclePurchase && txn.VehicleID != nil {
		vehicleRepo := factory.NewVehicleRepository()
		vehicle, err := vehicleRepo.FindVehicleByID(ctx, *txn.VehicleID)
		switch {
		case errors.Is(err, repository.ErrVehicleNotFound):
		case err != nil:
			return false, errors.Wrap(err, "failed to find refunded vehicle")
		case vehicle.Status == entity.VehicleStatusSold:
			if err := vehicleRepo.UpdateVehicleStatus(ctx, vehicle.ID, entity.VehicleStatusActive); err != nil {
				return false, errors.Wrap(err, "failed to relist refunded vehicle")
			}
		}
	}

	amount := util.FormatMinor(txn.AmountMinor, txn.Currency)
	srv.notifyParties(txn, effects, "Payment refunded",
		fmt.Sprintf("%s for %s was refunded.", amount, txn.Reference),
		fmt.Sprintf("%s for %s was refunded to the buyer.", amount, txn.Reference),
	)
	effects.alert = fmt.Sprintf("Payment refunded: %s %s via %s (%s)", txn.Kind, amount, txn.Provider, txn.Reference)

	return true, nil
}

// partialRefund keeps the transaction completed and only tells the parties.
func (srv *webhookService) partialRefund(txn *entity.Transaction, event *entity.PaymentEvent, effects *settlement) {
	refunded := util.FormatMinor(event.AmountMinor, txn.Currency)
	total := util.FormatMinor(txn.AmountMinor, txn.Currency)

	srv.notifyParties(txn, effects, "Payment partially refunded",
		fmt.Sprintf("%s of %s for %s was refunded.", refunded, total, txn.Reference),
		fmt.Sprintf("%s of %s for %s was refunded to the buyer.", refunded, total, txn.Reference),
	)
	effects.alert = fmt.Sprintf("Partial refund: %s of %s via %s (%s)", refunded, total, txn.Provider, txn.Reference)
}

func (srv *webhookService) notifyParties(txn *entity.Transaction, effects *settlement, title, buyerBody, sellerBody string) {
	effects.notify = append(effects.notify, &usecase.NotifyInput{
		UserID: txn.BuyerID,
		Type:   entity.NotificationTypePayment,
		Title:  title,
		Body:   buyerBody,
		Data:   transactionData(txn),
	})
	if txn.SellerID != nil {
		effects.notify = append(effects.notify, &usecase.NotifyInput{
			UserID: *txn.SellerID,
			Type:   entity.NotificationTypePayment,
			Title:  title,
			Body:   sellerBody,
			Data:   transactionData(txn),
		})
	}
}

func (srv *webhookService) cancelSubscription(ctx context.Context, factory repository.RepositoryFactory, event *entity.PaymentEvent, effects *settlement) (bool, error) {
	subRepo := factory.NewSubscriptionRepository()

	sub, err := srv.findSubscriptionForEvent(ctx, factory, subRepo, event)
	if err != nil || sub == nil {
		return false, err
	}
	if sub.Status == entity.SubscriptionStatusCanceled || sub.Status == entity.SubscriptionStatusExpired {
		return false, nil
	}

	sub.Status = entity.SubscriptionStatusCanceled
	if sub.ProviderSubscriptionID == "" {
		sub.ProviderSubscriptionID = event.SubscriptionRef
	}
	if err := subRepo.UpdateSubscription(ctx, sub); err != nil {
		return false, errors.Wrap(err, "failed to cancel subscription")
	}

	effects.notify = append(effects.notify, &usecase.NotifyInput{
		UserID: sub.UserID,
		Type:   entity.NotificationTypeSubscription,
		Title:  "Subscription canceled",
		Body:   fmt.Sprintf("Your %s plan was canceled.", sub.PlanCode),
		Data:   map[string]string{"subscription_id": sub.ID.String()},
	})

	return true, nil
}

// findSubscriptionForEvent matches a cancellation by the provider's subscription ID. Paystack
// does not report that ID when a plan is paid for, so a subscription with no stored ID is
// matched through the payer's email instead. It returns nil when nothing matches.
func (srv *webhookService) findSubscriptionForEvent(
	ctx context.Context,
	factory repository.RepositoryFactory,
	subRepo repository.SubscriptionRepository,
	event *entity.PaymentEvent,
) (*entity.Subscription, error) {
	if event.SubscriptionRef != "" {
		sub, err := subRepo.FindSubscriptionByProviderID(ctx, event.Provider, event.SubscriptionRef)
		if err == nil {
			return sub, nil
		}
		if !errors.Is(err, repository.ErrSubscriptionNotFound) {
			return nil, errors.Wrap(err, "failed to find subscription")
		}
	}

	if event.CustomerEmail == "" {
		return nil, nil
	}

	profile, err := factory.NewProfileRepository().FindProfileByEmail(ctx, event.CustomerEmail)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find subscriber")
	}

	sub, err := subRepo.FindCurrentSubscription(ctx, profile.ID)
	if err != nil {
		if errors.Is(err, repository.ErrSubscriptionNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find current subscription")
	}
	if sub.Provider != event.Provider || sub.ProviderSubscriptionID != "" {
		return nil, nil
	}

	return sub, nil
}

func (srv *webhookService) runEffects(ctx context.Context, effects *settlement) {
	for _, input := range effects.notify {
		notifyQuietly(ctx, srv.notifications, srv.logger, input)
	}

	if effects.alert != "" {
		if err := srv.alerter.Alert(ctx, effects.alert); err != nil {
			contextLogger(ctx, srv.logger).Warn("Failed to alert admins", slog.Any("error", err))
		}
	}
}

// findByReference loads a transaction by reference. Unknown references are
// reported as not found rather than failing the webhook.
func findByReference(ctx context.Context, paymentRepo repository.PaymentRepository, reference string) (*entity.Transaction, bool, error) {
	if reference == "" {
		return nil, false, nil
	}

	txn, err := paymentRepo.FindTransactionByReference(ctx, reference)
	if err != nil {
		if errors.Is(err, repository.ErrTransactionNotFound) {
			return nil, false, nil
		}

		return nil, false, errors.Wrap(err, "failed to find transaction")
	}

	return txn, true, nil
}

// findForEvent looks a transaction up by reference, then by the provider's payment ID.
// Stripe refunds of checkout sessions carry no metadata, only the payment intent.
func findForEvent(ctx context.Context, paymentRepo repository.PaymentRepository, event *entity.PaymentEvent) (*entity.Transaction, bool, error) {
	txn, found, err := findByReference(ctx, paymentRepo, event.Reference)
	if err != nil || found || event.ProviderReference == "" {
		return txn, found, err
	}

	txn, err = paymentRepo.FindTransactionByProviderReference(ctx, event.Provider, event.ProviderReference)
	if err != nil {
		if errors.Is(err, repository.ErrTransactionNotFound) {
			return nil, false, nil
		}

		return nil, false, errors.Wrap(err, "failed to find transaction by provider reference")
	}

	return txn, true, nil
}

// coversTransaction reports whether a payment matches the transaction's currency and pays at least its amount.
func coversTransaction(event *entity.PaymentEvent, txn *entity.Transaction) bool {
	return strings.EqualFold(event.Currency, txn.Currency) && event.AmountMinor >= txn.AmountMinor
}

func transactionData(txn *entity.Transaction) map[string]string {
	data := map[string]string{
		"transaction_id": txn.ID.String(),
		"reference":      txn.Reference,
		"status":         string(txn.Status),
	}
	if txn.VehicleID != nil {
		data["vehicle_id"] = txn.VehicleID.String()
	}

	return data
}
