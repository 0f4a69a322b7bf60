package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"dcars/internal/domain/entity"
	domainerrors "dcars/internal/domain/errors"
	"dcars/internal/domain/repository"
	"dcars/internal/domain/service"
	mockRepo "dcars/internal/mocks/repository"
	mockService "dcars/internal/mocks/service"
	mockUsecase "dcars/internal/mocks/usecase"
	"dcars/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// webhookServiceFixtures holds all test dependencies for webhook service tests.
type webhookServiceFixtures struct {
	service       *webhookService
	verifier      *mockService.MockPaymentVerifier
	txManager     *mockRepo.MockTransactionManager
	factory       *mockRepo.MockRepositoryFactory
	eventRepo     *mockRepo.MockWebhookEventRepository
	paymentRepo   *mockRepo.MockPaymentRepository
	vehicleRepo   *mockRepo.MockVehicleRepository
	subRepo       *mockRepo.MockSubscriptionRepository
	profileRepo   *mockRepo.MockProfileRepository
	notifications *mockUsecase.MockNotificationUsecase
	alerter       *mockService.MockAdminAlerter
}

func createTestWebhookService(t *testing.T) webhookServiceFixtures {
	return createTestWebhookServiceFor(t, entity.PaymentProviderStripe)
}

func createTestWebhookServiceFor(t *testing.T, provider entity.PaymentProvider) webhookServiceFixtures {
	fx := webhookServiceFixtures{
		verifier:      mockService.NewMockPaymentVerifier(t),
		txManager:     mockRepo.NewMockTransactionManager(t),
		factory:       mockRepo.NewMockRepositoryFactory(t),
		eventRepo:     mockRepo.NewMockWebhookEventRepository(t),
		paymentRepo:   mockRepo.NewMockPaymentRepository(t),
		vehicleRepo:   mockRepo.NewMockVehicleRepository(t),
		subRepo:       mockRepo.NewMockSubscriptionRepository(t),
		profileRepo:   mockRepo.NewMockProfileRepository(t),
		notifications: mockUsecase.NewMockNotificationUsecase(t),
		alerter:       mockService.NewMockAdminAlerter(t),
	}

	fx.verifier.EXPECT().Provider().Return(provider)
	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(fx.factory)
		}).
		Maybe()
	fx.factory.EXPECT().NewWebhookEventRepository().Return(fx.eventRepo).Maybe()
	fx.factory.EXPECT().NewPaymentRepository().Return(fx.paymentRepo).Maybe()
	fx.factory.EXPECT().NewVehicleRepository().Return(fx.vehicleRepo).Maybe()
	fx.factory.EXPECT().NewSubscriptionRepository().Return(fx.subRepo).Maybe()
	fx.factory.EXPECT().NewProfileRepository().Return(fx.profileRepo).Maybe()

	fx.service = NewWebhookService(WebhookServiceParams{
		Verifiers:     []service.PaymentVerifier{fx.verifier},
		TxManager:     fx.txManager,
		Notifications: fx.notifications,
		Alerter:       fx.alerter,
		Config:        newTestConfig(),
		Logger:        discardLogger(),
	}).(*webhookService)
	fx.service.now = func() time.Time { return fixedNow }

	return fx
}

func (fx webhookServiceFixtures) expectEvent(event *entity.PaymentEvent) {
	fx.verifier.EXPECT().ParseEvent([]byte("payload"), "sig").Return(event, nil)
}

func (fx webhookServiceFixtures) expectRecorded(event *entity.PaymentEvent, err error) {
	fx.eventRepo.EXPECT().
		RecordEvent(mock.Anything, &entity.WebhookEvent{
			Provider:    event.Provider,
			EventID:     event.EventID,
			EventType:   event.EventType,
			ProcessedAt: fixedNow,
		}).
		Return(err)
}

func completeEvent(reference string) *entity.PaymentEvent {
	return &entity.PaymentEvent{
		Provider:          entity.PaymentProviderStripe,
		EventID:           "evt_1",
		EventType:         "checkout.session.completed",
		Action:            entity.PaymentActionComplete,
		Reference:         reference,
		ProviderReference: "pi_123",
	}
}

func TestWebhookService_Handle_UnknownProvider(t *testing.T) {
	fx := createTestWebhookService(t)

	_, err := fx.service.Handle(context.Background(), entity.PaymentProviderPaystack, []byte("payload"), "sig")

	assert.ErrorIs(t, err, domainerrors.ErrInvalidPaymentProvider)
}

func TestWebhookService_Handle_ParseErrors(t *testing.T) {
	tests := []struct {
		name     string
		parseErr error
		wantErr  error
	}{
		{name: "bad signature", parseErr: errors.Wrap(service.ErrInvalidSignature, "mismatch"), wantErr: domainerrors.ErrInvalidWebhookSignature},
		{name: "bad payload", parseErr: errors.Wrap(service.ErrInvalidPayload, "not json"), wantErr: domainerrors.ErrInvalidWebhookPayload},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestWebhookService(t)

			fx.verifier.EXPECT().ParseEvent([]byte("payload"), "sig").Return(nil, tt.parseErr)

			_, err := fx.service.Handle(context.Background(), entity.PaymentProviderStripe, []byte("payload"), "sig")

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestWebhookService_Handle_Duplicate(t *testing.T) {
	fx := createTestWebhookService(t)

	event := completeEvent("DC-000000000001")
	fx.expectEvent(event)
	fx.expectRecorded(event, repository.ErrDuplicateWebhookEvent)

	result, err := fx.service.Handle(context.Background(), entity.PaymentProviderStripe, []byte("payload"), "sig")

	require.NoError(t, err)
	assert.True(t, result.Duplicate)
	assert.False(t, result.Ignored)
}

func TestWebhookService_Handle_UnknownReferenceIgnored(t *testing.T) {
	fx := createTestWebhookService(t)

	event := completeEvent("DC-UNKNOWN00000")
	fx.expectEvent(event)
	fx.expectRecorded(event, nil)
	fx.paymentRepo.EXPECT().FindTransactionByReference(mock.Anything, event.Reference).Return(nil, repository.ErrTransactionNotFound)

	result, err := fx.service.Handle(context.Background(), entity.PaymentProviderStripe, []byte("payload"), "sig")

	require.NoError(t, err)
	assert.True(t, result.Ignored)
}

func TestWebhookService_Handle_CompletePurchase(t *testing.T) {
	fx := createTestWebhookService(t)

	buyerID, sellerID, vehicleID := uuid.New(), uuid.New(), uuid.New()
	txn := &entity.Transaction{
		ID:          uuid.New(),
		Reference:   "DC-000000000002",
		BuyerID:     buyerID,
		SellerID:    &sellerID,
		VehicleID:   &vehicleID,
		Kind:        entity.TransactionKindVehiclePurchase,
		AmountMinor: 1_250_000,
		Currency:    "USD",
		Provider:    entity.PaymentProviderStripe,
		Status:      entity.TransactionStatusPending,
	}

	event := completeEvent(txn.Reference)
	event.AmountMinor = 1_250_000
	event.Currency = "USD"
	fx.expectEvent(event)
	fx.expectRecorded(event, nil)
	fx.paymentRepo.EXPECT().FindTransactionByReference(mock.Anything, txn.Reference).Return(txn, nil)
	fx.paymentRepo.EXPECT().
		UpdateTransactionStatus(mock.Anything, txn.ID, entity.TransactionStatusCompleted, "pi_123", mock.MatchedBy(func(at *time.Time) bool {
			return at != nil && at.Equal(fixedNow)
		})).
		Return(nil)
	fx.vehicleRepo.EXPECT().UpdateVehicleStatus(mock.Anything, vehicleID, entity.VehicleStatusSold).Return(nil)
	fx.notifications.EXPECT().
		Notify(mock.Anything, mock.MatchedBy(func(in *usecase.NotifyInput) bool {
			return in.UserID == sellerID && in.Type == entity.NotificationTypeListingSold
		})).
		Return(&entity.Notification{}, nil)
	fx.notifications.EXPECT().
		Notify(mock.Anything, mock.MatchedBy(func(in *usecase.NotifyInput) bool {
			return in.UserID == buyerID && in.Type == entity.NotificationTypePayment && in.Data["reference"] == txn.Reference
		})).
		Return(&entity.Notification{}, nil)
	fx.alerter.EXPECT().Alert(mock.Anything, "Payment completed: vehicle_purchase 12500.00 USD via stripe (DC-000000000002)").Return(nil)

	result, err := fx.service.Handle(context.Background(), entity.PaymentProviderStripe, []byte("payload"), "sig")

	require.NoError(t, err)
	assert.False(t, result.Duplicate)
	assert.False(t, result.Ignored)
	assert.Equal(t, entity.PaymentActionComplete, result.Action)
}

func TestWebhookService_Handle_CompleteChecksPaidAmount(t *testing.T) {
	tests := []struct {
		name        string
		amount      int64
		currency    string
		wantApplied bool
	}{
		{name: "underpayment", amount: 1, currency: "USD"},
		{name: "currency mismatch", amount: 2_500_000, currency: "NGN"},
		{name: "missing currency", amount: 2_500_000, currency: ""},
		{name: "exact match", amount: 2_500_000, currency: "USD", wantApplied: true},
		{name: "currency case differs", amount: 2_500_000, currency: "usd", wantApplied: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestWebhookService(t)

			sellerID, vehicleID := uuid.New(), uuid.New()
			txn := &entity.Transaction{
				ID:          uuid.New(),
				Reference:   "DC-000000000010",
				BuyerID:     uuid.New(),
				SellerID:    &sellerID,
				VehicleID:   &vehicleID,
				Kind:        entity.TransactionKindVehiclePurchase,
				AmountMinor: 2_500_000,
				Currency:    "USD",
				Provider:    entity.PaymentProviderStripe,
				Status:      entity.TransactionStatusPending,
			}

			event := completeEvent(txn.Reference)
			event.AmountMinor = tt.amount
			event.Currency = tt.currency
			fx.expectEvent(event)
			fx.expectRecorded(event, nil)
			fx.paymentRepo.EXPECT().FindTransactionByReference(mock.Anything, txn.Reference).Return(txn, nil)

			if tt.wantApplied {
				fx.paymentRepo.EXPECT().UpdateTransactionStatus(mock.Anything, txn.ID, entity.TransactionStatusCompleted, "pi_123", mock.Anything).Return(nil)
				fx.vehicleRepo.EXPECT().UpdateVehicleStatus(mock.Anything, vehicleID, entity.VehicleStatusSold).Return(nil)
				fx.notifications.EXPECT().Notify(mock.Anything, mock.Anything).Return(&entity.Notification{}, nil).Twice()
				fx.alerter.EXPECT().Alert(mock.Anything, mock.MatchedBy(func(msg string) bool {
					return strings.HasPrefix(msg, "Payment completed:")
				})).Return(nil)
			} else {
				fx.alerter.EXPECT().Alert(mock.Anything, mock.MatchedBy(func(msg string) bool {
					return strings.HasPrefix(msg, "Payment held for review: DC-000000000010")
				})).Return(nil)
			}

			result, err := fx.service.Handle(context.Background(), entity.PaymentProviderStripe, []byte("payload"), "sig")

			require.NoError(t, err)
			assert.Equal(t, !tt.wantApplied, result.Ignored)
		})
	}
}

func TestWebhookService_Handle_CompleteAlreadySettled(t *testing.T) {
	fx := createTestWebhookService(t)

	txn := &entity.Transaction{ID: uuid.New(), Reference: "DC-000000000003", Status: entity.TransactionStatusRefunded}

	event := completeEvent(txn.Reference)
	fx.expectEvent(event)
	fx.expectRecorded(event, nil)
	fx.paymentRepo.EXPECT().FindTransactionByReference(mock.Anything, txn.Reference).Return(txn, nil)

	result, err := fx.service.Handle(context.Background(), entity.PaymentProviderStripe, []byte("payload"), "sig")

	require.NoError(t, err)
	assert.True(t, result.Ignored)
}

func TestWebhookService_Handle_CompleteSubscription_NewPlan(t *testing.T) {
	fx := createTestWebhookService(t)

	buyerID := uuid.New()
	txn := &entity.Transaction{
		ID:          uuid.New(),
		Reference:   "DC-000000000004",
		BuyerID:     buyerID,
		PlanCode:    "pro",
		Kind:        entity.TransactionKindSubscription,
		AmountMinor: 2999,
		Currency:    "USD",
		Provider:    entity.PaymentProviderStripe,
		Status:      entity.TransactionStatusPending,
	}

	event := completeEvent(txn.Reference)
	event.SubscriptionRef = "sub_1"
	event.AmountMinor = 2999
	event.Currency = "usd"
	fx.expectEvent(event)
	fx.expectRecorded(event, nil)
	fx.paymentRepo.EXPECT().FindTransactionByReference(mock.Anything, txn.Reference).Return(txn, nil)
	fx.paymentRepo.EXPECT().UpdateTransactionStatus(mock.Anything, txn.ID, entity.TransactionStatusCompleted, "pi_123", mock.Anything).Return(nil)
	fx.subRepo.EXPECT().FindCurrentSubscription(mock.Anything, buyerID).Return(nil, repository.ErrSubscriptionNotFound)
	fx.subRepo.EXPECT().
		CreateSubscription(mock.Anything, mock.MatchedBy(func(sub *entity.Subscription) bool {
			return sub.UserID == buyerID &&
				sub.PlanCode == "pro" &&
				sub.Status == entity.SubscriptionStatusActive &&
				sub.ProviderSubscriptionID == "sub_1" &&
				sub.CurrentPeriodEnd != nil && sub.CurrentPeriodEnd.Equal(fixedNow.AddDate(0, 0, 30))
		})).
		Return(nil)
	fx.notifications.EXPECT().Notify(mock.Anything, mock.Anything).Return(&entity.Notification{}, nil).Once()
	fx.alerter.EXPECT().Alert(mock.Anything, mock.Anything).Return(errors.New("telegram down"))

	result, err := fx.service.Handle(context.Background(), entity.PaymentProviderStripe, []byte("payload"), "sig")

	require.NoError(t, err)
	assert.False(t, result.Ignored)
}

func TestWebhookService_Handle_CompleteSubscription_ExtendsSamePlan(t *testing.T) {
	fx := createTestWebhookService(t)

	buyerID := uuid.New()
	periodStart := fixedNow.AddDate(0, 0, -20)
	periodEnd := fixedNow.AddDate(0, 0, 10)
	current := &entity.Subscription{
		ID:                 uuid.New(),
		UserID:             buyerID,
		PlanCode:           "pro",
		Status:             entity.SubscriptionStatusActive,
		CurrentPeriodStart: &periodStart,
		CurrentPeriodEnd:   &periodEnd,
		CancelAtPeriodEnd:  true,
	}
	txn := &entity.Transaction{
		ID:          uuid.New(),
		Reference:   "DC-000000000005",
		BuyerID:     buyerID,
		PlanCode:    "pro",
		Kind:        entity.TransactionKindSubscription,
		AmountMinor: 2999,
		Currency:    "USD",
		Provider:    entity.PaymentProviderStripe,
		Status:      entity.TransactionStatusPending,
	}

	event := completeEvent(txn.Reference)
	event.AmountMinor = 2999
	event.Currency = "USD"
	fx.expectEvent(event)
	fx.expectRecorded(event, nil)
	fx.paymentRepo.EXPECT().FindTransactionByReference(mock.Anything, txn.Reference).Return(txn, nil)
	fx.paymentRepo.EXPECT().UpdateTransactionStatus(mock.Anything, txn.ID, entity.TransactionStatusCompleted, "pi_123", mock.Anything).Return(nil)
	fx.subRepo.EXPECT().FindCurrentSubscription(mock.Anything, buyerID).Return(current, nil)
	fx.subRepo.EXPECT().UpdateSubscription(mock.Anything, current).Return(nil)
	fx.notifications.EXPECT().Notify(mock.Anything, mock.Anything).Return(&entity.Notification{}, nil)
	fx.alerter.EXPECT().Alert(mock.Anything, mock.Anything).Return(nil)

	_, err := fx.service.Handle(context.Background(), entity.PaymentProviderStripe, []byte("payload"), "sig")

	require.NoError(t, err)
	assert.Equal(t, periodStart, *current.CurrentPeriodStart)
	assert.Equal(t, periodEnd.AddDate(0, 0, 30), *current.CurrentPeriodEnd)
	assert.False(t, current.CancelAtPeriodEnd)
}

func TestWebhookService_Handle_Fail(t *testing.T) {
	fx := createTestWebhookService(t)

	txn := &entity.Transaction{ID: uuid.New(), Reference: "DC-000000000006", BuyerID: uuid.New(), Status: entity.TransactionStatusPending}

	event := completeEvent(txn.Reference)
	event.Action = entity.PaymentActionFail
	fx.expectEvent(event)
	fx.expectRecorded(event, nil)
	fx.paymentRepo.EXPECT().FindTransactionByReference(mock.Anything, txn.Reference).Return(txn, nil)
	fx.paymentRepo.EXPECT().UpdateTransactionStatus(mock.Anything, txn.ID, entity.TransactionStatusFailed, "pi_123", (*time.Time)(nil)).Return(nil)
	fx.notifications.EXPECT().
		Notify(mock.Anything, mock.MatchedBy(func(in *usecase.NotifyInput) bool {
			return in.UserID == txn.BuyerID && in.Title == "Payment failed"
		})).
		Return(&entity.Notification{}, nil)

	result, err := fx.service.Handle(context.Background(), entity.PaymentProviderStripe, []byte("payload"), "sig")

	require.NoError(t, err)
	assert.False(t, result.Ignored)
}

func TestWebhookService_Handle_RefundRelistsVehicle(t *testing.T) {
	fx := createTestWebhookService(t)

	sellerID, vehicleID := uuid.New(), uuid.New()
	completedAt := fixedNow.Add(-48 * time.Hour)
	txn := &entity.Transaction{
		ID:          uuid.New(),
		Reference:   "DC-000000000007",
		BuyerID:     uuid.New(),
		SellerID:    &sellerID,
		VehicleID:   &vehicleID,
		Kind:        entity.TransactionKindVehiclePurchase,
		AmountMinor: 100,
		Currency:    "USD",
		Provider:    entity.PaymentProviderStripe,
		Status:      entity.TransactionStatusCompleted,
		CompletedAt: &completedAt,
	}

	event := completeEvent(txn.Reference)
	event.Action = entity.PaymentActionRefund
	event.AmountMinor = 100
	fx.expectEvent(event)
	fx.expectRecorded(event, nil)
	fx.paymentRepo.EXPECT().FindTransactionByReference(mock.Anything, txn.Reference).Return(txn, nil)
	fx.paymentRepo.EXPECT().UpdateTransactionStatus(mock.Anything, txn.ID, entity.TransactionStatusRefunded, "", &completedAt).Return(nil)
	fx.vehicleRepo.EXPECT().FindVehicleByID(mock.Anything, vehicleID).Return(&entity.Vehicle{ID: vehicleID, Status: entity.VehicleStatusSold}, nil)
	fx.vehicleRepo.EXPECT().UpdateVehicleStatus(mock.Anything, vehicleID, entity.VehicleStatusActive).Return(nil)
	fx.notifications.EXPECT().Notify(mock.Anything, mock.Anything).Return(&entity.Notification{}, nil).Twice()
	fx.alerter.EXPECT().Alert(mock.Anything, "Payment refunded: vehicle_purchase 1.00 USD via stripe (DC-000000000007)").Return(nil)

	result, err := fx.service.Handle(context.Background(), entity.PaymentProviderStripe, []byte("payload"), "sig")

	require.NoError(t, err)
	assert.False(t, result.Ignored)
}

func TestWebhookService_Handle_PartialRefundKeepsSale(t *testing.T) {
	fx := createTestWebhookService(t)

	sellerID, vehicleID := uuid.New(), uuid.New()
	txn := &entity.Transaction{
		ID:          uuid.New(),
		Reference:   "DC-000000000011",
		BuyerID:     uuid.New(),
		SellerID:    &sellerID,
		VehicleID:   &vehicleID,
		Kind:        entity.TransactionKindVehiclePurchase,
		AmountMinor: 2_500_000,
		Currency:    "USD",
		Provider:    entity.PaymentProviderStripe,
		Status:      entity.TransactionStatusCompleted,
	}

	event := completeEvent(txn.Reference)
	event.Action = entity.PaymentActionRefund
	event.AmountMinor = 100
	fx.expectEvent(event)
	fx.expectRecorded(event, nil)
	fx.paymentRepo.EXPECT().FindTransactionByReference(mock.Anything, txn.Reference).Return(txn, nil)
	fx.notifications.EXPECT().
		Notify(mock.Anything, mock.MatchedBy(func(in *usecase.NotifyInput) bool {
			return in.Title == "Payment partially refunded" && in.Data["status"] == string(entity.TransactionStatusCompleted)
		})).
		Return(&entity.Notification{}, nil).
		Twice()
	fx.alerter.EXPECT().Alert(mock.Anything, "Partial refund: 1.00 USD of 25000.00 USD via stripe (DC-000000000011)").Return(nil)

	result, err := fx.service.Handle(context.Background(), entity.PaymentProviderStripe, []byte("payload"), "sig")

	require.NoError(t, err)
	assert.False(t, result.Ignored)
	assert.Equal(t, entity.TransactionStatusCompleted, txn.Status)
}

func TestWebhookService_Handle_RefundMatchedByPaymentIntent(t *testing.T) {
	fx := createTestWebhookService(t)

	txn := &entity.Transaction{
		ID:          uuid.New(),
		Reference:   "DC-000000000012",
		BuyerID:     uuid.New(),
		PlanCode:    "pro",
		Kind:        entity.TransactionKindSubscription,
		AmountMinor: 2999,
		Currency:    "USD",
		Provider:    entity.PaymentProviderStripe,
		Status:      entity.TransactionStatusCompleted,
	}

	event := &entity.PaymentEvent{
		Provider:          entity.PaymentProviderStripe,
		EventID:           "evt_refund",
		EventType:         "charge.refunded",
		Action:            entity.PaymentActionRefund,
		ProviderReference: "pi_456",
		AmountMinor:       2999,
		Currency:          "USD",
	}
	fx.expectEvent(event)
	fx.expectRecorded(event, nil)
	fx.paymentRepo.EXPECT().FindTransactionByProviderReference(mock.Anything, entity.PaymentProviderStripe, "pi_456").Return(txn, nil)
	fx.paymentRepo.EXPECT().UpdateTransactionStatus(mock.Anything, txn.ID, entity.TransactionStatusRefunded, "", (*time.Time)(nil)).Return(nil)
	fx.notifications.EXPECT().Notify(mock.Anything, mock.Anything).Return(&entity.Notification{}, nil).Once()
	fx.alerter.EXPECT().Alert(mock.Anything, mock.Anything).Return(nil)

	result, err := fx.service.Handle(context.Background(), entity.PaymentProviderStripe, []byte("payload"), "sig")

	require.NoError(t, err)
	assert.False(t, result.Ignored)
}

func TestWebhookService_Handle_FailMatchedByPaymentIntent(t *testing.T) {
	fx := createTestWebhookService(t)

	event := &entity.PaymentEvent{
		Provider:          entity.PaymentProviderStripe,
		EventID:           "evt_failed",
		EventType:         "payment_intent.payment_failed",
		Action:            entity.PaymentActionFail,
		ProviderReference: "pi_unknown",
	}
	fx.expectEvent(event)
	fx.expectRecorded(event, nil)
	fx.paymentRepo.EXPECT().
		FindTransactionByProviderReference(mock.Anything, entity.PaymentProviderStripe, "pi_unknown").
		Return(nil, repository.ErrTransactionNotFound)

	result, err := fx.service.Handle(context.Background(), entity.PaymentProviderStripe, []byte("payload"), "sig")

	require.NoError(t, err)
	assert.True(t, result.Ignored)
}

func TestWebhookService_Handle_PaystackPlanThenDisable(t *testing.T) {
	fx := createTestWebhookServiceFor(t, entity.PaymentProviderPaystack)
	ctx := context.Background()

	buyerID := uuid.New()
	txn := &entity.Transaction{
		ID:          uuid.New(),
		Reference:   "DC-000000000013",
		BuyerID:     buyerID,
		PlanCode:    "pro",
		Kind:        entity.TransactionKindSubscription,
		AmountMinor: 2999,
		Currency:    "NGN",
		Provider:    entity.PaymentProviderPaystack,
		Status:      entity.TransactionStatusPending,
	}

	charge := &entity.PaymentEvent{
		Provider:          entity.PaymentProviderPaystack,
		EventID:           "charge.success:77",
		EventType:         "charge.success",
		Action:            entity.PaymentActionComplete,
		Reference:         txn.Reference,
		ProviderReference: "77",
		CustomerEmail:     "seller@example.com",
		AmountMinor:       2999,
		Currency:          "NGN",
	}
	fx.verifier.EXPECT().ParseEvent([]byte("charge"), "sig").Return(charge, nil)
	fx.expectRecorded(charge, nil)
	fx.paymentRepo.EXPECT().FindTransactionByReference(mock.Anything, txn.Reference).Return(txn, nil)
	fx.paymentRepo.EXPECT().UpdateTransactionStatus(mock.Anything, txn.ID, entity.TransactionStatusCompleted, "77", mock.Anything).Return(nil)

	var stored *entity.Subscription
	fx.subRepo.EXPECT().FindCurrentSubscription(mock.Anything, buyerID).Return(nil, repository.ErrSubscriptionNotFound).Once()
	fx.subRepo.EXPECT().
		CreateSubscription(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, sub *entity.Subscription) error {
			sub.ID = uuid.New()
			stored = sub

			return nil
		})
	fx.notifications.EXPECT().
		Notify(mock.Anything, mock.MatchedBy(func(in *usecase.NotifyInput) bool { return in.Type == entity.NotificationTypePayment })).
		Return(&entity.Notification{}, nil)
	fx.alerter.EXPECT().Alert(mock.Anything, mock.Anything).Return(nil)

	_, err := fx.service.Handle(ctx, entity.PaymentProviderPaystack, []byte("charge"), "sig")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Empty(t, stored.ProviderSubscriptionID)

	disable := &entity.PaymentEvent{
		Provider:        entity.PaymentProviderPaystack,
		EventID:         "subscription.disable:SUB_abc",
		EventType:       "subscription.disable",
		Action:          entity.PaymentActionCancelSubscription,
		SubscriptionRef: "SUB_abc",
		CustomerEmail:   "seller@example.com",
	}
	fx.verifier.EXPECT().ParseEvent([]byte("disable"), "sig").Return(disable, nil)
	fx.expectRecorded(disable, nil)
	fx.subRepo.EXPECT().
		FindSubscriptionByProviderID(mock.Anything, entity.PaymentProviderPaystack, "SUB_abc").
		Return(nil, repository.ErrSubscriptionNotFound)
	fx.profileRepo.EXPECT().FindProfileByEmail(mock.Anything, "seller@example.com").Return(&entity.Profile{ID: buyerID}, nil)
	fx.subRepo.EXPECT().FindCurrentSubscription(mock.Anything, buyerID).RunAndReturn(func(context.Context, uuid.UUID) (*entity.Subscription, error) {
		return stored, nil
	}).Once()
	fx.subRepo.EXPECT().
		UpdateSubscription(mock.Anything, mock.MatchedBy(func(sub *entity.Subscription) bool {
			return sub.Status == entity.SubscriptionStatusCanceled && sub.ProviderSubscriptionID == "SUB_abc"
		})).
		Return(nil)
	fx.notifications.EXPECT().
		Notify(mock.Anything, mock.MatchedBy(func(in *usecase.NotifyInput) bool {
			return in.UserID == buyerID && in.Type == entity.NotificationTypeSubscription
		})).
		Return(&entity.Notification{}, nil)

	result, err := fx.service.Handle(ctx, entity.PaymentProviderPaystack, []byte("disable"), "sig")

	require.NoError(t, err)
	assert.False(t, result.Ignored)
	assert.Equal(t, entity.SubscriptionStatusCanceled, stored.Status)
}

func TestWebhookService_Handle_DisableSkipsOtherProviderPlan(t *testing.T) {
	fx := createTestWebhookServiceFor(t, entity.PaymentProviderPaystack)

	userID := uuid.New()
	event := &entity.PaymentEvent{
		Provider:        entity.PaymentProviderPaystack,
		EventID:         "subscription.disable:SUB_x",
		EventType:       "subscription.disable",
		Action:          entity.PaymentActionCancelSubscription,
		SubscriptionRef: "SUB_x",
		CustomerEmail:   "seller@example.com",
	}
	fx.expectEvent(event)
	fx.expectRecorded(event, nil)
	fx.subRepo.EXPECT().FindSubscriptionByProviderID(mock.Anything, entity.PaymentProviderPaystack, "SUB_x").Return(nil, repository.ErrSubscriptionNotFound)
	fx.profileRepo.EXPECT().FindProfileByEmail(mock.Anything, "seller@example.com").Return(&entity.Profile{ID: userID}, nil)
	fx.subRepo.EXPECT().FindCurrentSubscription(mock.Anything, userID).Return(&entity.Subscription{
		ID:                     uuid.New(),
		UserID:                 userID,
		Provider:               entity.PaymentProviderStripe,
		ProviderSubscriptionID: "sub_live",
		Status:                 entity.SubscriptionStatusActive,
	}, nil)

	result, err := fx.service.Handle(context.Background(), entity.PaymentProviderPaystack, []byte("payload"), "sig")

	require.NoError(t, err)
	assert.True(t, result.Ignored)
}

func TestWebhookService_Handle_CancelSubscription(t *testing.T) {
	fx := createTestWebhookService(t)

	sub := &entity.Subscription{ID: uuid.New(), UserID: uuid.New(), PlanCode: "pro", Status: entity.SubscriptionStatusActive}

	event := &entity.PaymentEvent{
		Provider:        entity.PaymentProviderStripe,
		EventID:         "evt_9",
		EventType:       "customer.subscription.deleted",
		Action:          entity.PaymentActionCancelSubscription,
		SubscriptionRef: "sub_9",
	}
	fx.expectEvent(event)
	fx.expectRecorded(event, nil)
	fx.subRepo.EXPECT().FindSubscriptionByProviderID(mock.Anything, entity.PaymentProviderStripe, "sub_9").Return(sub, nil)
	fx.subRepo.EXPECT().
		UpdateSubscription(mock.Anything, mock.MatchedBy(func(s *entity.Subscription) bool {
			return s.Status == entity.SubscriptionStatusCanceled
		})).
		Return(nil)
	fx.notifications.EXPECT().
		Notify(mock.Anything, mock.MatchedBy(func(in *usecase.NotifyInput) bool {
			return in.UserID == sub.UserID && in.Type == entity.NotificationTypeSubscription
		})).
		Return(&entity.Notification{}, nil)

	result, err := fx.service.Handle(context.Background(), entity.PaymentProviderStripe, []byte("payload"), "sig")

	require.NoError(t, err)
	assert.False(t, result.Ignored)
}

func TestWebhookService_Handle_IgnoreAction(t *testing.T) {
	fx := createTestWebhookService(t)

	event := &entity.PaymentEvent{Provider: entity.PaymentProviderStripe, EventID: "evt_x", EventType: "charge.updated", Action: entity.PaymentActionIgnore}
	fx.expectEvent(event)
	fx.expectRecorded(event, nil)

	result, err := fx.service.Handle(context.Background(), entity.PaymentProviderStripe, []byte("payload"), "sig")

	require.NoError(t, err)
	assert.True(t, result.Ignored)
}

func TestWebhookService_Handle_StoreFailure(t *testing.T) {
	fx := createTestWebhookService(t)

	event := completeEvent("DC-000000000008")
	fx.expectEvent(event)
	fx.expectRecorded(event, errors.New("connection reset"))

	_, err := fx.service.Handle(context.Background(), entity.PaymentProviderStripe, []byte("payload"), "sig")

	assert.ErrorIs(t, err, domainerrors.ErrTransactionFailed)
}
