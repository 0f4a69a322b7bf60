package impl

import (
	"context"
	"strings"
	"testing"

	"dcars/internal/domain/entity"
	domainerrors "dcars/internal/domain/errors"
	"dcars/internal/domain/repository"
	mockRepo "dcars/internal/mocks/repository"
	"dcars/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestTransactionService(t *testing.T) (*transactionService, *mockRepo.MockPaymentRepository, *mockRepo.MockVehicleRepository) {
	paymentRepo := mockRepo.NewMockPaymentRepository(t)
	vehicleRepo := mockRepo.NewMockVehicleRepository(t)

	svc := NewTransactionService(TransactionServiceParams{
		PaymentRepo: paymentRepo,
		VehicleRepo: vehicleRepo,
		Config:      newTestConfig(),
		Logger:      discardLogger(),
	}).(*transactionService)

	return svc, paymentRepo, vehicleRepo
}

func activeListing(sellerID uuid.UUID) *entity.Vehicle {
	return &entity.Vehicle{
		ID:         uuid.New(),
		SellerID:   sellerID,
		PriceMinor: 5_000_000,
		Currency:   "NGN",
		Status:     entity.VehicleStatusActive,
	}
}

func TestTransactionService_CreateCheckout_Purchase(t *testing.T) {
	svc, paymentRepo, vehicleRepo := createTestTransactionService(t)

	ctx := context.Background()
	buyerID := uuid.New()
	vehicle := activeListing(uuid.New())

	vehicleRepo.EXPECT().FindVehicleByID(ctx, vehicle.ID).Return(vehicle, nil)
	paymentRepo.EXPECT().CreateTransaction(ctx, mock.AnythingOfType("*entity.Transaction")).Return(nil)

	txn, err := svc.CreateCheckout(ctx, buyerID, &usecase.CheckoutInput{
		Kind:      entity.TransactionKindVehiclePurchase,
		VehicleID: &vehicle.ID,
		Provider:  entity.PaymentProviderPaystack,
	})

	require.NoError(t, err)
	assert.Equal(t, entity.TransactionStatusPending, txn.Status)
	assert.Equal(t, int64(5_000_000), txn.AmountMinor)
	assert.Equal(t, "NGN", txn.Currency)
	assert.Equal(t, vehicle.SellerID, *txn.SellerID)
	assert.True(t, strings.HasPrefix(txn.Reference, referencePrefix))
	assert.Len(t, txn.Reference, len(referencePrefix)+12)
}

func TestTransactionService_CreateCheckout_Deposit(t *testing.T) {
	tests := []struct {
		name    string
		deposit int64
		wantErr bool
	}{
		{name: "partial deposit", deposit: 500_000},
		{name: "full price", deposit: 5_000_000},
		{name: "zero", deposit: 0, wantErr: true},
		{name: "above price", deposit: 5_000_001, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, paymentRepo, vehicleRepo := createTestTransactionService(t)

			ctx := context.Background()
			vehicle := activeListing(uuid.New())

			vehicleRepo.EXPECT().FindVehicleByID(ctx, vehicle.ID).Return(vehicle, nil)
			if !tt.wantErr {
				paymentRepo.EXPECT().CreateTransaction(ctx, mock.Anything).Return(nil)
			}

			txn, err := svc.CreateCheckout(ctx, uuid.New(), &usecase.CheckoutInput{
				Kind:         entity.TransactionKindDeposit,
				VehicleID:    &vehicle.ID,
				Provider:     entity.PaymentProviderStripe,
				DepositMinor: tt.deposit,
			})

			if tt.wantErr {
				requireAppError(t, err, domainerrors.ErrValidationFailed.ErrorCode())

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.deposit, txn.AmountMinor)
		})
	}
}

func TestTransactionService_CreateCheckout_Subscription(t *testing.T) {
	svc, paymentRepo, _ := createTestTransactionService(t)

	ctx := context.Background()

	paymentRepo.EXPECT().CreateTransaction(ctx, mock.Anything).Return(nil)

	txn, err := svc.CreateCheckout(ctx, uuid.New(), &usecase.CheckoutInput{
		Kind:     entity.TransactionKindSubscription,
		PlanCode: "pro",
		Provider: entity.PaymentProviderStripe,
	})

	require.NoError(t, err)
	assert.Equal(t, "pro", txn.PlanCode)
	assert.Equal(t, int64(2999), txn.AmountMinor)
	assert.Equal(t, "USD", txn.Currency)
	assert.Nil(t, txn.SellerID)
}

func TestTransactionService_CreateCheckout_Rejections(t *testing.T) {
	buyerID := uuid.New()

	tests := []struct {
		name    string
		vehicle *entity.Vehicle
		input   func(v *entity.Vehicle) *usecase.CheckoutInput
		wantErr error
	}{
		{
			name: "unknown provider",
			input: func(*entity.Vehicle) *usecase.CheckoutInput {
				return &usecase.CheckoutInput{Kind: entity.TransactionKindSubscription, PlanCode: "pro", Provider: "paypal"}
			},
			wantErr: domainerrors.ErrInvalidPaymentProvider,
		},
		{
			name: "unknown plan",
			input: func(*entity.Vehicle) *usecase.CheckoutInput {
				return &usecase.CheckoutInput{Kind: entity.TransactionKindSubscription, PlanCode: "gold", Provider: entity.PaymentProviderStripe}
			},
			wantErr: domainerrors.ErrPlanNotFound,
		},
		{
			name: "unknown kind",
			input: func(*entity.Vehicle) *usecase.CheckoutInput {
				return &usecase.CheckoutInput{Kind: "lease", Provider: entity.PaymentProviderStripe}
			},
			wantErr: domainerrors.ErrInvalidTransactionKind,
		},
		{
			name:    "own listing",
			vehicle: activeListing(buyerID),
			input: func(v *entity.Vehicle) *usecase.CheckoutInput {
				return &usecase.CheckoutInput{Kind: entity.TransactionKindVehiclePurchase, VehicleID: &v.ID, Provider: entity.PaymentProviderStripe}
			},
			wantErr: domainerrors.ErrCannotBuyOwnVehicle,
		},
		{
			name: "sold listing",
			vehicle: func() *entity.Vehicle {
				v := activeListing(uuid.New())
				v.Status = entity.VehicleStatusSold

				return v
			}(),
			input: func(v *entity.Vehicle) *usecase.CheckoutInput {
				return &usecase.CheckoutInput{Kind: entity.TransactionKindVehiclePurchase, VehicleID: &v.ID, Provider: entity.PaymentProviderStripe}
			},
			wantErr: domainerrors.ErrVehicleNotAvailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, vehicleRepo := createTestTransactionService(t)

			ctx := context.Background()
			if tt.vehicle != nil {
				vehicleRepo.EXPECT().FindVehicleByID(ctx, tt.vehicle.ID).Return(tt.vehicle, nil)
			}

			_, err := svc.CreateCheckout(ctx, buyerID, tt.input(tt.vehicle))

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestTransactionService_CreateCheckout_RetriesReference(t *testing.T) {
	svc, paymentRepo, _ := createTestTransactionService(t)

	ctx := context.Background()
	refs := []string{"DC-AAAAAAAAAAAA", "DC-BBBBBBBBBBBB"}
	svc.newRef = func() string {
		ref := refs[0]
		refs = refs[1:]

		return ref
	}

	paymentRepo.EXPECT().
		CreateTransaction(ctx, mock.MatchedBy(func(txn *entity.Transaction) bool { return txn.Reference == "DC-AAAAAAAAAAAA" })).
		Return(repository.ErrDuplicateReference).Once()
	paymentRepo.EXPECT().
		CreateTransaction(ctx, mock.MatchedBy(func(txn *entity.Transaction) bool { return txn.Reference == "DC-BBBBBBBBBBBB" })).
		Return(nil).Once()

	txn, err := svc.CreateCheckout(ctx, uuid.New(), &usecase.CheckoutInput{
		Kind:     entity.TransactionKindSubscription,
		PlanCode: "dealer",
		Provider: entity.PaymentProviderPaystack,
	})

	require.NoError(t, err)
	assert.Equal(t, "DC-BBBBBBBBBBBB", txn.Reference)
}

func TestTransactionService_CreateCheckout_ReferenceExhausted(t *testing.T) {
	svc, paymentRepo, _ := createTestTransactionService(t)

	ctx := context.Background()
	svc.newRef = func() string { return "DC-TAKEN000000" }

	paymentRepo.EXPECT().CreateTransaction(ctx, mock.Anything).Return(repository.ErrDuplicateReference).Times(referenceAttempts)

	_, err := svc.CreateCheckout(ctx, uuid.New(), &usecase.CheckoutInput{
		Kind:     entity.TransactionKindSubscription,
		PlanCode: "pro",
		Provider: entity.PaymentProviderStripe,
	})

	requireAppError(t, err, domainerrors.ErrConflict.ErrorCode())
}

func TestTransactionService_ListMine(t *testing.T) {
	svc, paymentRepo, _ := createTestTransactionService(t)

	ctx := context.Background()
	userID := uuid.New()

	paymentRepo.EXPECT().
		ListTransactions(ctx, mock.MatchedBy(func(f entity.TransactionFilter) bool {
			return f.SellerID != nil && *f.SellerID == userID && f.BuyerID == nil
		})).
		Return([]*entity.Transaction{{ID: uuid.New()}}, int64(1), nil)

	page, err := svc.ListMine(ctx, userID, true, entity.PageRequest{})

	require.NoError(t, err)
	assert.Len(t, page.Items, 1)
}

func TestTransactionService_Get(t *testing.T) {
	sellerID := uuid.New()
	buyerID := uuid.New()

	tests := []struct {
		name    string
		actor   usecase.Actor
		wantErr error
	}{
		{name: "buyer", actor: usecase.Actor{UserID: buyerID, Role: entity.RoleBuyer}},
		{name: "seller", actor: usecase.Actor{UserID: sellerID, Role: entity.RoleSeller}},
		{name: "admin", actor: usecase.Actor{UserID: uuid.New(), Role: entity.RoleAdmin}},
		{name: "stranger", actor: usecase.Actor{UserID: uuid.New(), Role: entity.RoleBuyer}, wantErr: domainerrors.ErrTransactionNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, paymentRepo, _ := createTestTransactionService(t)

			ctx := context.Background()
			id := uuid.New()

			paymentRepo.EXPECT().FindTransactionByID(ctx, id).Return(&entity.Transaction{ID: id, BuyerID: buyerID, SellerID: &sellerID}, nil)

			txn, err := svc.Get(ctx, tt.actor, id)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, id, txn.ID)
		})
	}
}
