package impl

import (
	"context"
	"log/slog"
	"strings"

	"dcars/config"
	"dcars/internal/domain/entity"
	domainerrors "dcars/internal/domain/errors"
	"dcars/internal/domain/repository"
	"dcars/internal/errors"
	"dcars/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	referencePrefix   = "DC-"
	referenceAttempts = 3
)

// transactionService implements checkout creation and transaction history.
type transactionService struct {
	paymentRepo repository.PaymentRepository
	vehicleRepo repository.VehicleRepository
	cfg         *config.Config
	logger      *slog.Logger
	newRef      func() string
}

// TransactionServiceParams holds dependencies for TransactionService, injected by Fx.
type TransactionServiceParams struct {
	fx.In

	PaymentRepo repository.PaymentRepository
	VehicleRepo repository.VehicleRepository
	Config      *config.Config
	Logger      *slog.Logger
}

// NewTransactionService is the constructor for transactionService.
func NewTransactionService(params TransactionServiceParams) usecase.TransactionUsecase {
	return &transactionService{
		paymentRepo: params.PaymentRepo,
		vehicleRepo: params.VehicleRepo,
		cfg:         params.Config,
		logger:      params.Logger,
		newRef:      newReference,
	}
}

// CreateCheckout records a pending transaction. The front-end hands its reference
// to the payment provider, and the provider's webhook settles it.
func (srv *transactionService) CreateCheckout(ctx context.Context, buyerID uuid.UUID, input *usecase.CheckoutInput) (*entity.Transaction, error) {
	if !input.Provider.IsValid() {
		return nil, errors.Wrapf(domainerrors.ErrInvalidPaymentProvider, "provider %q", input.Provider)
	}

	txn := &entity.Transaction{
		BuyerID:  buyerID,
		Kind:     input.Kind,
		Provider: input.Provider,
		Status:   entity.TransactionStatusPending,
	}

	switch input.Kind {
	case entity.TransactionKindVehiclePurchase, entity.TransactionKindDeposit:
		if err := srv.priceVehicle(ctx, txn, input); err != nil {
			return nil, err
		}
	case entity.TransactionKindSubscription:
		plan, ok := srv.cfg.PlanByCode(input.PlanCode)
		if !ok {
			return nil, errors.Wrapf(domainerrors.ErrPlanNotFound, "plan %q", input.PlanCode)
		}
		txn.PlanCode = plan.Code
		txn.AmountMinor = plan.PriceMinor
		txn.Currency = srv.cfg.Payments.Currency
	default:
		return nil, errors.Wrapf(domainerrors.ErrInvalidTransactionKind, "kind %q", input.Kind)
	}

	if err := srv.create(ctx, txn); err != nil {
		return nil, err
	}

	contextLogger(ctx, srv.logger).Info("Checkout created",
		slog.String("transaction_id", txn.ID.String()),
		slog.String("reference", txn.Reference),
		slog.String("kind", string(txn.Kind)),
		slog.String("provider", string(txn.Provider)),
		slog.Int64("amount_minor", txn.AmountMinor),
	)

	return txn, nil
}

func (srv *transactionService) priceVehicle(ctx context.Context, txn *entity.Transaction, input *usecase.CheckoutInput) error {
	if input.VehicleID == nil {
		return errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("vehicle_id is required"), "missing vehicle")
	}

	vehicle, err := srv.vehicleRepo.FindVehicleByID(ctx, *input.VehicleID)
	if err != nil {
		return mapVehicleError(err, "failed to find vehicle")
	}
	if vehicle.SellerID == txn.BuyerID {
		return errors.WithStack(domainerrors.ErrCannotBuyOwnVehicle)
	}
	if vehicle.Status != entity.VehicleStatusActive {
		return errors.Wrapf(domainerrors.ErrVehicleNotAvailable, "listing is %s", vehicle.Status)
	}

	txn.VehicleID = &vehicle.ID
	txn.SellerID = &vehicle.SellerID
	txn.Currency = vehicle.Currency
	txn.AmountMinor = vehicle.PriceMinor

	if input.Kind == entity.TransactionKindDeposit {
		if input.DepositMinor <= 0 || input.DepositMinor > vehicle.PriceMinor {
			return errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("deposit must be positive and at most the listing price"), "invalid deposit")
		}
		txn.AmountMinor = input.DepositMinor
	}

	return nil
}

// create persists the transaction under a fresh reference, retrying on collisions.
func (srv *transactionService) create(ctx context.Context, txn *entity.Transaction) error {
	var err error
	for range referenceAttempts {
		txn.Reference = srv.newRef()

		err = srv.paymentRepo.CreateTransaction(ctx, txn)
		if err == nil {
			return nil
		}
		if !errors.Is(err, repository.ErrDuplicateReference) {
			return errors.Wrap(err, "failed to create transaction")
		}
	}

	return errors.Wrap(domainerrors.ErrConflict.WithDetails("could not allocate a transaction reference"), err.Error())
}

// ListMine returns the user's purchases, or their sales when asSeller is set.
func (srv *transactionService) ListMine(ctx context.Context, userID uuid.UUID, asSeller bool, page entity.PageRequest) (entity.Page[*entity.Transaction], error) {
	filter := entity.TransactionFilter{Page: clampPage(srv.cfg, page)}
	if asSeller {
		filter.SellerID = &userID
	} else {
		filter.BuyerID = &userID
	}

	items, total, err := srv.paymentRepo.ListTransactions(ctx, filter)
	if err != nil {
		return entity.Page[*entity.Transaction]{}, errors.Wrap(err, "failed to list transactions")
	}

	return entity.NewPage(items, total, filter.Page), nil
}

// Get returns a transaction visible to its buyer, its seller and admins.
func (srv *transactionService) Get(ctx context.Context, actor usecase.Actor, id uuid.UUID) (*entity.Transaction, error) {
	txn, err := srv.paymentRepo.FindTransactionByID(ctx, id)
	if err != nil {
		return nil, mapTransactionError(err, "failed to find transaction")
	}
	if !txn.IsParty(actor.UserID) && !actor.IsAdmin() {
		return nil, errors.Wrap(domainerrors.ErrTransactionNotFound, "not a party to the transaction")
	}

	return txn, nil
}

func mapTransactionError(err error, message string) error {
	if errors.Is(err, repository.ErrTransactionNotFound) {
		return errors.Wrap(domainerrors.ErrTransactionNotFound, message)
	}

	return errors.Wrap(err, message)
}

// newReference returns a short reference such as DC-3F9A1C0B7E24.
func newReference() string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")

	return referencePrefix + strings.ToUpper(id[:12])
}
