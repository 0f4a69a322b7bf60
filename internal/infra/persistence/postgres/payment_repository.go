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

// paymentRepository implements the repository.PaymentRepository interface.
type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository is the constructor for paymentRepository.
func NewPaymentRepository(db *gorm.DB) repository.PaymentRepository {
	return &paymentRepository{
		db: db,
	}
}

// CreateTransaction persists a new transaction.
func (repo *paymentRepository) CreateTransaction(ctx context.Context, txn *entity.Transaction) error {
	if txn.ID == uuid.Nil {
		txn.ID = uuid.New()
	}
	txnM := fromTransactionDomain(txn)

	if err := repo.db.WithContext(ctx).Create(txnM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateReference
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid transaction reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create transaction")
	}

	txn.CreatedAt = txnM.CreatedAt
	txn.UpdatedAt = txnM.UpdatedAt

	return nil
}

// FindTransactionByID retrieves a transaction by its ID.
func (repo *paymentRepository) FindTransactionByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	return repo.findOne(ctx, "id = ?", id)
}

// FindTransactionByReference retrieves a transaction by its checkout reference.
func (repo *paymentRepository) FindTransactionByReference(ctx context.Context, reference string) (*entity.Transaction, error) {
	return repo.findOne(ctx, "reference = ?", reference)
}

// FindTransactionByProviderReference retrieves a transaction by the provider's payment ID.
func (repo *paymentRepository) FindTransactionByProviderReference(
	ctx context.Context,
	provider entity.PaymentProvider,
	providerReference string,
) (*entity.Transaction, error) {
	if providerReference == "" {
		return nil, repository.ErrTransactionNotFound
	}

	return repo.findOne(ctx, "provider = ? AND provider_reference = ?", string(provider), providerReference)
}

func (repo *paymentRepository) findOne(ctx context.Context, where string, args ...any) (*entity.Transaction, error) {
	var txnM model.TransactionModel

	if err := repo.db.WithContext(ctx).
		Where(where, args...).
		First(&txnM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTransactionNotFound
		}

		return nil, errors.Wrap(err, "failed to find transaction")
	}

	return toTransactionDomain(&txnM), nil
}

// UpdateTransactionStatus sets the status and provider reference of a transaction.
// An empty providerReference keeps the stored one.
func (repo *paymentRepository) UpdateTransactionStatus(
	ctx context.Context,
	id uuid.UUID,
	status entity.TransactionStatus,
	providerReference string,
	completedAt *time.Time,
) error {
	updates := map[string]any{
		"status": string(status),
	}
	if providerReference != "" {
		updates["provider_reference"] = providerReference
	}
	if completedAt != nil {
		updates["completed_at"] = *completedAt
	}

	result := repo.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Where("id = ?", id).
		Updates(updates)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update transaction status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrTransactionNotFound
	}

	return nil
}

// ListTransactions returns one page of transactions matching the filter and the total match count.
func (repo *paymentRepository) ListTransactions(ctx context.Context, filter entity.TransactionFilter) ([]*entity.Transaction, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.TransactionModel{})

	if filter.BuyerID != nil {
		query = query.Where("buyer_id = ?", *filter.BuyerID)
	}
	if filter.SellerID != nil {
		query = query.Where("seller_id = ?", *filter.SellerID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}
	query = query.Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count transactions")
	}

	var txnModels []*model.TransactionModel
	if err := query.
		Order("created_at DESC").
		Offset(filter.Page.Offset()).
		Limit(filter.Page.PageSize).
		Find(&txnModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list transactions")
	}

	txns := make([]*entity.Transaction, 0, len(txnModels))
	for _, txnM := range txnModels {
		txns = append(txns, toTransactionDomain(txnM))
	}

	return txns, total, nil
}

// --- Mapper Functions ---

func toTransactionDomain(data *model.TransactionModel) *entity.Transaction {
	if data == nil {
		return nil
	}

	return &entity.Transaction{
		ID:                data.ID,
		Reference:         data.Reference,
		BuyerID:           data.BuyerID,
		SellerID:          data.SellerID,
		VehicleID:         data.VehicleID,
		SubscriptionID:    data.SubscriptionID,
		PlanCode:          data.PlanCode,
		Kind:              entity.TransactionKind(data.Kind),
		AmountMinor:       data.AmountMinor,
		Currency:          data.Currency,
		Provider:          entity.PaymentProvider(data.Provider),
		ProviderReference: data.ProviderReference,
		Status:            entity.TransactionStatus(data.Status),
		CompletedAt:       data.CompletedAt,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}

func fromTransactionDomain(data *entity.Transaction) *model.TransactionModel {
	return &model.TransactionModel{
		ID:                data.ID,
		Reference:         data.Reference,
		BuyerID:           data.BuyerID,
		SellerID:          data.SellerID,
		VehicleID:         data.VehicleID,
		SubscriptionID:    data.SubscriptionID,
		PlanCode:          data.PlanCode,
		Kind:              string(data.Kind),
		AmountMinor:       data.AmountMinor,
		Currency:          data.Currency,
		Provider:          string(data.Provider),
		ProviderReference: data.ProviderReference,
		Status:            string(data.Status),
		CompletedAt:       data.CompletedAt,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}
