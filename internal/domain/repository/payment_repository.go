package repository

import (
	"context"
	"time"

	"dcars/internal/domain/entity"
	"dcars/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for payment persistence.
var (
	// ErrTransactionNotFound is returned when a payment transaction is not found.
	ErrTransactionNotFound = errors.New("transaction not found")
	// ErrDuplicateReference is returned when a transaction reference is already taken.
	ErrDuplicateReference = errors.New("transaction reference already exists")
)

// PaymentRepository defines the interface for payment transactions.
type PaymentRepository interface {
	// CreateTransaction persists a new transaction.
	CreateTransaction(ctx context.Context, txn *entity.Transaction) error

	// FindTransactionByID retrieves a transaction by its ID.
	FindTransactionByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)

	// FindTransactionByReference retrieves a transaction by its checkout reference.
	FindTransactionByReference(ctx context.Context, reference string) (*entity.Transaction, error)

	// FindTransactionByProviderReference retrieves a transaction by the provider's payment ID
	// recorded when it was settled.
	FindTransactionByProviderReference(ctx context.Context, provider entity.PaymentProvider, providerReference string) (*entity.Transaction, error)

	// UpdateTransactionStatus sets the status and provider reference of a transaction.
	UpdateTransactionStatus(ctx context.Context, id uuid.UUID, status entity.TransactionStatus, providerReference string, completedAt *time.Time) error

	// ListTransactions returns one page of transactions matching the filter and the total match count.
	ListTransactions(ctx context.Context, filter entity.TransactionFilter) ([]*entity.Transaction, int64, error)
}
