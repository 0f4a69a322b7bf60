package usecase

import (
	"context"

	"dcars/internal/domain/entity"

	"github.com/google/uuid"
)

// TransactionUsecase creates checkouts and lists payments.
type TransactionUsecase interface {
	// CreateCheckout persists a pending transaction whose reference the client hands to the provider.
	CreateCheckout(ctx context.Context, buyerID uuid.UUID, input *CheckoutInput) (*entity.Transaction, error)

	// ListMine returns transactions where the caller is the buyer, or the seller when asSeller is set.
	ListMine(ctx context.Context, userID uuid.UUID, asSeller bool, page entity.PageRequest) (entity.Page[*entity.Transaction], error)

	// Get returns a transaction visible to its parties and admins.
	Get(ctx context.Context, actor Actor, id uuid.UUID) (*entity.Transaction, error)
}

// CheckoutInput selects what is being paid for.
type CheckoutInput struct {
	Kind      entity.TransactionKind `json:"kind" validate:"required,oneof=vehicle_purchase deposit subscription"`
	VehicleID *uuid.UUID             `json:"vehicle_id" validate:"required_unless=Kind subscription"`
	PlanCode  string                 `json:"plan_code" validate:"required_if=Kind subscription"`
	Provider  entity.PaymentProvider `json:"provider" validate:"required,oneof=stripe paystack"`
	// DepositMinor is the amount for deposits; it may not exceed the listing price.
	DepositMinor int64 `json:"deposit_minor" validate:"required_if=Kind deposit,gte=0"`
}
