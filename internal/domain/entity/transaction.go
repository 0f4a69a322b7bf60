package entity

import (
	"time"

	"github.com/google/uuid"
)

// TransactionKind describes what a payment is for.
type TransactionKind string

const (
	TransactionKindVehiclePurchase TransactionKind = "vehicle_purchase"
	TransactionKindDeposit         TransactionKind = "deposit"
	TransactionKindSubscription    TransactionKind = "subscription"
)

// IsValid checks if the kind is a known value.
func (k TransactionKind) IsValid() bool {
	switch k {
	case TransactionKindVehiclePurchase, TransactionKindDeposit, TransactionKindSubscription:
		return true
	default:
		return false
	}
}

// TransactionStatus is the settlement state of a payment.
type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusCompleted TransactionStatus = "completed"
	TransactionStatusFailed    TransactionStatus = "failed"
	TransactionStatusRefunded  TransactionStatus = "refunded"
)

// IsValid checks if the status is a known value.
func (s TransactionStatus) IsValid() bool {
	switch s {
	case TransactionStatusPending, TransactionStatusCompleted, TransactionStatusFailed, TransactionStatusRefunded:
		return true
	default:
		return false
	}
}

// PaymentProvider names an external payment processor.
type PaymentProvider string

const (
	PaymentProviderStripe   PaymentProvider = "stripe"
	PaymentProviderPaystack PaymentProvider = "paystack"
)

// IsValid checks if the provider is supported.
func (p PaymentProvider) IsValid() bool {
	return p == PaymentProviderStripe || p == PaymentProviderPaystack
}

// Transaction is a payment between a buyer and a seller, or a plan purchase.
// For subscription payments SellerID is nil.
type Transaction struct {
	ID                uuid.UUID         `json:"id"`
	Reference         string            `json:"reference"`
	BuyerID           uuid.UUID         `json:"buyer_id"`
	SellerID          *uuid.UUID        `json:"seller_id,omitempty"`
	VehicleID         *uuid.UUID        `json:"vehicle_id,omitempty"`
	SubscriptionID    *uuid.UUID        `json:"subscription_id,omitempty"`
	PlanCode          string            `json:"plan_code,omitempty"`
	Kind              TransactionKind   `json:"kind"`
	AmountMinor       int64             `json:"amount_minor"`
	Currency          string            `json:"currency"`
	Provider          PaymentProvider   `json:"provider"`
	ProviderReference string            `json:"provider_reference,omitempty"`
	Status            TransactionStatus `json:"status"`
	CompletedAt       *time.Time        `json:"completed_at,omitempty"`
	CreatedAt         time.Time         `json:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at"`
}

// IsParty reports whether the user is the buyer or seller of the transaction.
func (t *Transaction) IsParty(userID uuid.UUID) bool {
	if t.BuyerID == userID {
		return true
	}

	return t.SellerID != nil && *t.SellerID == userID
}

// TransactionFilter narrows transaction listings.
type TransactionFilter struct {
	BuyerID  *uuid.UUID
	SellerID *uuid.UUID
	Status   TransactionStatus
	Page     PageRequest
}
