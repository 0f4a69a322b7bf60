package service

import (
	"dcars/internal/domain/entity"
	"dcars/internal/errors"
)

// Payment webhook errors.
var (
	ErrInvalidSignature = errors.New("invalid webhook signature")
	ErrInvalidPayload   = errors.New("invalid webhook payload")
)

// PaymentVerifier authenticates a provider callback and normalizes it.
type PaymentVerifier interface {
	Provider() entity.PaymentProvider

	// ParseEvent verifies the signature over the raw payload and maps the event.
	ParseEvent(payload []byte, signature string) (*entity.PaymentEvent, error)
}
