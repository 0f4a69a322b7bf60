package payment

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"strings"

	"dcars/config"
	"dcars/internal/domain/entity"
	"dcars/internal/domain/service"
	"dcars/internal/errors"
)

// Paystack event types the marketplace reacts to.
const (
	paystackChargeSuccess       = "charge.success"
	paystackChargeFailed        = "charge.failed"
	paystackRefundProcessed     = "refund.processed"
	paystackSubscriptionDisable = "subscription.disable"
)

type paystackEnvelope struct {
	Event string       `json:"event"`
	Data  paystackData `json:"data"`
}

type paystackData struct {
	ID               json.Number       `json:"id"`
	Reference        string            `json:"reference"`
	TransactionRef   string            `json:"transaction_reference"`
	Amount           int64             `json:"amount"`
	Currency         string            `json:"currency"`
	SubscriptionCode string            `json:"subscription_code"`
	Metadata         paystackMetadata  `json:"metadata"`
	Transaction      *paystackRefundOf `json:"transaction"`
	Customer         paystackCustomer  `json:"customer"`
}

type paystackCustomer struct {
	Email        string `json:"email"`
	CustomerCode string `json:"customer_code"`
}

type paystackRefundOf struct {
	Reference string `json:"reference"`
}

// paystackMetadata tolerates the empty string Paystack sends when no metadata was attached.
type paystackMetadata map[string]any

func (m *paystackMetadata) UnmarshalJSON(b []byte) error {
	if len(b) == 0 || b[0] != '{' {
		*m = nil

		return nil
	}

	var raw map[string]any
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*m = raw

	return nil
}

func (m paystackMetadata) reference() string {
	if v, ok := m[metadataReferenceKey].(string); ok {
		return v
	}

	return ""
}

type paystackVerifier struct {
	secretKey []byte
}

// NewPaystackVerifier creates a verifier for X-Paystack-Signature headers.
func NewPaystackVerifier(cfg *config.Config) service.PaymentVerifier {
	return &paystackVerifier{secretKey: []byte(cfg.Payments.Paystack.SecretKey)}
}

func (v *paystackVerifier) Provider() entity.PaymentProvider {
	return entity.PaymentProviderPaystack
}

// Sign returns the hex HMAC-SHA512 of payload under the secret key.
func (v *paystackVerifier) Sign(payload []byte) string {
	mac := hmac.New(sha512.New, v.secretKey)
	mac.Write(payload)

	return hex.EncodeToString(mac.Sum(nil))
}

func (v *paystackVerifier) ParseEvent(payload []byte, signature string) (*entity.PaymentEvent, error) {
	if len(v.secretKey) == 0 || signature == "" {
		return nil, service.ErrInvalidSignature
	}

	expected, err := hex.DecodeString(v.Sign(payload))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	given, err := hex.DecodeString(strings.ToLower(strings.TrimSpace(signature)))
	if err != nil || !hmac.Equal(expected, given) {
		return nil, service.ErrInvalidSignature
	}

	var envelope paystackEnvelope
	if err := json.Unmarshal(payload, &envelope); err != nil {
		return nil, errors.Wrap(service.ErrInvalidPayload, err.Error())
	}
	if envelope.Event == "" {
		return nil, errors.Wrap(service.ErrInvalidPayload, "missing event")
	}

	data := envelope.Data
	result := &entity.PaymentEvent{
		Provider:      entity.PaymentProviderPaystack,
		EventID:       paystackEventID(envelope),
		EventType:     envelope.Event,
		Action:        entity.PaymentActionIgnore,
		Reference:     firstNonEmpty(data.Reference, data.Metadata.reference()),
		AmountMinor:   data.Amount,
		Currency:      strings.ToUpper(data.Currency),
		CustomerEmail: strings.TrimSpace(data.Customer.Email),
	}

	switch envelope.Event {
	case paystackChargeSuccess:
		result.Action = entity.PaymentActionComplete
		result.ProviderReference = data.ID.String()
		result.SubscriptionRef = data.SubscriptionCode
	case paystackChargeFailed:
		result.Action = entity.PaymentActionFail
		result.ProviderReference = data.ID.String()
	case paystackRefundProcessed:
		result.Action = entity.PaymentActionRefund
		if data.Transaction != nil && data.Transaction.Reference != "" {
			result.Reference = data.Transaction.Reference
		}
		result.Reference = firstNonEmpty(data.TransactionRef, result.Reference)
		result.ProviderReference = data.ID.String()
	case paystackSubscriptionDisable:
		result.Action = entity.PaymentActionCancelSubscription
		result.SubscriptionRef = data.SubscriptionCode
	}

	return result, nil
}

// paystackEventID derives a stable ledger key; Paystack payloads carry no event ID.
func paystackEventID(envelope paystackEnvelope) string {
	id := envelope.Data.ID.String()
	if id == "" {
		id = firstNonEmpty(envelope.Data.Reference, envelope.Data.SubscriptionCode)
	}

	return envelope.Event + ":" + id
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}
