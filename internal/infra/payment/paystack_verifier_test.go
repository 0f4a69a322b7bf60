package payment

import (
	"testing"

	"dcars/config"
	"dcars/internal/domain/entity"
	"dcars/internal/domain/service"
	"dcars/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPaystackTestVerifier() *paystackVerifier {
	cfg := &config.Config{Payments: &config.PaymentsConfig{}}
	cfg.Payments.Paystack.SecretKey = "sk_test_paystack"

	return NewPaystackVerifier(cfg).(*paystackVerifier)
}

func TestPaystackVerifier_ChargeSuccess(t *testing.T) {
	v := newPaystackTestVerifier()
	payload := []byte(`{"event":"charge.success","data":{"id":302961,"reference":"DC-REF1","amount":1500000,"currency":"NGN","metadata":""}}`)

	event, err := v.ParseEvent(payload, v.Sign(payload))
	require.NoError(t, err)

	assert.Equal(t, entity.PaymentProviderPaystack, event.Provider)
	assert.Equal(t, "charge.success:302961", event.EventID)
	assert.Equal(t, entity.PaymentActionComplete, event.Action)
	assert.Equal(t, "DC-REF1", event.Reference)
	assert.Equal(t, "302961", event.ProviderReference)
	assert.Equal(t, int64(1500000), event.AmountMinor)
	assert.Equal(t, "NGN", event.Currency)
}

func TestPaystackVerifier_SubscriptionEventsCarryCustomer(t *testing.T) {
	v := newPaystackTestVerifier()

	charge := []byte(`{"event":"charge.success","data":{"id":77,"reference":"DC-PLAN","amount":2999,"currency":"ngn",` +
		`"plan":{"plan_code":"PLN_pro"},"customer":{"email":"seller@example.com","customer_code":"CUS_1"}}}`)
	event, err := v.ParseEvent(charge, v.Sign(charge))
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentActionComplete, event.Action)
	assert.Equal(t, "seller@example.com", event.CustomerEmail)
	assert.Empty(t, event.SubscriptionRef)

	disable := []byte(`{"event":"subscription.disable","data":{"subscription_code":"SUB_abc","status":"complete",` +
		`"customer":{"email":"seller@example.com","customer_code":"CUS_1"}}}`)
	event, err = v.ParseEvent(disable, v.Sign(disable))
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentActionCancelSubscription, event.Action)
	assert.Equal(t, "SUB_abc", event.SubscriptionRef)
	assert.Equal(t, "seller@example.com", event.CustomerEmail)
	assert.Equal(t, "subscription.disable:SUB_abc", event.EventID)
}

func TestPaystackVerifier_EventMapping(t *testing.T) {
	tests := []struct {
		name      string
		payload   string
		action    entity.PaymentEventAction
		reference string
		subRef    string
	}{
		{
			name:      "charge failed",
			payload:   `{"event":"charge.failed","data":{"id":1,"reference":"DC-F"}}`,
			action:    entity.PaymentActionFail,
			reference: "DC-F",
		},
		{
			name:      "refund processed",
			payload:   `{"event":"refund.processed","data":{"id":2,"transaction_reference":"DC-R","amount":100}}`,
			action:    entity.PaymentActionRefund,
			reference: "DC-R",
		},
		{
			name:    "subscription disabled",
			payload: `{"event":"subscription.disable","data":{"id":3,"subscription_code":"SUB_abc"}}`,
			action:  entity.PaymentActionCancelSubscription,
			subRef:  "SUB_abc",
		},
		{
			name:      "metadata reference",
			payload:   `{"event":"charge.success","data":{"id":4,"metadata":{"reference":"DC-M"}}}`,
			action:    entity.PaymentActionComplete,
			reference: "DC-M",
		},
		{
			name:    "unknown event",
			payload: `{"event":"transfer.success","data":{"id":5}}`,
			action:  entity.PaymentActionIgnore,
		},
	}

	v := newPaystackTestVerifier()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := []byte(tt.payload)

			event, err := v.ParseEvent(payload, v.Sign(payload))
			require.NoError(t, err)
			assert.Equal(t, tt.action, event.Action)
			assert.Equal(t, tt.reference, event.Reference)
			assert.Equal(t, tt.subRef, event.SubscriptionRef)
		})
	}
}

func TestPaystackVerifier_RejectsBadSignature(t *testing.T) {
	v := newPaystackTestVerifier()
	payload := []byte(`{"event":"charge.success","data":{"id":1}}`)

	_, err := v.ParseEvent(payload, "not-hex")
	assert.True(t, errors.Is(err, service.ErrInvalidSignature))

	_, err = v.ParseEvent(payload, v.Sign([]byte(`{"event":"charge.success","data":{"id":2}}`)))
	assert.True(t, errors.Is(err, service.ErrInvalidSignature))

	_, err = v.ParseEvent(payload, "")
	assert.True(t, errors.Is(err, service.ErrInvalidSignature))
}

func TestPaystackVerifier_RejectsMalformedPayload(t *testing.T) {
	v := newPaystackTestVerifier()
	payload := []byte(`{"data":{}}`)

	_, err := v.ParseEvent(payload, v.Sign(payload))
	assert.True(t, errors.Is(err, service.ErrInvalidPayload))
}
