package payment

import (
	"fmt"
	"testing"
	"time"

	"dcars/config"
	"dcars/internal/domain/entity"
	"dcars/internal/domain/service"
	"dcars/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v82/webhook"
)

const testStripeSecret = "whsec_test_secret"

func newStripeTestVerifier() service.PaymentVerifier {
	cfg := &config.Config{Payments: &config.PaymentsConfig{}}
	cfg.Payments.Stripe.WebhookSecret = testStripeSecret

	return NewStripeVerifier(cfg)
}

func signStripe(t *testing.T, payload string, at time.Time) string {
	t.Helper()

	signed := webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{
		Payload:   []byte(payload),
		Secret:    testStripeSecret,
		Timestamp: at,
	})

	return signed.Header
}

func stripeEvent(id, eventType, object string) string {
	return fmt.Sprintf(`{"id":%q,"object":"event","api_version":"2020-08-27","type":%q,"data":{"object":%s}}`, id, eventType, object)
}

func TestStripeVerifier_CheckoutCompleted(t *testing.T) {
	v := newStripeTestVerifier()
	payload := stripeEvent("evt_1", "checkout.session.completed",
		`{"id":"cs_1","object":"checkout.session","client_reference_id":"DC-REF1","payment_intent":"pi_1","amount_total":250000,"currency":"usd","metadata":{}}`)

	event, err := v.ParseEvent([]byte(payload), signStripe(t, payload, time.Now()))
	require.NoError(t, err)

	assert.Equal(t, entity.PaymentProviderStripe, event.Provider)
	assert.Equal(t, "evt_1", event.EventID)
	assert.Equal(t, entity.PaymentActionComplete, event.Action)
	assert.Equal(t, "DC-REF1", event.Reference)
	assert.Equal(t, "pi_1", event.ProviderReference)
	assert.Equal(t, int64(250000), event.AmountMinor)
	assert.Equal(t, "USD", event.Currency)
}

func TestStripeVerifier_MetadataReferenceWins(t *testing.T) {
	v := newStripeTestVerifier()
	payload := stripeEvent("evt_2", "checkout.session.completed",
		`{"id":"cs_2","object":"checkout.session","client_reference_id":"OTHER","metadata":{"reference":"DC-META"}}`)

	event, err := v.ParseEvent([]byte(payload), signStripe(t, payload, time.Now()))
	require.NoError(t, err)
	assert.Equal(t, "DC-META", event.Reference)
	assert.Equal(t, "cs_2", event.ProviderReference)
}

func TestStripeVerifier_RefundWithoutMetadata(t *testing.T) {
	v := newStripeTestVerifier()
	payload := stripeEvent("evt_3", "charge.refunded",
		`{"id":"ch_3","object":"charge","payment_intent":"pi_3","amount":250000,"amount_refunded":50000,"currency":"usd","metadata":{}}`)

	event, err := v.ParseEvent([]byte(payload), signStripe(t, payload, time.Now()))
	require.NoError(t, err)

	assert.Equal(t, entity.PaymentActionRefund, event.Action)
	assert.Empty(t, event.Reference)
	assert.Equal(t, "pi_3", event.ProviderReference)
	assert.Equal(t, int64(50000), event.AmountMinor)
}

func TestStripeVerifier_EventMapping(t *testing.T) {
	tests := []struct {
		name      string
		eventType string
		object    string
		action    entity.PaymentEventAction
		reference string
		subRef    string
	}{
		{
			name:      "payment failed",
			eventType: "payment_intent.payment_failed",
			object:    `{"id":"pi_9","object":"payment_intent","amount":500,"currency":"eur","metadata":{"reference":"DC-F"}}`,
			action:    entity.PaymentActionFail,
			reference: "DC-F",
		},
		{
			name:      "payment succeeded",
			eventType: "payment_intent.succeeded",
			object:    `{"id":"pi_8","object":"payment_intent","amount_received":500,"currency":"eur","metadata":{"reference":"DC-S"}}`,
			action:    entity.PaymentActionComplete,
			reference: "DC-S",
		},
		{
			name:      "charge refunded",
			eventType: "charge.refunded",
			object:    `{"id":"ch_1","object":"charge","payment_intent":"pi_7","amount_refunded":500,"currency":"eur","metadata":{"reference":"DC-R"}}`,
			action:    entity.PaymentActionRefund,
			reference: "DC-R",
		},
		{
			name:      "subscription deleted",
			eventType: "customer.subscription.deleted",
			object:    `{"id":"sub_1","object":"subscription","metadata":{"reference":"DC-SUB"}}`,
			action:    entity.PaymentActionCancelSubscription,
			reference: "DC-SUB",
			subRef:    "sub_1",
		},
		{
			name:      "unknown type is ignored",
			eventType: "customer.created",
			object:    `{"id":"cus_1","object":"customer"}`,
			action:    entity.PaymentActionIgnore,
		},
	}

	v := newStripeTestVerifier()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := stripeEvent("evt_"+tt.name, tt.eventType, tt.object)

			event, err := v.ParseEvent([]byte(payload), signStripe(t, payload, time.Now()))
			require.NoError(t, err)
			assert.Equal(t, tt.action, event.Action)
			assert.Equal(t, tt.reference, event.Reference)
			assert.Equal(t, tt.subRef, event.SubscriptionRef)
		})
	}
}

func TestStripeVerifier_RejectsBadSignature(t *testing.T) {
	v := newStripeTestVerifier()
	payload := stripeEvent("evt_1", "charge.refunded", `{"id":"ch_1","object":"charge"}`)

	_, err := v.ParseEvent([]byte(payload), "t=1,v1=deadbeef")
	assert.True(t, errors.Is(err, service.ErrInvalidSignature))

	_, err = v.ParseEvent([]byte(payload), "")
	assert.True(t, errors.Is(err, service.ErrInvalidSignature))
}

func TestStripeVerifier_RejectsStaleSignature(t *testing.T) {
	v := newStripeTestVerifier()
	payload := stripeEvent("evt_1", "charge.refunded", `{"id":"ch_1","object":"charge"}`)

	_, err := v.ParseEvent([]byte(payload), signStripe(t, payload, time.Now().Add(-time.Hour)))
	assert.True(t, errors.Is(err, service.ErrInvalidSignature))
}
