// Package payment verifies payment provider webhooks and maps them onto marketplace actions.
package payment

import (
	"encoding/json"
	"strings"
	"time"

	"dcars/config"
	"dcars/internal/domain/entity"
	"dcars/internal/domain/service"
	"dcars/internal/errors"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"
)

// Stripe event types the marketplace reacts to.
const (
	stripeCheckoutCompleted   = "checkout.session.completed"
	stripePaymentSucceeded    = "payment_intent.succeeded"
	stripePaymentFailed       = "payment_intent.payment_failed"
	stripeChargeRefunded      = "charge.refunded"
	stripeSubscriptionDeleted = "customer.subscription.deleted"

	metadataReferenceKey   = "reference"
	defaultStripeTolerance = webhook.DefaultTolerance
)

type stripeVerifier struct {
	secret    string
	tolerance time.Duration
}

// NewStripeVerifier creates a verifier for Stripe-Signature headers.
func NewStripeVerifier(cfg *config.Config) service.PaymentVerifier {
	tolerance := cfg.Payments.Stripe.Tolerance
	if tolerance <= 0 {
		tolerance = defaultStripeTolerance
	}

	return &stripeVerifier{
		secret:    cfg.Payments.Stripe.WebhookSecret,
		tolerance: tolerance,
	}
}

func (v *stripeVerifier) Provider() entity.PaymentProvider {
	return entity.PaymentProviderStripe
}

func (v *stripeVerifier) ParseEvent(payload []byte, signature string) (*entity.PaymentEvent, error) {
	if v.secret == "" || signature == "" {
		return nil, service.ErrInvalidSignature
	}

	event, err := webhook.ConstructEventWithOptions(payload, signature, v.secret, webhook.ConstructEventOptions{
		Tolerance:                v.tolerance,
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		if errors.IsAny(err, webhook.ErrNotSigned, webhook.ErrNoValidSignature, webhook.ErrInvalidHeader, webhook.ErrTooOld) {
			return nil, errors.Wrap(service.ErrInvalidSignature, err.Error())
		}

		return nil, errors.Wrap(service.ErrInvalidPayload, err.Error())
	}

	result := &entity.PaymentEvent{
		Provider:  entity.PaymentProviderStripe,
		EventID:   event.ID,
		EventType: string(event.Type),
		Action:    entity.PaymentActionIgnore,
	}

	if event.Data == nil {
		return result, nil
	}

	if err := mapStripeEvent(string(event.Type), event.Data.Raw, result); err != nil {
		return nil, errors.Wrap(service.ErrInvalidPayload, err.Error())
	}

	return result, nil
}

func mapStripeEvent(eventType string, raw json.RawMessage, result *entity.PaymentEvent) error {
	switch eventType {
	case stripeCheckoutCompleted:
		var session stripe.CheckoutSession
		if err := json.Unmarshal(raw, &session); err != nil {
			return err
		}
		result.Action = entity.PaymentActionComplete
		result.Reference = firstNonEmpty(session.Metadata[metadataReferenceKey], session.ClientReferenceID)
		result.ProviderReference = session.ID
		if session.PaymentIntent != nil && session.PaymentIntent.ID != "" {
			result.ProviderReference = session.PaymentIntent.ID
		}
		if session.Subscription != nil {
			result.SubscriptionRef = session.Subscription.ID
		}
		result.AmountMinor = session.AmountTotal
		result.Currency = currencyCode(session.Currency)

	case stripePaymentSucceeded, stripePaymentFailed:
		var intent stripe.PaymentIntent
		if err := json.Unmarshal(raw, &intent); err != nil {
			return err
		}
		result.Action = entity.PaymentActionComplete
		result.AmountMinor = intent.AmountReceived
		if eventType == stripePaymentFailed {
			result.Action = entity.PaymentActionFail
			result.AmountMinor = intent.Amount
		}
		result.Reference = intent.Metadata[metadataReferenceKey]
		result.ProviderReference = intent.ID
		result.Currency = currencyCode(intent.Currency)

	case stripeChargeRefunded:
		var charge stripe.Charge
		if err := json.Unmarshal(raw, &charge); err != nil {
			return err
		}
		result.Action = entity.PaymentActionRefund
		result.Reference = charge.Metadata[metadataReferenceKey]
		result.ProviderReference = charge.ID
		if charge.PaymentIntent != nil && charge.PaymentIntent.ID != "" {
			result.ProviderReference = charge.PaymentIntent.ID
		}
		result.AmountMinor = charge.AmountRefunded
		result.Currency = currencyCode(charge.Currency)

	case stripeSubscriptionDeleted:
		var sub stripe.Subscription
		if err := json.Unmarshal(raw, &sub); err != nil {
			return err
		}
		result.Action = entity.PaymentActionCancelSubscription
		result.Reference = sub.Metadata[metadataReferenceKey]
		result.SubscriptionRef = sub.ID
	}

	return nil
}

func currencyCode(c stripe.Currency) string {
	return strings.ToUpper(string(c))
}
