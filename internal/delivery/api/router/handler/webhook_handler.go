package handler

import (
	"io"
	"log/slog"

	"dcars/internal/delivery/api/response"
	deliverycontext "dcars/internal/delivery/context"
	"dcars/internal/domain/constants"
	domainerrors "dcars/internal/domain/errors"
	"dcars/internal/domain/entity"
	"dcars/internal/errors"
	"dcars/internal/usecase"

	"github.com/labstack/echo/v4"
)

// maxWebhookBytes bounds provider payloads; both providers stay far below it.
const maxWebhookBytes = 1 << 20

// WebhookHandler receives payment provider callbacks.
type WebhookHandler struct {
	webhookUC usecase.PaymentWebhookUsecase
	logger    *slog.Logger
}

// NewWebhookHandler is the constructor for WebhookHandler.
func NewWebhookHandler(webhookUC usecase.PaymentWebhookUsecase, logger *slog.Logger) *WebhookHandler {
	return &WebhookHandler{webhookUC: webhookUC, logger: logger}
}

// Stripe handles callbacks signed with the Stripe-Signature header.
func (h *WebhookHandler) Stripe(c echo.Context) error {
	return h.handle(c, entity.PaymentProviderStripe, constants.HeaderStripeSignature)
}

// Paystack handles callbacks signed with the X-Paystack-Signature header.
func (h *WebhookHandler) Paystack(c echo.Context) error {
	return h.handle(c, entity.PaymentProviderPaystack, constants.HeaderPaystackSignature)
}

// handle reads the raw body, since signatures cover the exact bytes sent.
func (h *WebhookHandler) handle(c echo.Context, provider entity.PaymentProvider, signatureHeader string) error {
	payload, err := io.ReadAll(io.LimitReader(c.Request().Body, maxWebhookBytes))
	if err != nil {
		return errors.WithStack(domainerrors.ErrInvalidWebhookPayload.WithDetails("unreadable body"))
	}

	result, err := h.webhookUC.Handle(c.Request().Context(), provider, payload, c.Request().Header.Get(signatureHeader))
	if err != nil {
		return errors.WithStack(err)
	}

	deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).Info("Payment webhook handled",
		slog.String("provider", string(provider)),
		slog.String("event_id", result.EventID),
		slog.String("action", string(result.Action)),
		slog.Bool("duplicate", result.Duplicate),
		slog.Bool("ignored", result.Ignored),
	)

	return response.OK(c, result)
}
