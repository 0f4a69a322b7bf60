// Package handler holds the worker's Pub/Sub push handler.
package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"dcars/config"
	deliverycontext "dcars/internal/delivery/context"
	"dcars/internal/domain/constants"
	"dcars/internal/domain/repository"
	"dcars/internal/domain/service"
	"dcars/internal/errors"
	"dcars/internal/infra/pubsub"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// retryableError marks failures Pub/Sub should redeliver.
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

func newRetryableError(err error) error {
	return &retryableError{err: err}
}

func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// tokenValidator checks a Google-signed ID token against an audience.
type tokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// PushHandler delivers push events to the recipients' registered devices.
type PushHandler struct {
	verifyPushAuth bool
	audience       string
	batchSize      int
	validateToken  tokenValidator
	logger         *slog.Logger
	pushSender     service.PushSender
	deviceRepo     repository.DeviceRepository
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config     *config.Config
	Logger     *slog.Logger
	PushSender service.PushSender
	DeviceRepo repository.DeviceRepository
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Only Google push subscriptions sign their requests.
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		audience:       params.Config.Worker.PushAudience,
		batchSize:      params.Config.Worker.BatchSize,
		validateToken:  idtoken.Validate,
		logger:         params.Logger,
		pushSender:     params.PushSender,
		deviceRepo:     params.DeviceRepo,
	}
}

// HandlePush handles one Pub/Sub push delivery.
// 503 asks Pub/Sub to redeliver; any other outcome acknowledges the message.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg pubsub.PushMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	event, err := pushMsg.Decode()
	if err != nil {
		h.logger.Error("[Worker] Failed to decode push event",
			slog.String("message_id", pushMsg.Message.MessageID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := extractRequestID(ctx, &pushMsg, event)
	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing push event",
		slog.String("notification_id", event.NotificationID),
		slog.String("type", event.Type),
		slog.Int("recipient_count", len(event.UserIDs)),
	)

	result, err := h.deliver(ctx, reqLogger, event)
	if err != nil {
		reqLogger.Error("[Worker] Failed to deliver push event",
			slog.String("notification_id", event.NotificationID),
			slog.Any("error", err),
			slog.Bool("retryable", isRetryableError(err)),
		)
		if isRetryableError(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	reqLogger.Info("[Worker] Push event delivered",
		slog.String("notification_id", event.NotificationID),
		slog.Int("total_sent", result.sent),
		slog.Int("total_failed", result.failed),
		slog.Int64("deactivated_devices", result.deactivated),
	)

	return c.NoContent(http.StatusOK)
}

// extractRequestID prefers message attributes, then the event, then the inbound request.
func extractRequestID(ctx context.Context, pushMsg *pubsub.PushMessage, event *service.PushEvent) string {
	if requestID := pushMsg.Message.Attributes["request_id"]; requestID != "" {
		return requestID
	}

	if event.RequestID != "" {
		return event.RequestID
	}

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

type deliveryResult struct {
	sent        int
	failed      int
	deactivated int64
}

func (h *PushHandler) deliver(ctx context.Context, logger *slog.Logger, event *service.PushEvent) (deliveryResult, error) {
	var result deliveryResult

	userIDs := parseUserIDs(logger, event.UserIDs)
	if len(userIDs) == 0 {
		logger.Info("[Worker] No recipients to notify", slog.String("notification_id", event.NotificationID))

		return result, nil
	}

	tokens, err := h.deviceRepo.FindActiveTokensByUsers(ctx, userIDs)
	if err != nil {
		return result, newRetryableError(errors.Wrap(err, "find device tokens"))
	}
	if len(tokens) == 0 {
		logger.Info("[Worker] Recipients have no active devices", slog.String("notification_id", event.NotificationID))

		return result, nil
	}

	msg := service.PushMessage{Title: event.Title, Body: event.Body, Data: pushData(event)}

	var (
		invalidTokens []string
		batchErrs     []error
	)
	for start := 0; start < len(tokens); start += h.batchSize {
		batch := tokens[start:min(start+h.batchSize, len(tokens))]

		batchResult, sendErr := h.pushSender.SendBatch(ctx, batch, msg)
		if sendErr != nil {
			logger.Error("[Worker] Failed to send batch",
				slog.Int("batch_start", start),
				slog.Int("batch_size", len(batch)),
				slog.Any("error", sendErr),
			)
			result.failed += len(batch)
			batchErrs = append(batchErrs, sendErr)

			continue
		}

		result.sent += batchResult.Sent
		result.failed += batchResult.Failed
		invalidTokens = append(invalidTokens, batchResult.InvalidTokens...)
	}

	if len(invalidTokens) > 0 {
		deactivated, err := h.deviceRepo.DeactivateTokens(ctx, invalidTokens)
		if err != nil {
			logger.Warn("[Worker] Failed to deactivate invalid tokens",
				slog.Int("token_count", len(invalidTokens)),
				slog.Any("error", err),
			)
		}
		result.deactivated = deactivated
	}

	// Redelivery would duplicate pushes that already went out, so only retry when nothing was sent.
	if len(batchErrs) > 0 && result.sent == 0 {
		return result, newRetryableError(errors.Join(batchErrs...))
	}

	return result, nil
}

func parseUserIDs(logger *slog.Logger, raw []string) []uuid.UUID {
	userIDs := make([]uuid.UUID, 0, len(raw))
	seen := make(map[uuid.UUID]struct{}, len(raw))
	for _, s := range raw {
		id, err := uuid.Parse(s)
		if err != nil {
			logger.Warn("[Worker] Skipping invalid recipient id", slog.String("user_id", s))

			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		userIDs = append(userIDs, id)
	}

	return userIDs
}

// pushData is the FCM data payload; clients route on type and notification_id.
func pushData(event *service.PushEvent) map[string]string {
	data := make(map[string]string, len(event.Data)+2)
	for k, v := range event.Data {
		data[k] = v
	}
	data["type"] = event.Type
	data["notification_id"] = event.NotificationID

	return data
}

// verifyPubSubToken checks the OIDC token Google attaches to push requests.
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func (h *PushHandler) verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	token, ok := strings.CutPrefix(authHeader, "Bearer ")
	if !ok || token == "" {
		return errors.New("invalid authorization header format")
	}

	audience := h.audience
	if audience == "" {
		scheme := "https"
		if req.TLS == nil {
			scheme = "http"
		}
		audience = fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)
	}

	payload, err := h.validateToken(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
