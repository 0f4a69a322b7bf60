// Package notification delivers push notifications to user devices.
package notification

import (
	"context"
	"log/slog"

	"dcars/config"
	"dcars/internal/domain/service"
	"dcars/internal/errors"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

// MaxMulticastTokens is the FCM limit of tokens per multicast request.
const MaxMulticastTokens = 500

// multicastSender is the subset of the FCM client used for batch sends.
type multicastSender interface {
	SendEachForMulticast(ctx context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error)
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

type firebaseService struct {
	client multicastSender
}

// NewFirebaseService connects to FCM with the service account at cfg.CredentialsPath.
func NewFirebaseService(ctx context.Context, cfg *config.FirebaseConfig) (service.PushSender, error) {
	var fbConfig *firebase.Config
	if cfg.ProjectID != "" {
		fbConfig = &firebase.Config{ProjectID: cfg.ProjectID}
	}

	app, err := firebase.NewApp(ctx, fbConfig, option.WithCredentialsFile(cfg.CredentialsPath))
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &firebaseService{client: client}, nil
}

// Send delivers msg to a single device.
func (s *firebaseService) Send(ctx context.Context, token string, msg service.PushMessage) error {
	if _, err := s.client.Send(ctx, &messaging.Message{
		Token:        token,
		Notification: &messaging.Notification{Title: msg.Title, Body: msg.Body},
		Data:         msg.Data,
	}); err != nil {
		return errors.Wrap(err, "failed to send notification")
	}

	return nil
}

// SendBatch delivers msg to up to MaxMulticastTokens devices in one FCM call.
func (s *firebaseService) SendBatch(ctx context.Context, tokens []string, msg service.PushMessage) (*service.PushBatchResult, error) {
	if len(tokens) == 0 {
		return &service.PushBatchResult{}, nil
	}
	if len(tokens) > MaxMulticastTokens {
		return nil, errors.Errorf("token count exceeds limit: %d (max %d)", len(tokens), MaxMulticastTokens)
	}

	resp, err := s.client.SendEachForMulticast(ctx, &messaging.MulticastMessage{
		Tokens:       tokens,
		Notification: &messaging.Notification{Title: msg.Title, Body: msg.Body},
		Data:         msg.Data,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to send multicast notification")
	}

	result := &service.PushBatchResult{Sent: resp.SuccessCount, Failed: resp.FailureCount}
	for idx, sendResp := range resp.Responses {
		if sendResp.Error == nil {
			continue
		}
		// The app was uninstalled or the token rotated; other failures are transient.
		if messaging.IsInvalidArgument(sendResp.Error) || messaging.IsUnregistered(sendResp.Error) {
			result.InvalidTokens = append(result.InvalidTokens, tokens[idx])
		}
	}

	return result, nil
}

// noopSender drops notifications when Firebase is not configured
type noopSender struct {
	logger *slog.Logger
}

func (s *noopSender) Send(_ context.Context, _ string, msg service.PushMessage) error {
	s.logger.Debug("[NoopPush] Push disabled, skipping", slog.String("title", msg.Title))

	return nil
}

func (s *noopSender) SendBatch(_ context.Context, tokens []string, msg service.PushMessage) (*service.PushBatchResult, error) {
	s.logger.Debug("[NoopPush] Push disabled, skipping batch",
		slog.String("title", msg.Title),
		slog.Int("token_count", len(tokens)),
	)

	return &service.PushBatchResult{}, nil
}

// Params holds dependencies for the push sender, injected by Fx
type Params struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewPushSender creates the Firebase sender, or a no-op one without credentials
func NewPushSender(params Params) (service.PushSender, error) {
	cfg := params.Config.Firebase
	if cfg == nil || cfg.CredentialsPath == "" {
		params.Logger.Info("Firebase not configured, push notifications disabled")

		return &noopSender{logger: params.Logger}, nil
	}

	return NewFirebaseService(params.Ctx, cfg)
}

// Module provides the push notification FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewPushSender),
)
