package service

import (
	"context"
)

// PushMessage is one device notification. Data carries the routing keys the
// mobile app opens on tap (type, notification_id, conversation_id, vehicle_id).
type PushMessage struct {
	Title string
	Body  string
	Data  map[string]string
}

// PushBatchResult reports a multicast send. InvalidTokens belong to uninstalled
// or expired app instances and should be deactivated.
type PushBatchResult struct {
	Sent          int
	Failed        int
	InvalidTokens []string
}

// PushSender delivers notifications to registered user devices.
type PushSender interface {
	// SendBatch sends one message to every token; callers keep batches within the provider limit.
	SendBatch(ctx context.Context, tokens []string, msg PushMessage) (*PushBatchResult, error)

	Send(ctx context.Context, token string, msg PushMessage) error
}
