package service

import (
	"context"
)

// PushEvent is a notification to fan out to users' devices by the worker.
type PushEvent struct {
	RequestID      string            `json:"request_id,omitempty"` // For distributed tracing
	NotificationID string            `json:"notification_id"`
	Type           string            `json:"type"`
	UserIDs        []string          `json:"user_ids"`
	Title          string            `json:"title"`
	Body           string            `json:"body"`
	Data           map[string]string `json:"data,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishPushEvent publishes a push event for async delivery
	PublishPushEvent(ctx context.Context, event *PushEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
