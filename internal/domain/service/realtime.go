package service

import (
	"github.com/google/uuid"
)

// Realtime event types delivered over websocket connections.
const (
	RealtimeMessageCreated      = "message.created"
	RealtimeMessagesRead        = "messages.read"
	RealtimeNotificationCreated = "notification.created"
)

// RealtimeNotifier delivers events to a user's live connections.
// Delivery is best effort; users without connections are skipped.
type RealtimeNotifier interface {
	SendToUser(userID uuid.UUID, eventType string, payload any)
}
