package pubsub

import (
	"encoding/base64"
	"encoding/json"
	"time"

	"dcars/internal/domain/service"
	"dcars/internal/errors"
)

// PushMessage is the JSON body Pub/Sub push subscriptions deliver to HTTP endpoints.
// The local publisher produces the same shape so the worker handles both alike.
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// eventAttributes returns message attributes used for filtering and tracing.
func eventAttributes(event *service.PushEvent) map[string]string {
	attributes := map[string]string{
		"notification_id": event.NotificationID,
		"type":            event.Type,
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}

// NewPushMessage wraps an event the way a push subscription would.
func NewPushMessage(event *service.PushEvent, subscription string, publishedAt time.Time) (*PushMessage, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	msg := &PushMessage{Subscription: subscription}
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.MessageID = event.NotificationID
	msg.Message.PublishTime = publishedAt.UTC().Format(time.RFC3339)
	msg.Message.Attributes = eventAttributes(event)

	return msg, nil
}

// Decode extracts the push event carried by the message.
func (m *PushMessage) Decode() (*service.PushEvent, error) {
	data, err := base64.StdEncoding.DecodeString(m.Message.Data)
	if err != nil {
		return nil, errors.Wrap(err, "decode message data")
	}

	var event service.PushEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, errors.Wrap(err, "parse push event")
	}

	return &event, nil
}
