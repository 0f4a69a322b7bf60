package pubsub

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"dcars/config"
	"dcars/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLocalHTTPPublisher_PublishPushEvent(t *testing.T) {
	var received PushMessage
	var requestID string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)

	publisher := NewLocalHTTPPublisher(srv.URL, discardLogger())
	event := &service.PushEvent{
		RequestID:      "req-1",
		NotificationID: "n-1",
		Type:           "message",
		UserIDs:        []string{"u-1"},
		Title:          "New message",
		Body:           "Is the car still available?",
		Data:           map[string]string{"conversation_id": "c-1"},
	}

	require.NoError(t, publisher.PublishPushEvent(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, localSubscription, received.Subscription)
	assert.Equal(t, "n-1", received.Message.MessageID)
	assert.Equal(t, "message", received.Message.Attributes["type"])
	assert.Equal(t, "req-1", received.Message.Attributes["request_id"])

	decoded, err := received.Decode()
	require.NoError(t, err)
	assert.Equal(t, event, decoded)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	t.Cleanup(srv.Close)

	err := NewLocalHTTPPublisher(srv.URL, discardLogger()).
		PublishPushEvent(context.Background(), &service.PushEvent{NotificationID: "n-1"})

	assert.ErrorContains(t, err, "503")
}

func TestPushMessage_DecodeRejectsGarbage(t *testing.T) {
	msg := &PushMessage{}
	msg.Message.Data = "%%%"

	_, err := msg.Decode()
	assert.Error(t, err)

	msg.Message.Data = "bm90IGpzb24=" // "not json"
	_, err = msg.Decode()
	assert.Error(t, err)
}

func TestNewEventPublisher_Selection(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.PubSubConfig
		wantErr bool
	}{
		{name: "not configured", cfg: nil},
		{name: "none", cfg: &config.PubSubConfig{Provider: "none"}},
		{name: "local", cfg: &config.PubSubConfig{Provider: "local", LocalEndpoint: "http://localhost:8081/push"}},
		{name: "local without endpoint", cfg: &config.PubSubConfig{Provider: "local"}, wantErr: true},
		{name: "google without project", cfg: &config.PubSubConfig{Provider: "google", TopicID: "t"}, wantErr: true},
		{name: "unknown", cfg: &config.PubSubConfig{Provider: "kafka"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			publisher, err := NewEventPublisher(PublisherParams{
				Lc:     fxtest.NewLifecycle(t),
				Ctx:    context.Background(),
				Config: &config.Config{PubSub: tt.cfg},
				Logger: discardLogger(),
			})
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.NotNil(t, publisher)
		})
	}
}

func TestNoopPublisher(t *testing.T) {
	publisher, err := NewEventPublisher(PublisherParams{
		Lc:     fxtest.NewLifecycle(t),
		Ctx:    context.Background(),
		Config: &config.Config{},
		Logger: discardLogger(),
	})
	require.NoError(t, err)

	assert.NoError(t, publisher.PublishPushEvent(context.Background(), &service.PushEvent{NotificationID: "n"}))
	assert.NoError(t, publisher.Close())
}
