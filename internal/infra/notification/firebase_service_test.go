package notification

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"dcars/config"
	"dcars/internal/domain/service"

	"firebase.google.com/go/v4/messaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	multicast *messaging.MulticastMessage
	single    *messaging.Message
	response  *messaging.BatchResponse
	err       error
}

func (f *fakeSender) SendEachForMulticast(_ context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error) {
	f.multicast = message

	return f.response, f.err
}

func (f *fakeSender) Send(_ context.Context, message *messaging.Message) (string, error) {
	f.single = message

	return "projects/test/messages/1", f.err
}

var chatMessage = service.PushMessage{
	Title: "New message",
	Body:  "Is the Corolla still available?",
	Data:  map[string]string{"type": "message.received", "conversation_id": "c-1"},
}

func TestFirebaseService_SendBatch(t *testing.T) {
	sender := &fakeSender{response: &messaging.BatchResponse{
		SuccessCount: 1,
		FailureCount: 1,
		Responses: []*messaging.SendResponse{
			{Success: true, MessageID: "m1"},
			{Success: false, Error: errors.New("quota exceeded")},
		},
	}}
	svc := &firebaseService{client: sender}

	result, err := svc.SendBatch(context.Background(), []string{"token-a", "token-b"}, chatMessage)

	require.NoError(t, err)
	assert.Equal(t, 1, result.Sent)
	assert.Equal(t, 1, result.Failed)
	assert.Empty(t, result.InvalidTokens, "transient failures keep the token")
	assert.Equal(t, []string{"token-a", "token-b"}, sender.multicast.Tokens)
	assert.Equal(t, "New message", sender.multicast.Notification.Title)
	assert.Equal(t, "c-1", sender.multicast.Data["conversation_id"])
}

func TestFirebaseService_SendBatch_Limits(t *testing.T) {
	svc := &firebaseService{client: &fakeSender{}}

	result, err := svc.SendBatch(context.Background(), nil, chatMessage)
	require.NoError(t, err)
	assert.Equal(t, &service.PushBatchResult{}, result)

	tooMany := make([]string, MaxMulticastTokens+1)
	_, err = svc.SendBatch(context.Background(), tooMany, chatMessage)
	assert.Error(t, err)
}

func TestFirebaseService_SendBatch_ClientError(t *testing.T) {
	svc := &firebaseService{client: &fakeSender{err: errors.New("unavailable")}}

	_, err := svc.SendBatch(context.Background(), []string{"token"}, chatMessage)

	assert.Error(t, err)
}

func TestFirebaseService_Send(t *testing.T) {
	sender := &fakeSender{}
	svc := &firebaseService{client: sender}

	require.NoError(t, svc.Send(context.Background(), "token-a", chatMessage))
	assert.Equal(t, "token-a", sender.single.Token)
	assert.Equal(t, chatMessage.Body, sender.single.Notification.Body)
}

func TestNewPushSender_NoopWithoutCredentials(t *testing.T) {
	svc, err := NewPushSender(Params{
		Ctx:    context.Background(),
		Config: &config.Config{},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)

	result, err := svc.SendBatch(context.Background(), []string{"token"}, chatMessage)
	require.NoError(t, err)
	assert.Zero(t, result.Sent)
	assert.Zero(t, result.Failed)
	assert.Empty(t, result.InvalidTokens)
	assert.NoError(t, svc.Send(context.Background(), "token", chatMessage))
}
