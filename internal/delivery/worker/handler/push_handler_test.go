package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"dcars/internal/domain/service"
	"dcars/internal/errors"
	"dcars/internal/infra/pubsub"
	mockRepo "dcars/internal/mocks/repository"
	mockService "dcars/internal/mocks/service"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

type pushHandlerMocks struct {
	deviceRepo *mockRepo.MockDeviceRepository
	pushSender *mockService.MockPushSender
}

func newTestPushHandler(t *testing.T, batchSize int) (*PushHandler, pushHandlerMocks) {
	m := pushHandlerMocks{
		deviceRepo: mockRepo.NewMockDeviceRepository(t),
		pushSender: mockService.NewMockPushSender(t),
	}

	return &PushHandler{
		batchSize:  batchSize,
		logger:     slog.New(slog.DiscardHandler),
		pushSender: m.pushSender,
		deviceRepo: m.deviceRepo,
	}, m
}

func pushBody(t *testing.T, event *service.PushEvent) string {
	t.Helper()

	msg, err := pubsub.NewPushMessage(event, "projects/p/subscriptions/s", time.Now())
	require.NoError(t, err)

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func servePush(h *PushHandler, body string, header http.Header) *httptest.ResponseRecorder {
	e := echo.New()
	e.POST("/push", h.HandlePush)

	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range header {
		req.Header[k] = v
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestPushHandler_DeliversInBatchesAndDeactivatesInvalidTokens(t *testing.T) {
	h, m := newTestPushHandler(t, 2)

	userID := uuid.New()
	event := &service.PushEvent{
		NotificationID: uuid.NewString(),
		Type:           "message.received",
		UserIDs:        []string{userID.String(), userID.String(), "not-a-uuid"},
		Title:          "New message",
		Body:           "Is the car still available?",
		Data:           map[string]string{"conversation_id": "c-1"},
	}

	m.deviceRepo.EXPECT().
		FindActiveTokensByUsers(mock.Anything, []uuid.UUID{userID}).
		Return([]string{"t1", "t2", "t3"}, nil)

	msgMatches := mock.MatchedBy(func(msg service.PushMessage) bool {
		return msg.Title == event.Title &&
			msg.Body == event.Body &&
			msg.Data["type"] == event.Type &&
			msg.Data["notification_id"] == event.NotificationID &&
			msg.Data["conversation_id"] == "c-1"
	})
	m.pushSender.EXPECT().
		SendBatch(mock.Anything, []string{"t1", "t2"}, msgMatches).
		Return(&service.PushBatchResult{Sent: 1, Failed: 1, InvalidTokens: []string{"t2"}}, nil)
	m.pushSender.EXPECT().
		SendBatch(mock.Anything, []string{"t3"}, msgMatches).
		Return(&service.PushBatchResult{Sent: 1}, nil)

	m.deviceRepo.EXPECT().DeactivateTokens(mock.Anything, []string{"t2"}).Return(int64(1), nil)

	rec := servePush(h, pushBody(t, event), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_TokenLookupFailureIsRetried(t *testing.T) {
	h, m := newTestPushHandler(t, 500)

	event := &service.PushEvent{NotificationID: "n-1", UserIDs: []string{uuid.NewString()}, Title: "t"}

	m.deviceRepo.EXPECT().
		FindActiveTokensByUsers(mock.Anything, mock.Anything).
		Return(nil, errors.New("connection refused"))

	rec := servePush(h, pushBody(t, event), nil)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestPushHandler_AllBatchesFailedIsRetried(t *testing.T) {
	h, m := newTestPushHandler(t, 500)

	event := &service.PushEvent{NotificationID: "n-1", UserIDs: []string{uuid.NewString()}, Title: "t"}

	m.deviceRepo.EXPECT().FindActiveTokensByUsers(mock.Anything, mock.Anything).Return([]string{"t1"}, nil)
	m.pushSender.EXPECT().
		SendBatch(mock.Anything, []string{"t1"}, mock.Anything).
		Return(nil, errors.New("fcm unavailable"))

	rec := servePush(h, pushBody(t, event), nil)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestPushHandler_NoDevicesAcknowledged(t *testing.T) {
	h, m := newTestPushHandler(t, 500)

	event := &service.PushEvent{NotificationID: "n-1", UserIDs: []string{uuid.NewString()}, Title: "t"}

	m.deviceRepo.EXPECT().FindActiveTokensByUsers(mock.Anything, mock.Anything).Return(nil, nil)

	rec := servePush(h, pushBody(t, event), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_MalformedMessage(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: "{"},
		{name: "data not base64", body: `{"message":{"data":"%%%","messageId":"1"}}`},
		{name: "data not an event", body: `{"message":{"data":"bm90IGpzb24=","messageId":"1"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestPushHandler(t, 500)

			rec := servePush(h, tt.body, nil)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestPushHandler_VerifiesPubSubToken(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		issuer     string
		validErr   error
		wantStatus int
	}{
		{name: "missing header", wantStatus: http.StatusUnauthorized},
		{name: "not bearer", header: "Basic abc", wantStatus: http.StatusUnauthorized},
		{name: "invalid token", header: "Bearer bad", validErr: errors.New("expired"), wantStatus: http.StatusUnauthorized},
		{name: "wrong issuer", header: "Bearer tok", issuer: "https://evil.example", wantStatus: http.StatusUnauthorized},
		{name: "valid", header: "Bearer tok", issuer: "https://accounts.google.com", wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestPushHandler(t, 500)
			h.verifyPushAuth = true
			h.audience = "https://worker.example/push"

			var gotAudience string
			h.validateToken = func(_ context.Context, _ string, audience string) (*idtoken.Payload, error) {
				gotAudience = audience
				if tt.validErr != nil {
					return nil, tt.validErr
				}

				return &idtoken.Payload{Issuer: tt.issuer}, nil
			}

			if tt.wantStatus == http.StatusOK {
				m.deviceRepo.EXPECT().FindActiveTokensByUsers(mock.Anything, mock.Anything).Return(nil, nil)
			}

			header := http.Header{}
			if tt.header != "" {
				header.Set(echo.HeaderAuthorization, tt.header)
			}

			event := &service.PushEvent{NotificationID: "n-1", UserIDs: []string{uuid.NewString()}}
			rec := servePush(h, pushBody(t, event), header)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.issuer != "" {
				assert.Equal(t, "https://worker.example/push", gotAudience)
			}
		})
	}
}

func TestExtractRequestID_PrefersAttributes(t *testing.T) {
	event := &service.PushEvent{NotificationID: "n-1", RequestID: "from-event"}
	msg, err := pubsub.NewPushMessage(event, "s", time.Now())
	require.NoError(t, err)

	assert.Equal(t, "from-event", extractRequestID(context.Background(), msg, event))

	msg.Message.Attributes["request_id"] = "from-attributes"
	assert.Equal(t, "from-attributes", extractRequestID(context.Background(), msg, event))

	event.RequestID = ""
	delete(msg.Message.Attributes, "request_id")
	assert.NotEmpty(t, extractRequestID(context.Background(), msg, event))
}

func TestPushData_AddsRoutingKeys(t *testing.T) {
	event := &service.PushEvent{
		NotificationID: "n-1",
		Type:           "vehicle.sold",
		Data:           map[string]string{"vehicle_id": "v-1", "type": "spoofed"},
	}

	want := map[string]string{
		"vehicle_id":      "v-1",
		"type":            "vehicle.sold",
		"notification_id": "n-1",
	}
	if diff := cmp.Diff(want, pushData(event)); diff != "" {
		t.Errorf("pushData() mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "spoofed", event.Data["type"], "event data must not be mutated")
}
