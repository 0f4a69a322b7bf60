package realtime

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newTestHub(t *testing.T, userID uuid.UUID) (*Hub, *httptest.Server) {
	t.Helper()

	hub := NewHub(slog.New(slog.NewTextHandler(io.Discard, nil)), nil)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = hub.Serve(w, r, userID)
	}))

	return hub, srv
}

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}

	return conn
}

func waitForConnections(t *testing.T, hub *Hub, userID uuid.UUID, want int) {
	t.Helper()

	require.Eventually(t, func() bool {
		return hub.ConnectionCount(userID) == want
	}, 2*time.Second, 10*time.Millisecond)
}

func TestHub_SendToUser(t *testing.T) {
	userID := uuid.New()
	hub, srv := newTestHub(t, userID)
	defer srv.Close()

	conn := dial(t, srv)
	defer conn.Close()
	waitForConnections(t, hub, userID, 1)

	hub.SendToUser(userID, "message.created", map[string]string{"body": "hello"})

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, raw, err := conn.ReadMessage()
	require.NoError(t, err)

	var frame struct {
		Type string            `json:"type"`
		Data map[string]string `json:"data"`
	}
	require.NoError(t, json.Unmarshal(raw, &frame))
	assert.Equal(t, "message.created", frame.Type)
	assert.Equal(t, "hello", frame.Data["body"])

	require.NoError(t, hub.Close(context.Background()))
}

func TestHub_SendToOtherUserIsNotDelivered(t *testing.T) {
	userID := uuid.New()
	hub, srv := newTestHub(t, userID)
	defer srv.Close()

	conn := dial(t, srv)
	defer conn.Close()
	waitForConnections(t, hub, userID, 1)

	hub.SendToUser(uuid.New(), "message.created", "ignored")

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(100*time.Millisecond)))
	_, _, err := conn.ReadMessage()
	require.Error(t, err)

	require.NoError(t, hub.Close(context.Background()))
}

func TestHub_ClientDisconnectUnregisters(t *testing.T) {
	userID := uuid.New()
	hub, srv := newTestHub(t, userID)
	defer srv.Close()

	conn := dial(t, srv)
	waitForConnections(t, hub, userID, 1)

	require.NoError(t, conn.Close())
	waitForConnections(t, hub, userID, 0)

	require.NoError(t, hub.Close(context.Background()))
}

func TestHub_CloseRejectsNewConnections(t *testing.T) {
	userID := uuid.New()
	hub, srv := newTestHub(t, userID)
	defer srv.Close()

	require.NoError(t, hub.Close(context.Background()))

	conn := dial(t, srv)
	defer conn.Close()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, _, err := conn.ReadMessage()
	assert.True(t, websocket.IsCloseError(err, websocket.CloseGoingAway))
	assert.Equal(t, 0, hub.ConnectionCount(userID))
}

func TestOriginChecker(t *testing.T) {
	check := originChecker([]string{"https://dcars.example"})

	req := httptest.NewRequest(http.MethodGet, "/ws", nil)
	assert.True(t, check(req), "missing origin is allowed")

	req.Header.Set("Origin", "https://dcars.example")
	assert.True(t, check(req))

	req.Header.Set("Origin", "https://evil.example")
	assert.False(t, check(req))

	assert.True(t, originChecker(nil)(req))
	assert.True(t, originChecker([]string{"*"})(req))
}
