package telegram

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"dcars/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testToken = "123456:" + strings.Repeat("A", 35)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestBotAlerter_Alert(t *testing.T) {
	var (
		mu       sync.Mutex
		gotPath  string
		gotChat  float64
		gotText  string
		requests int
	)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		defer mu.Unlock()
		requests++
		gotPath = r.URL.Path

		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		gotChat, _ = body["chat_id"].(float64)
		gotText, _ = body["text"].(string)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true,"result":{"message_id":1,"date":0,"chat":{"id":42,"type":"private"}}}`))
	}))
	defer srv.Close()

	alerter, err := NewBotAlerter(testToken, 42, "dcars", srv.URL, discardLogger())
	require.NoError(t, err)

	require.NoError(t, alerter.Alert(context.Background(), "payment completed"))

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 1, requests)
	assert.True(t, strings.HasSuffix(gotPath, "/sendMessage"))
	assert.InDelta(t, 42, gotChat, 0)
	assert.Equal(t, "[dcars] payment completed", gotText)
}

func TestBotAlerter_AlertFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":false,"error_code":400,"description":"Bad Request: chat not found"}`))
	}))
	defer srv.Close()

	alerter, err := NewBotAlerter(testToken, 1, "", srv.URL, discardLogger())
	require.NoError(t, err)

	assert.Error(t, alerter.Alert(context.Background(), "hello"))
}

func TestNewAdminAlerter_DisabledIsNoop(t *testing.T) {
	cfg := &config.Config{Telegram: &config.TelegramConfig{Enabled: false, Token: testToken}}

	alerter, err := NewAdminAlerter(cfg, discardLogger())
	require.NoError(t, err)
	assert.IsType(t, &noopAlerter{}, alerter)
	assert.NoError(t, alerter.Alert(context.Background(), "ignored"))
}

func TestNewAdminAlerter_InvalidToken(t *testing.T) {
	cfg := &config.Config{Telegram: &config.TelegramConfig{Enabled: true, Token: "bad", AdminChatID: 1}}

	_, err := NewAdminAlerter(cfg, discardLogger())
	assert.Error(t, err)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcd…", truncate("abcdefghij", 5))
}
