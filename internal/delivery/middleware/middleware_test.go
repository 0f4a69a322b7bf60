package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"dcars/config"
	deliverycontext "dcars/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestRequestIDMiddleware_GeneratesID(t *testing.T) {
	e := echo.New()
	mw := NewRequestIDMiddleware(slog.New(slog.DiscardHandler))

	var fromContext string
	e.GET("/", func(c echo.Context) error {
		fromContext = deliverycontext.GetRequestIDFromContext(c.Request().Context())
		assert.NotNil(t, deliverycontext.GetLogger(c.Request().Context()))

		return c.NoContent(http.StatusOK)
	}, mw.Process)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	header := rec.Header().Get(deliverycontext.HeaderXRequestID)
	require.NotEmpty(t, header)
	assert.Equal(t, header, fromContext)
}

func TestRequestIDMiddleware_ReusesClientID(t *testing.T) {
	e := echo.New()
	mw := NewRequestIDMiddleware(slog.New(slog.DiscardHandler))
	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, deliverycontext.GetRequestID(c))
	}, mw.Process)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "abc-123")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, "abc-123", rec.Body.String())
	assert.Equal(t, "abc-123", rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestLoggerMiddleware_LevelFollowsStatus(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		wantLevel string
	}{
		{name: "ok", status: http.StatusOK, wantLevel: `"level":"INFO"`},
		{name: "client error", status: http.StatusNotFound, wantLevel: `"level":"WARN"`},
		{name: "server error", status: http.StatusBadGateway, wantLevel: `"level":"ERROR"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			e := echo.New()
			mw := NewLoggerMiddleware(newTestLogger(&buf), &config.Config{})
			e.GET("/items", func(c echo.Context) error {
				return c.NoContent(tt.status)
			}, mw.Handle)

			e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/items", nil))

			assert.Contains(t, buf.String(), tt.wantLevel)
			assert.Contains(t, buf.String(), `"uri":"/items"`)
		})
	}
}

func TestLoggerMiddleware_ErrorStatusIsFinal(t *testing.T) {
	var buf bytes.Buffer
	e := echo.New()
	mw := NewLoggerMiddleware(newTestLogger(&buf), &config.Config{})
	e.GET("/fail", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusConflict, "taken")
	}, mw.Handle)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/fail", nil))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, buf.String(), `"status":409`)
}

func TestLoggerMiddleware_SkipsHealthChecksOutsideDebug(t *testing.T) {
	var buf bytes.Buffer
	e := echo.New()
	mw := NewLoggerMiddleware(newTestLogger(&buf), &config.Config{})
	e.GET("/health", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}, mw.Handle)

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Empty(t, buf.String())
}

func TestLoggerMiddleware_HidesTokenQuery(t *testing.T) {
	var buf bytes.Buffer
	cfg := &config.Config{}
	cfg.Env.Debug = true
	e := echo.New()
	mw := NewLoggerMiddleware(newTestLogger(&buf), cfg)
	e.GET("/ws", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}, mw.Handle)

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ws?access_token=secret", nil))

	assert.NotContains(t, buf.String(), "secret")
}
