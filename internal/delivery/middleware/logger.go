package middleware

import (
	"log/slog"
	"strings"
	"time"

	"dcars/config"
	deliverycontext "dcars/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// LoggerMiddleware writes one access log line per request.
type LoggerMiddleware struct {
	logger *slog.Logger
	debug  bool
}

// NewLoggerMiddleware creates a new logger middleware
func NewLoggerMiddleware(logger *slog.Logger, config *config.Config) *LoggerMiddleware {
	return &LoggerMiddleware{
		logger: logger,
		debug:  config.Env.Debug,
	}
}

// Handle logs the request after the handler ran. Health checks are only logged in debug mode.
func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)
		if err != nil {
			// Let the error handler write the response so the logged status is final.
			c.Error(err)
		}

		if m.debug || !isHealthCheck(c.Path()) {
			m.logRequest(c, start, err)
		}

		return nil
	}
}

func isHealthCheck(path string) bool {
	return path == "/health" || strings.HasPrefix(path, "/health/")
}

func (m *LoggerMiddleware) logRequest(c echo.Context, start time.Time, err error) {
	req := c.Request()
	res := c.Response()
	latency := time.Since(start)

	fields := []slog.Attr{
		slog.String("request_id", deliverycontext.GetRequestID(c)),
		slog.String("method", req.Method),
		slog.String("uri", req.URL.Path),
		slog.Int("status", res.Status),
		slog.Duration("latency", latency),
		slog.String("remote_ip", c.RealIP()),
	}

	if profile := deliverycontext.GetProfile(c); profile != nil {
		fields = append(fields, slog.String("user_id", profile.ID.String()))
	}

	if m.debug {
		fields = append(fields, slog.String("user_agent", req.UserAgent()))
		// Websocket upgrades carry the access token in the query.
		if len(req.URL.RawQuery) > 0 && !req.URL.Query().Has("access_token") {
			fields = append(fields, slog.String("query", req.URL.RawQuery))
		}
	}

	if err != nil {
		fields = append(fields, slog.Any("error", err))
	}

	logLevel := slog.LevelInfo
	if res.Status >= 400 {
		logLevel = slog.LevelWarn
	}
	if res.Status >= 500 {
		logLevel = slog.LevelError
	}

	m.logger.LogAttrs(req.Context(), logLevel, "HTTP Request", fields...)
}
