package logs

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"dcars/config"
	"dcars/internal/errors"

	"github.com/natefinch/lumberjack"
	"go.uber.org/fx"
)

// Params defines the parameters required for the logger
type Params struct {
	fx.In

	Lc     fx.Lifecycle `optional:"true"`
	Config *config.Config
}

// New creates and initializes slog.Logger
func New(params Params) (*slog.Logger, error) {
	// Parse log level from config
	level, err := parseLogLevel(params.Config.Env.Log.Level)
	if err != nil {
		return nil, err
	}

	writer, closer := newWriter(params.Config.Env.Log.File)
	if closer != nil && params.Lc != nil {
		params.Lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				return errors.WithStack(closer.Close())
			},
		})
	}

	return newLogger(writer, params.Config.Env.Log.Pretty, level), nil
}

func newLogger(w io.Writer, pretty bool, level slog.Level) *slog.Logger {
	if pretty {
		return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	}

	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// newWriter returns stdout, or stdout plus a rotating file when a path is configured.
func newWriter(cfg config.LogFile) (io.Writer, io.Closer) {
	if strings.TrimSpace(cfg.Path) == "" {
		return os.Stdout, nil
	}

	file := &lumberjack.Logger{
		Filename:   cfg.Path,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   cfg.Compress,
	}

	return io.MultiWriter(os.Stdout, file), file
}

// parseLogLevel converts string log level to slog.Level
func parseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, errors.Errorf("unknown log level: %s", level)
	}
}
