package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"dcars/config"
	"dcars/internal/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// maxLoggedSQL keeps listing inserts with long image arrays from flooding the log.
const maxLoggedSQL = 2048

// queryLogger routes GORM output through the service logger.
type queryLogger struct {
	logger        *slog.Logger
	level         logger.LogLevel
	slowThreshold time.Duration
}

func newQueryLogger(baseLogger *slog.Logger, cfg *config.Config) logger.Interface {
	if baseLogger == nil {
		baseLogger = slog.Default()
	}

	l := &queryLogger{
		logger: baseLogger.With(slog.String("component", "postgres")),
		level:  logger.Warn,
	}
	if cfg == nil {
		return l
	}

	if cfg.Env.Debug {
		l.level = logger.Info
	}
	if db := cfg.Database; db != nil {
		l.slowThreshold = db.SlowQueryThreshold
		if db.LogQueries {
			l.level = logger.Info
		}
	}

	return l
}

func (l *queryLogger) LogMode(level logger.LogLevel) logger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *queryLogger) Info(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Info, slog.LevelInfo, msg, args...)
}

func (l *queryLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Warn, slog.LevelWarn, msg, args...)
}

func (l *queryLogger) Error(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Error, slog.LevelError, msg, args...)
}

func (l *queryLogger) printf(ctx context.Context, threshold logger.LogLevel, level slog.Level, msg string, args ...any) {
	if l.level < threshold {
		return
	}

	l.logger.LogAttrs(ctx, level, "[Postgres] "+fmt.Sprintf(msg, args...))
}

// Trace logs failed statements, then slow ones, then everything else in info mode.
// Missing rows are not failures: every repository maps them to a domain not-found error.
func (l *queryLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level == logger.Silent {
		return
	}

	elapsed := time.Since(begin)
	switch {
	case err != nil && l.level >= logger.Error && !errors.Is(err, gorm.ErrRecordNotFound):
		attrs := append(queryAttrs(fc, elapsed), slog.Any("error", err))
		l.logger.LogAttrs(ctx, slog.LevelError, "[Postgres] Query failed", attrs...)
	case l.slowThreshold > 0 && elapsed > l.slowThreshold && l.level >= logger.Warn:
		attrs := append(queryAttrs(fc, elapsed), slog.Duration("slow_threshold", l.slowThreshold))
		l.logger.LogAttrs(ctx, slog.LevelWarn, "[Postgres] Slow query", attrs...)
	case l.level >= logger.Info:
		l.logger.LogAttrs(ctx, slog.LevelInfo, "[Postgres] Query", queryAttrs(fc, elapsed)...)
	}
}

func queryAttrs(fc func() (string, int64), elapsed time.Duration) []slog.Attr {
	sql, rows := fc()
	if len(sql) > maxLoggedSQL {
		sql = sql[:maxLoggedSQL] + "..."
	}

	return []slog.Attr{
		slog.Duration("elapsed", elapsed),
		slog.Int64("rows", rows),
		slog.String("sql", sql),
	}
}
