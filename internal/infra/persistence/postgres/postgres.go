// Package postgres stores the marketplace (profiles, listings, chat, payments and
// plans) in PostgreSQL through GORM, with reads spread over replicas by dbresolver.
package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"dcars/config"
	"dcars/internal/domain/lifecycle"
	"dcars/internal/errors"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the primary and replica pools and ties their lifetime to the app.
func New(params Params) (*gorm.DB, error) {
	if params.Config.Postgres == nil {
		return nil, errors.New("postgres section missing from config")
	}

	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	db = db.Session(&gorm.Session{
		// Multi-step writes go through TransactionManager.Execute.
		SkipDefaultTransaction: true,
		Logger:                 newQueryLogger(params.Logger, params.Config),
	})
	// Driver errors are mapped to gorm.ErrDuplicatedKey and friends, which the repositories match on.
	db.Config.TranslateError = true

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	monitor := newPoolMonitor(params.Logger, sqlDB, params.Config.Database)
	monitorCtx, cancelMonitor := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}

			params.Logger.Info("Postgres connected",
				slog.String("database", params.Config.Postgres.Database),
				slog.Int("replicas", len(params.Config.Postgres.Replicas)),
				slog.Int("max_open_conns", sqlDB.Stats().MaxOpenConnections),
			)

			go monitor.run(monitorCtx)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelMonitor()

			return sqlDB.Close()
		},
	})

	return db, nil
}

// poolMonitor reports callers that had to wait for a free connection, which
// shows up first during listing search bursts and webhook storms.
type poolMonitor struct {
	logger   *slog.Logger
	stats    func() sql.DBStats
	interval time.Duration
	warnWait time.Duration
}

func newPoolMonitor(logger *slog.Logger, sqlDB *sql.DB, cfg *config.DatabaseConfig) *poolMonitor {
	m := &poolMonitor{logger: logger, stats: sqlDB.Stats}
	if cfg != nil {
		m.interval = cfg.PoolMonitorInterval
		m.warnWait = cfg.PoolWaitWarn
	}

	return m
}

func (m *poolMonitor) run(ctx context.Context) {
	if m.logger == nil || m.interval <= 0 {
		return
	}

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	prev := m.stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := m.stats()
			m.report(ctx, prev, cur)
			prev = cur
		}
	}
}

// report logs the waits between two samples; warn once the added wait time reaches warnWait.
func (m *poolMonitor) report(ctx context.Context, prev, cur sql.DBStats) {
	waits := cur.WaitCount - prev.WaitCount
	if waits <= 0 {
		return
	}

	waited := cur.WaitDuration - prev.WaitDuration
	level, msg := slog.LevelDebug, "Postgres pool wait observed"
	if m.warnWait > 0 && waited >= m.warnWait {
		level, msg = slog.LevelWarn, "Postgres pool saturated"
	}

	m.logger.LogAttrs(ctx, level, msg,
		slog.Int64("waits", waits),
		slog.Duration("waited", waited),
		slog.Duration("avg_wait", waited/time.Duration(waits)),
		slog.Int("in_use", cur.InUse),
		slog.Int("idle", cur.Idle),
		slog.Int("max_open", cur.MaxOpenConnections),
	)
}
