// Package migrations ships the database schema as embedded SQL and applies it with golang-migrate.
package migrations

import (
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"

	"dcars/internal/errors"

	"github.com/golang-migrate/migrate/v4"
	pgmigrate "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

const migrationsTable = "schema_migrations"

//go:embed sql/*.sql
var files embed.FS

// Status describes the schema version recorded in the database.
type Status struct {
	Version uint
	Dirty   bool
	// Applied is false when no migration has run yet.
	Applied bool
	Latest  uint
}

// Source returns the embedded migration files as a golang-migrate source.
func Source() (source.Driver, error) {
	src, err := iofs.New(files, "sql")
	if err != nil {
		return nil, errors.Wrap(err, "failed to open embedded migrations")
	}

	return src, nil
}

// Migrator applies the embedded migrations to a PostgreSQL database.
type Migrator struct {
	migrate *migrate.Migrate
	logger  *slog.Logger
}

// NewMigrator builds a Migrator on top of an open connection.
func NewMigrator(db *sql.DB, logger *slog.Logger) (*Migrator, error) {
	src, err := Source()
	if err != nil {
		return nil, err
	}

	driver, err := pgmigrate.WithInstance(db, &pgmigrate.Config{MigrationsTable: migrationsTable})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create migration driver")
	}

	m, err := migrate.NewWithInstance("iofs", src, "postgres", driver)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create migrator")
	}
	m.Log = &migrateLogger{logger: logger}

	return &Migrator{migrate: m, logger: logger}, nil
}

// Up applies every pending migration.
func (m *Migrator) Up() error {
	if err := m.migrate.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			m.logger.Info("Database schema is up to date")

			return nil
		}

		return errors.Wrap(err, "failed to apply migrations")
	}

	m.logger.Info("Database migrations applied")

	return nil
}

// Down rolls back the given number of migrations.
func (m *Migrator) Down(steps int) error {
	if steps <= 0 {
		return errors.Errorf("steps must be positive, got %d", steps)
	}

	if err := m.migrate.Steps(-steps); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			return nil
		}

		return errors.Wrap(err, "failed to roll back migrations")
	}

	m.logger.Warn("Database migrations rolled back", slog.Int("steps", steps))

	return nil
}

// Force records a version without running migrations, clearing the dirty flag.
func (m *Migrator) Force(version int) error {
	if err := m.migrate.Force(version); err != nil {
		return errors.Wrapf(err, "failed to force version %d", version)
	}

	m.logger.Warn("Database migration version forced", slog.Int("version", version))

	return nil
}

// Status reports the current and latest schema versions.
func (m *Migrator) Status() (Status, error) {
	latest, err := LatestVersion()
	if err != nil {
		return Status{}, err
	}

	version, dirty, err := m.migrate.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return Status{Latest: latest}, nil
	}
	if err != nil {
		return Status{}, errors.Wrap(err, "failed to read migration version")
	}

	return Status{Version: version, Dirty: dirty, Applied: true, Latest: latest}, nil
}

// Close releases the drivers, including the *sql.DB handed to NewMigrator.
func (m *Migrator) Close() error {
	sourceErr, dbErr := m.migrate.Close()

	return errors.Join(sourceErr, dbErr)
}

// LatestVersion returns the highest version among the embedded migrations.
func LatestVersion() (uint, error) {
	src, err := Source()
	if err != nil {
		return 0, err
	}
	defer src.Close()

	version, err := src.First()
	if err != nil {
		return 0, errors.Wrap(err, "no embedded migrations")
	}

	for {
		next, err := src.Next(version)
		if errors.Is(err, fs.ErrNotExist) {
			return version, nil
		}
		if err != nil {
			return 0, errors.Wrap(err, "failed to walk migrations")
		}
		version = next
	}
}

type migrateLogger struct {
	logger *slog.Logger
}

func (l *migrateLogger) Printf(format string, v ...any) {
	l.logger.Debug(fmt.Sprintf(format, v...), slog.String("component", "migrate"))
}

func (l *migrateLogger) Verbose() bool {
	return false
}
