package main

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"dcars/internal/errors"
	"dcars/internal/infra/persistence/migrations"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

func newMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
		Long: `Apply or inspect the embedded SQL migrations.

Available subcommands:
  up     - Apply every pending migration
  down   - Roll back migrations
  status - Show the current and latest schema version
  force  - Record a version and clear the dirty flag`,
	}

	var steps int
	down := &cobra.Command{
		Use:   "down",
		Short: "Roll back migrations",
		Args:  cobra.NoArgs,
		PreRunE: func(*cobra.Command, []string) error {
			if steps <= 0 {
				return errors.Errorf("--steps must be positive, got %d", steps)
			}

			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withMigrator(cmd.Context(), func(m *migrations.Migrator) error {
				return m.Down(steps)
			})
		},
	}
	down.Flags().IntVar(&steps, "steps", 1, "number of migrations to roll back")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply every pending migration",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withMigrator(cmd.Context(), func(m *migrations.Migrator) error {
					return m.Up()
				})
			},
		},
		down,
		&cobra.Command{
			Use:   "status",
			Short: "Show the current and latest schema version",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withMigrator(cmd.Context(), func(m *migrations.Migrator) error {
					status, err := m.Status()
					if err != nil {
						return err
					}

					fmt.Fprintln(cmd.OutOrStdout(), formatStatus(status))

					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "force VERSION",
			Short: "Record a version and clear the dirty flag",
			Args:  forceArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				version, _ := strconv.Atoi(args[0])

				return withMigrator(cmd.Context(), func(m *migrations.Migrator) error {
					return m.Force(version)
				})
			},
		},
	)

	return cmd
}

func forceArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.ExactArgs(1)(cmd, args); err != nil {
		return err
	}

	version, err := strconv.Atoi(args[0])
	if err != nil || version < -1 {
		return errors.Errorf("VERSION must be an integer >= -1, got %q", args[0])
	}

	return nil
}

func formatStatus(status migrations.Status) string {
	if !status.Applied {
		return fmt.Sprintf("version: none, latest: %d", status.Latest)
	}

	line := fmt.Sprintf("version: %d, latest: %d", status.Version, status.Latest)
	if status.Dirty {
		line += " (dirty)"
	}
	if status.Version < status.Latest {
		line += fmt.Sprintf(", %d pending", status.Latest-status.Version)
	}

	return line
}

func withMigrator(ctx context.Context, fn func(m *migrations.Migrator) error) error {
	var (
		db     *gorm.DB
		logger *slog.Logger
	)

	return withApp(ctx, []any{&db, &logger}, func(context.Context) error {
		sqlDB, err := db.DB()
		if err != nil {
			return errors.Wrap(err, "failed to get sql.DB")
		}

		m, err := migrations.NewMigrator(sqlDB, logger)
		if err != nil {
			return err
		}
		defer m.Close()

		return fn(m)
	})
}
