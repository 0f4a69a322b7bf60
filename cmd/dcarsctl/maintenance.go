package main

import (
	"context"
	"encoding/json"
	"time"

	"dcars/internal/errors"
	"dcars/internal/usecase"

	"github.com/spf13/cobra"
)

func newMaintenanceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "maintenance",
		Short: "Run housekeeping jobs",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "run",
		Short: "Expire listings and subscriptions and purge old notifications once",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var maintenanceUC usecase.MaintenanceUsecase

			return withApp(cmd.Context(), []any{&maintenanceUC}, func(ctx context.Context) error {
				report, err := maintenanceUC.RunAll(ctx, time.Now())
				if report != nil {
					enc := json.NewEncoder(cmd.OutOrStdout())
					enc.SetIndent("", "  ")
					if encErr := enc.Encode(report); encErr != nil {
						return errors.WithStack(encErr)
					}
				}

				return err
			})
		},
	})

	return cmd
}
