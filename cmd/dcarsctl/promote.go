package main

import (
	"context"
	"fmt"

	"dcars/internal/domain/entity"
	"dcars/internal/errors"
	"dcars/internal/usecase"

	"github.com/spf13/cobra"
)

func newPromoteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "promote EMAIL ROLE",
		Short: "Set the role of an existing user",
		Long: `Set the role of the user registered with EMAIL to ROLE (buyer, seller, dealer, admin).

Bootstraps the first admin, who can then manage roles over the API.`,
		Args: promoteArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var adminUC usecase.AdminUsecase

			return withApp(cmd.Context(), []any{&adminUC}, func(ctx context.Context) error {
				profile, err := adminUC.PromoteByEmail(ctx, args[0], entity.Role(args[1]))
				if err != nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(), "%s (%s) is now %s\n", profile.Email, profile.ID, profile.Role)

				return nil
			})
		},
	}
}

func promoteArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.ExactArgs(2)(cmd, args); err != nil {
		return err
	}

	if !entity.Role(args[1]).IsValid() {
		return errors.Errorf("unknown role %q", args[1])
	}

	return nil
}
