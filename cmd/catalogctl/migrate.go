package main

import (
	"context"

	"platter/internal/infra/persistence/postgres"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the catalog and order tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWithDependencies(cmd.Context(), func(ctx context.Context, deps dependencies) error {
			if err := postgres.Migrate(ctx, deps.DB); err != nil {
				return err
			}
			deps.Logger.Info("Schema migrated")

			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
