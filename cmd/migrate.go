package main

import (
	"learnql/config"
	"learnql/internal/app"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the postgres tables",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := setupLogger(cmd.Context(), config.LoadLog())
		return app.Migrate(ctx, config.LoadPostgres())
	},
}
