package main

import (
	"learnql/config"
	"learnql/internal/app"

	"github.com/spf13/cobra"
)

var migrateOnStart bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg := config.LoadConfig()
		ctx := setupLogger(cmd.Context(), cfg.Log)

		if migrateOnStart && cfg.StorageType == config.StoragePostgres {
			if err := app.Migrate(ctx, cfg.Postgres); err != nil {
				return err
			}
		}

		a, err := app.NewApp(ctx, cfg)
		if err != nil {
			return err
		}
		return a.Run(ctx)
	},
}

func init() {
	serveCmd.Flags().BoolVar(&migrateOnStart, "migrate", false, "apply the database schema before serving")
}
