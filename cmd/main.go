package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"learnql/config"
	"learnql/pkg/logger"

	"github.com/spf13/cobra"
)

var envFile string

var rootCmd = &cobra.Command{
	Use:           "learnql",
	Short:         "learnql serves the learning analytics GraphQL API",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		return config.LoadEnv(envFile)
	},
}

func main() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "file with KEY=VALUE settings; the environment wins")
	rootCmd.AddCommand(serveCmd, migrateCmd)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		slog.Error("learnql failed", "error", err)
		cancel()
		os.Exit(1)
	}
}

// setupLogger builds the process logger from LOG_FORMAT and LOG_LEVEL and
// makes it the default.
func setupLogger(ctx context.Context, cfg config.LogConfig) context.Context {
	log := logger.New(os.Stdout, cfg.Format, cfg.Level)
	slog.SetDefault(log)
	return logger.WithLogger(ctx, log)
}
