package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"teamwork-time/internal/app"
	"teamwork-time/internal/config"
)

// Usage: teamwork-time <apiKey> [month] [year]
func main() {
	// Load .env file for local development (ignore errors when absent)
	_ = godotenv.Load()

	// Config
	cfg, cfgErr := config.Load()

	// Logger. Stdout carries the report, so logs go to stderr.
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.Log.Level})
	logger := slog.New(handler).With(slog.String("run_id", uuid.NewString()))
	slog.SetDefault(logger)

	if cfgErr != nil {
		logger.Error("failed to load config", slog.String("error", cfgErr.Error()))
		return
	}

	// Context with signal handling
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, logger, cfg, os.Args[1:]); err != nil {
		// Failures are reported, not signalled through the exit code.
		logger.Error("report failed", slog.String("error", err.Error()))
		return
	}
	logger.Info("report completed")
}

func run(ctx context.Context, logger *slog.Logger, cfg config.Config, args []string) error {
	req, err := config.ParseArgs(args)
	if err != nil {
		return err
	}
	application, err := app.New(logger, cfg, req.APIKey, os.Stdout)
	if err != nil {
		return err
	}
	_, err = application.Run(ctx, req.Month, req.Year)
	return err
}
