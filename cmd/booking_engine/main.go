package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/SscSPs/cleanbook_engine/internal/core/services"
	"github.com/SscSPs/cleanbook_engine/internal/platform/config"
	"github.com/SscSPs/cleanbook_engine/internal/platform/logging"
	"github.com/SscSPs/cleanbook_engine/internal/repositories/database/pgsql"
	"github.com/SscSPs/cleanbook_engine/pkg/database"
)

func main() {
	// Bootstrap logger until the configured level is known
	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger = logging.NewLogger(os.Stderr, cfg.LogLevel, cfg.IsProduction)
	slog.SetDefault(logger)

	ctx := context.Background()
	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.ClosePgxPool(dbPool)

	repos := pgsql.NewRepositoryProvider(dbPool)
	a := &app{
		services:  services.NewServiceContainer(cfg, repos),
		txManager: repos.TxManager,
		logger:    logger,
		in:        os.Stdin,
		out:       os.Stdout,
	}

	if err := a.run(ctx, os.Args[1:]); err != nil {
		logger.Error("Command failed", slog.String("error", err.Error()))
		database.ClosePgxPool(dbPool)
		os.Exit(exitCode(err))
	}
}
