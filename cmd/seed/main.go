package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/funfungun/1-seven-0/internal/config"
	"github.com/funfungun/1-seven-0/internal/services"
	"github.com/funfungun/1-seven-0/pkg/database"
	"github.com/funfungun/1-seven-0/pkg/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	logging.Setup(cfg.LogLevel)

	db, err := database.NewDatabase(cfg.DatabaseURL, cfg.DBLogLevel)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	creds, err := services.NewCredentials(cfg.PasswordScheme)
	if err != nil {
		slog.Error("invalid password scheme", "error", err)
		os.Exit(1)
	}

	if err := db.Seed(context.Background(), creds.Hash); err != nil {
		slog.Error("seed failed", "error", err)
		os.Exit(1)
	}
	slog.Info("seed complete", "database", database.RedactDSN(cfg.DatabaseURL))
}
