package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/funfungun/1-seven-0/internal/config"
	"github.com/funfungun/1-seven-0/internal/handlers"
	"github.com/funfungun/1-seven-0/internal/repository"
	"github.com/funfungun/1-seven-0/internal/services"
	"github.com/funfungun/1-seven-0/pkg/database"
	"github.com/funfungun/1-seven-0/pkg/logging"
	"github.com/funfungun/1-seven-0/pkg/metrics"
	"github.com/funfungun/1-seven-0/pkg/notify"
	"github.com/funfungun/1-seven-0/pkg/storage"
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

	imageStorage, err := storage.NewStorage(cfg.UploadPath, cfg.MaxFileSize)
	if err != nil {
		slog.Error("failed to initialize storage", "error", err)
		os.Exit(1)
	}

	creds, err := services.NewCredentials(cfg.PasswordScheme)
	if err != nil {
		slog.Error("invalid password scheme", "error", err)
		os.Exit(1)
	}

	var m *metrics.Metrics
	if cfg.MetricsEnabled {
		m = metrics.New()
	}

	dispatcher := notify.NewDispatcher(cfg.WebhookWorkers, cfg.WebhookQueueSize, cfg.WebhookTimeout, m)
	dispatcher.Start()

	store := repository.NewStore(db.DB)
	svc := handlers.Services{
		Groups:  services.NewGroupService(store, creds),
		Ranking: services.NewRankingService(store, time.Now),
		Records: services.NewRecordService(store, creds, dispatcher),
		Tags:    services.NewTagService(store),
		Images:  services.NewImageService(imageStorage, cfg.PublicBaseURL),
	}

	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := handlers.NewRouter(svc, handlers.RouterOptions{
		Metrics:   m,
		UploadDir: imageStorage.BasePath(),
	})

	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("server starting", "addr", server.Addr, "database", database.RedactDSN(cfg.DatabaseURL), "password_scheme", cfg.PasswordScheme)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown failed", "error", err)
	}
	if err := dispatcher.Stop(shutdownCtx); err != nil {
		slog.Warn("webhook queue not drained", "error", err)
	}
}
