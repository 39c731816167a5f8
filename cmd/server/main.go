package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/exp/slog"

	"finbox/internal/app/server/api"
	"finbox/internal/app/server/cron"
	"finbox/internal/app/server/ws"
	"finbox/internal/config"
	"finbox/internal/domain/backup"
	"finbox/internal/domain/catalog"
	"finbox/internal/domain/message"
	"finbox/internal/domain/session"
	"finbox/internal/infrastructure/storage/postgres"
	"finbox/internal/utils/logger"
)

func main() {
	cfg := config.MustLoad()
	log := logger.New(cfg.Env)

	if err := run(cfg, log); err != nil {
		log.Error("server stopped", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *slog.Logger) error {
	storage, err := postgres.New(cfg)
	if err != nil {
		return err
	}
	defer storage.Close()

	// Каталог сервисов должен существовать до первой регистрации.
	catalogService := catalog.NewCatalog(postgres.NewCatalogRepository(storage, log), log)
	if err := catalogService.Seed(context.Background()); err != nil {
		return err
	}

	mux := api.New(storage, cfg, log)

	sessionRepo := postgres.NewSessionRepository(storage, log)
	ttl := time.Duration(cfg.Auth.TokenTTLHours) * time.Hour
	sessionService := session.NewService(sessionRepo, log, cfg.Auth.Secret, ttl)
	messageService := message.NewService(postgres.NewMessageRepository(storage, log), log)

	hub := ws.NewHub(log)
	mux.Handle("/ws", ws.NewHandler(hub, sessionService, messageService, log))

	backupService := backup.NewService(postgres.NewBackupRepository(storage, log), log)
	scheduler := cron.New(backupService, sessionRepo, cfg.Retention.Days, log)
	if err := scheduler.Start(); err != nil {
		return err
	}
	defer scheduler.Stop()

	srv := &http.Server{
		Addr:    cfg.Server.RunAddress,
		Handler: mux,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server started", slog.String("address", cfg.Server.RunAddress))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		log.Info("shutting down", slog.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}
