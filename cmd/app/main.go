package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"taxi/cmd"
	"taxi/internal/adapters/out/postgres/migrations"

	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Service stopped with error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := cmd.LoadConfig()
	if err != nil {
		return err
	}

	logger := cmd.NewLogger(cfg, os.Stdout)
	slog.SetDefault(logger)

	if err = migrations.Up(ctx, cfg.PostgresDSN()); err != nil {
		return err
	}

	gormDB, err := gorm.Open(gormpostgres.Open(cfg.PostgresDSN()), &gorm.Config{})
	if err != nil {
		return err
	}

	app, err := cmd.NewCompositionRoot(ctx, cfg, gormDB, logger)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := app.Close(); closeErr != nil {
			logger.Error("Failed to close connections", "error", closeErr)
		}
	}()

	jobManager, err := app.CreateJobManager()
	if err != nil {
		return err
	}
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	return startWebServer(ctx, app, cfg, logger)
}

func startWebServer(ctx context.Context, app *cmd.CompositionRoot, cfg cmd.Config, logger *slog.Logger) error {
	e, err := app.CreateRouter(ctx)
	if err != nil {
		return err
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("HTTP server listening", "port", cfg.HTTPPort)
		serverErr <- e.Start("0.0.0.0:" + cfg.HTTPPort)
	}()

	select {
	case err := <-serverErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	return e.Shutdown(shutdownCtx)
}
