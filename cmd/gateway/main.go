package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/paylinkbr/paylink-core/api/routes"
	"github.com/paylinkbr/paylink-core/internal/backend"
	"github.com/paylinkbr/paylink-core/internal/fees"
	"github.com/paylinkbr/paylink-core/internal/gateway"
	"github.com/paylinkbr/paylink-core/internal/history"
	"github.com/paylinkbr/paylink-core/internal/panel"
	"github.com/paylinkbr/paylink-core/internal/session"
	"github.com/paylinkbr/paylink-core/pkg/config"
	"github.com/paylinkbr/paylink-core/pkg/logger"
	"github.com/paylinkbr/paylink-core/pkg/metrics"
	"github.com/paylinkbr/paylink-core/pkg/storage"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "gateway"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "gateway",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	store, err := openStorage(context.Background(), cfg, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to open device storage", err)
		os.Exit(1)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logg.Error(context.Background(), "error closing device storage", err)
		}
	}()

	sessions := session.NewStore(store, logg)
	sessions.Bootstrap(context.Background())

	registry := prometheus.NewRegistry()
	authMetrics := metrics.NewAuthMetrics(registry)

	client := backend.NewClient(cfg.API, sessions)

	authService, err := gateway.NewService(gateway.ServiceParams{
		API:     client,
		Session: sessions,
		Cache:   store,
		Logger:  logg,
		Metrics: authMetrics,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create auth gateway", err)
		os.Exit(1)
	}

	panelService, err := panel.NewService(client, store, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create panel service", err)
		os.Exit(1)
	}
	feesService, err := fees.NewService(client, store, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create fees service", err)
		os.Exit(1)
	}
	historyService, err := history.NewService(client, store, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create history service", err)
		os.Exit(1)
	}

	addr := ":" + cfg.App.Port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting device gateway")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(cfg, logg, routes.Services{
			Sessions: sessions,
			Auth:     authService,
			Panel:    panelService,
			Fees:     feesService,
			History:  historyService,
			Backend:  client,
		}, authMetrics, registry),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "gateway stopped unexpectedly", err)
		os.Exit(1)
	}
}

func openStorage(ctx context.Context, cfg *config.Config, logg *logger.Logger) (storage.Store, error) {
	switch cfg.Storage.Driver {
	case config.StorageDriverRedis:
		return storage.NewRedis(ctx, cfg.Redis, logg)
	case config.StorageDriverMemory:
		return storage.NewMemory(), nil
	default:
		return storage.NewSQLite(ctx, cfg.Storage, logg)
	}
}
