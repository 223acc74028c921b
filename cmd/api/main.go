package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/helpdesk-dashboard/internal/api/http"
	"github.com/spec-kit/helpdesk-dashboard/internal/api/http/handlers"
	"github.com/spec-kit/helpdesk-dashboard/internal/auth"
	"github.com/spec-kit/helpdesk-dashboard/internal/config"
	"github.com/spec-kit/helpdesk-dashboard/internal/events"
	"github.com/spec-kit/helpdesk-dashboard/internal/export"
	"github.com/spec-kit/helpdesk-dashboard/internal/observability"
	"github.com/spec-kit/helpdesk-dashboard/internal/service"
	"github.com/spec-kit/helpdesk-dashboard/internal/store"
	"github.com/spec-kit/helpdesk-dashboard/internal/upstream"
	"github.com/spec-kit/helpdesk-dashboard/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	kv, closeStore, err := openStore(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("failed to open blob store", zap.Error(err))
	}
	defer closeStore()

	catalog, err := export.LoadCatalog(cfg.Export.ColumnsPath)
	if err != nil {
		logger.Fatal("failed to load export column catalog", zap.Error(err))
	}

	metrics := observability.NewMetrics()
	dispatcher := events.NewInMemoryDispatcher()
	service.NewActivityService(logger, metrics).RegisterHandlers(dispatcher)

	client := upstream.New(cfg.Upstream, logger)
	readMarks := service.NewReadMarkService(kv, logger)
	viewService := service.NewViewService(service.ViewDependencies{
		Source:     client,
		ReadMarks:  readMarks,
		Dispatcher: dispatcher,
		Logger:     logger,
		StaleAfter: cfg.Refresh.StaleAfter(),
	})
	presetService := service.NewPresetService(kv, dispatcher, logger)
	exportService := service.NewExportService(viewService, catalog, dispatcher, logger, cfg.Export.MaxRows)

	refreshCron, err := worker.StartRefreshWorker(cfg.Refresh.CronSpec, viewService, logger)
	if err != nil {
		logger.Fatal("failed to start refresh worker", zap.Error(err))
	}
	defer refreshCron.Stop()

	authMiddleware := auth.NewAuthMiddleware(auth.NewTokenManager(cfg.Auth.JWTSecret))

	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())
	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(kv),
		Tickets:        handlers.NewTicketsHandler(viewService, readMarks),
		Charts:         handlers.NewChartsHandler(viewService),
		Lookups:        handlers.NewLookupsHandler(viewService),
		Presets:        handlers.NewPresetsHandler(presetService),
		Export:         handlers.NewExportHandler(exportService),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

// openStore selects the blob-store backend: Postgres when a DSN is set,
// Redis otherwise.
func openStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (store.KV, func(), error) {
	if cfg.Postgres.DSN != "" {
		pg, err := store.NewPostgres(ctx, cfg.Postgres, logger)
		if err != nil {
			return nil, nil, err
		}
		return pg, pg.Close, nil
	}
	redis := store.NewRedis(cfg.Redis, logger)
	return redis, redis.Close, nil
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
