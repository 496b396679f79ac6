package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	orderingapp "github.com/commerce/fulfillsync/internal/application/ordering"
	syncapp "github.com/commerce/fulfillsync/internal/application/sync"
	"github.com/commerce/fulfillsync/internal/infrastructure/cache"
	"github.com/commerce/fulfillsync/internal/infrastructure/config"
	"github.com/commerce/fulfillsync/internal/infrastructure/event"
	"github.com/commerce/fulfillsync/internal/infrastructure/logger"
	"github.com/commerce/fulfillsync/internal/infrastructure/persistence"
	"github.com/commerce/fulfillsync/internal/infrastructure/provider"
	"github.com/commerce/fulfillsync/internal/infrastructure/scheduler"
	"github.com/commerce/fulfillsync/internal/infrastructure/telemetry"
	httpiface "github.com/commerce/fulfillsync/internal/interfaces/http"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("starting fulfillsync",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Initialize tracing
	tracerProvider, err := telemetry.NewTracerProvider(context.Background(), telemetry.Config{
		Enabled:           cfg.Telemetry.Enabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		SamplingRatio:     cfg.Telemetry.SamplingRatio,
		ServiceName:       cfg.Telemetry.ServiceName,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		log.Fatal("failed to initialize telemetry", zap.Error(err))
	}

	// Initialize database connection
	db, err := persistence.NewDatabase(&cfg.Database)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	defer func() {
		_ = db.Close()
	}()

	if err := db.AutoMigrate(); err != nil {
		log.Fatal("failed to migrate database schema", zap.Error(err))
	}

	// Repositories
	orderRepo := persistence.NewGormOrderRepository(db.DB)
	shipmentRepo := persistence.NewGormShipmentRepository(db.DB)
	storeRepo := persistence.NewGormStoreRepository(db.DB)

	// Provider API client
	providerClient, err := provider.NewHTTPClient(&provider.ClientConfig{
		BaseURL:        cfg.Fulfillment.BaseURL,
		APIKey:         cfg.Fulfillment.APIKey,
		TimeoutSeconds: int(cfg.Fulfillment.RequestTimeout / time.Second),
		PageSize:       cfg.Fulfillment.PageSize,
	})
	if err != nil {
		log.Fatal("failed to create provider client", zap.Error(err))
	}

	// Event bus and handlers
	eventBus := event.NewInMemoryEventBus(log)
	completionHandler := syncapp.NewCompletionHandler(providerClient, storeRepo, log)
	eventBus.Subscribe(completionHandler)
	if err := eventBus.Start(context.Background()); err != nil {
		log.Fatal("failed to start event bus", zap.Error(err))
	}

	// Application services
	dispatchService := orderingapp.NewShipmentDispatchService(orderRepo, shipmentRepo, eventBus, log)
	settings := syncapp.Settings{AutomaticallyProcessOrders: cfg.Sync.AutomaticallyProcessOrders}
	exporter := syncapp.NewOrderExporter(orderRepo, storeRepo, providerClient, settings, log)
	reconciler := syncapp.NewStatusReconciler(providerClient, orderRepo, log)
	importer := syncapp.NewShipmentImporter(providerClient, storeRepo, orderRepo, shipmentRepo, dispatchService, reconciler, log)

	// Task registry and runner
	registry := scheduler.NewRegistry()
	if err := registry.Register(syncapp.NewExportOrdersTask(exporter, cfg.Sync.ExportInterval)); err != nil {
		log.Fatal("failed to register export task", zap.Error(err))
	}
	if err := registry.Register(syncapp.NewImportShipmentsTask(importer, cfg.Sync.ImportInterval)); err != nil {
		log.Fatal("failed to register import task", zap.Error(err))
	}

	var runLock scheduler.RunLock
	if cfg.Sync.RunLockEnabled {
		lock, err := cache.NewRunLock(cache.RedisConfig{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		}, cfg.Sync.RunLockTTL)
		if err != nil {
			log.Fatal("failed to connect to Redis for run lock", zap.Error(err))
		}
		defer func() {
			_ = lock.Close()
		}()
		runLock = lock
	}

	runner := scheduler.NewRunner(scheduler.RunnerConfig{
		TaskTimeout: cfg.Sync.TaskTimeout,
		HistorySize: cfg.Sync.HistorySize,
	}, registry, runLock, log)

	if cfg.Sync.Enabled {
		if err := runner.Start(context.Background()); err != nil {
			log.Fatal("failed to start task runner", zap.Error(err))
		}
	} else {
		log.Info("sync disabled, tasks will not run on schedule")
	}

	// HTTP server
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(gin.Recovery())
	if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
		log.Fatal("failed to set trusted proxies", zap.Error(err))
	}

	router := httpiface.NewRouter(engine)
	router.Register(httpiface.NewHealthHandler(db))
	router.Register(httpiface.NewTaskHandler(registry, runner))
	router.Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server forced to shutdown", zap.Error(err))
	}
	if err := runner.Stop(ctx); err != nil {
		log.Error("task runner forced to shutdown", zap.Error(err))
	}
	if err := eventBus.Stop(ctx); err != nil {
		log.Error("event bus shutdown failed", zap.Error(err))
	}
	if err := tracerProvider.Shutdown(ctx); err != nil {
		log.Error("tracer provider shutdown failed", zap.Error(err))
	}

	log.Info("exited gracefully")
}
