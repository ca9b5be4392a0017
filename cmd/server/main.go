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
	gormlogger "gorm.io/gorm/logger"

	appfulfillment "github.com/furcel/backend/internal/application/fulfillment"
	"github.com/furcel/backend/internal/domain/fulfillment"
	"github.com/furcel/backend/internal/domain/shared"
	"github.com/furcel/backend/internal/infrastructure/cache"
	"github.com/furcel/backend/internal/infrastructure/config"
	"github.com/furcel/backend/internal/infrastructure/logger"
	"github.com/furcel/backend/internal/infrastructure/persistence"
	"github.com/furcel/backend/internal/infrastructure/supplier"
	"github.com/furcel/backend/internal/interfaces/http/handler"
	"github.com/furcel/backend/internal/interfaces/http/middleware"
	"github.com/furcel/backend/internal/interfaces/http/router"
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
		_ = log.Sync()
	}()

	log.Info("Starting fulfillment backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
		zap.String("storage", cfg.Database.Driver),
	)

	// Initialize storage
	var (
		locationRepo fulfillment.SupplierLocationRepository
		mappingRepo  fulfillment.VariantMappingRepository
		dbPing       func() error
	)
	switch cfg.Database.Driver {
	case "postgres":
		gormLevel := gormlogger.Silent
		if cfg.Log.Level == "debug" {
			gormLevel = gormlogger.Info
		}
		db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLevel)
		if err != nil {
			log.Fatal("Failed to connect to database", zap.Error(err))
		}
		defer func() {
			if err := db.Close(); err != nil {
				log.Error("Error closing database", zap.Error(err))
			}
		}()
		if err := db.AutoMigrate(); err != nil {
			log.Fatal("Failed to migrate database schema", zap.Error(err))
		}
		log.Info("Database connected and migrated")

		locationRepo = persistence.NewGormSupplierLocationRepository(db.DB)
		mappingRepo = persistence.NewGormVariantMappingRepository(db.DB)
		dbPing = db.Ping
	default:
		log.Info("Using in-memory storage, data will not survive restarts")
		locationRepo = persistence.NewMemorySupplierLocationRepository()
		mappingRepo = persistence.NewMemoryVariantMappingRepository()
	}

	// Initialize supplier gateways from config
	registry, err := supplier.BuildRegistry(cfg.Suppliers)
	if err != nil {
		log.Fatal("Failed to build supplier registry", zap.Error(err))
	}
	for _, gw := range registry.ListGateways() {
		log.Info("Supplier gateway registered", zap.String("supplier_id", gw.SupplierID()))
	}

	// Initialize application services
	directoryService := appfulfillment.NewDirectoryService(locationRepo, mappingRepo, log)
	orchestrator := appfulfillment.NewOrchestrator(
		appfulfillment.NewPartitioner(locationRepo, mappingRepo, log),
		appfulfillment.NewDispatcher(registry, cfg.Dispatch.Timeout, log),
		appfulfillment.NewAggregator(cfg.Tracking.BaseURL, cfg.Tracking.Company, cfg.Tracking.CompanyMultiple),
		log,
	)

	// Webhook idempotency store: Redis when configured, in-memory otherwise
	var idempotencyStore shared.IdempotencyStore
	if cfg.Redis.Enabled() {
		store, err := cache.NewRedisIdempotencyStore(cache.RedisConfig{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		idempotencyStore = store
		log.Info("Redis idempotency store connected", zap.String("addr", cfg.Redis.Addr()))
	} else {
		idempotencyStore = cache.NewInMemoryIdempotencyStore()
		log.Info("Using in-memory idempotency store")
	}
	defer func() {
		if err := idempotencyStore.Close(); err != nil {
			log.Error("Error closing idempotency store", zap.Error(err))
		}
	}()

	// Set Gin mode based on environment
	if cfg.App.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))

	// Initialize HTTP handlers
	fulfillmentHandler := handler.NewFulfillmentHandler(orchestrator, directoryService, log)
	directoryHandler := handler.NewDirectoryHandler(directoryService, log)
	webhookHandler := handler.NewWebhookHandler(
		idempotencyStore,
		cfg.Webhook.IdempotencyTTL,
		log,
		middleware.WebhookVerification(cfg.Webhook.Secret, log),
	)
	healthHandler := handler.NewHealthHandler(cfg.App.Name, dbPing)

	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	r.Register(fulfillmentHandler).
		Register(directoryHandler).
		Register(webhookHandler).
		Register(healthHandler)
	r.Setup()

	// Unversioned health probe for load balancers
	engine.GET("/health", healthHandler.Health)

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
