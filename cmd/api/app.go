package main

import (
	"context"
	"fmt"
	"log"

	coreport "github.com/leoandrade/payment-api/internal/domain/port/core"
	"github.com/leoandrade/payment-api/internal/infrastructure/adapter/database"
	"github.com/leoandrade/payment-api/internal/infrastructure/adapter/logger"
	"github.com/leoandrade/payment-api/internal/infrastructure/adapter/metrics"
	timeProvider "github.com/leoandrade/payment-api/internal/infrastructure/adapter/time"
	"github.com/leoandrade/payment-api/internal/infrastructure/config"
)

// application holds the infrastructure shared by every command
type application struct {
	cfg       *config.Config
	logger    coreport.Logger
	clock     coreport.TimeProvider
	metrics   *metrics.Metrics
	dbManager *database.Manager
}

// bootstrap loads and validates configuration, builds the logger and connects to the database
func bootstrap(ctx context.Context) (*application, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	warnings, err := validateConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	appLogger := logger.NewZapLoggerWithOptions(logger.Options{
		Production: cfg.Environment == config.Production,
		Format:     cfg.Logger.Format,
		Level:      cfg.Logger.Level,
		CallerInfo: cfg.Logger.CallerInfo,
	})
	for _, warning := range warnings {
		appLogger.Warn("Potential issue in production configuration", map[string]any{
			"warning": warning,
		})
	}

	app := &application{
		cfg:    cfg,
		logger: appLogger,
		clock:  timeProvider.NewRealTimeProvider(),
	}

	var observers []database.PoolObserver
	if cfg.Metrics.Enabled {
		app.metrics = metrics.New()
		observers = append(observers, app.metrics)
	}

	app.dbManager = database.NewManager(database.FromAppConfig(cfg), appLogger, app.clock, observers...)
	if _, err := app.dbManager.Connect(ctx); err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		return nil, err
	}

	return app, nil
}

// close releases the database and flushes buffered log entries
func (a *application) close() {
	if err := a.dbManager.Close(); err != nil {
		a.logger.Error("Failed to close database", map[string]any{
			"error": err.Error(),
		})
	}
	if err := a.logger.Flush(); err != nil {
		// Syncing a terminal stdout fails on some platforms
		log.Printf("logger flush: %v", err)
	}
}

// migrate brings the schema up to date
func (a *application) migrate(ctx context.Context) error {
	if err := a.dbManager.MigrationManager().MigrateAll(ctx); err != nil {
		a.logger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		return err
	}
	return nil
}
