package cmd

import (
	"fmt"

	"wedding-planner/core/config"
	"wedding-planner/core/database"
	"wedding-planner/core/logger"
	"wedding-planner/core/storage"
	"wedding-planner/feature/seating"
	"wedding-planner/feature/seating/store"

	"go.uber.org/zap"
)

// buildService wires the seating service for CLI commands: config,
// logger, database store, and the optional export client.
func buildService() (*seating.Service, *zap.Logger, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	zap.ReplaceGlobals(l)

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	gormStore := store.NewGorm(db)
	if err := gormStore.Migrate(); err != nil {
		return nil, nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	// Exports are best effort; the CLI still works without a reachable
	// object store.
	var client storage.Client
	if c, err := storage.NewClient(cfg.Storage); err != nil {
		l.Warn("Optional storage client failed", zap.Error(err))
	} else {
		client = c
	}

	return seating.NewService(gormStore, client, cfg.Storage.Bucket, l, cfg.Seating), l, nil
}
