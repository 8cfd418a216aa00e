// Package wire provides dependency injection for the dispatchiq application.
// It creates singleton services with lazy initialization.
package wire

import (
	"context"
	"log"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/example/dispatchiq/internal/adapters/filesystem"
	"github.com/example/dispatchiq/internal/adapters/sqlite"
	"github.com/example/dispatchiq/internal/app"
	"github.com/example/dispatchiq/internal/config"
	"github.com/example/dispatchiq/internal/db"
	"github.com/example/dispatchiq/internal/logging"
	"github.com/example/dispatchiq/internal/ports/primary"
	"github.com/example/dispatchiq/internal/registry"
)

var (
	cfg              config.Config
	logger           *zap.Logger
	orderService     primary.OrderService
	inventoryService primary.InventoryService
	queryService     primary.QueryService
	snapshotService  primary.SnapshotService
	once             sync.Once
)

// OrderService returns the singleton OrderService instance.
func OrderService() primary.OrderService {
	once.Do(initServices)
	return orderService
}

// InventoryService returns the singleton InventoryService instance.
func InventoryService() primary.InventoryService {
	once.Do(initServices)
	return inventoryService
}

// QueryService returns the singleton QueryService instance.
func QueryService() primary.QueryService {
	once.Do(initServices)
	return queryService
}

// SnapshotService returns the singleton SnapshotService instance.
func SnapshotService() primary.SnapshotService {
	once.Do(initServices)
	return snapshotService
}

// Logger returns the singleton application logger.
func Logger() *zap.Logger {
	once.Do(initServices)
	return logger
}

// Config returns the resolved configuration.
func Config() config.Config {
	once.Do(initServices)
	return cfg
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	var err error
	cfg, err = config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err = logging.New(cfg.Log)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}

	// Registry document store; first run bootstraps from the seed.
	store := filesystem.NewRegistryStore(cfg.RegistryPath())
	if !store.Exists() {
		seeded := registry.Seed(time.Now())
		seeded.Settings.Org = cfg.Org.Name
		seeded.Settings.Currency = cfg.Org.Currency
		if err := store.Save(context.Background(), seeded); err != nil {
			log.Fatalf("failed to bootstrap registry: %v", err)
		}
		logger.Info("registry bootstrapped from seed",
			zap.String("path", store.Path()))
	}

	// Snapshot history database
	database, err := db.Open(cfg.DatabasePath())
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}
	archive := sqlite.NewSnapshotArchive(database)

	var orderOpts []app.OrderServiceOption
	if cfg.OrderIDs == "random" {
		orderOpts = append(orderOpts, app.WithRandomOrderIDs())
	}

	orderService = app.NewOrderService(store, archive, logger, orderOpts...)
	inventoryService = app.NewInventoryService(store, archive, logger)
	queryService = app.NewQueryService(store)
	snapshotService = app.NewSnapshotService(store, archive, logger)
}
