package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"catalog-service/config"
	mongoConn "catalog-service/config/mongo"
	"catalog-service/config/postgre"
	redisConn "catalog-service/config/redis"
	sqliteConn "catalog-service/config/sqlite"
	"catalog-service/internal/item/repository"
	"catalog-service/internal/item/repository/mongodb"
	postgreRepo "catalog-service/internal/item/repository/postgre"
	"catalog-service/internal/item/repository/rediscache"
	sqliteRepo "catalog-service/internal/item/repository/sqlite"
	"catalog-service/pkg/log"
)

func main() {
	limit := flag.Int("limit", 1000, "maximum number of items to load into the cache")
	flag.Parse()
	if flag.NArg() < 1 {
		fmt.Println("Usage: go run scripts/warm-cache/main.go [-limit N] <path/to/config.yaml>")
		fmt.Println("Example: go run scripts/warm-cache/main.go config/config.yaml")
		os.Exit(1)
	}

	// Load config
	os.Setenv("CONFIG_PATH", flag.Arg(0))
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize Logger
	logger := log.Init(log.ZapConfig{
		Level:        "info",
		Mode:         "development",
		ColorEnabled: true,
	})

	ctx := context.Background()

	store, err := openStore(ctx, cfg, logger)
	if err != nil {
		logger.Fatalf(ctx, "Failed to open item store: %v", err)
	}

	rdb, err := redisConn.Connect(ctx, cfg.Redis)
	if err != nil {
		logger.Fatalf(ctx, "Failed to connect to Redis: %v", err)
	}
	defer redisConn.Disconnect(rdb)

	cache := rediscache.New(store, rdb, cfg.Redis.TTL, logger)

	logger.Info(ctx, "Starting cache warm-up...")

	items, err := store.ListItems(ctx, repository.ListItemsOptions{Limit: *limit})
	if err != nil {
		logger.Fatalf(ctx, "Failed to list items: %v", err)
	}
	logger.Infof(ctx, "Found %d items to cache", len(items))

	stored := cache.Warm(ctx, items)
	logger.Infof(ctx, "Warm-up complete! %d/%d items cached for %s.", stored, len(items), cfg.Redis.TTL)
}

// openStore connects to the persistent store named by storage.driver.
// The memory driver has nothing to warm from outside the API process.
func openStore(ctx context.Context, cfg *config.Config, l log.Logger) (repository.Repository, error) {
	switch cfg.Storage.Driver {
	case config.DriverPostgres:
		db, err := postgre.Connect(ctx, cfg.Postgres)
		if err != nil {
			return nil, err
		}
		return postgreRepo.New(db, l), nil
	case config.DriverSQLite:
		db, err := sqliteConn.Open(ctx, cfg.SQLite)
		if err != nil {
			return nil, err
		}
		return sqliteRepo.New(db, l), nil
	case config.DriverMongo:
		db, err := mongoConn.Connect(ctx, cfg.Mongo)
		if err != nil {
			return nil, err
		}
		return mongodb.New(db, l), nil
	default:
		return nil, fmt.Errorf("storage driver %q cannot be warmed from a separate process", cfg.Storage.Driver)
	}
}
