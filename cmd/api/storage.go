package main

import (
	"context"
	"fmt"

	"catalog-service/config"
	mongoConn "catalog-service/config/mongo"
	natsConn "catalog-service/config/nats"
	"catalog-service/config/postgre"
	redisConn "catalog-service/config/redis"
	sqliteConn "catalog-service/config/sqlite"
	"catalog-service/internal/item/event"
	"catalog-service/internal/item/event/natsevent"
	"catalog-service/internal/item/repository"
	"catalog-service/internal/item/repository/memory"
	"catalog-service/internal/item/repository/mongodb"
	postgreRepo "catalog-service/internal/item/repository/postgre"
	"catalog-service/internal/item/repository/rediscache"
	sqliteRepo "catalog-service/internal/item/repository/sqlite"
	"catalog-service/pkg/log"
)

// closer releases a connection opened during startup.
type closer func(ctx context.Context)

// openItemRepository builds the store selected by storage.driver, wrapped
// with the redis cache when enabled.
func openItemRepository(ctx context.Context, cfg *config.Config, l log.Logger) (repository.Repository, []closer, error) {
	var (
		repo    repository.Repository
		closers []closer
	)

	switch cfg.Storage.Driver {
	case config.DriverMemory:
		repo = memory.New(l)

	case config.DriverPostgres:
		db, err := postgre.Connect(ctx, cfg.Postgres)
		if err != nil {
			return nil, nil, err
		}
		closers = append(closers, func(ctx context.Context) { _ = postgre.Disconnect(ctx, db) })
		if err := postgreRepo.EnsureSchema(ctx, db); err != nil {
			return nil, closers, err
		}
		repo = postgreRepo.New(db, l)

	case config.DriverSQLite:
		db, err := sqliteConn.Open(ctx, cfg.SQLite)
		if err != nil {
			return nil, nil, err
		}
		closers = append(closers, func(context.Context) { _ = db.Close() })
		if err := sqliteRepo.EnsureSchema(ctx, db); err != nil {
			return nil, closers, err
		}
		repo = sqliteRepo.New(db, l)

	case config.DriverMongo:
		db, err := mongoConn.Connect(ctx, cfg.Mongo)
		if err != nil {
			return nil, nil, err
		}
		closers = append(closers, func(ctx context.Context) { _ = mongoConn.Disconnect(ctx, db) })
		repo = mongodb.New(db, l)

	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
	l.Infof(ctx, "Item store: %s", cfg.Storage.Driver)

	if !cfg.Redis.Enabled {
		return repo, closers, nil
	}

	rdb, err := redisConn.Connect(ctx, cfg.Redis)
	if err != nil {
		return nil, closers, err
	}
	closers = append(closers, func(context.Context) { _ = redisConn.Disconnect(rdb) })
	l.Infof(ctx, "Redis item cache enabled (ttl %s)", cfg.Redis.TTL)

	return rediscache.New(repo, rdb, cfg.Redis.TTL, l), closers, nil
}

// openEventPublisher connects to NATS when events are enabled.
func openEventPublisher(ctx context.Context, cfg *config.Config, l log.Logger) (event.Publisher, []closer, error) {
	if !cfg.Events.Enabled {
		l.Info(ctx, "Item events disabled")
		return event.NewNoopPublisher(), nil, nil
	}

	nc, js, err := natsConn.Connect(cfg.Events, "catalog-api")
	if err != nil {
		return nil, nil, err
	}
	closers := []closer{func(context.Context) { _ = nc.Drain() }}

	if err := natsevent.EnsureStream(js, cfg.Events.Stream, cfg.Events.SubjectPrefix); err != nil {
		return nil, closers, err
	}
	l.Infof(ctx, "Item events published to %s.item.*", cfg.Events.SubjectPrefix)

	return natsevent.NewPublisher(js, cfg.Events.SubjectPrefix, l), closers, nil
}

func closeAll(ctx context.Context, closers []closer) {
	for i := len(closers) - 1; i >= 0; i-- {
		closers[i](ctx)
	}
}
