package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"catalog-service/config"
)

// Connect creates a go-redis client and verifies it with a ping.
func Connect(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.Addr, err)
	}
	return rdb, nil
}

// Disconnect closes the client.
func Disconnect(rdb *redis.Client) error {
	if rdb == nil {
		return nil
	}
	return rdb.Close()
}
