package rediscache

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"catalog-service/internal/item/repository"
	"catalog-service/pkg/log"
)

const (
	keyPrefix = "item:"

	// tombstone marks a key written by an update or delete. Fills use SET NX,
	// so a read that started before the write cannot put the old row back.
	tombstone    = "tombstone"
	tombstoneTTL = 30 * time.Second
)

// Client is the subset of *redis.Client used by the cache.
type Client interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
}

type implRepository struct {
	next repository.Repository
	rdb  Client
	ttl  time.Duration
	l    log.Logger
}

// New wraps next with a read-through cache for single-item reads.
// Cache failures are logged and never fail the call.
func New(next repository.Repository, rdb Client, ttl time.Duration, l log.Logger) *implRepository {
	if next == nil || rdb == nil {
		panic("item/repository/rediscache: next and rdb are required")
	}
	return &implRepository{next: next, rdb: rdb, ttl: ttl, l: l}
}

func key(id uuid.UUID) string {
	return keyPrefix + id.String()
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("item/repository/rediscache.%s", method)
}
