package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"catalog-service/internal/item"
	repo "catalog-service/internal/item/repository"
)

type cachedItem struct {
	ID      uuid.UUID       `json:"id"`
	Name    string          `json:"name"`
	Price   decimal.Decimal `json:"price"`
	Created time.Time       `json:"created"`
}

func (r *implRepository) CreateItem(ctx context.Context, opt repo.CreateItemOptions) (item.Item, error) {
	return r.next.CreateItem(ctx, opt)
}

func (r *implRepository) ListItems(ctx context.Context, opt repo.ListItemsOptions) ([]item.Item, error) {
	return r.next.ListItems(ctx, opt)
}

// GetOneItem serves from cache when possible and fills it on a miss.
// Absent items are not cached, and a tombstoned key is not refilled until
// the tombstone expires.
func (r *implRepository) GetOneItem(ctx context.Context, opt repo.GetOneItemOptions) (item.Item, error) {
	fill := false
	raw, err := r.rdb.Get(ctx, key(opt.ID)).Bytes()
	switch {
	case err == nil && string(raw) == tombstone:
	case err == nil:
		var c cachedItem
		if err := json.Unmarshal(raw, &c); err == nil {
			return item.Item{ID: c.ID, Name: c.Name, Price: c.Price, Created: c.Created.UTC()}, nil
		}
		r.l.Warnf(ctx, "%s: ignoring undecodable entry for %s", r.dsn("GetOneItem"), opt.ID)
	case errors.Is(err, redis.Nil):
		fill = true
	default:
		r.l.Warnf(ctx, "%s get: %v", r.dsn("GetOneItem"), err)
	}

	it, err := r.next.GetOneItem(ctx, opt)
	if err != nil || it.IsZero() || !fill {
		return it, err
	}
	r.fill(ctx, it)
	return it, nil
}

func (r *implRepository) UpdateItem(ctx context.Context, opt repo.UpdateItemOptions) (item.Item, error) {
	it, err := r.next.UpdateItem(ctx, opt)
	if err == nil || errors.Is(err, repo.ErrNotFound) {
		r.invalidate(ctx, opt.ID)
	}
	return it, err
}

func (r *implRepository) DeleteItem(ctx context.Context, id uuid.UUID) error {
	err := r.next.DeleteItem(ctx, id)
	if err == nil || errors.Is(err, repo.ErrNotFound) {
		r.invalidate(ctx, id)
	}
	return err
}

func (r *implRepository) Ping(ctx context.Context) error {
	return r.next.Ping(ctx)
}

// Warm writes items into the cache and returns how many were stored.
// Keys that are already cached or tombstoned are left alone.
func (r *implRepository) Warm(ctx context.Context, items []item.Item) int {
	stored := 0
	for _, it := range items {
		if r.fill(ctx, it) {
			stored++
		}
	}
	return stored
}

// fill stores it only if the key is empty.
func (r *implRepository) fill(ctx context.Context, it item.Item) bool {
	data, err := json.Marshal(cachedItem{ID: it.ID, Name: it.Name, Price: it.Price, Created: it.Created})
	if err != nil {
		r.l.Warnf(ctx, "%s marshal: %v", r.dsn("fill"), err)
		return false
	}
	ok, err := r.rdb.SetNX(ctx, key(it.ID), data, r.ttl).Result()
	if err != nil {
		r.l.Warnf(ctx, "%s: %v", r.dsn("fill"), err)
		return false
	}
	return ok
}

func (r *implRepository) invalidate(ctx context.Context, id uuid.UUID) {
	if err := r.rdb.Set(ctx, key(id), tombstone, tombstoneTTL).Err(); err != nil {
		r.l.Warnf(ctx, "%s: %v", r.dsn("invalidate"), err)
	}
}
