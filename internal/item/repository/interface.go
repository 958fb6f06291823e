package repository

import (
	"context"

	"github.com/google/uuid"

	"catalog-service/internal/item"
)

// Repository is the composed interface for the item data store.
type Repository interface {
	ItemRepository

	// Ping reports whether the backing store is reachable.
	Ping(ctx context.Context) error
}

// ItemRepository defines all data access methods for the Item entity.
type ItemRepository interface {
	CreateItem(ctx context.Context, opt CreateItemOptions) (item.Item, error)
	GetOneItem(ctx context.Context, opt GetOneItemOptions) (item.Item, error)
	ListItems(ctx context.Context, opt ListItemsOptions) ([]item.Item, error)
	UpdateItem(ctx context.Context, opt UpdateItemOptions) (item.Item, error)
	DeleteItem(ctx context.Context, id uuid.UUID) error
}
