package repository

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateItemOptions carries a fully formed Item; the caller assigns ID and Created.
type CreateItemOptions struct {
	ID      uuid.UUID
	Name    string
	Price   decimal.Decimal
	Created time.Time
}

// GetOneItemOptions selects a single Item.
type GetOneItemOptions struct {
	ID uuid.UUID
}

// ListItemsOptions holds listing parameters. The zero value lists everything.
type ListItemsOptions struct {
	Limit int
}

// UpdateItemOptions replaces the mutable fields of the Item with ID.
type UpdateItemOptions struct {
	ID    uuid.UUID
	Name  string
	Price decimal.Decimal
}
