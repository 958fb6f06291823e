package memory

import (
	"context"
	"slices"

	"github.com/google/uuid"

	"catalog-service/internal/item"
	repo "catalog-service/internal/item/repository"
)

// CreateItem stores a new Item.
func (r *implRepository) CreateItem(ctx context.Context, opt repo.CreateItemOptions) (item.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[opt.ID]; ok {
		r.l.Warnf(ctx, "memory.CreateItem: duplicate id %s", opt.ID)
		return item.Item{}, repo.ErrDuplicateID
	}

	it := item.Item{ID: opt.ID, Name: opt.Name, Price: opt.Price, Created: opt.Created}
	r.items[it.ID] = it
	r.order = append(r.order, it.ID)
	return it, nil
}

// GetOneItem returns a zero-value Item when not found.
func (r *implRepository) GetOneItem(ctx context.Context, opt repo.GetOneItemOptions) (item.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.items[opt.ID], nil
}

// ListItems returns items in creation order.
func (r *implRepository) ListItems(ctx context.Context, opt repo.ListItemsOptions) ([]item.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := len(r.order)
	if opt.Limit > 0 && opt.Limit < n {
		n = opt.Limit
	}
	items := make([]item.Item, 0, n)
	for _, id := range r.order[:n] {
		items = append(items, r.items[id])
	}
	return items, nil
}

// UpdateItem replaces name and price of an existing Item.
func (r *implRepository) UpdateItem(ctx context.Context, opt repo.UpdateItemOptions) (item.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.items[opt.ID]
	if !ok {
		return item.Item{}, repo.ErrNotFound
	}
	updated := existing.WithDetails(opt.Name, opt.Price)
	r.items[opt.ID] = updated
	return updated, nil
}

// DeleteItem removes an Item by ID.
func (r *implRepository) DeleteItem(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return repo.ErrNotFound
	}
	delete(r.items, id)
	r.order = slices.DeleteFunc(r.order, func(v uuid.UUID) bool { return v == id })
	return nil
}

func (r *implRepository) Ping(ctx context.Context) error {
	return ctx.Err()
}
