package usecase

import (
	"context"
	"time"

	"catalog-service/internal/item"
	"catalog-service/internal/item/event"
)

// newItem builds a fresh Item with a generated id and creation time.
// Created is kept at millisecond precision so every store returns it unchanged.
func (uc *implUseCase) newItem(input item.CreateItemInput) item.Item {
	return item.Item{
		ID:      uc.newID(),
		Name:    input.Name,
		Price:   input.Price,
		Created: uc.now().UTC().Truncate(time.Millisecond),
	}
}

// applyUpdate returns existing with the mutable fields replaced.
func (uc *implUseCase) applyUpdate(existing item.Item, input item.UpdateItemInput) item.Item {
	return existing.WithDetails(input.Name, input.Price)
}

// publish emits evt for it. Failures are logged and never returned.
func (uc *implUseCase) publish(ctx context.Context, typ event.Type, it item.Item) {
	evt := event.Event{Type: typ, Item: it, OccurredAt: uc.now().UTC()}
	if err := uc.pub.Publish(ctx, evt); err != nil {
		uc.l.Warnf(ctx, "uc.publish %s %s: %v", typ, it.ID, err)
	}
}
