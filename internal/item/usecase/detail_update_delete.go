package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"catalog-service/internal/item"
	"catalog-service/internal/item/event"
	repo "catalog-service/internal/item/repository"
)

// Detail retrieves a single Item by ID. Returns ErrItemNotFound when not found.
func (uc *implUseCase) Detail(ctx context.Context, id uuid.UUID) (item.DetailItemOutput, error) {
	ctx, span := uc.tracer.Start(ctx, "item.Detail")
	defer span.End()

	it, err := uc.repo.GetOneItem(ctx, repo.GetOneItemOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneItem: %v", err)
		span.RecordError(err)
		return item.DetailItemOutput{}, err
	}
	if it.IsZero() {
		return item.DetailItemOutput{}, item.ErrItemNotFound
	}
	return item.DetailItemOutput{Item: it}, nil
}

// Update replaces name and price of an existing Item. Returns ErrItemNotFound when not found.
func (uc *implUseCase) Update(ctx context.Context, input item.UpdateItemInput) (item.UpdateItemOutput, error) {
	ctx, span := uc.tracer.Start(ctx, "item.Update")
	defer span.End()

	existing, err := uc.repo.GetOneItem(ctx, repo.GetOneItemOptions{ID: input.ID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update GetOneItem: %v", err)
		span.RecordError(err)
		return item.UpdateItemOutput{}, err
	}
	if existing.IsZero() {
		return item.UpdateItemOutput{}, item.ErrItemNotFound
	}

	next := uc.applyUpdate(existing, input)
	updated, err := uc.repo.UpdateItem(ctx, repo.UpdateItemOptions{
		ID:    next.ID,
		Name:  next.Name,
		Price: next.Price,
	})
	if err != nil {
		// Removed between the read and the write.
		if errors.Is(err, repo.ErrNotFound) {
			return item.UpdateItemOutput{}, item.ErrItemNotFound
		}
		uc.l.Errorf(ctx, "uc.Update UpdateItem: %v", err)
		span.RecordError(err)
		return item.UpdateItemOutput{}, err
	}

	uc.publish(ctx, event.TypeItemUpdated, updated)
	return item.UpdateItemOutput{Item: updated}, nil
}

// Delete removes an Item by ID. Returns ErrItemNotFound when not found.
func (uc *implUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	ctx, span := uc.tracer.Start(ctx, "item.Delete")
	defer span.End()

	existing, err := uc.repo.GetOneItem(ctx, repo.GetOneItemOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete GetOneItem: %v", err)
		span.RecordError(err)
		return err
	}
	if existing.IsZero() {
		return item.ErrItemNotFound
	}

	if err := uc.repo.DeleteItem(ctx, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return item.ErrItemNotFound
		}
		uc.l.Errorf(ctx, "uc.Delete DeleteItem: %v", err)
		span.RecordError(err)
		return err
	}

	uc.publish(ctx, event.TypeItemDeleted, existing)
	return nil
}
