package usecase

import (
	"context"
	"errors"

	"catalog-service/internal/item"
	"catalog-service/internal/item/event"
	repo "catalog-service/internal/item/repository"
)

// Create builds a new Item from the input and persists it.
func (uc *implUseCase) Create(ctx context.Context, input item.CreateItemInput) (item.CreateItemOutput, error) {
	ctx, span := uc.tracer.Start(ctx, "item.Create")
	defer span.End()

	it := uc.newItem(input)

	created, err := uc.repo.CreateItem(ctx, repo.CreateItemOptions{
		ID:      it.ID,
		Name:    it.Name,
		Price:   it.Price,
		Created: it.Created,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateItem: %v", err)
		span.RecordError(err)
		if errors.Is(err, repo.ErrDuplicateID) {
			return item.CreateItemOutput{}, item.ErrDuplicateID
		}
		return item.CreateItemOutput{}, err
	}

	uc.publish(ctx, event.TypeItemCreated, created)
	return item.CreateItemOutput{Item: created}, nil
}
