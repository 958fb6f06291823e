package usecase

import (
	"context"
	"strings"

	"catalog-service/internal/item"
	repo "catalog-service/internal/item/repository"
)

// List returns every Item, narrowed to names containing NameToMatch
// (case-insensitive) when it is not blank.
func (uc *implUseCase) List(ctx context.Context, input item.ListItemsInput) (item.ListItemsOutput, error) {
	ctx, span := uc.tracer.Start(ctx, "item.List")
	defer span.End()

	items, err := uc.repo.ListItems(ctx, repo.ListItemsOptions{})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListItems: %v", err)
		span.RecordError(err)
		return item.ListItemsOutput{}, err
	}

	if strings.TrimSpace(input.NameToMatch) != "" {
		items = filterByName(items, input.NameToMatch)
	}

	uc.l.Infof(ctx, "uc.List: retrieved %d items", len(items))
	return item.ListItemsOutput{Items: items}, nil
}

func filterByName(items []item.Item, name string) []item.Item {
	needle := strings.ToLower(name)
	matched := make([]item.Item, 0, len(items))
	for _, it := range items {
		if strings.Contains(strings.ToLower(it.Name), needle) {
			matched = append(matched, it)
		}
	}
	return matched
}
