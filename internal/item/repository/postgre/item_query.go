package postgre

import (
	"fmt"

	"catalog-service/internal/item"
	repo "catalog-service/internal/item/repository"
)

type rowScanner interface {
	Scan(dest ...any) error
}

// scanItem reads id, name, price, created_at in that order.
func (r *implRepository) scanItem(row rowScanner) (item.Item, error) {
	var it item.Item
	if err := row.Scan(&it.ID, &it.Name, &it.Price, &it.Created); err != nil {
		return item.Item{}, err
	}
	it.Created = it.Created.UTC()
	return it, nil
}

// buildListQuery builds the full ORDER + LIMIT clause for ListItems.
func (r *implRepository) buildListQuery(opt repo.ListItemsOptions) (string, []any) {
	query := `SELECT id, name, price, created_at FROM items ORDER BY created_at ASC, id ASC`
	var args []any

	if opt.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", len(args)+1)
		args = append(args, opt.Limit)
	}
	return query, args
}
