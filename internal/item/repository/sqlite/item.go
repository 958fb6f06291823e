package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/mattn/go-sqlite3"

	"catalog-service/internal/item"
	repo "catalog-service/internal/item/repository"
)

// CreateItem inserts a new Item row.
func (r *implRepository) CreateItem(ctx context.Context, opt repo.CreateItemOptions) (item.Item, error) {
	const query = `INSERT INTO items (id, name, price, created_at) VALUES (?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query, opt.ID.String(), opt.Name, opt.Price.String(), opt.Created.UnixMilli())
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey {
			return item.Item{}, repo.ErrDuplicateID
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateItem"), err)
		return item.Item{}, repo.ErrFailedToInsert
	}

	return item.Item{
		ID:      opt.ID,
		Name:    opt.Name,
		Price:   opt.Price,
		Created: time.UnixMilli(opt.Created.UnixMilli()).UTC(),
	}, nil
}

// GetOneItem returns a zero-value Item when not found.
func (r *implRepository) GetOneItem(ctx context.Context, opt repo.GetOneItemOptions) (item.Item, error) {
	const query = `SELECT id, name, price, created_at FROM items WHERE id = ? LIMIT 1`

	it, err := scanItem(r.db.QueryRowContext(ctx, query, opt.ID.String()))
	if err == sql.ErrNoRows {
		return item.Item{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneItem"), err)
		return item.Item{}, repo.ErrFailedToGet
	}
	return it, nil
}

// ListItems returns Items in creation order.
func (r *implRepository) ListItems(ctx context.Context, opt repo.ListItemsOptions) ([]item.Item, error) {
	query := `SELECT id, name, price, created_at FROM items ORDER BY created_at ASC, rowid ASC`
	var args []any
	if opt.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, opt.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListItems"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	items := make([]item.Item, 0)
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListItems"), err)
			return nil, repo.ErrFailedToList
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListItems"), err)
		return nil, repo.ErrFailedToList
	}
	return items, nil
}

// UpdateItem replaces name and price, then reads the row back.
func (r *implRepository) UpdateItem(ctx context.Context, opt repo.UpdateItemOptions) (item.Item, error) {
	const query = `UPDATE items SET name = ?, price = ? WHERE id = ?`

	res, err := r.db.ExecContext(ctx, query, opt.Name, opt.Price.String(), opt.ID.String())
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateItem"), err)
		return item.Item{}, repo.ErrFailedToUpdate
	}
	affected, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "%s rows affected: %v", r.dsn("UpdateItem"), err)
		return item.Item{}, repo.ErrFailedToUpdate
	}
	if affected == 0 {
		return item.Item{}, repo.ErrNotFound
	}

	it, err := r.GetOneItem(ctx, repo.GetOneItemOptions{ID: opt.ID})
	if err != nil {
		return item.Item{}, repo.ErrFailedToUpdate
	}
	if it.IsZero() {
		return item.Item{}, repo.ErrNotFound
	}
	return it, nil
}

// DeleteItem removes an Item by ID.
func (r *implRepository) DeleteItem(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM items WHERE id = ?`, id.String())
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteItem"), err)
		return repo.ErrFailedToDelete
	}
	affected, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "%s rows affected: %v", r.dsn("DeleteItem"), err)
		return repo.ErrFailedToDelete
	}
	if affected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *implRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (item.Item, error) {
	var (
		it        item.Item
		createdMs int64
	)
	if err := row.Scan(&it.ID, &it.Name, &it.Price, &createdMs); err != nil {
		return item.Item{}, err
	}
	it.Created = time.UnixMilli(createdMs).UTC()
	return it, nil
}
