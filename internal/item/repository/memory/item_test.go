package memory_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	repo "catalog-service/internal/item/repository"
	"catalog-service/internal/item/repository/memory"
	"catalog-service/pkg/log"
)

func newOpt(name, price string) repo.CreateItemOptions {
	return repo.CreateItemOptions{
		ID:      uuid.New(),
		Name:    name,
		Price:   decimal.RequireFromString(price),
		Created: time.Now().UTC().Truncate(time.Millisecond),
	}
}

func TestMemoryRepository(t *testing.T) {
	ctx := context.Background()
	r := memory.New(log.NewNop())

	potion := newOpt("Potion", "9.99")
	elixir := newOpt("Elixir", "25")

	t.Run("create and get", func(t *testing.T) {
		created, err := r.CreateItem(ctx, potion)
		require.NoError(t, err)
		assert.Equal(t, potion.ID, created.ID)

		got, err := r.GetOneItem(ctx, repo.GetOneItemOptions{ID: potion.ID})
		require.NoError(t, err)
		assert.Equal(t, created, got)
	})

	t.Run("duplicate id", func(t *testing.T) {
		_, err := r.CreateItem(ctx, potion)
		assert.ErrorIs(t, err, repo.ErrDuplicateID)
	})

	t.Run("list keeps creation order", func(t *testing.T) {
		_, err := r.CreateItem(ctx, elixir)
		require.NoError(t, err)

		items, err := r.ListItems(ctx, repo.ListItemsOptions{})
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "Potion", items[0].Name)
		assert.Equal(t, "Elixir", items[1].Name)

		limited, err := r.ListItems(ctx, repo.ListItemsOptions{Limit: 1})
		require.NoError(t, err)
		assert.Len(t, limited, 1)
	})

	t.Run("update keeps id and created", func(t *testing.T) {
		updated, err := r.UpdateItem(ctx, repo.UpdateItemOptions{
			ID: potion.ID, Name: "Hi-Potion", Price: decimal.RequireFromString("19.99"),
		})
		require.NoError(t, err)
		assert.Equal(t, potion.ID, updated.ID)
		assert.True(t, potion.Created.Equal(updated.Created))
		assert.Equal(t, "Hi-Potion", updated.Name)
	})

	t.Run("missing ids", func(t *testing.T) {
		got, err := r.GetOneItem(ctx, repo.GetOneItemOptions{ID: uuid.New()})
		require.NoError(t, err)
		assert.True(t, got.IsZero())

		_, err = r.UpdateItem(ctx, repo.UpdateItemOptions{ID: uuid.New(), Name: "x"})
		assert.ErrorIs(t, err, repo.ErrNotFound)

		assert.ErrorIs(t, r.DeleteItem(ctx, uuid.New()), repo.ErrNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, r.DeleteItem(ctx, potion.ID))
		assert.ErrorIs(t, r.DeleteItem(ctx, potion.ID), repo.ErrNotFound)

		items, err := r.ListItems(ctx, repo.ListItemsOptions{})
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, elixir.ID, items[0].ID)
	})

	t.Run("ping", func(t *testing.T) {
		assert.NoError(t, r.Ping(ctx))
	})
}

func TestMemoryRepositoryConcurrentCreates(t *testing.T) {
	ctx := context.Background()
	r := memory.New(log.NewNop())

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := r.CreateItem(ctx, newOpt("Potion", "1"))
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	items, err := r.ListItems(ctx, repo.ListItemsOptions{})
	require.NoError(t, err)
	assert.Len(t, items, 50)
}
