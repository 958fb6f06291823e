package memory

import (
	"sync"

	"github.com/google/uuid"

	"catalog-service/internal/item"
	"catalog-service/internal/item/repository"
	"catalog-service/pkg/log"
)

type implRepository struct {
	mu    sync.RWMutex
	items map[uuid.UUID]item.Item
	order []uuid.UUID
	l     log.Logger
}

// New creates an in-process Repository. Contents are lost on restart.
func New(l log.Logger) repository.Repository {
	return &implRepository{
		items: make(map[uuid.UUID]item.Item),
		l:     l,
	}
}
