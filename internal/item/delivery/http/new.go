package http

import (
	"catalog-service/internal/item"
	"catalog-service/pkg/log"
)

type handler struct {
	l  log.Logger
	uc item.UseCase
}

// New creates a new HTTP handler for the item domain.
func New(l log.Logger, uc item.UseCase) *handler {
	registerValidators()
	return &handler{
		l:  l,
		uc: uc,
	}
}
