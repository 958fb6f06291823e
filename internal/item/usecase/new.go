package usecase

import (
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"catalog-service/internal/item/event"
	"catalog-service/internal/item/repository"
	"catalog-service/pkg/log"
)

const tracerName = "catalog-service/internal/item/usecase"

// implUseCase is the private implementation of item.UseCase.
type implUseCase struct {
	repo   repository.Repository
	pub    event.Publisher
	l      log.Logger
	tracer trace.Tracer

	now   func() time.Time
	newID func() uuid.UUID
}

// New creates a new item UseCase implementation. A nil publisher disables events.
func New(repo repository.Repository, pub event.Publisher, l log.Logger) *implUseCase {
	if pub == nil {
		pub = event.NewNoopPublisher()
	}
	return &implUseCase{
		repo:   repo,
		pub:    pub,
		l:      l,
		tracer: otel.Tracer(tracerName),
		now:    time.Now,
		newID:  uuid.New,
	}
}
