package event

import (
	"context"
	"time"

	"catalog-service/internal/item"
)

// Type names an item lifecycle event. It doubles as the subject suffix.
type Type string

const (
	TypeItemCreated Type = "item.created"
	TypeItemUpdated Type = "item.updated"
	TypeItemDeleted Type = "item.deleted"
)

// Event is emitted after a write has been persisted. Deleted events carry the
// last stored version of the item.
type Event struct {
	Type       Type
	Item       item.Item
	OccurredAt time.Time
}

// Publisher delivers item events to downstream consumers.
type Publisher interface {
	Publish(ctx context.Context, evt Event) error
}

type noopPublisher struct{}

// NewNoopPublisher returns a Publisher that drops every event.
func NewNoopPublisher() Publisher {
	return noopPublisher{}
}

func (noopPublisher) Publish(context.Context, Event) error { return nil }
