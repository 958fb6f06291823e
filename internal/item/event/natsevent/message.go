package natsevent

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"catalog-service/internal/item"
	"catalog-service/internal/item/event"
)

type itemPayload struct {
	ID      uuid.UUID       `json:"id"`
	Name    string          `json:"name"`
	Price   decimal.Decimal `json:"price"`
	Created time.Time       `json:"created"`
}

type message struct {
	Type       event.Type  `json:"type"`
	Item       itemPayload `json:"item"`
	OccurredAt time.Time   `json:"occurred_at"`
}

func encode(evt event.Event) ([]byte, error) {
	return json.Marshal(message{
		Type: evt.Type,
		Item: itemPayload{
			ID:      evt.Item.ID,
			Name:    evt.Item.Name,
			Price:   evt.Item.Price,
			Created: evt.Item.Created,
		},
		OccurredAt: evt.OccurredAt,
	})
}

func decode(data []byte) (event.Event, error) {
	var m message
	if err := json.Unmarshal(data, &m); err != nil {
		return event.Event{}, fmt.Errorf("decode item event: %w", err)
	}
	return event.Event{
		Type: m.Type,
		Item: item.Item{
			ID:      m.Item.ID,
			Name:    m.Item.Name,
			Price:   m.Item.Price,
			Created: m.Item.Created.UTC(),
		},
		OccurredAt: m.OccurredAt.UTC(),
	}, nil
}
