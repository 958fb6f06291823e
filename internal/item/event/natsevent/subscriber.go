package natsevent

import (
	"context"

	"github.com/nats-io/nats.go"

	"catalog-service/internal/item/event"
	"catalog-service/pkg/log"
)

// Handler processes one decoded event. A returned error asks for redelivery.
type Handler func(ctx context.Context, evt event.Event) error

type Subscriber struct {
	js     nats.JetStreamContext
	prefix string
	l      log.Logger
}

func NewSubscriber(js nats.JetStreamContext, prefix string, l log.Logger) *Subscriber {
	return &Subscriber{js: js, prefix: prefix, l: l}
}

// Subscribe delivers every item event to h through a durable consumer.
// Undecodable messages are terminated so they are not redelivered.
func (s *Subscriber) Subscribe(ctx context.Context, durable string, h Handler) (*nats.Subscription, error) {
	return s.js.Subscribe(s.prefix+".item.>", func(msg *nats.Msg) {
		evt, err := decode(msg.Data)
		if err != nil {
			s.l.Errorf(ctx, "natsevent.Subscribe %s: %v", msg.Subject, err)
			_ = msg.Term()
			return
		}
		if err := h(ctx, evt); err != nil {
			s.l.Warnf(ctx, "natsevent.Subscribe handler %s %s: %v", evt.Type, evt.Item.ID, err)
			_ = msg.Nak()
			return
		}
		_ = msg.Ack()
	}, nats.Durable(durable), nats.ManualAck(), nats.DeliverAll())
}
