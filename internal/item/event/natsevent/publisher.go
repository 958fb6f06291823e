package natsevent

import (
	"context"
	"errors"
	"fmt"

	"github.com/nats-io/nats.go"

	"catalog-service/internal/item/event"
	"catalog-service/pkg/log"
)

type publisher struct {
	js     nats.JetStreamContext
	prefix string
	l      log.Logger
}

// NewPublisher publishes item events to <prefix>.<event type>.
func NewPublisher(js nats.JetStreamContext, prefix string, l log.Logger) event.Publisher {
	return &publisher{js: js, prefix: prefix, l: l}
}

func (p *publisher) Publish(ctx context.Context, evt event.Event) error {
	data, err := encode(evt)
	if err != nil {
		return err
	}
	subject := Subject(p.prefix, evt.Type)
	// The write already happened; a cancelled request must not drop the event,
	// so the JetStream ack wait bounds the call instead of ctx.
	if _, err := p.js.Publish(subject, data); err != nil {
		return fmt.Errorf("publish %s: %w", subject, err)
	}
	p.l.Debugf(ctx, "natsevent.Publish: %s %s", subject, evt.Item.ID)
	return nil
}

// Subject returns the subject an event type is published on.
func Subject(prefix string, typ event.Type) string {
	return prefix + "." + string(typ)
}

// EnsureStream creates or updates the stream capturing every item event under prefix.
func EnsureStream(js nats.JetStreamContext, name, prefix string) error {
	cfg := &nats.StreamConfig{
		Name:     name,
		Subjects: []string{prefix + ".item.>"},
	}
	_, err := js.AddStream(cfg)
	if errors.Is(err, nats.ErrStreamNameAlreadyInUse) {
		_, err = js.UpdateStream(cfg)
	}
	if err != nil {
		return fmt.Errorf("ensure stream %s: %w", name, err)
	}
	return nil
}
