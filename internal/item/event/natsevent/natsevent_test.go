package natsevent_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats-server/v2/server"
	"github.com/nats-io/nats.go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalog-service/internal/item"
	"catalog-service/internal/item/event"
	"catalog-service/internal/item/event/natsevent"
	"catalog-service/pkg/log"
)

const prefix = "catalog"

func setupEmbeddedNATSServer(t *testing.T) nats.JetStreamContext {
	t.Helper()
	opts := &server.Options{
		JetStream: true,
		StoreDir:  t.TempDir(),
		Port:      -1,
		NoLog:     true,
		NoSigs:    true,
	}
	srv, err := server.NewServer(opts)
	require.NoError(t, err)

	go srv.Start()
	if !srv.ReadyForConnections(10 * time.Second) {
		t.Fatal("NATS server not ready in time")
	}
	t.Cleanup(srv.Shutdown)

	nc, err := nats.Connect(srv.ClientURL())
	require.NoError(t, err)
	t.Cleanup(nc.Close)

	js, err := nc.JetStream()
	require.NoError(t, err)

	require.NoError(t, natsevent.EnsureStream(js, "catalog_items", prefix))
	// Second call must be a no-op.
	require.NoError(t, natsevent.EnsureStream(js, "catalog_items", prefix))
	return js
}

func potion() item.Item {
	return item.Item{
		ID:      uuid.New(),
		Name:    "Potion",
		Price:   decimal.RequireFromString("9.99"),
		Created: time.Date(2024, 5, 1, 15, 30, 0, 123000000, time.UTC),
	}
}

func TestPublishWireFormat(t *testing.T) {
	js := setupEmbeddedNATSServer(t)
	pub := natsevent.NewPublisher(js, prefix, log.NewNop())

	it := potion()
	occurred := time.Date(2024, 5, 1, 15, 31, 0, 0, time.UTC)
	require.NoError(t, pub.Publish(context.Background(), event.Event{Type: event.TypeItemCreated, Item: it, OccurredAt: occurred}))

	sub, err := js.SubscribeSync(natsevent.Subject(prefix, event.TypeItemCreated), nats.DeliverAll())
	require.NoError(t, err)
	msg, err := sub.NextMsg(5 * time.Second)
	require.NoError(t, err)

	assert.Equal(t, "catalog.item.created", msg.Subject)
	assert.JSONEq(t, `{
		"type": "item.created",
		"item": {"id": "`+it.ID.String()+`", "name": "Potion", "price": 9.99, "created": "2024-05-01T15:30:00.123Z"},
		"occurred_at": "2024-05-01T15:31:00Z"
	}`, string(msg.Data))
}

func TestSubscribeRoundTrip(t *testing.T) {
	js := setupEmbeddedNATSServer(t)
	pub := natsevent.NewPublisher(js, prefix, log.NewNop())
	subscriber := natsevent.NewSubscriber(js, prefix, log.NewNop())

	got := make(chan event.Event, 3)
	sub, err := subscriber.Subscribe(context.Background(), "test-durable", func(_ context.Context, evt event.Event) error {
		got <- evt
		return nil
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = sub.Unsubscribe() })

	it := potion()
	ctx := context.Background()
	for _, typ := range []event.Type{event.TypeItemCreated, event.TypeItemUpdated, event.TypeItemDeleted} {
		require.NoError(t, pub.Publish(ctx, event.Event{Type: typ, Item: it, OccurredAt: time.Now().UTC()}))
	}

	var types []event.Type
	for i := 0; i < 3; i++ {
		select {
		case evt := <-got:
			types = append(types, evt.Type)
			assert.Equal(t, it.ID, evt.Item.ID)
			assert.True(t, it.Price.Equal(evt.Item.Price))
			assert.True(t, it.Created.Equal(evt.Item.Created))
		case <-time.After(5 * time.Second):
			t.Fatalf("timed out after %d events", i)
		}
	}
	assert.Equal(t, []event.Type{event.TypeItemCreated, event.TypeItemUpdated, event.TypeItemDeleted}, types)
}

func TestPublishWithoutStreamFails(t *testing.T) {
	js := setupEmbeddedNATSServer(t)
	pub := natsevent.NewPublisher(js, "elsewhere", log.NewNop())

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	err := pub.Publish(ctx, event.Event{Type: event.TypeItemCreated, Item: potion()})
	assert.Error(t, err)
}
