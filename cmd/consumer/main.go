package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"catalog-service/config"
	natsConn "catalog-service/config/nats"
	"catalog-service/internal/item/event"
	"catalog-service/internal/item/event/natsevent"
	"catalog-service/pkg/log"
)

const durableName = "catalog-audit"

// main runs the item event consumer: it follows the item event stream
// through a durable JetStream consumer and writes an audit log line per event.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting consumer service...")

	if !cfg.Events.Enabled {
		logger.Warn(ctx, "events.enabled is false; nothing to consume")
		return
	}

	nc, js, err := natsConn.Connect(cfg.Events, "catalog-consumer")
	if err != nil {
		logger.Error(ctx, "Failed to connect to NATS: ", err)
		return
	}
	defer nc.Drain()

	if err := natsevent.EnsureStream(js, cfg.Events.Stream, cfg.Events.SubjectPrefix); err != nil {
		logger.Error(ctx, "Failed to ensure stream: ", err)
		return
	}

	sub, err := natsevent.NewSubscriber(js, cfg.Events.SubjectPrefix, logger).
		Subscribe(ctx, durableName, auditHandler(logger))
	if err != nil {
		logger.Error(ctx, "Failed to subscribe: ", err)
		return
	}
	defer sub.Unsubscribe()

	logger.Info(ctx, "Consumer service running. Waiting for shutdown signal...")
	<-ctx.Done()
	logger.Info(ctx, "Consumer service stopped gracefully")
}

func auditHandler(l log.Logger) natsevent.Handler {
	return func(ctx context.Context, evt event.Event) error {
		l.Infow(ctx, "item event",
			"type", evt.Type,
			"id", evt.Item.ID.String(),
			"name", evt.Item.Name,
			"price", evt.Item.Price.String(),
			"occurred_at", evt.OccurredAt,
		)
		return nil
	}
}
