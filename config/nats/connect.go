package nats

import (
	"fmt"
	"time"

	"github.com/nats-io/nats.go"

	"catalog-service/config"
)

// Connect opens a NATS connection with JetStream enabled.
func Connect(cfg config.EventsConfig, name string) (*nats.Conn, nats.JetStreamContext, error) {
	nc, err := nats.Connect(cfg.NATSURL,
		nats.Name(name),
		nats.Timeout(5*time.Second),
		nats.MaxReconnects(-1),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to NATS at %s: %w", cfg.NATSURL, err)
	}
	js, err := nc.JetStream()
	if err != nil {
		nc.Close()
		return nil, nil, fmt.Errorf("failed to init JetStream: %w", err)
	}
	return nc, js, nil
}
