// Package redisbroker publishes order events to a Redis channel. Downstream
// consumers (analytics, audit) subscribe to the channel outside this
// process; delivery is fire-and-forget with no persistence or replay.
package redisbroker

import (
	"context"
	"encoding/json"

	"smartlogix/internal/core/domain/model/order"

	"github.com/go-redis/redis/v8"
)

// Broker sends order events to a single Redis pub/sub channel.
type Broker struct {
	client *redis.Client
	topic  string
}

// NewBroker creates a broker publishing to the given channel.
func NewBroker(client *redis.Client, topic string) *Broker {
	return &Broker{
		client: client,
		topic:  topic,
	}
}

// Send serializes the event as JSON and publishes it. The error is returned
// for logging only; callers never fail their operation on it.
func (b *Broker) Send(ctx context.Context, event order.Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return b.client.Publish(ctx, b.topic, payload).Err()
}

// Close releases the underlying Redis connection.
func (b *Broker) Close() error {
	return b.client.Close()
}
