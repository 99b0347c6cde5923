// Package events composes the configured event sinks behind the
// EventPublisher port.
package events

import (
	"context"
	"log/slog"

	"smartlogix/internal/adapters/out/notify"
	"smartlogix/internal/core/domain/model/order"
)

// BrokerSink is the outbound broker leg of the publisher.
type BrokerSink interface {
	Send(ctx context.Context, event order.Event) error
}

// Publisher fans order events out to the external broker and the in-process
// tenant hub. The hub leg runs synchronously so live subscribers observe a
// tenant's events in publish order; the broker leg runs on its own
// goroutine and its failures are logged and forgotten.
type Publisher struct {
	broker BrokerSink
	hub    *notify.TenantHub
	logger *slog.Logger
}

// NewPublisher creates a publisher over the given sinks. broker may be nil
// when no external broker is configured.
func NewPublisher(broker BrokerSink, hub *notify.TenantHub, logger *slog.Logger) *Publisher {
	return &Publisher{
		broker: broker,
		hub:    hub,
		logger: logger,
	}
}

// Publish delivers the event to all sinks and returns immediately. The
// broker send is detached from the request context so an HTTP cancellation
// does not abort an already-committed event.
func (p *Publisher) Publish(ctx context.Context, event order.Event) {
	if dropped := p.hub.Publish(event); dropped > 0 {
		p.logger.Warn("live subscribers lagging, events dropped",
			"tenantId", event.TenantID,
			"dropped", dropped,
		)
	}

	if p.broker == nil {
		return
	}

	detached := context.WithoutCancel(ctx)
	go func() {
		if err := p.broker.Send(detached, event); err != nil {
			p.logger.Error("broker publish failed",
				"eventType", string(event.EventType),
				"orderId", event.OrderID,
				"tenantId", event.TenantID,
				"error", err,
			)
		}
	}()
}

// Subscribe exposes the hub's live per-tenant feed.
func (p *Publisher) Subscribe(tenantID string) (<-chan order.Event, func()) {
	return p.hub.Subscribe(tenantID)
}
