package ports

import (
	"context"

	"smartlogix/internal/core/domain/model/order"
)

// EventPublisher delivers order events to every configured sink. Publishing
// is best-effort: a failing sink never fails the operation that produced
// the event, and no retry or buffering is attempted for it.
type EventPublisher interface {
	// Publish fans the event out to all sinks. Always returns quickly;
	// sink failures are logged, not returned.
	Publish(ctx context.Context, event order.Event)
}

// EventSubscriber exposes the live per-tenant event feed.
type EventSubscriber interface {
	// Subscribe opens a channel receiving the given tenant's events from
	// the moment of the call. Events published before the call are not
	// replayed. The returned cancel function releases the subscription
	// and closes the channel.
	Subscribe(tenantID string) (<-chan order.Event, func())
}
