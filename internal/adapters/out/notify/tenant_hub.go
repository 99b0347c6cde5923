// Package notify implements the in-process live event feed. Each tenant has
// its own set of subscriber channels; a subscriber only ever sees events of
// the tenant it subscribed to.
package notify

import (
	"sync"

	"smartlogix/internal/core/domain/model/order"
)

const subscriberBuffer = 64

// TenantHub fans order events out to per-tenant subscriber channels.
// Publishing happens synchronously under the hub lock, which preserves
// per-tenant event order for every subscriber. A subscriber that stops
// draining its channel has events dropped once its buffer fills; delivery
// is best-effort and never blocks the publisher.
type TenantHub struct {
	mu          sync.Mutex
	subscribers map[string]map[int]chan order.Event
	nextID      int
	closed      bool
}

// NewTenantHub creates an empty hub.
func NewTenantHub() *TenantHub {
	return &TenantHub{
		subscribers: make(map[string]map[int]chan order.Event),
	}
}

// Subscribe opens a channel receiving the tenant's events from this moment
// on. Earlier events are not replayed. The cancel function removes the
// subscription and closes the channel; it is safe to call more than once.
func (h *TenantHub) Subscribe(tenantID string) (<-chan order.Event, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	ch := make(chan order.Event, subscriberBuffer)
	if h.closed {
		close(ch)
		return ch, func() {}
	}

	id := h.nextID
	h.nextID++

	if h.subscribers[tenantID] == nil {
		h.subscribers[tenantID] = make(map[int]chan order.Event)
	}
	h.subscribers[tenantID][id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()

			if tenantSubs, ok := h.subscribers[tenantID]; ok {
				if sub, ok := tenantSubs[id]; ok {
					delete(tenantSubs, id)
					if len(tenantSubs) == 0 {
						delete(h.subscribers, tenantID)
					}
					close(sub)
				}
			}
		})
	}

	return ch, cancel
}

// Publish delivers the event to every subscriber of its tenant. Dropped
// returns the number of subscribers whose buffer was full.
func (h *TenantHub) Publish(event order.Event) (dropped int) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return 0
	}

	for _, ch := range h.subscribers[event.TenantID] {
		select {
		case ch <- event:
		default:
			dropped++
		}
	}

	return dropped
}

// Close closes every subscriber channel and rejects further subscriptions.
func (h *TenantHub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}
	h.closed = true

	for _, tenantSubs := range h.subscribers {
		for _, ch := range tenantSubs {
			close(ch)
		}
	}
	h.subscribers = make(map[string]map[int]chan order.Event)
}
