package order

import "time"

// EventType discriminates the order events published to the broker and the
// live tenant channels.
type EventType string

const (
	// EventOrderCreated is published once when an order is persisted.
	EventOrderCreated EventType = "OrderCreated"

	// EventOrderStatusChanged is published after every committed status
	// transition.
	EventOrderStatusChanged EventType = "OrderStatusChanged"
)

// Event is the ephemeral snapshot handed to the event publisher when an
// order is created or its status changes. It is constructed at the moment of
// the state-affecting call, delivered best-effort, and discarded; no retry
// state is kept for it.
type Event struct {
	EventType EventType `json:"eventType"`
	OrderID   string    `json:"orderId"`
	TenantID  string    `json:"tenantId"`
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// NewEvent snapshots the given order into an Event of the given type.
func NewEvent(o *Order, eventType EventType) Event {
	return Event{
		EventType: eventType,
		OrderID:   o.ID().String(),
		TenantID:  o.TenantID().String(),
		Status:    o.Status().String(),
		Timestamp: time.Now().UTC(),
	}
}
