package ports

import (
	"context"

	"smartlogix/internal/core/domain/model/kernel"
	"smartlogix/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Every read and write is scoped to the tenant bound to the context;
// implementations must never return or touch another tenant's rows.
type OrderRepository interface {
	// Add persists a new order aggregate. Fails with a ConflictError when
	// the order number is already taken.
	Add(ctx context.Context, aggregate *order.Order) error

	// AddAll persists a batch of new orders in a single round trip. Used
	// by the import pipeline to write one chunk atomically.
	AddAll(ctx context.Context, aggregates []*order.Order) error

	// Get retrieves an order by ID within the tenant bound to the context.
	// An order that exists under a different tenant is reported as not
	// found, indistinguishable from a missing row.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// Update persists changes to an existing order, guarded by the status
	// the caller read. When the row's current status no longer matches
	// expectedStatus the update is rejected with a ConflictError.
	Update(ctx context.Context, aggregate *order.Order, expectedStatus order.Status) error

	// CountByStatus returns the number of the tenant's orders per status.
	// Statuses with no orders are absent from the map.
	CountByStatus(ctx context.Context) (map[order.Status]int64, error)
}
