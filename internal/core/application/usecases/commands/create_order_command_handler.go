package commands

import (
	"context"

	"smartlogix/internal/core/domain/model/order"
	"smartlogix/internal/core/ports"
	"smartlogix/internal/pkg/tenantctx"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// The new order belongs to the tenant bound to the context and starts in
// PENDING status; an OrderCreated event is published after the commit.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
}

// NewCreateOrderCommandHandler creates a handler for order creation.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, publisher ports.EventPublisher) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle creates and persists the order, returning the stored aggregate.
// The event is published only after a successful commit, so subscribers
// never observe an order that was rolled back.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	tenantID, err := tenantctx.RequireTenantID(ctx)
	if err != nil {
		return nil, err
	}

	o, err := order.NewOrder(
		cmd.OrderID(),
		cmd.OrderNumber(),
		cmd.Description(),
		cmd.DestinationAddress(),
		tenantID,
	)
	if err != nil {
		return nil, err
	}

	if weight := cmd.Weight(); weight != nil {
		if err = o.SetWeight(*weight); err != nil {
			return nil, err
		}
	}
	if location := cmd.Location(); location != nil {
		if err = o.SetLocation(*location); err != nil {
			return nil, err
		}
	}
	if creatorID := cmd.CreatedByID(); creatorID != nil {
		if err = o.AttachCreator(*creatorID); err != nil {
			return nil, err
		}
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.publisher.Publish(ctx, order.NewEvent(o, order.EventOrderCreated))

	return o, nil
}
