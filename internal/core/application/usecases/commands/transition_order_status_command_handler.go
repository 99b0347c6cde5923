package commands

import (
	"context"

	"smartlogix/internal/core/domain/model/order"
	"smartlogix/internal/core/ports"
)

// TransitionOrderStatusCommandHandler moves an order through its lifecycle.
// The write is conditioned on the status the handler read, so two racing
// transitions can never both succeed: the loser gets a ConflictError.
type TransitionOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
}

// NewTransitionOrderStatusCommandHandler creates a handler for status
// transitions.
func NewTransitionOrderStatusCommandHandler(uowFactory OrderUoWFactory, publisher ports.EventPublisher) TransitionOrderStatusCommandHandler {
	return TransitionOrderStatusCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle loads the order within the context tenant, applies the transition
// through the domain state machine and persists the result. On success an
// OrderStatusChanged event is published; on a rejected transition the
// returned error unwraps to order.ErrInvalidTransition and nothing is
// persisted or published.
func (h *TransitionOrderStatusCommandHandler) Handle(ctx context.Context, cmd TransitionOrderStatusCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	previousStatus := o.Status()
	if err = o.TransitionTo(cmd.NextStatus()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, o, previousStatus); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.publisher.Publish(ctx, order.NewEvent(o, order.EventOrderStatusChanged))

	return o, nil
}
