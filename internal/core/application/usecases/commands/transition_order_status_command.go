package commands

import (
	"errors"

	"smartlogix/internal/core/domain/model/kernel"
	"smartlogix/internal/core/domain/model/order"
	"smartlogix/internal/pkg/guard"
)

var (
	ErrTransitionOrderStatusCommandIsNotConstructed = errors.New(
		"TransitionOrderStatusCommand must be created via NewTransitionOrderStatusCommand constructor",
	)
)

// TransitionOrderStatusCommand represents a request to move an order to a
// new lifecycle status. Whether the transition is permitted is decided by
// the order's state machine, not by the command.
type TransitionOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	nextStatus order.Status

	guard guard.ConstructorGuard
}

// NewTransitionOrderStatusCommand creates a command to transition an order.
// The target must be a valid status name; validity of the edge itself is
// checked later against the order's current status.
func NewTransitionOrderStatusCommand(orderID kernel.UUID, nextStatus order.Status) (TransitionOrderStatusCommand, error) {
	cmd := TransitionOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setNextStatus(nextStatus),
	); err != nil {
		return TransitionOrderStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c TransitionOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrTransitionOrderStatusCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to transition.
func (c TransitionOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// NextStatus returns the requested target status.
func (c TransitionOrderStatusCommand) NextStatus() order.Status {
	return c.nextStatus
}

func (c *TransitionOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *TransitionOrderStatusCommand) setNextStatus(nextStatus order.Status) error {
	if err := nextStatus.Validate(); err != nil {
		return err
	}

	c.nextStatus = nextStatus
	return nil
}
