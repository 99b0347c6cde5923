package commands

import (
	"errors"

	"smartlogix/internal/core/domain/model/kernel"
	"smartlogix/internal/pkg/errs"
	"smartlogix/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrOrderNumberIsRequired = errors.New("orderNumber is required")
)

// CreateOrderCommand represents a request to create a new order for the
// tenant bound to the request context. The initial status is always
// PENDING; the command cannot influence it.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID            kernel.UUID
	orderNumber        string
	description        string
	destinationAddress string
	weight             *decimal.Decimal
	location           *kernel.GeoPoint
	createdByID        *kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// The order number must be non-blank and the weight, when given, must not
// be negative. Description, destination address, weight, destination
// coordinates and creator are optional.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	orderNumber, description, destinationAddress string,
	weight *decimal.Decimal,
	location *kernel.GeoPoint,
	createdByID *kernel.UUID,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		description:        description,
		destinationAddress: destinationAddress,
		guard:              guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setOrderNumber(orderNumber),
		cmd.setWeight(weight),
		cmd.setLocation(location),
		cmd.setCreatedByID(createdByID),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier the new order will be created with.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// OrderNumber returns the globally unique order number.
func (c CreateOrderCommand) OrderNumber() string {
	return c.orderNumber
}

// Description returns the optional order description.
func (c CreateOrderCommand) Description() string {
	return c.description
}

// DestinationAddress returns the optional destination address.
func (c CreateOrderCommand) DestinationAddress() string {
	return c.destinationAddress
}

// Weight returns the optional shipment weight in kilograms.
func (c CreateOrderCommand) Weight() *decimal.Decimal {
	return c.weight
}

// Location returns the optional destination coordinates.
func (c CreateOrderCommand) Location() *kernel.GeoPoint {
	return c.location
}

// CreatedByID returns the optional identifier of the creating user.
func (c CreateOrderCommand) CreatedByID() *kernel.UUID {
	return c.createdByID
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setOrderNumber(orderNumber string) error {
	if orderNumber == "" {
		return ErrOrderNumberIsRequired
	}

	c.orderNumber = orderNumber
	return nil
}

func (c *CreateOrderCommand) setWeight(weight *decimal.Decimal) error {
	if weight == nil {
		return nil
	}
	if weight.IsNegative() {
		return errs.NewValueIsInvalidError("weight")
	}

	c.weight = weight
	return nil
}

func (c *CreateOrderCommand) setLocation(location *kernel.GeoPoint) error {
	if location == nil {
		return nil
	}
	if err := location.Validate(); err != nil {
		return err
	}

	c.location = location
	return nil
}

func (c *CreateOrderCommand) setCreatedByID(createdByID *kernel.UUID) error {
	if createdByID == nil {
		return nil
	}
	if err := createdByID.Validate(); err != nil {
		return err
	}

	c.createdByID = createdByID
	return nil
}
