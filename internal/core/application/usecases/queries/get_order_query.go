// Package queries contains read operations in the CQRS architecture. Query
// handlers read the database directly and return flat response structs;
// they never load aggregates or modify state. Every order query filters on
// the tenant bound to the request context.
package queries

import (
	"errors"
	"time"

	"smartlogix/internal/core/domain/model/kernel"
	"smartlogix/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery retrieves a single order by ID within the context tenant.
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for one order.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the order to fetch.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// OrderResponse is the flat read model of an order.
type OrderResponse struct {
	ID                 string           `json:"id"`
	OrderNumber        string           `json:"orderNumber"`
	Description        string           `json:"description,omitempty"`
	DestinationAddress string           `json:"destinationAddress,omitempty"`
	Weight             *decimal.Decimal `json:"weight,omitempty"`
	Latitude           *float64         `json:"latitude,omitempty"`
	Longitude          *float64         `json:"longitude,omitempty"`
	TrackingNotes      string           `json:"trackingNotes,omitempty"`
	Status             string           `json:"status"`
	CreatedAt          time.Time        `json:"createdAt"`
	UpdatedAt          time.Time        `json:"updatedAt"`
}
