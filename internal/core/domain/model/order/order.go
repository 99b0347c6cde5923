package order

import (
	"errors"
	"time"

	"smartlogix/internal/core/domain/model/kernel"
	"smartlogix/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// Order is the aggregate root tracked through the delivery lifecycle.
//
// Order maintains these invariants:
//   - the identifier and order number are valid and never change
//   - the owning tenant is always set and immutable after creation
//   - status only changes through TransitionTo, following the state machine
//   - new orders always start in Pending
type Order struct {
	id                 kernel.UUID
	orderNumber        string
	description        string
	destinationAddress string
	weight             *decimal.Decimal
	location           *kernel.GeoPoint
	trackingNotes      string
	status             Status
	tenantID           kernel.UUID
	createdByID        *kernel.UUID
	createdAt          time.Time
	updatedAt          time.Time

	isConstructed bool
}

// NewOrder creates an Order owned by the given tenant. The order number must
// be non-blank; status is forced to Pending regardless of caller intent.
// Optional attributes (weight, location, tracking notes, creator) are
// attached through their setters after construction.
func NewOrder(id kernel.UUID, orderNumber, description, destinationAddress string, tenantID kernel.UUID) (*Order, error) {
	now := time.Now().UTC()
	o := &Order{
		description:        description,
		destinationAddress: destinationAddress,
		status:             Pending,
		createdAt:          now,
		updatedAt:          now,
		isConstructed:      true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setOrderNumber(orderNumber),
		o.setTenantID(tenantID),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence without re-running
// creation rules. The stored status must still be one of the six valid
// states.
func RestoreOrder(
	id kernel.UUID,
	orderNumber, description, destinationAddress string,
	weight *decimal.Decimal,
	location *kernel.GeoPoint,
	trackingNotes string,
	status Status,
	tenantID kernel.UUID,
	createdByID *kernel.UUID,
	createdAt, updatedAt time.Time,
) (*Order, error) {
	o := &Order{
		description:        description,
		destinationAddress: destinationAddress,
		weight:             weight,
		location:           location,
		trackingNotes:      trackingNotes,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
		isConstructed:      true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setOrderNumber(orderNumber),
		o.setTenantID(tenantID),
		o.setStatus(status),
	); err != nil {
		return nil, err
	}

	if createdByID != nil {
		if err := createdByID.Validate(); err != nil {
			return nil, err
		}
		o.createdByID = createdByID
	}

	return o, nil
}

// Validate ensures the Order instance was constructed through NewOrder or
// RestoreOrder. Called when handing aggregates to persistence.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OrderNumber returns the human-readable, system-wide unique order number.
func (o *Order) OrderNumber() string {
	return o.orderNumber
}

// Description returns the free-text description of the shipment contents.
func (o *Order) Description() string {
	return o.description
}

// DestinationAddress returns the destination address string.
func (o *Order) DestinationAddress() string {
	return o.destinationAddress
}

// Weight returns the shipment weight in kilograms, or nil when unset.
func (o *Order) Weight() *decimal.Decimal {
	return o.weight
}

// Location returns the optional coordinate pair, or nil when unset.
func (o *Order) Location() *kernel.GeoPoint {
	return o.location
}

// TrackingNotes returns the free-text tracking notes.
func (o *Order) TrackingNotes() string {
	return o.trackingNotes
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// TenantID returns the owning tenant's identifier. The tenant reference is
// immutable for the lifetime of the order.
func (o *Order) TenantID() kernel.UUID {
	return o.tenantID
}

// CreatedBy returns the identifier of the user that created the order, or
// nil for system-generated (batch-imported) orders.
func (o *Order) CreatedBy() *kernel.UUID {
	return o.createdByID
}

// CreatedAt returns the creation timestamp (UTC).
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the last-modification timestamp (UTC).
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// SetWeight attaches the shipment weight. Weight carries two decimal places
// and must not be negative.
func (o *Order) SetWeight(weight decimal.Decimal) error {
	if weight.IsNegative() {
		return errs.NewValueIsInvalidError("weight")
	}
	rounded := weight.Round(2)
	o.weight = &rounded
	o.touch()
	return nil
}

// SetLocation attaches the destination coordinates.
func (o *Order) SetLocation(point kernel.GeoPoint) error {
	if err := point.Validate(); err != nil {
		return err
	}
	o.location = &point
	o.touch()
	return nil
}

// SetTrackingNotes replaces the tracking notes.
func (o *Order) SetTrackingNotes(notes string) {
	o.trackingNotes = notes
	o.touch()
}

// AttachCreator links the user that created the order. Best-effort in the
// lifecycle service; once set the creator does not change.
func (o *Order) AttachCreator(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	o.createdByID = &userID
	return nil
}

// TransitionTo moves the order to the requested status, enforcing the state
// machine. On rejection the order is left unmodified and the returned error
// unwraps to ErrInvalidTransition.
func (o *Order) TransitionTo(next Status) error {
	newStatus, err := o.status.TransitionTo(next)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.touch()
	return nil
}

func (o *Order) touch() {
	o.updatedAt = time.Now().UTC()
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setOrderNumber(orderNumber string) error {
	if orderNumber == "" {
		return errs.NewValueIsRequiredError("orderNumber")
	}
	o.orderNumber = orderNumber
	return nil
}

func (o *Order) setTenantID(tenantID kernel.UUID) error {
	if err := tenantID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("tenantId", err)
	}
	o.tenantID = tenantID
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
