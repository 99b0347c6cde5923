package order

import (
	"errors"
	"fmt"

	"smartlogix/internal/pkg/errs"
)

// ErrInvalidTransition is the classification target for all rejected status
// transitions. The concrete error is always an *InvalidTransitionError
// carrying both endpoints.
var ErrInvalidTransition = errors.New("invalid status transition")

// InvalidTransitionError reports a status change that the state machine does
// not permit, including self-transitions and any transition out of a
// terminal state.
type InvalidTransitionError struct {
	From Status
	To   Status
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid status transition from %s to %s", e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct delivery workflow.
//
// State transitions:
//
//	PENDING ──> APPROVED ──> IN_TRANSIT ──> SHIPPED ──> DELIVERED
//	   │            │             │
//	   └────────────┴─────────────┴──> CANCELLED
//
// DELIVERED and CANCELLED are terminal. Status is a value object that
// validates state transitions and provides the canonical string names used
// on the wire and in persistence.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of every newly created order.
	Pending

	// Approved indicates the order was accepted for fulfilment.
	Approved

	// InTransit indicates the order left the warehouse.
	InTransit

	// Shipped indicates the order was handed to the last-mile carrier.
	Shipped

	// Delivered indicates the order reached its destination. Terminal.
	Delivered

	// Cancelled indicates the order was withdrawn. Terminal.
	Cancelled
)

// statusNames holds the canonical enum names. These exact strings are the
// wire and persistence contract; matching is case-sensitive.
func statusNames() map[Status]string {
	return map[Status]string{
		Pending:   "PENDING",
		Approved:  "APPROVED",
		InTransit: "IN_TRANSIT",
		Shipped:   "SHIPPED",
		Delivered: "DELIVERED",
		Cancelled: "CANCELLED",
	}
}

// allowedTransitions is the full transition table. Absence of an edge means
// the transition is rejected; terminal states have no outgoing edges.
func allowedTransitions() map[Status][]Status {
	return map[Status][]Status{
		Pending:   {Approved, Cancelled},
		Approved:  {InTransit, Cancelled},
		InTransit: {Shipped, Cancelled},
		Shipped:   {Delivered},
		Delivered: {},
		Cancelled: {},
	}
}

// AllStatuses returns every valid status in workflow order. Used by the
// status summary to produce a zero-filled count per status.
func AllStatuses() []Status {
	return []Status{Pending, Approved, InTransit, Shipped, Delivered, Cancelled}
}

// StatusFromString resolves a status by its exact enum name.
// An unrecognized value fails with a ValueIsInvalid client-input error,
// deliberately distinct from ErrInvalidTransition.
func StatusFromString(s string) (Status, error) {
	for status, name := range statusNames() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a recognized order status", s),
	)
}

// Validate checks if the Status value is one of the six valid states.
func (s Status) Validate() error {
	if _, ok := statusNames()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the canonical enum name, or "UNKNOWN" for invalid values.
// Implements fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if name, ok := statusNames()[s]; ok {
		return name
	}
	return "UNKNOWN"
}

// IsTerminal reports whether no further transitions are permitted from s.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// CanTransitionTo reports whether the edge s -> next is in the transition
// table. Pure and total over the enum product; invalid values on either
// side yield false.
func (s Status) CanTransitionTo(next Status) bool {
	for _, candidate := range allowedTransitions()[s] {
		if candidate == next {
			return true
		}
	}
	return false
}

// TransitionTo validates the edge s -> next and returns the new status.
//
// Returns:
//   - (next, nil) when the transition table permits the edge
//   - (Unknown, *InvalidTransitionError) for every other pair, including
//     self-transitions and transitions out of DELIVERED or CANCELLED
func (s Status) TransitionTo(next Status) (Status, error) {
	if !s.CanTransitionTo(next) {
		return Unknown, &InvalidTransitionError{From: s, To: next}
	}
	return next, nil
}
