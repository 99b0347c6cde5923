// Package order provides domain entities and business logic for order
// management. It implements the Order aggregate root with lifecycle
// management and a strict six-state status machine.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, properties, and lifecycle
//   - Status: A state machine that enforces valid order status transitions
//   - Event: The ephemeral snapshot published when an order is created or transitioned
//
// Key business rules:
//   - Orders must have a valid unique identifier, a non-blank order number,
//     and an owning tenant that never changes after creation
//   - New orders always start in PENDING, regardless of caller input
//   - Status follows the workflow PENDING -> APPROVED -> IN_TRANSIT ->
//     SHIPPED -> DELIVERED, with CANCELLED reachable from every non-terminal
//     state except SHIPPED
//   - DELIVERED and CANCELLED are terminal: no further transitions
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
