// Package delivery provides domain entities and business logic for parcel
// delivery records in the dispatch system. It implements the Delivery
// aggregate root with lifecycle management and state transitions.
//
// The package includes:
//   - Delivery: The aggregate root carrying identity, parties, destination, and status
//   - Status: A state machine that enforces the linear delivery lifecycle
//
// Key business rules:
//   - Deliveries must have a non-empty parcel ID, sender, receiver, and a valid destination
//   - Status follows a strict workflow: Pending -> Dispatched -> Out for Delivery -> Delivered
//   - No stage may be skipped and no transition reverts
//   - A failed transition leaves the record unchanged
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package delivery
