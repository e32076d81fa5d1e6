// Package order provides the Order aggregate root and its line item value
// object.
//
// Key business rules:
//   - an order must carry at least one line item when first persisted
//   - the creation timestamp is stamped server-side, exactly once
//   - the delivery agent is write-once: an order is assigned to at most one
//     delivery job, and reassignment always fails
//
// The aggregate exposes a single state transition, Assign, which pairs the
// order with a delivery job (agent plus estimated time of delivery).
package order
