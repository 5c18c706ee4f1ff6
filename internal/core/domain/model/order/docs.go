// Package order provides the Order aggregate root of the restaurant: the line
// items a customer ordered, how much they owe and where the order is in the
// kitchen.
//
// The package includes:
//   - Order: the aggregate root holding line items, discount, status and observers
//   - LineItem: a (product, quantity) pair; products may carry customizations
//   - Status: the lifecycle state machine Received -> Preparing -> Ready -> Delivered
//   - DiscountStrategy: pluggable subtotal adjustment (none, percentage, fixed amount)
//   - Observer: callbacks run synchronously after every status change
//
// Key business rules:
//   - Totals are always recomputed from the current lines, never stored
//   - The discount applies to the subtotal and tax (8%) applies to the discounted subtotal
//   - Status only moves forward; advancing a delivered order is a no-op
//   - Every status change notifies each registered observer once, in registration order
package order
