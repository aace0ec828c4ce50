// Package order models the customer order lifecycle: the linear status
// state machine, timeline materialization for tracking views, and the
// immutable CustomerOrder value captured at checkout.
package order
