package order

import (
	"fmt"

	"verdant/internal/pkg/errs"
)

// Status represents the lifecycle state of a customer order.
// The lifecycle is a fixed linear sequence:
//
//	placed -> confirmed -> preparing -> enroute -> arriving -> delivered
//
// Advancing is monotonic and non-branching; the terminal status absorbs
// further advances. The rank of a status is its index in the sequence.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Placed is the initial status: the order has been received.
	Placed

	// Confirmed indicates the dispensary has accepted the order.
	Confirmed

	// Preparing indicates the dispensary is packing the order.
	// Checkout creates orders directly in this status.
	Preparing

	// Enroute indicates a driver is carrying the order to the customer.
	Enroute

	// Arriving indicates the driver is close to the drop-off address.
	Arriving

	// Delivered is the terminal status.
	Delivered
)

// statusSequence defines the total order of statuses; slice index is rank.
var statusSequence = []Status{Placed, Confirmed, Preparing, Enroute, Arriving, Delivered}

var statusStrings = map[Status]string{
	Unknown:   "unknown",
	Placed:    "placed",
	Confirmed: "confirmed",
	Preparing: "preparing",
	Enroute:   "enroute",
	Arriving:  "arriving",
	Delivered: "delivered",
}

var statusLabels = map[Status]string{
	Placed:    "Order placed",
	Confirmed: "Order confirmed",
	Preparing: "Preparing your order",
	Enroute:   "Driver en route",
	Arriving:  "Arriving soon",
	Delivered: "Delivered",
}

// StatusSequence returns the ordered lifecycle statuses.
func StatusSequence() []Status {
	seq := make([]Status, len(statusSequence))
	copy(seq, statusSequence)
	return seq
}

// StatusFromString parses the lowercase wire representation of a status.
func StatusFromString(s string) (Status, error) {
	for status, str := range statusStrings {
		if str == s && status != Unknown {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// String returns the lowercase wire representation of the status.
// Invalid values render as "unknown".
func (s Status) String() string {
	if str, ok := statusStrings[s]; ok {
		return str
	}
	return "unknown"
}

// Label returns the customer-facing timeline label for the status.
func (s Status) Label() string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return "Unknown"
}

// Validate checks that the status is one of the lifecycle statuses.
func (s Status) Validate() error {
	if s.Rank() < 0 {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// Rank returns the status's index in the lifecycle sequence, or -1 for an
// invalid status.
func (s Status) Rank() int {
	for i, status := range statusSequence {
		if status == s {
			return i
		}
	}
	return -1
}

// IsTerminal reports whether the status is the last in the sequence.
func (s Status) IsTerminal() bool {
	return s == statusSequence[len(statusSequence)-1]
}

// Advance returns the next status in the sequence. The terminal status
// advances to itself; an invalid status stays invalid.
func (s Status) Advance() Status {
	rank := s.Rank()
	if rank < 0 {
		return s
	}
	if rank+1 >= len(statusSequence) {
		return s
	}
	return statusSequence[rank+1]
}
