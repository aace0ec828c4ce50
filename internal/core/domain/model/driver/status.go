package driver

import (
	"fmt"

	"verdant/internal/pkg/errs"
)

// Status represents the lifecycle state of a driver assignment.
// Assignments progress through a fixed linear sequence, independent of the
// customer-facing order status:
//
//	assigned -> accepted -> enroute -> arrived -> delivered
//
// Advancing is monotonic; the terminal status absorbs further advances.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Assigned is the initial status: the job is offered to the driver.
	Assigned

	// Accepted indicates the driver took the job.
	Accepted

	// Enroute indicates the driver is moving toward the drop-off.
	Enroute

	// Arrived indicates the driver is at the drop-off address.
	Arrived

	// Delivered is the terminal status.
	Delivered
)

var statusSequence = []Status{Assigned, Accepted, Enroute, Arrived, Delivered}

var statusStrings = map[Status]string{
	Unknown:   "unknown",
	Assigned:  "assigned",
	Accepted:  "accepted",
	Enroute:   "enroute",
	Arrived:   "arrived",
	Delivered: "delivered",
}

// StatusFromString parses the lowercase wire representation of a status.
func StatusFromString(s string) (Status, error) {
	for status, str := range statusStrings {
		if str == s && status != Unknown {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid assignment status", s))
}

// String returns the lowercase wire representation of the status.
func (s Status) String() string {
	if str, ok := statusStrings[s]; ok {
		return str
	}
	return "unknown"
}

// Rank returns the status's index in the sequence, or -1 for an invalid
// status.
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

// Advance returns the next status in the sequence, clamped at the
// terminal status.
func (s Status) Advance() Status {
	rank := s.Rank()
	if rank < 0 || rank+1 >= len(statusSequence) {
		return s
	}
	return statusSequence[rank+1]
}
