// Package driver models the driver's side of fulfillment: delivery
// assignments working through their own linear status lifecycle.
package driver

import (
	"github.com/google/uuid"

	"verdant/internal/core/domain/model/kernel"
	"verdant/internal/pkg/errs"
)

// ErrOrderIDIsRequired is returned when creating an assignment without an
// order reference.
var ErrOrderIDIsRequired = errs.NewValueIsRequiredError("order id")

// Assignment is one delivery job offered to the driver. Like orders it is
// a value type: transitions return a modified copy.
type Assignment struct {
	ID           string
	OrderID      string
	CustomerName string
	Address      string
	Distance     string
	Payout       kernel.Money
	Status       Status
}

// NewAssignment creates an assignment in the initial Assigned status with
// a generated identifier.
func NewAssignment(orderID, customerName, address, distance string, payout kernel.Money) (Assignment, error) {
	if orderID == "" {
		return Assignment{}, ErrOrderIDIsRequired
	}

	return Assignment{
		ID:           uuid.NewString(),
		OrderID:      orderID,
		CustomerName: customerName,
		Address:      address,
		Distance:     distance,
		Payout:       payout,
		Status:       Assigned,
	}, nil
}

// Advanced returns a copy of the assignment moved one step along its
// lifecycle. Advancing a delivered assignment returns an identical copy.
func (a Assignment) Advanced() Assignment {
	next := a
	next.Status = a.Status.Advance()
	return next
}
