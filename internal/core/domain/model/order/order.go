package order

import (
	"time"

	"verdant/internal/core/domain/model/cart"
	"verdant/internal/core/domain/model/kernel"
	"verdant/internal/pkg/errs"
)

// Domain errors for order construction.
var (
	// ErrIDIsRequired is returned when constructing an order without an id.
	ErrIDIsRequired = errs.NewValueIsRequiredError("order id")
	// ErrItemsAreRequired is returned when constructing an order with no lines.
	ErrItemsAreRequired = errs.NewValueIsRequiredError("order items")
)

// Contact is the delivery contact captured at checkout.
type Contact struct {
	Name    string
	Phone   string
	Address string
	Notes   string
}

// LineSnapshot is an order line frozen at checkout time. Name and unit
// price are copied from the catalog so later catalog changes cannot alter
// a placed order.
type LineSnapshot struct {
	ProductID int
	Name      string
	UnitPrice kernel.Money
	Quantity  int
	LineTotal kernel.Money
}

// CustomerOrder is a placed storefront order. It is a value type: state
// transitions return a modified copy, never mutate in place, so snapshots
// of the state tree stay stable.
type CustomerOrder struct {
	ID           string
	DispensaryID string
	Contact      Contact
	Items        []LineSnapshot
	Totals       cart.Totals
	Status       Status
	PlacedAt     time.Time
	Timeline     []TimelineStep
}

// NewCustomerOrder materializes an order from checkout data. The order
// starts in Preparing status with a freshly built timeline.
func NewCustomerOrder(
	id string,
	dispensaryID string,
	contact Contact,
	items []LineSnapshot,
	totals cart.Totals,
	placedAt time.Time,
) (CustomerOrder, error) {
	if id == "" {
		return CustomerOrder{}, ErrIDIsRequired
	}
	if len(items) == 0 {
		return CustomerOrder{}, ErrItemsAreRequired
	}

	return CustomerOrder{
		ID:           id,
		DispensaryID: dispensaryID,
		Contact:      contact,
		Items:        items,
		Totals:       totals,
		Status:       Preparing,
		PlacedAt:     placedAt,
		Timeline:     BuildTimeline(Preparing, placedAt),
	}, nil
}

// Advanced returns a copy of the order moved one step along the lifecycle,
// with its timeline rebuilt for the new status. Advancing a delivered
// order returns an identical copy.
func (o CustomerOrder) Advanced() CustomerOrder {
	next := o
	next.Status = o.Status.Advance()
	next.Timeline = BuildTimeline(next.Status, o.PlacedAt)
	return next
}

// IsActive reports whether the order is still in flight.
func (o CustomerOrder) IsActive() bool {
	return !o.Status.IsTerminal()
}
