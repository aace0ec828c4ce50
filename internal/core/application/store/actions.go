package store

import (
	"errors"

	"verdant/internal/core/domain/model/driver"
	"verdant/internal/core/domain/model/kernel"
	"verdant/internal/core/domain/model/order"
	"verdant/internal/pkg/errs"
	"verdant/internal/pkg/guard"
)

// Action errors.
var (
	// ErrCartIsEmpty is returned by Checkout when there is nothing to buy.
	ErrCartIsEmpty = errors.New("cart is empty")
	// ErrCheckoutPayloadIsNotConstructed is returned when a CheckoutPayload
	// bypassed its constructor.
	ErrCheckoutPayloadIsNotConstructed = errors.New(
		"CheckoutPayload must be created via NewCheckoutPayload constructor",
	)
)

// CheckoutPayload carries the delivery contact captured by the checkout
// form. Validation happens at construction so a payload that exists is a
// payload that is complete.
type CheckoutPayload struct {
	customerName string
	phone        string
	address      string
	notes        string

	guard guard.ConstructorGuard
}

// NewCheckoutPayload validates and builds a checkout payload. Name, phone,
// and address are required; notes are optional.
func NewCheckoutPayload(customerName, phone, address, notes string) (CheckoutPayload, error) {
	if customerName == "" {
		return CheckoutPayload{}, errs.NewValueIsRequiredError("customerName")
	}
	if phone == "" {
		return CheckoutPayload{}, errs.NewValueIsRequiredError("phone")
	}
	if address == "" {
		return CheckoutPayload{}, errs.NewValueIsRequiredError("address")
	}

	return CheckoutPayload{
		customerName: customerName,
		phone:        phone,
		address:      address,
		notes:        notes,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the payload was created through the constructor.
func (p CheckoutPayload) Validate() error {
	return p.guard.Validate(ErrCheckoutPayloadIsNotConstructed)
}

// CustomerName returns the delivery contact name.
func (p CheckoutPayload) CustomerName() string { return p.customerName }

// Phone returns the delivery contact phone number.
func (p CheckoutPayload) Phone() string { return p.phone }

// Address returns the delivery address.
func (p CheckoutPayload) Address() string { return p.address }

// Notes returns the optional delivery notes.
func (p CheckoutPayload) Notes() string { return p.notes }

// AddToCart adds one unit of a product to the cart, clamping the line at
// the per-line maximum. A line already at the maximum is a silent no-op.
func (s *Store) AddToCart(productID int) {
	s.commit(func(cur *AppState) *AppState {
		if q, ok := cur.Cart.Quantity(productID); ok && q >= kernel.MaxQuantity {
			return cur
		}
		next := *cur
		next.Cart = cur.Cart.Add(productID)
		return &next
	})
}

// UpdateCartQuantity replaces a line's quantity, clamped to [0,9]; a
// resulting zero removes the line. A product not in the cart, or a
// quantity the line already has, is a silent no-op.
func (s *Store) UpdateCartQuantity(productID, quantity int) {
	s.commit(func(cur *AppState) *AppState {
		existing, ok := cur.Cart.Quantity(productID)
		if !ok || existing == kernel.ClampQuantity(quantity) {
			return cur
		}
		next := *cur
		next.Cart = cur.Cart.SetQuantity(productID, quantity)
		return &next
	})
}

// RemoveFromCart drops a product's line from the cart.
func (s *Store) RemoveFromCart(productID int) {
	s.UpdateCartQuantity(productID, 0)
}

// SetFilters replaces the catalog view query.
func (s *Store) SetFilters(filters Filters) {
	s.commit(func(cur *AppState) *AppState {
		if cur.Filters == filters {
			return cur
		}
		next := *cur
		next.Filters = filters
		return &next
	})
}

// SelectDispensary switches the session's selected dispensary. An unknown
// id is a silent no-op.
func (s *Store) SelectDispensary(id string) {
	s.commit(func(cur *AppState) *AppState {
		if _, ok := cur.Catalog.DispensaryByID(id); !ok {
			return cur
		}
		if cur.Session.SelectedDispensaryID == id {
			return cur
		}
		next := *cur
		next.Session.SelectedDispensaryID = id
		return &next
	})
}

// SetRole switches the session's viewer role.
func (s *Store) SetRole(role Role) {
	s.commit(func(cur *AppState) *AppState {
		if cur.Session.Role == role {
			return cur
		}
		next := *cur
		next.Session.Role = role
		return &next
	})
}

// Checkout turns the cart into a placed order: it snapshots the resolvable
// cart lines and totals, creates the order in Preparing status with a
// fresh sequential id, prepends it to the order list, makes it the active
// order, empties the cart, and recomputes the admin projection.
//
// An empty cart (including a cart whose lines all reference missing
// products) fails with ErrCartIsEmpty and leaves the state unchanged.
func (s *Store) Checkout(payload CheckoutPayload) (order.CustomerOrder, error) {
	if err := payload.Validate(); err != nil {
		return order.CustomerOrder{}, err
	}

	var (
		placed      order.CustomerOrder
		checkoutErr error
	)

	s.commit(func(cur *AppState) *AppState {
		if cur.Cart.IsEmpty() {
			checkoutErr = ErrCartIsEmpty
			return cur
		}

		detailed := cur.Cart.DetailedItems(cur.Catalog.ProductByID)
		if len(detailed) == 0 {
			checkoutErr = ErrCartIsEmpty
			return cur
		}

		items := make([]order.LineSnapshot, 0, len(detailed))
		for _, d := range detailed {
			items = append(items, order.LineSnapshot{
				ProductID: d.Product.ID,
				Name:      d.Product.Name,
				UnitPrice: d.Product.Price,
				Quantity:  d.Quantity,
				LineTotal: d.LineTotal,
			})
		}

		newOrder, err := order.NewCustomerOrder(
			s.seq.Next(),
			cur.Session.SelectedDispensaryID,
			order.Contact{
				Name:    payload.CustomerName(),
				Phone:   payload.Phone(),
				Address: payload.Address(),
				Notes:   payload.Notes(),
			},
			items,
			cur.Cart.Totals(cur.Catalog.ProductByID),
			s.now(),
		)
		if err != nil {
			checkoutErr = err
			return cur
		}

		list := make([]order.CustomerOrder, 0, len(cur.Orders.List)+1)
		list = append(list, newOrder)
		list = append(list, cur.Orders.List...)

		next := *cur
		next.Orders = OrdersState{List: list, ActiveOrderID: newOrder.ID}
		next.Cart = cur.Cart.Clear()
		next.Admin = projectAdmin(&next)

		placed = newOrder
		return &next
	})

	return placed, checkoutErr
}

// AdvanceActiveOrderStatus moves the active order one step along its
// lifecycle and rebuilds its timeline. Without an active order, or with
// the active order already delivered, it is a silent no-op.
func (s *Store) AdvanceActiveOrderStatus() {
	s.commit(func(cur *AppState) *AppState {
		id := cur.Orders.ActiveOrderID
		if id == "" {
			return cur
		}

		idx := -1
		for i, o := range cur.Orders.List {
			if o.ID == id {
				idx = i
				break
			}
		}
		if idx < 0 || cur.Orders.List[idx].Status.IsTerminal() {
			return cur
		}

		list := make([]order.CustomerOrder, len(cur.Orders.List))
		copy(list, cur.Orders.List)
		list[idx] = list[idx].Advanced()

		next := *cur
		next.Orders.List = list
		next.Admin = projectAdmin(&next)
		return &next
	})
}

// AdvanceAssignment moves a driver assignment one step along its
// lifecycle. An unknown id, or an assignment already delivered, is a
// silent no-op.
func (s *Store) AdvanceAssignment(id string) {
	s.commit(func(cur *AppState) *AppState {
		idx := -1
		for i, a := range cur.Driver.Assignments {
			if a.ID == id {
				idx = i
				break
			}
		}
		if idx < 0 || cur.Driver.Assignments[idx].Status.IsTerminal() {
			return cur
		}

		assignments := make([]driver.Assignment, len(cur.Driver.Assignments))
		copy(assignments, cur.Driver.Assignments)
		assignments[idx] = assignments[idx].Advanced()

		next := *cur
		next.Driver.Assignments = assignments
		return &next
	})
}
