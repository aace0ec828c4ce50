package store

import (
	"cmp"
	"slices"
	"strings"
	"sync"

	"verdant/internal/core/domain/model/cart"
	"verdant/internal/core/domain/model/catalog"
	"verdant/internal/core/domain/model/driver"
	"verdant/internal/core/domain/model/order"
)

// Selector projects a derived value from the state tree. Selectors must be
// pure functions of the tree: reading anything else makes memoization
// unsound.
type Selector[T any] func(*AppState) T

// Memoize wraps a selector with a single-slot cache keyed on the identity
// of the state tree pointer. Calling the memoized selector twice with the
// same tree returns the same result without recomputing.
//
// When the tree pointer changes but the recomputed value is eq-equal to
// the cached one, the previous value (and therefore its identity) is kept
// and the new tree is recorded as seen. That keeps downstream
// identity-based change detection from firing on transitions that did not
// affect this projection. A nil eq disables value stability: every new
// tree yields the freshly computed value.
//
// The returned selector is safe for concurrent use.
func Memoize[T any](project Selector[T], eq func(a, b T) bool) Selector[T] {
	var (
		mu        sync.Mutex
		lastState *AppState
		lastValue T
	)

	return func(state *AppState) T {
		mu.Lock()
		defer mu.Unlock()

		if state == lastState && lastState != nil {
			return lastValue
		}

		next := project(state)
		if lastState != nil && eq != nil && eq(next, lastValue) {
			lastState = state
			return lastValue
		}

		lastState = state
		lastValue = next
		return next
	}
}

// Selectors bundles the memoized projections. Each consumer that needs
// its own cache lifetime creates its own instance; a shared instance is
// fine too since the caches are concurrency-safe.
type Selectors struct {
	// CartItemsDetailed joins cart lines with catalog products.
	CartItemsDetailed Selector[[]cart.DetailedItem]

	// CartTotals is the cart price breakdown.
	CartTotals Selector[cart.Totals]
}

// NewSelectors creates a fresh set of memoized selectors.
func NewSelectors() *Selectors {
	return &Selectors{
		CartItemsDetailed: Memoize(
			func(s *AppState) []cart.DetailedItem {
				return s.Cart.DetailedItems(s.Catalog.ProductByID)
			},
			slices.Equal,
		),
		CartTotals: Memoize(
			func(s *AppState) cart.Totals {
				return s.Cart.Totals(s.Catalog.ProductByID)
			},
			func(a, b cart.Totals) bool { return a == b },
		),
	}
}

// FilteredProducts applies the current filters to the catalog: category,
// case-insensitive search over name and description, then the selected
// sort. The featured (default) sort keeps catalog order.
func FilteredProducts(s *AppState) []catalog.Product {
	products := make([]catalog.Product, 0, len(s.Catalog.Products))
	search := strings.ToLower(strings.TrimSpace(s.Filters.Search))

	for _, p := range s.Catalog.Products {
		if s.Filters.CategoryID != "" && p.CategoryID != s.Filters.CategoryID {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.Description), search) {
			continue
		}
		products = append(products, p)
	}

	switch s.Filters.Sort {
	case SortPriceAsc:
		slices.SortStableFunc(products, func(a, b catalog.Product) int {
			return cmp.Compare(a.Price, b.Price)
		})
	case SortPriceDesc:
		slices.SortStableFunc(products, func(a, b catalog.Product) int {
			return cmp.Compare(b.Price, a.Price)
		})
	case SortName:
		slices.SortStableFunc(products, func(a, b catalog.Product) int {
			return strings.Compare(a.Name, b.Name)
		})
	}
	return products
}

// ActiveOrder returns the order pointed to by ActiveOrderID. The second
// return value reports whether an active order exists.
func ActiveOrder(s *AppState) (order.CustomerOrder, bool) {
	if s.Orders.ActiveOrderID == "" {
		return order.CustomerOrder{}, false
	}
	for _, o := range s.Orders.List {
		if o.ID == s.Orders.ActiveOrderID {
			return o, true
		}
	}
	return order.CustomerOrder{}, false
}

// AssignmentByID returns the driver assignment with the given id.
func AssignmentByID(s *AppState, id string) (driver.Assignment, bool) {
	for _, a := range s.Driver.Assignments {
		if a.ID == id {
			return a, true
		}
	}
	return driver.Assignment{}, false
}

// CartCount returns the number of units in the cart, counting stale lines
// too; the badge reflects what the customer put in, not what resolves.
func CartCount(s *AppState) int {
	count := 0
	for _, item := range s.Cart.Items {
		count += item.Quantity
	}
	return count
}
