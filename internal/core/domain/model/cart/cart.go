// Package cart implements the shopping cart value object: line items with
// clamped quantities, and exact cent-denominated total computation against
// a product catalog.
//
// Cart is immutable: every operation returns a new Cart, leaving the
// receiver untouched. The state tree relies on this for its
// copy-on-replacement discipline.
package cart

import (
	"verdant/internal/core/domain/model/catalog"
	"verdant/internal/core/domain/model/kernel"
)

// LineItem is one (product, quantity) pair in the cart. Quantity is always
// in [1, MaxQuantity] for items held in a cart; lines clamped to zero are
// removed rather than kept.
type LineItem struct {
	ProductID int
	Quantity  int
}

// Rates carries the pricing parameters applied at totals time.
type Rates struct {
	TaxRate      float64
	ServiceRate  float64
	DeliveryBase kernel.Money
}

// FreeDeliveryThreshold is the subtotal at which the delivery fee is
// waived.
var FreeDeliveryThreshold = kernel.NewMoneyFromDollars(150)

// DefaultRates are the storefront's standard pricing parameters.
func DefaultRates() Rates {
	return Rates{
		TaxRate:      0.095,
		ServiceRate:  0.08,
		DeliveryBase: kernel.NewMoneyFromDollars(9),
	}
}

// Cart is the customer's current basket.
type Cart struct {
	Items []LineItem
	Rates Rates
}

// New returns an empty cart with the given rates.
func New(rates Rates) Cart {
	return Cart{Rates: rates}
}

// IsEmpty reports whether the cart has no lines.
func (c Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Add increments the quantity of an existing line, clamped to the per-line
// maximum, or appends a fresh single-quantity line. A line already at the
// maximum returns the cart unchanged, receiver included, so callers can
// detect the no-op.
func (c Cart) Add(productID int) Cart {
	for i, item := range c.Items {
		if item.ProductID != productID {
			continue
		}
		if item.Quantity >= kernel.MaxQuantity {
			return c
		}

		items := make([]LineItem, len(c.Items))
		copy(items, c.Items)
		items[i].Quantity = kernel.ClampQuantity(item.Quantity + 1)
		return Cart{Items: items, Rates: c.Rates}
	}

	items := make([]LineItem, 0, len(c.Items)+1)
	items = append(items, c.Items...)
	items = append(items, LineItem{ProductID: productID, Quantity: 1})
	return Cart{Items: items, Rates: c.Rates}
}

// Quantity returns the quantity of a product's line. The second return
// value reports whether the product is in the cart.
func (c Cart) Quantity(productID int) (int, bool) {
	for _, item := range c.Items {
		if item.ProductID == productID {
			return item.Quantity, true
		}
	}
	return 0, false
}

// SetQuantity replaces a line's quantity, clamped to [0, MaxQuantity].
// A resulting quantity of zero removes the line. Setting a quantity for a
// product not in the cart, or setting a line to the quantity it already
// has, returns the cart unchanged, receiver included.
func (c Cart) SetQuantity(productID, quantity int) Cart {
	quantity = kernel.ClampQuantity(quantity)

	existing, ok := c.Quantity(productID)
	if !ok || existing == quantity {
		return c
	}

	items := make([]LineItem, 0, len(c.Items))
	for _, item := range c.Items {
		if item.ProductID != productID {
			items = append(items, item)
			continue
		}
		if quantity > 0 {
			items = append(items, LineItem{ProductID: productID, Quantity: quantity})
		}
	}
	return Cart{Items: items, Rates: c.Rates}
}

// Remove drops a product's line from the cart entirely.
func (c Cart) Remove(productID int) Cart {
	return c.SetQuantity(productID, 0)
}

// Clear empties the cart, keeping the rates.
func (c Cart) Clear() Cart {
	return Cart{Rates: c.Rates}
}

// ProductLookup resolves a product id against the catalog. The second
// return value reports whether the id resolved.
type ProductLookup func(id int) (catalog.Product, bool)

// DetailedItem is a cart line joined with its catalog product.
type DetailedItem struct {
	Product   catalog.Product
	Quantity  int
	LineTotal kernel.Money
}

// DetailedItems joins cart lines with catalog products. Lines whose
// product id does not resolve are dropped without error; a cart may carry
// stale references after a catalog change and totals must still compute.
func (c Cart) DetailedItems(lookup ProductLookup) []DetailedItem {
	detailed := make([]DetailedItem, 0, len(c.Items))
	for _, item := range c.Items {
		product, ok := lookup(item.ProductID)
		if !ok {
			continue
		}
		detailed = append(detailed, DetailedItem{
			Product:   product,
			Quantity:  item.Quantity,
			LineTotal: product.Price.MulInt(item.Quantity),
		})
	}
	return detailed
}

// Totals is the full price breakdown of a cart.
type Totals struct {
	Subtotal    kernel.Money
	ServiceFee  kernel.Money
	Tax         kernel.Money
	DeliveryFee kernel.Money
	Total       kernel.Money
	ItemCount   int
}

// Totals computes the price breakdown: subtotal over resolvable lines,
// service fee and tax scaled from the subtotal, and the base delivery fee
// waived once the subtotal reaches FreeDeliveryThreshold.
func (c Cart) Totals(lookup ProductLookup) Totals {
	var subtotal kernel.Money
	itemCount := 0
	for _, item := range c.DetailedItems(lookup) {
		subtotal = subtotal.Add(item.LineTotal)
		itemCount += item.Quantity
	}

	serviceFee := subtotal.Scale(c.Rates.ServiceRate)
	tax := subtotal.Scale(c.Rates.TaxRate)

	deliveryFee := c.Rates.DeliveryBase
	if subtotal.GTE(FreeDeliveryThreshold) {
		deliveryFee = 0
	}

	return Totals{
		Subtotal:    subtotal,
		ServiceFee:  serviceFee,
		Tax:         tax,
		DeliveryFee: deliveryFee,
		Total:       subtotal.Add(serviceFee).Add(tax).Add(deliveryFee),
		ItemCount:   itemCount,
	}
}
