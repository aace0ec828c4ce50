// Package catalog holds the static reference data of the storefront:
// products, categories, and dispensaries. The catalog is constructed once
// at startup and never mutated afterwards.
package catalog

import "verdant/internal/core/domain/model/kernel"

// Product is a single purchasable catalog item.
type Product struct {
	ID           int
	Name         string
	CategoryID   string
	DispensaryID string
	Price        kernel.Money
	THC          string
	Description  string
	ImageURL     string
}

// Category groups products for storefront filtering.
type Category struct {
	ID   string
	Name string
	Icon string
}

// Dispensary is a fulfillment partner the customer orders from.
type Dispensary struct {
	ID      string
	Name    string
	Address string
	Rating  float64
	ETA     string
}

// Catalog bundles the reference data loaded at startup.
type Catalog struct {
	Products     []Product
	Categories   []Category
	Dispensaries []Dispensary
}

// ProductByID looks up a product. The second return value reports whether
// the id resolved; callers decide how to treat stale references.
func (c Catalog) ProductByID(id int) (Product, bool) {
	for _, p := range c.Products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// DispensaryByID looks up a dispensary by its identifier.
func (c Catalog) DispensaryByID(id string) (Dispensary, bool) {
	for _, d := range c.Dispensaries {
		if d.ID == id {
			return d, true
		}
	}
	return Dispensary{}, false
}

// CategoryByID looks up a category by its identifier.
func (c Catalog) CategoryByID(id string) (Category, bool) {
	for _, cat := range c.Categories {
		if cat.ID == id {
			return cat, true
		}
	}
	return Category{}, false
}
