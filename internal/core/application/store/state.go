package store

import (
	"time"

	"verdant/internal/core/domain/model/cart"
	"verdant/internal/core/domain/model/catalog"
	"verdant/internal/core/domain/model/driver"
	"verdant/internal/core/domain/model/kernel"
	"verdant/internal/core/domain/model/order"
)

// Role is the viewer context the dashboard is scoped to.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleDriver   Role = "driver"
	RoleAdmin    Role = "admin"
	RoleBrand    Role = "brand"
)

// SortOrder selects the product list ordering.
type SortOrder string

const (
	SortFeatured  SortOrder = ""
	SortPriceAsc  SortOrder = "price-asc"
	SortPriceDesc SortOrder = "price-desc"
	SortName      SortOrder = "name"
)

// Filters is the current catalog view query.
type Filters struct {
	CategoryID string
	Search     string
	Sort       SortOrder
}

// OrdersState holds placed orders, newest first, and the id of the order
// currently tracked by the customer view. ActiveOrderID is either empty or
// the id of an order in List.
type OrdersState struct {
	List          []order.CustomerOrder
	ActiveOrderID string
}

// DriverState holds the driver dashboard's delivery assignments.
type DriverState struct {
	Assignments []driver.Assignment
}

// Session is the current viewer context. It is not persisted.
type Session struct {
	Role                 Role
	SelectedDispensaryID string
}

// AdminMetrics is the summary block of the admin dashboard.
type AdminMetrics struct {
	OrderCount        int
	Revenue           kernel.Money
	ActiveOrders      int
	AverageOrderValue kernel.Money
}

// AdminOrderRow is one row of the admin dashboard's recent-orders table.
type AdminOrderRow struct {
	ID             string
	CustomerName   string
	DispensaryName string
	Total          kernel.Money
	Status         string
	PlacedAt       time.Time
}

// InventoryRow is one row of the admin inventory snapshot.
type InventoryRow struct {
	ProductID int
	Name      string
	Stock     int
	Status    string
}

// AdminUserRow is one row of the admin user snapshot.
type AdminUserRow struct {
	ID     string
	Name   string
	Role   Role
	Orders int
}

// AdminState is a read projection over the order list plus seeded
// inventory and user snapshots. It is recomputed after every
// order-affecting transition.
type AdminState struct {
	Metrics   AdminMetrics
	Orders    []AdminOrderRow
	Inventory []InventoryRow
	Users     []AdminUserRow
}

// AppState is the single root of the application state. It is immutable
// by replacement: transitions build a new tree (sharing unchanged
// branches) and commit it atomically. Selector memoization keys on the
// tree pointer, which makes that discipline a correctness requirement,
// not an optimization.
type AppState struct {
	Catalog catalog.Catalog
	Filters Filters
	Cart    cart.Cart
	Orders  OrdersState
	Driver  DriverState
	Admin   AdminState
	Session Session
}
