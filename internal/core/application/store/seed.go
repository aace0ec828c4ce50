package store

import (
	"verdant/internal/core/domain/model/cart"
	"verdant/internal/core/domain/model/catalog"
	"verdant/internal/core/domain/model/driver"
	"verdant/internal/core/domain/model/kernel"
)

// SeedState builds the initial application state from the built-in
// catalog: an empty cart with the standard rates, a customer session
// pointed at the first dispensary, a set of open driver assignments, and
// the admin snapshots.
func SeedState() AppState {
	cat := catalog.Seed()

	state := AppState{
		Catalog: cat,
		Cart:    cart.New(cart.DefaultRates()),
		Session: Session{Role: RoleCustomer},
		Driver:  DriverState{Assignments: seedAssignments()},
		Admin: AdminState{
			Inventory: seedInventory(cat),
			Users:     seedUsers(),
		},
	}
	if len(cat.Dispensaries) > 0 {
		state.Session.SelectedDispensaryID = cat.Dispensaries[0].ID
	}
	state.Admin = projectAdmin(&state)
	return state
}

// NewSeeded creates a store holding the seeded initial state.
func NewSeeded(opts ...Option) *Store {
	return New(SeedState(), opts...)
}

func seedAssignments() []driver.Assignment {
	seeds := []struct {
		orderID  string
		customer string
		address  string
		distance string
		payout   kernel.Money
	}{
		{"VD-1038", "Marcus Webb", "1427 Pinecrest Rd", "3.1 mi", kernel.NewMoneyFromDollars(16)},
		{"VD-1039", "Dana Ortiz", "52 Juniper Ln", "1.8 mi", kernel.NewMoneyFromDollars(12)},
		{"VD-1040", "Priya Natarajan", "900 Harborview Ct", "4.6 mi", kernel.NewMoneyFromDollars(21)},
	}

	assignments := make([]driver.Assignment, 0, len(seeds))
	for _, s := range seeds {
		a, err := driver.NewAssignment(s.orderID, s.customer, s.address, s.distance, s.payout)
		if err != nil {
			continue
		}
		assignments = append(assignments, a)
	}
	return assignments
}

func seedInventory(cat catalog.Catalog) []InventoryRow {
	// Stock numbers are a demo snapshot; anything under 10 units shows as
	// running low.
	stocks := map[int]int{
		1: 42, 2: 7, 3: 120, 4: 18, 5: 64, 6: 90, 7: 5, 8: 33, 9: 12, 10: 3,
	}

	rows := make([]InventoryRow, 0, len(cat.Products))
	for _, p := range cat.Products {
		stock := stocks[p.ID]
		status := "in-stock"
		if stock < 10 {
			status = "low"
		}
		rows = append(rows, InventoryRow{
			ProductID: p.ID,
			Name:      p.Name,
			Stock:     stock,
			Status:    status,
		})
	}
	return rows
}

func seedUsers() []AdminUserRow {
	return []AdminUserRow{
		{ID: "usr-2201", Name: "Riley Chen", Role: RoleCustomer, Orders: 14},
		{ID: "usr-2202", Name: "Marcus Webb", Role: RoleCustomer, Orders: 6},
		{ID: "usr-3101", Name: "Jess Alvarez", Role: RoleDriver, Orders: 0},
		{ID: "usr-4001", Name: "Sam Okafor", Role: RoleAdmin, Orders: 0},
		{ID: "usr-5001", Name: "Terra Labs", Role: RoleBrand, Orders: 0},
	}
}
