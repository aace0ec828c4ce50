package store

// adminOrderWindow is how many recent orders the admin dashboard shows.
const adminOrderWindow = 6

// projectAdmin recomputes the admin read projection from the order list.
// The inventory and user snapshots are seeded data and carry over
// unchanged; metrics and the recent-order rows are derived fresh.
func projectAdmin(s *AppState) AdminState {
	next := AdminState{
		Inventory: s.Admin.Inventory,
		Users:     s.Admin.Users,
	}

	for _, o := range s.Orders.List {
		next.Metrics.OrderCount++
		next.Metrics.Revenue = next.Metrics.Revenue.Add(o.Totals.Total)
		if o.IsActive() {
			next.Metrics.ActiveOrders++
		}
	}
	next.Metrics.AverageOrderValue = next.Metrics.Revenue.DivInt(next.Metrics.OrderCount)

	window := min(adminOrderWindow, len(s.Orders.List))
	next.Orders = make([]AdminOrderRow, 0, window)
	for _, o := range s.Orders.List[:window] {
		dispensaryName := o.DispensaryID
		if d, ok := s.Catalog.DispensaryByID(o.DispensaryID); ok {
			dispensaryName = d.Name
		}
		next.Orders = append(next.Orders, AdminOrderRow{
			ID:             o.ID,
			CustomerName:   o.Contact.Name,
			DispensaryName: dispensaryName,
			Total:          o.Totals.Total,
			Status:         o.Status.String(),
			PlacedAt:       o.PlacedAt,
		})
	}

	return next
}
