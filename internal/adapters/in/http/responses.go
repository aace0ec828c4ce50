package http

import (
	"time"

	"verdant/internal/core/application/store"
	"verdant/internal/core/domain/model/cart"
	"verdant/internal/core/domain/model/catalog"
	"verdant/internal/core/domain/model/driver"
	"verdant/internal/core/domain/model/order"
)

// ErrorDTO is the wire shape of every error response.
type ErrorDTO struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ProductDTO is the wire shape of a catalog product. Prices serialize as
// dollar floats.
type ProductDTO struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	CategoryID   string  `json:"categoryId"`
	DispensaryID string  `json:"dispensaryId"`
	Price        float64 `json:"price"`
	THC          string  `json:"thc"`
	Description  string  `json:"description"`
	ImageURL     string  `json:"imageUrl"`
}

// CategoryDTO is the wire shape of a catalog category.
type CategoryDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// DispensaryDTO is the wire shape of a dispensary.
type DispensaryDTO struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Address string  `json:"address"`
	Rating  float64 `json:"rating"`
	ETA     string  `json:"eta"`
}

// CartItemDTO is one cart line joined with its product.
type CartItemDTO struct {
	Product   ProductDTO `json:"product"`
	Quantity  int        `json:"quantity"`
	LineTotal float64    `json:"lineTotal"`
}

// TotalsDTO is the wire shape of a cart price breakdown.
type TotalsDTO struct {
	Subtotal    float64 `json:"subtotal"`
	ServiceFee  float64 `json:"serviceFee"`
	Tax         float64 `json:"tax"`
	DeliveryFee float64 `json:"deliveryFee"`
	Total       float64 `json:"total"`
	ItemCount   int     `json:"itemCount"`
}

// CartDTO is the wire shape of the current cart.
type CartDTO struct {
	Items  []CartItemDTO `json:"items"`
	Totals TotalsDTO     `json:"totals"`
}

// TimelineStepDTO is one entry of an order's status timeline.
type TimelineStepDTO struct {
	Status    string `json:"status"`
	Label     string `json:"label"`
	Completed bool   `json:"completed"`
	At        string `json:"at"`
}

// OrderItemDTO is one frozen order line.
type OrderItemDTO struct {
	ProductID int     `json:"productId"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unitPrice"`
	Quantity  int     `json:"quantity"`
	LineTotal float64 `json:"lineTotal"`
}

// OrderDTO is the wire shape of a placed order.
type OrderDTO struct {
	ID           string            `json:"id"`
	DispensaryID string            `json:"dispensaryId"`
	CustomerName string            `json:"customerName"`
	Phone        string            `json:"phone"`
	Address      string            `json:"address"`
	Notes        string            `json:"notes,omitempty"`
	Items        []OrderItemDTO    `json:"items"`
	Totals       TotalsDTO         `json:"totals"`
	Status       string            `json:"status"`
	PlacedAt     time.Time         `json:"placedAt"`
	Timeline     []TimelineStepDTO `json:"timeline"`
}

// AssignmentDTO is the wire shape of a driver assignment.
type AssignmentDTO struct {
	ID           string  `json:"id"`
	OrderID      string  `json:"orderId"`
	CustomerName string  `json:"customerName"`
	Address      string  `json:"address"`
	Distance     string  `json:"distance"`
	Payout       float64 `json:"payout"`
	Status       string  `json:"status"`
}

// AdminMetricsDTO is the admin dashboard summary block.
type AdminMetricsDTO struct {
	OrderCount        int     `json:"orderCount"`
	Revenue           float64 `json:"revenue"`
	ActiveOrders      int     `json:"activeOrders"`
	AverageOrderValue float64 `json:"averageOrderValue"`
}

// AdminOrderRowDTO is one recent-orders table row.
type AdminOrderRowDTO struct {
	ID             string    `json:"id"`
	CustomerName   string    `json:"customerName"`
	DispensaryName string    `json:"dispensaryName"`
	Total          float64   `json:"total"`
	Status         string    `json:"status"`
	PlacedAt       time.Time `json:"placedAt"`
}

// InventoryRowDTO is one inventory snapshot row.
type InventoryRowDTO struct {
	ProductID int    `json:"productId"`
	Name      string `json:"name"`
	Stock     int    `json:"stock"`
	Status    string `json:"status"`
}

// AdminUserRowDTO is one user snapshot row.
type AdminUserRowDTO struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	Orders int    `json:"orders"`
}

// AdminOverviewDTO is the full admin dashboard payload.
type AdminOverviewDTO struct {
	Metrics   AdminMetricsDTO    `json:"metrics"`
	Orders    []AdminOrderRowDTO `json:"orders"`
	Inventory []InventoryRowDTO  `json:"inventory"`
	Users     []AdminUserRowDTO  `json:"users"`
}

// SessionDTO is the wire shape of the viewer session.
type SessionDTO struct {
	Role                 string `json:"role"`
	SelectedDispensaryID string `json:"selectedDispensaryId"`
}

func toProductDTO(p catalog.Product) ProductDTO {
	return ProductDTO{
		ID:           p.ID,
		Name:         p.Name,
		CategoryID:   p.CategoryID,
		DispensaryID: p.DispensaryID,
		Price:        p.Price.Dollars(),
		THC:          p.THC,
		Description:  p.Description,
		ImageURL:     p.ImageURL,
	}
}

func toProductDTOs(products []catalog.Product) []ProductDTO {
	dtos := make([]ProductDTO, 0, len(products))
	for _, p := range products {
		dtos = append(dtos, toProductDTO(p))
	}
	return dtos
}

func toTotalsDTO(t cart.Totals) TotalsDTO {
	return TotalsDTO{
		Subtotal:    t.Subtotal.Dollars(),
		ServiceFee:  t.ServiceFee.Dollars(),
		Tax:         t.Tax.Dollars(),
		DeliveryFee: t.DeliveryFee.Dollars(),
		Total:       t.Total.Dollars(),
		ItemCount:   t.ItemCount,
	}
}

func toCartDTO(items []cart.DetailedItem, totals cart.Totals) CartDTO {
	dto := CartDTO{
		Items:  make([]CartItemDTO, 0, len(items)),
		Totals: toTotalsDTO(totals),
	}
	for _, item := range items {
		dto.Items = append(dto.Items, CartItemDTO{
			Product:   toProductDTO(item.Product),
			Quantity:  item.Quantity,
			LineTotal: item.LineTotal.Dollars(),
		})
	}
	return dto
}

func toOrderDTO(o order.CustomerOrder) OrderDTO {
	items := make([]OrderItemDTO, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, OrderItemDTO{
			ProductID: item.ProductID,
			Name:      item.Name,
			UnitPrice: item.UnitPrice.Dollars(),
			Quantity:  item.Quantity,
			LineTotal: item.LineTotal.Dollars(),
		})
	}

	timeline := make([]TimelineStepDTO, 0, len(o.Timeline))
	for _, step := range o.Timeline {
		timeline = append(timeline, TimelineStepDTO{
			Status:    step.Status.String(),
			Label:     step.Label,
			Completed: step.Completed,
			At:        step.At,
		})
	}

	return OrderDTO{
		ID:           o.ID,
		DispensaryID: o.DispensaryID,
		CustomerName: o.Contact.Name,
		Phone:        o.Contact.Phone,
		Address:      o.Contact.Address,
		Notes:        o.Contact.Notes,
		Items:        items,
		Totals:       toTotalsDTO(o.Totals),
		Status:       o.Status.String(),
		PlacedAt:     o.PlacedAt,
		Timeline:     timeline,
	}
}

func toAssignmentDTO(a driver.Assignment) AssignmentDTO {
	return AssignmentDTO{
		ID:           a.ID,
		OrderID:      a.OrderID,
		CustomerName: a.CustomerName,
		Address:      a.Address,
		Distance:     a.Distance,
		Payout:       a.Payout.Dollars(),
		Status:       a.Status.String(),
	}
}

func toAdminOverviewDTO(admin store.AdminState) AdminOverviewDTO {
	dto := AdminOverviewDTO{
		Metrics: AdminMetricsDTO{
			OrderCount:        admin.Metrics.OrderCount,
			Revenue:           admin.Metrics.Revenue.Dollars(),
			ActiveOrders:      admin.Metrics.ActiveOrders,
			AverageOrderValue: admin.Metrics.AverageOrderValue.Dollars(),
		},
		Orders:    make([]AdminOrderRowDTO, 0, len(admin.Orders)),
		Inventory: make([]InventoryRowDTO, 0, len(admin.Inventory)),
		Users:     make([]AdminUserRowDTO, 0, len(admin.Users)),
	}
	for _, row := range admin.Orders {
		dto.Orders = append(dto.Orders, AdminOrderRowDTO{
			ID:             row.ID,
			CustomerName:   row.CustomerName,
			DispensaryName: row.DispensaryName,
			Total:          row.Total.Dollars(),
			Status:         row.Status,
			PlacedAt:       row.PlacedAt,
		})
	}
	for _, row := range admin.Inventory {
		dto.Inventory = append(dto.Inventory, InventoryRowDTO(row))
	}
	for _, row := range admin.Users {
		dto.Users = append(dto.Users, AdminUserRowDTO{
			ID:     row.ID,
			Name:   row.Name,
			Role:   string(row.Role),
			Orders: row.Orders,
		})
	}
	return dto
}
