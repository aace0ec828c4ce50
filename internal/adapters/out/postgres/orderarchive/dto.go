// Package orderarchive provides the GORM-backed order archive. It maps
// placed orders and their line snapshots to relational tables, storing all
// money columns as integer cents.
package orderarchive

import (
	"time"

	"github.com/google/uuid"

	"verdant/internal/core/domain/model/cart"
	"verdant/internal/core/domain/model/kernel"
	"verdant/internal/core/domain/model/order"
)

// OrderDTO is the database representation of an archived order.
type OrderDTO struct {
	ID           string `gorm:"primaryKey"`
	DispensaryID string `gorm:"index"`

	CustomerName string
	Phone        string
	Address      string
	Notes        string

	SubtotalCents    int64
	ServiceFeeCents  int64
	TaxCents         int64
	DeliveryFeeCents int64
	TotalCents       int64
	ItemCount        int

	Status   string `gorm:"index"`
	PlacedAt time.Time

	Items []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO is the database representation of one archived order line.
type OrderItemDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID        string    `gorm:"index"`
	ProductID      int
	Name           string
	UnitPriceCents int64
	Quantity       int
	LineTotalCents int64
}

// TableName overrides GORM's default naming to use "order_items".
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts a placed order to its database representation.
func fromDomain(o order.CustomerOrder) OrderDTO {
	items := make([]OrderItemDTO, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, OrderItemDTO{
			ID:             uuid.New(),
			OrderID:        o.ID,
			ProductID:      item.ProductID,
			Name:           item.Name,
			UnitPriceCents: item.UnitPrice.Cents(),
			Quantity:       item.Quantity,
			LineTotalCents: item.LineTotal.Cents(),
		})
	}

	return OrderDTO{
		ID:               o.ID,
		DispensaryID:     o.DispensaryID,
		CustomerName:     o.Contact.Name,
		Phone:            o.Contact.Phone,
		Address:          o.Contact.Address,
		Notes:            o.Contact.Notes,
		SubtotalCents:    o.Totals.Subtotal.Cents(),
		ServiceFeeCents:  o.Totals.ServiceFee.Cents(),
		TaxCents:         o.Totals.Tax.Cents(),
		DeliveryFeeCents: o.Totals.DeliveryFee.Cents(),
		TotalCents:       o.Totals.Total.Cents(),
		ItemCount:        o.Totals.ItemCount,
		Status:           o.Status.String(),
		PlacedAt:         o.PlacedAt,
		Items:            items,
	}
}

// toDomain reconstructs an archived order. The timeline is rebuilt from the
// stored status and placement time rather than persisted.
func toDomain(dto OrderDTO) (order.CustomerOrder, error) {
	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return order.CustomerOrder{}, err
	}

	items := make([]order.LineSnapshot, 0, len(dto.Items))
	for _, item := range dto.Items {
		items = append(items, order.LineSnapshot{
			ProductID: item.ProductID,
			Name:      item.Name,
			UnitPrice: kernel.NewMoneyFromCents(item.UnitPriceCents),
			Quantity:  item.Quantity,
			LineTotal: kernel.NewMoneyFromCents(item.LineTotalCents),
		})
	}

	return order.CustomerOrder{
		ID:           dto.ID,
		DispensaryID: dto.DispensaryID,
		Contact: order.Contact{
			Name:    dto.CustomerName,
			Phone:   dto.Phone,
			Address: dto.Address,
			Notes:   dto.Notes,
		},
		Items: items,
		Totals: cart.Totals{
			Subtotal:    kernel.NewMoneyFromCents(dto.SubtotalCents),
			ServiceFee:  kernel.NewMoneyFromCents(dto.ServiceFeeCents),
			Tax:         kernel.NewMoneyFromCents(dto.TaxCents),
			DeliveryFee: kernel.NewMoneyFromCents(dto.DeliveryFeeCents),
			Total:       kernel.NewMoneyFromCents(dto.TotalCents),
			ItemCount:   dto.ItemCount,
		},
		Status:   status,
		PlacedAt: dto.PlacedAt,
		Timeline: order.BuildTimeline(status, dto.PlacedAt),
	}, nil
}
