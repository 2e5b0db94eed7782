package entity

import (
	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	// Human-readable sequential id (ORD-00001). Assigned once, never reused.
	OrderID      string  `gorm:"uniqueIndex;not null" json:"orderId"`
	CustomerName string  `gorm:"not null" json:"customerName"`
	TotalAmount  float64 `json:"totalAmount"`

	Status    Status    `gorm:"type:varchar(16);index;not null" json:"status"`
	OrderType OrderType `gorm:"type:varchar(16);index;not null" json:"orderType"`

	Notes string `json:"notes"`

	// nil for anonymous customer orders
	CreatedByID *uint `json:"createdById"`
	CreatedBy   *User `json:"-"`

	Items []OrderItem `json:"items"`
}

// CalculateTotal recomputes TotalAmount from the item snapshots.
func (o *Order) CalculateTotal() float64 {
	total := 0.0
	for _, it := range o.Items {
		total += it.UnitPrice * float64(it.Quantity)
	}
	o.TotalAmount = total
	return total
}
