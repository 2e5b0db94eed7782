package entity

import (
	"gorm.io/gorm"
)

// OrderItem is a denormalized snapshot of a menu item at order time.
// Name and UnitPrice are copied, so later menu edits never change past orders.
type OrderItem struct {
	gorm.Model
	Name      string  `gorm:"not null" json:"name"`
	UnitPrice float64 `json:"unitPrice"`
	Quantity  int     `gorm:"not null" json:"quantity"`

	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`

	MenuItemID uint     `json:"menuItemId"`
	MenuItem   MenuItem `json:"-"`
}
