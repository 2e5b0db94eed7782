package entity

import (
	"gorm.io/gorm"
)

// ReportItem carries the order's line-item snapshot into the archive.
type ReportItem struct {
	gorm.Model
	Name      string  `gorm:"not null" json:"name"`
	UnitPrice float64 `json:"unitPrice"`
	Quantity  int     `gorm:"not null" json:"quantity"`

	ReportID uint   `json:"reportId"`
	Report   Report `json:"-"`

	MenuItemID uint `json:"menuItemId"`
}
