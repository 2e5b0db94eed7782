package entity

import (
	"time"

	"gorm.io/gorm"
)

// Report is the immutable archival copy of an Order that was marked taken.
// The source Order is removed in the same transaction that creates it.
type Report struct {
	gorm.Model
	OrderID      string  `gorm:"index;not null" json:"orderId"`
	CustomerName string  `gorm:"not null" json:"customerName"`
	TotalAmount  float64 `json:"totalAmount"`
	Status       Status  `gorm:"type:varchar(16)" json:"status"`
	OrderType    OrderType `gorm:"type:varchar(16)" json:"orderType"`
	Notes        string  `json:"notes"`

	CreatedByID *uint `json:"createdById"`
	CreatedBy   *User `json:"-"`

	TakenByID uint `gorm:"not null" json:"takenById"`
	TakenBy   User `json:"-"`

	OriginalCreatedAt time.Time `gorm:"not null" json:"originalCreatedAt"`
	TakenAt           time.Time `gorm:"index;not null" json:"takenAt"`

	Items []ReportItem `json:"items"`
}
