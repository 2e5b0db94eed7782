package entity

import (
	"gorm.io/gorm"
)

type MenuItem struct {
	gorm.Model
	Name        string  `gorm:"index;not null" json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Category    string  `gorm:"index;default:General" json:"category"`
	ImageURL    string  `json:"imageUrl"`
	IsAvailable bool    `gorm:"index;default:true" json:"isAvailable"`

	OrderItems []OrderItem `json:"-"`
}
