package entity

import (
	"gorm.io/gorm"
)

// User is a staff identity (owner, staff, or kitchen). Customers never have
// accounts; they order anonymously.
type User struct {
	gorm.Model
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Password string `json:"-"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Role     string `gorm:"not null;default:staff" json:"role"`
	IsActive bool   `gorm:"default:true" json:"isActive"`

	OrdersCreated []Order  `gorm:"foreignKey:CreatedByID" json:"-"`
	OrdersTaken   []Report `gorm:"foreignKey:TakenByID" json:"-"`
}

const (
	RoleOwner   = "owner"
	RoleStaff   = "staff"
	RoleKitchen = "kitchen"
)

func ValidRole(role string) bool {
	return role == RoleOwner || role == RoleStaff || role == RoleKitchen
}
