package entity

import (
	"gorm.io/gorm"
)

// Setting is a process-wide key/value entry. Values are stored as strings;
// boolean settings hold "true"/"false".
type Setting struct {
	gorm.Model
	Key         string `gorm:"uniqueIndex;not null" json:"key"`
	Value       string `json:"value"`
	Description string `json:"description"`
}

// SettingCustomerOrdering gates whether CUSTOMER order creation is accepted.
const SettingCustomerOrdering = "customerOrderingEnabled"
