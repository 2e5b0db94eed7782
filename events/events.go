package events

import (
	"orderboard/entity"
)

// Type names match the wire event names pushed to display clients.
type Type string

const (
	OrderCreated Type = "order:created"
	OrderUpdated Type = "order:status-updated"
	OrderReady   Type = "order:ready"
	OrderDeleted Type = "order:deleted"
	OrderTaken   Type = "order:taken"

	MenuItemCreated Type = "menu:item-created"
	MenuItemUpdated Type = "menu:item-updated"
	MenuItemDeleted Type = "menu:item-deleted"

	SettingsUpdated  Type = "settings:updated"
	CustomerOrdering Type = "settings:customer-ordering"
)

// Event is what subscribers receive. Order-carrying events hold a copy of the
// order as it was committed; delete carries only the identifier.
type Event struct {
	Type    Type `json:"type"`
	Payload any  `json:"payload"`
}

// OrderRef is the payload of order:deleted.
type OrderRef struct {
	OrderID string `json:"orderId"`
}

// TakenRef is the payload of order:taken.
type TakenRef struct {
	OrderID  string `json:"orderId"`
	ReportID uint   `json:"reportId"`
}

// SettingRef is the payload of settings:updated.
type SettingRef struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// CustomerOrderingRef is the payload of settings:customer-ordering.
type CustomerOrderingRef struct {
	Enabled bool `json:"enabled"`
}

func NewOrderEvent(t Type, o entity.Order) Event {
	o.CreatedBy = nil
	return Event{Type: t, Payload: o}
}
