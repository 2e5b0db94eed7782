package entity

// OrderType records provenance: placed by staff, or self-ordered by a customer.
type OrderType string

const (
	OrderTypeStaff    OrderType = "STAFF"
	OrderTypeCustomer OrderType = "CUSTOMER"
)

func (t OrderType) Valid() bool {
	return t == OrderTypeStaff || t == OrderTypeCustomer
}

func ParseOrderType(v string) (OrderType, bool) {
	t := OrderType(v)
	return t, t.Valid()
}
