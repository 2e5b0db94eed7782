package entity

// OrderCounter is the dedicated single-row sequence behind ORD-NNNNN ids.
// Incremented atomically inside the order-create transaction so concurrent
// creates can never collide; values are never reused after delete or archive.
type OrderCounter struct {
	ID    uint  `gorm:"primaryKey"`
	Value int64 `gorm:"not null"`
}
