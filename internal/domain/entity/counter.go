package entity

import "time"

// OrderCounter is a single-row table backing the monotonically increasing
// order number sequence. Incremented atomically inside the order-creation
// transaction so numbers are unique even under concurrent creates.
type OrderCounter struct {
	ID        int       `gorm:"primary_key" json:"id"`
	Next      int64     `gorm:"not null;default:1" json:"next"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the table name for the OrderCounter model
func (OrderCounter) TableName() string {
	return "order_counters"
}
