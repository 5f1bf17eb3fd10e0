package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Customer carries a running credit balance: debited when an order is put
// on credit, credited when the customer settles up. The balance never goes
// negative, and a customer with outstanding credit cannot be deleted.
type Customer struct {
	ID            uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name          string         `gorm:"size:255;not null" json:"name"`
	Phone         *string        `gorm:"size:50" json:"phone,omitempty"`
	CreditBalance int64          `gorm:"default:0" json:"-"` // cents
	IsWalkIn      bool           `gorm:"default:false" json:"is_walk_in"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Orders []Order `gorm:"foreignKey:CustomerID" json:"-"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (c Customer) MarshalJSON() ([]byte, error) {
	type Alias Customer
	return json.Marshal(&struct {
		Alias
		CreditBalance float64 `json:"credit_balance"`
	}{
		Alias:         Alias(c),
		CreditBalance: float64(c.CreditBalance) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new customer
func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Customer model
func (Customer) TableName() string {
	return "customers"
}
