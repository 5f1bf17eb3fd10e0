package entity

import (
	"time"

	"github.com/fogonlabs/comanda/internal/domain/enum"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Waiter is a staff account. Authentication is a device-local PIN
// (stored bcrypt-hashed); the role gates privileged operations.
type Waiter struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name      string         `gorm:"size:255;not null;unique" json:"name"`
	PINHash   string         `gorm:"size:255;not null;column:pin_hash" json:"-"`
	Role      enum.Role      `gorm:"size:20;not null;default:'WAITER'" json:"role"`
	Active    bool           `gorm:"default:true" json:"active"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Orders []Order `gorm:"foreignKey:WaiterID" json:"-"`
	Shifts []Shift `gorm:"foreignKey:WaiterID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new waiter
func (w *Waiter) BeforeCreate(tx *gorm.DB) error {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Waiter model
func (Waiter) TableName() string {
	return "waiters"
}
