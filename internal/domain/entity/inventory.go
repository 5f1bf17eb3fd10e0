package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InventoryItem tracks stock for menu items that sell out. Quantity is
// decremented when stock-tracked items are added to an order and restored
// when an order is cancelled.
type InventoryItem struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	Quantity  int            `gorm:"not null;default:0" json:"quantity"`
	Unit      string         `gorm:"size:50;default:'unit'" json:"unit"`
	LowStock  int            `gorm:"default:0" json:"low_stock"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// IsLow reports whether the item has reached its low-stock threshold
func (i *InventoryItem) IsLow() bool {
	return i.Quantity <= i.LowStock
}

// BeforeCreate generates a UUID before creating a new inventory item
func (i *InventoryItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the InventoryItem model
func (InventoryItem) TableName() string {
	return "inventory_items"
}
