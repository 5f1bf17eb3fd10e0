package entity

import (
	"time"

	"github.com/fogonlabs/comanda/internal/domain/enum"
)

// RestaurantSettings is the single-row operational profile: identity
// printed on receipts, tax configuration and kitchen ticket preferences.
type RestaurantSettings struct {
	ID               int           `gorm:"primary_key" json:"id"`
	Name             string        `gorm:"size:255;not null" json:"name"`
	Address          string        `gorm:"size:512" json:"address"`
	Phone            string        `gorm:"size:50" json:"phone"`
	TaxID            string        `gorm:"size:50" json:"tax_id"`
	Currency         string        `gorm:"size:10;default:'EUR'" json:"currency"`
	TaxRate          float64       `gorm:"default:0.21" json:"tax_rate"`
	TaxModel         enum.TaxModel `gorm:"size:20;default:'exclusive'" json:"tax_model"`
	ReceiptFooter    string        `gorm:"size:512" json:"receipt_footer"`
	KitchenHeader    string        `gorm:"size:255" json:"kitchen_header"`
	KickDrawerOnCash bool          `gorm:"default:true" json:"kick_drawer_on_cash"`
	UpdatedAt        time.Time     `json:"updated_at"`
}

// TableName returns the table name for the RestaurantSettings model
func (RestaurantSettings) TableName() string {
	return "restaurant_settings"
}
