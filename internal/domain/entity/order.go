package entity

import (
	"encoding/json"
	"time"

	"github.com/fogonlabs/comanda/internal/domain/enum"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Order represents one table's running tab from creation to payment or
// cancellation. Totals are derived: they are recomputed from the line items
// and discount after every mutation and never patched by hand.
type Order struct {
	ID          uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	OrderNumber int64            `gorm:"uniqueIndex;not null" json:"order_number"`
	TableID     int              `gorm:"not null;index" json:"table_id"`
	WaiterID    uuid.UUID        `gorm:"type:uuid;not null;index" json:"waiter_id"`
	WaiterName  string           `gorm:"size:255;not null" json:"waiter_name"`
	CustomerID  *uuid.UUID       `gorm:"type:uuid;index" json:"customer_id,omitempty"`
	Status      enum.OrderStatus `gorm:"default:0;index" json:"status"`

	// Monetary fields stored in cents, excluded from JSON (see MarshalJSON)
	SubTotal  int64 `gorm:"default:0" json:"-"`
	Tax       int64 `gorm:"default:0" json:"-"`
	Total     int64 `gorm:"default:0" json:"-"`
	TotalPaid int64 `gorm:"default:0" json:"-"`

	DiscountType   *enum.DiscountType `json:"discount_type,omitempty"`
	DiscountValue  float64            `gorm:"default:0" json:"discount_value"`
	DiscountAmount int64              `gorm:"default:0" json:"-"`

	// Snapshot of the line items at the last kitchen-ticket print.
	// Used only to compute what is new since then.
	LastPrinted []ItemSnapshot `gorm:"serializer:json" json:"-"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	ClosedAt  *time.Time     `json:"closed_at,omitempty"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Customer *Customer   `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Items    []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
	Payments []Payment   `gorm:"foreignKey:OrderID" json:"payments,omitempty"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (o Order) MarshalJSON() ([]byte, error) {
	type Alias Order
	return json.Marshal(&struct {
		Alias
		SubTotal       float64 `json:"subtotal"`
		Tax            float64 `json:"tax"`
		Total          float64 `json:"total"`
		TotalPaid      float64 `json:"total_paid"`
		DiscountAmount float64 `json:"discount_amount"`
		Due            float64 `json:"due"`
	}{
		Alias:          Alias(o),
		SubTotal:       float64(o.SubTotal) / 100,
		Tax:            float64(o.Tax) / 100,
		Total:          float64(o.Total) / 100,
		TotalPaid:      float64(o.TotalPaid) / 100,
		DiscountAmount: float64(o.DiscountAmount) / 100,
		Due:            float64(o.Due()) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new order
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Order model
func (Order) TableName() string {
	return "orders"
}

// IsOpen reports whether the order still accepts mutations
func (o *Order) IsOpen() bool {
	return o.Status == enum.OrderStatusOpen
}

// Due returns the outstanding amount in cents, never negative
func (o *Order) Due() int64 {
	due := o.Total - o.TotalPaid
	if due < 0 {
		return 0
	}
	return due
}

// FindItem returns the line item holding the given menu item, or nil
func (o *Order) FindItem(menuItemID uuid.UUID) *OrderItem {
	for i := range o.Items {
		if o.Items[i].MenuItemID == menuItemID {
			return &o.Items[i]
		}
	}
	return nil
}

// TicketLine is one line of a kitchen ticket: an item name and how many
// units of it were added since the last print.
type TicketLine struct {
	MenuItemID uuid.UUID `json:"menu_item_id"`
	Name       string    `json:"name"`
	Quantity   int       `json:"quantity"`
}

// KitchenDelta computes which quantities are new since the last printed
// snapshot. Decreases and removals never reach the kitchen.
func (o *Order) KitchenDelta() []TicketLine {
	printed := make(map[uuid.UUID]int, len(o.LastPrinted))
	for _, s := range o.LastPrinted {
		printed[s.MenuItemID] = s.Quantity
	}

	var lines []TicketLine
	for _, item := range o.Items {
		toPrint := item.Quantity - printed[item.MenuItemID]
		if toPrint > 0 {
			lines = append(lines, TicketLine{
				MenuItemID: item.MenuItemID,
				Name:       item.Name,
				Quantity:   toPrint,
			})
		}
	}
	return lines
}

// SnapshotPrinted records the current line items as the last-printed state.
// The snapshot is an independent copy so later mutations to the order do
// not retroactively alter print history.
func (o *Order) SnapshotPrinted() {
	snap := make([]ItemSnapshot, 0, len(o.Items))
	for _, item := range o.Items {
		snap = append(snap, ItemSnapshot{
			MenuItemID: item.MenuItemID,
			Name:       item.Name,
			Quantity:   item.Quantity,
		})
	}
	o.LastPrinted = snap
}

// ItemSnapshot is a frozen view of one line item, kept on the order as
// part of the last-printed kitchen snapshot.
type ItemSnapshot struct {
	MenuItemID uuid.UUID `json:"menu_item_id"`
	Name       string    `json:"name"`
	Quantity   int       `json:"quantity"`
}

// Addition records one unit being added to a line item, kept for audit display
type Addition struct {
	AddedAt time.Time `json:"added_at"`
}

// OrderItem is a line item: a menu item snapshot (name and price copied by
// value, so later menu edits never alter historical orders) plus a quantity.
// A line item never exists at quantity zero; reaching zero removes it.
type OrderItem struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	OrderID    uuid.UUID  `gorm:"type:uuid;not null;index" json:"order_id"`
	MenuItemID uuid.UUID  `gorm:"type:uuid;not null;index" json:"menu_item_id"`
	Name       string     `gorm:"size:255;not null" json:"name"`
	Price      int64      `gorm:"not null" json:"-"` // unit price in cents
	Quantity   int        `gorm:"not null" json:"quantity"`
	Additions  []Addition `gorm:"serializer:json" json:"additions,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (oi OrderItem) MarshalJSON() ([]byte, error) {
	type Alias OrderItem
	return json.Marshal(&struct {
		Alias
		Price float64 `json:"price"`
		Total float64 `json:"total"`
	}{
		Alias: Alias(oi),
		Price: float64(oi.Price) / 100,
		Total: float64(oi.Price*int64(oi.Quantity)) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new order item
func (oi *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if oi.ID == uuid.Nil {
		oi.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the OrderItem model
func (OrderItem) TableName() string {
	return "order_items"
}

// Payment is an immutable split-payment ledger entry. An order may settle
// across several payments and several checkout transactions; the full
// sequence is retained as an audit trail.
type Payment struct {
	ID        uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	OrderID   uuid.UUID          `gorm:"type:uuid;not null;index" json:"order_id"`
	Method    enum.PaymentMethod `gorm:"not null" json:"method"`
	Amount    int64              `gorm:"not null" json:"-"` // cents
	Position  int                `gorm:"not null" json:"position"`
	CreatedAt time.Time          `json:"created_at"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (p Payment) MarshalJSON() ([]byte, error) {
	type Alias Payment
	return json.Marshal(&struct {
		Alias
		Amount float64 `json:"amount"`
	}{
		Alias:  Alias(p),
		Amount: float64(p.Amount) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new payment
func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Payment model
func (Payment) TableName() string {
	return "payments"
}
