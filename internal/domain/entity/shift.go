package entity

import (
	"encoding/json"
	"time"

	"github.com/fogonlabs/comanda/internal/domain/enum"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Shift is one cash-drawer accounting session for a waiter, from opening
// balance to reconciled close. Every payment and cash movement during the
// session mutates it; closing it is terminal.
type Shift struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	WaiterID   uuid.UUID  `gorm:"type:uuid;not null;index" json:"waiter_id"`
	WaiterName string     `gorm:"size:255;not null" json:"waiter_name"`
	StartTime  time.Time  `gorm:"not null" json:"start_time"`
	EndTime    *time.Time `json:"end_time,omitempty"`

	// Accumulators in cents, excluded from JSON (see MarshalJSON)
	StartingBalance int64 `gorm:"default:0" json:"-"`
	CashSales       int64 `gorm:"default:0" json:"-"`
	CardSales       int64 `gorm:"default:0" json:"-"`
	CreditSales     int64 `gorm:"default:0" json:"-"`
	TotalSales      int64 `gorm:"default:0" json:"-"`
	TotalDiscounts  int64 `gorm:"default:0" json:"-"`
	ExpectedCash    int64 `gorm:"default:0" json:"-"`

	// Reconciliation fields, set exactly once at close
	ActualCash *int64 `json:"-"`
	Difference *int64 `json:"-"`

	// Ids of orders that received a payment during this shift
	OrderIDs []uuid.UUID `gorm:"serializer:json" json:"order_ids"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Movements []CashMovement `gorm:"foreignKey:ShiftID" json:"movements,omitempty"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (s Shift) MarshalJSON() ([]byte, error) {
	type Alias Shift
	out := &struct {
		Alias
		StartingBalance float64  `json:"starting_balance"`
		CashSales       float64  `json:"cash_sales"`
		CardSales       float64  `json:"card_sales"`
		CreditSales     float64  `json:"credit_sales"`
		TotalSales      float64  `json:"total_sales"`
		TotalDiscounts  float64  `json:"total_discounts"`
		ExpectedCash    float64  `json:"expected_cash"`
		ActualCash      *float64 `json:"actual_cash,omitempty"`
		Difference      *float64 `json:"difference,omitempty"`
	}{
		Alias:           Alias(s),
		StartingBalance: float64(s.StartingBalance) / 100,
		CashSales:       float64(s.CashSales) / 100,
		CardSales:       float64(s.CardSales) / 100,
		CreditSales:     float64(s.CreditSales) / 100,
		TotalSales:      float64(s.TotalSales) / 100,
		TotalDiscounts:  float64(s.TotalDiscounts) / 100,
		ExpectedCash:    float64(s.ExpectedCash) / 100,
	}
	if s.ActualCash != nil {
		v := float64(*s.ActualCash) / 100
		out.ActualCash = &v
	}
	if s.Difference != nil {
		v := float64(*s.Difference) / 100
		out.Difference = &v
	}
	return json.Marshal(out)
}

// BeforeCreate generates a UUID before creating a new shift
func (s *Shift) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Shift model
func (Shift) TableName() string {
	return "shifts"
}

// IsOpen reports whether the shift is still accumulating
func (s *Shift) IsOpen() bool {
	return s.EndTime == nil
}

// CashIn returns the sum of all cash-in movements in cents
func (s *Shift) CashIn() int64 {
	var sum int64
	for _, m := range s.Movements {
		if m.Direction == enum.MovementDirectionIn {
			sum += m.Amount
		}
	}
	return sum
}

// CashOut returns the sum of all cash-out movements in cents
func (s *Shift) CashOut() int64 {
	var sum int64
	for _, m := range s.Movements {
		if m.Direction == enum.MovementDirectionOut {
			sum += m.Amount
		}
	}
	return sum
}

// ComputeExpectedCash derives the reconciliation baseline from first
// principles: starting balance plus cash sales plus cash in minus cash out.
func (s *Shift) ComputeExpectedCash() int64 {
	return s.StartingBalance + s.CashSales + s.CashIn() - s.CashOut()
}

// ReferencesOrder reports whether the given order was settled (fully or
// partially) during this shift.
func (s *Shift) ReferencesOrder(orderID uuid.UUID) bool {
	for _, id := range s.OrderIDs {
		if id == orderID {
			return true
		}
	}
	return false
}

// CashMovement is an append-only drawer ledger entry: cash put in or taken
// out of the drawer outside of sales, with a mandatory reason.
type CashMovement struct {
	ID        uuid.UUID              `gorm:"type:uuid;primary_key" json:"id"`
	ShiftID   uuid.UUID              `gorm:"type:uuid;not null;index" json:"shift_id"`
	Direction enum.MovementDirection `gorm:"not null" json:"direction"`
	Amount    int64                  `gorm:"not null" json:"-"` // cents
	Reason    string                 `gorm:"size:255;not null" json:"reason"`
	CreatedAt time.Time              `json:"created_at"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (m CashMovement) MarshalJSON() ([]byte, error) {
	type Alias CashMovement
	return json.Marshal(&struct {
		Alias
		Amount float64 `json:"amount"`
	}{
		Alias:  Alias(m),
		Amount: float64(m.Amount) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new cash movement
func (m *CashMovement) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the CashMovement model
func (CashMovement) TableName() string {
	return "cash_movements"
}
