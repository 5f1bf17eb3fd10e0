package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TopItemResult represents a menu item's sales performance
type TopItemResult struct {
	MenuItemID   uuid.UUID
	Name         string
	QuantitySold int
	Revenue      float64
}

// WaiterSalesResult represents sales aggregated by waiter
type WaiterSalesResult struct {
	WaiterID   uuid.UUID
	WaiterName string
	TotalSales float64
	OrderCount int
}

// PaymentMethodResult represents takings split by tender type
type PaymentMethodResult struct {
	Method string
	Amount float64
	Count  int
}

// DailySalesResult represents sales data for a single day
type DailySalesResult struct {
	Date    time.Time
	Revenue float64
	Orders  int
}

// SalesSummaryResult represents aggregate takings over a period
type SalesSummaryResult struct {
	TotalSales     float64
	TotalDiscounts float64
	TotalTax       float64
	OrderCount     int
	AverageTicket  float64
}

// AnalyticsRepository defines interface for reporting/aggregation queries
type AnalyticsRepository interface {
	// GetSalesSummary returns aggregate takings for closed orders in the window
	GetSalesSummary(ctx context.Context, from, to time.Time) (*SalesSummaryResult, error)

	// GetTopItems returns top selling menu items by revenue in the window
	GetTopItems(ctx context.Context, from, to time.Time, limit int) ([]TopItemResult, error)

	// GetSalesByWaiter returns sales aggregated per waiter in the window
	GetSalesByWaiter(ctx context.Context, from, to time.Time) ([]WaiterSalesResult, error)

	// GetSalesByPaymentMethod returns takings split by tender type in the window
	GetSalesByPaymentMethod(ctx context.Context, from, to time.Time) ([]PaymentMethodResult, error)

	// GetDailySales returns daily sales data for the last N days
	GetDailySales(ctx context.Context, days int) ([]DailySalesResult, error)
}
