package repository

import (
	"context"
	"time"

	domainRepo "github.com/fogonlabs/comanda/internal/domain/repository"
	"gorm.io/gorm"
)

type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository creates a new analytics repository
func NewAnalyticsRepository(db *gorm.DB) domainRepo.AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func (r *analyticsRepository) GetSalesSummary(ctx context.Context, from, to time.Time) (*domainRepo.SalesSummaryResult, error) {
	var result domainRepo.SalesSummaryResult

	err := dbFor(ctx, r.db).Raw(`
		SELECT
			COALESCE(SUM(o.total), 0) / 100.0 as total_sales,
			COALESCE(SUM(o.discount_amount), 0) / 100.0 as total_discounts,
			COALESCE(SUM(o.tax), 0) / 100.0 as total_tax,
			COUNT(o.id) as order_count
		FROM orders o
		WHERE o.status = 1
		  AND o.closed_at >= ? AND o.closed_at <= ?
	`, from, to).Scan(&result).Error

	if err != nil {
		return nil, err
	}

	if result.OrderCount > 0 {
		result.AverageTicket = result.TotalSales / float64(result.OrderCount)
	}

	return &result, nil
}

func (r *analyticsRepository) GetTopItems(ctx context.Context, from, to time.Time, limit int) ([]domainRepo.TopItemResult, error) {
	var results []domainRepo.TopItemResult

	err := dbFor(ctx, r.db).Raw(`
		SELECT
			oi.menu_item_id as menu_item_id,
			oi.name as name,
			COALESCE(SUM(oi.quantity), 0) as quantity_sold,
			COALESCE(SUM(oi.price * oi.quantity), 0) / 100.0 as revenue
		FROM order_items oi
		JOIN orders o ON o.id = oi.order_id
		WHERE o.status = 1
		  AND o.closed_at >= ? AND o.closed_at <= ?
		GROUP BY oi.menu_item_id, oi.name
		ORDER BY revenue DESC
		LIMIT ?
	`, from, to, limit).Scan(&results).Error

	if err != nil {
		return nil, err
	}

	return results, nil
}

func (r *analyticsRepository) GetSalesByWaiter(ctx context.Context, from, to time.Time) ([]domainRepo.WaiterSalesResult, error) {
	var results []domainRepo.WaiterSalesResult

	err := dbFor(ctx, r.db).Raw(`
		SELECT
			o.waiter_id as waiter_id,
			o.waiter_name as waiter_name,
			COALESCE(SUM(o.total), 0) / 100.0 as total_sales,
			COUNT(o.id) as order_count
		FROM orders o
		WHERE o.status = 1
		  AND o.closed_at >= ? AND o.closed_at <= ?
		GROUP BY o.waiter_id, o.waiter_name
		ORDER BY total_sales DESC
	`, from, to).Scan(&results).Error

	if err != nil {
		return nil, err
	}

	return results, nil
}

func (r *analyticsRepository) GetSalesByPaymentMethod(ctx context.Context, from, to time.Time) ([]domainRepo.PaymentMethodResult, error) {
	var results []domainRepo.PaymentMethodResult

	err := dbFor(ctx, r.db).Raw(`
		SELECT
			CASE p.method WHEN 0 THEN 'cash' WHEN 1 THEN 'card' ELSE 'credit' END as method,
			COALESCE(SUM(p.amount), 0) / 100.0 as amount,
			COUNT(p.id) as count
		FROM payments p
		WHERE p.created_at >= ? AND p.created_at <= ?
		GROUP BY p.method
		ORDER BY amount DESC
	`, from, to).Scan(&results).Error

	if err != nil {
		return nil, err
	}

	return results, nil
}

func (r *analyticsRepository) GetDailySales(ctx context.Context, days int) ([]domainRepo.DailySalesResult, error) {
	results := make([]domainRepo.DailySalesResult, 0, days)
	now := time.Now()

	for i := days - 1; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
		end := start.AddDate(0, 0, 1)

		var row struct {
			Revenue float64
			Orders  int
		}
		err := dbFor(ctx, r.db).Raw(`
			SELECT
				COALESCE(SUM(o.total), 0) / 100.0 as revenue,
				COUNT(o.id) as orders
			FROM orders o
			WHERE o.status = 1
			  AND o.closed_at >= ? AND o.closed_at < ?
		`, start, end).Scan(&row).Error
		if err != nil {
			return nil, err
		}

		results = append(results, domainRepo.DailySalesResult{
			Date:    start,
			Revenue: row.Revenue,
			Orders:  row.Orders,
		})
	}

	return results, nil
}
