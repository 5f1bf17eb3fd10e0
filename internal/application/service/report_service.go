package service

import (
	"context"
	"time"

	"github.com/fogonlabs/comanda/internal/domain/repository"
	"github.com/fogonlabs/comanda/pkg/apperror"
)

// ReportService handles sales reporting over closed orders
type ReportService struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewReportService creates a new report service
func NewReportService(analyticsRepo repository.AnalyticsRepository) *ReportService {
	return &ReportService{analyticsRepo: analyticsRepo}
}

// SalesReport is a full takings report over a window
type SalesReport struct {
	From           time.Time                        `json:"from"`
	To             time.Time                        `json:"to"`
	Summary        *repository.SalesSummaryResult   `json:"summary"`
	TopItems       []repository.TopItemResult       `json:"top_items"`
	ByWaiter       []repository.WaiterSalesResult   `json:"by_waiter"`
	ByTenderMethod []repository.PaymentMethodResult `json:"by_tender_method"`
}

// GetSalesReport builds a takings report for the given window
func (s *ReportService) GetSalesReport(ctx context.Context, from, to time.Time) (*SalesReport, error) {
	if !to.After(from) {
		return nil, apperror.NewUnprocessableError("Report window end must be after its start")
	}

	summary, err := s.analyticsRepo.GetSalesSummary(ctx, from, to)
	if err != nil {
		return nil, err
	}

	topItems, err := s.analyticsRepo.GetTopItems(ctx, from, to, 10)
	if err != nil {
		return nil, err
	}

	byWaiter, err := s.analyticsRepo.GetSalesByWaiter(ctx, from, to)
	if err != nil {
		return nil, err
	}

	byMethod, err := s.analyticsRepo.GetSalesByPaymentMethod(ctx, from, to)
	if err != nil {
		return nil, err
	}

	return &SalesReport{
		From:           from,
		To:             to,
		Summary:        summary,
		TopItems:       topItems,
		ByWaiter:       byWaiter,
		ByTenderMethod: byMethod,
	}, nil
}

// GetDailySales returns day-by-day takings for the last N days
func (s *ReportService) GetDailySales(ctx context.Context, days int) ([]repository.DailySalesResult, error) {
	if days <= 0 {
		days = 7
	}
	if days > 90 {
		days = 90
	}
	return s.analyticsRepo.GetDailySales(ctx, days)
}
