package service

import (
	"context"
	"strings"
	"time"

	"github.com/fogonlabs/comanda/internal/domain/entity"
	"github.com/fogonlabs/comanda/internal/domain/enum"
	"github.com/fogonlabs/comanda/internal/domain/repository"
	"github.com/fogonlabs/comanda/pkg/apperror"
	"github.com/fogonlabs/comanda/pkg/pagination"
	"github.com/google/uuid"
)

// ShiftService handles cash-drawer sessions: opening, drawer movements and
// reconciled close.
type ShiftService struct {
	shiftRepo repository.ShiftRepository
	orderRepo repository.OrderRepository
}

// NewShiftService creates a new shift service
func NewShiftService(shiftRepo repository.ShiftRepository, orderRepo repository.OrderRepository) *ShiftService {
	return &ShiftService{shiftRepo: shiftRepo, orderRepo: orderRepo}
}

// OpenShiftInput represents the open shift input
type OpenShiftInput struct {
	WaiterID        uuid.UUID
	WaiterName      string
	StartingBalance int64 // cents
}

// OpenShift starts a drawer session for a waiter. A waiter has at most one
// open shift at a time.
func (s *ShiftService) OpenShift(ctx context.Context, input *OpenShiftInput) (*entity.Shift, error) {
	if input.StartingBalance < 0 {
		return nil, apperror.NewUnprocessableError("Starting balance cannot be negative")
	}

	existing, err := s.shiftRepo.GetOpenByWaiter(ctx, input.WaiterID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewInvalidStateError("Waiter already has an open shift")
	}

	shift := &entity.Shift{
		WaiterID:        input.WaiterID,
		WaiterName:      input.WaiterName,
		StartTime:       time.Now(),
		StartingBalance: input.StartingBalance,
		ExpectedCash:    input.StartingBalance,
	}

	if err := s.shiftRepo.Create(ctx, shift); err != nil {
		return nil, err
	}

	return shift, nil
}

// GetShift retrieves a shift by ID with its movements
func (s *ShiftService) GetShift(ctx context.Context, id uuid.UUID) (*entity.Shift, error) {
	shift, err := s.shiftRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if shift == nil {
		return nil, apperror.NewNotFoundError("Shift")
	}
	return shift, nil
}

// GetCurrentShift returns the waiter's open shift, or a not-found error
func (s *ShiftService) GetCurrentShift(ctx context.Context, waiterID uuid.UUID) (*entity.Shift, error) {
	shift, err := s.shiftRepo.GetOpenByWaiter(ctx, waiterID)
	if err != nil {
		return nil, err
	}
	if shift == nil {
		return nil, apperror.NewNotFoundError("Open shift")
	}
	return shift, nil
}

// ListShifts lists shifts with filters and pagination
func (s *ShiftService) ListShifts(ctx context.Context, params *repository.ShiftFilterParams) (*pagination.PaginatedResult[entity.Shift], error) {
	shifts, total, err := s.shiftRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(shifts, pag), nil
}

// CashMovementInput represents a drawer movement input
type CashMovementInput struct {
	WaiterID  uuid.UUID
	Direction enum.MovementDirection
	Amount    int64 // cents
	Reason    string
}

// RecordCashMovement appends a movement to the waiter's open shift. Every
// movement needs a positive amount and a reason.
func (s *ShiftService) RecordCashMovement(ctx context.Context, input *CashMovementInput) (*entity.Shift, error) {
	if input.Amount <= 0 {
		return nil, apperror.NewUnprocessableError("Movement amount must be positive")
	}
	if strings.TrimSpace(input.Reason) == "" {
		return nil, apperror.NewUnprocessableError("Movement reason is required")
	}
	if !input.Direction.Valid() {
		return nil, apperror.NewUnprocessableError("Unknown movement direction")
	}

	shift, err := s.shiftRepo.GetOpenByWaiter(ctx, input.WaiterID)
	if err != nil {
		return nil, err
	}
	if shift == nil {
		return nil, apperror.NewInvalidStateError("No open shift to record the movement against")
	}

	movement := &entity.CashMovement{
		ShiftID:   shift.ID,
		Direction: input.Direction,
		Amount:    input.Amount,
		Reason:    strings.TrimSpace(input.Reason),
	}
	if err := s.shiftRepo.CreateMovement(ctx, movement); err != nil {
		return nil, err
	}
	shift.Movements = append(shift.Movements, *movement)

	shift.ExpectedCash = shift.ComputeExpectedCash()
	if err := s.shiftRepo.Update(ctx, shift); err != nil {
		return nil, err
	}

	return shift, nil
}

// CloseShiftInput represents the close shift input
type CloseShiftInput struct {
	WaiterID   uuid.UUID
	ActorRole  enum.Role
	ActualCash int64 // counted drawer contents in cents
}

// CloseShift ends the waiter's open shift. Reconciling the drawer takes a
// manager. Open orders held by the waiter block the close; they must be
// settled or cancelled first. The counted drawer is compared against the
// recomputed expectation and the difference is recorded, positive for
// overage and negative for shortage.
func (s *ShiftService) CloseShift(ctx context.Context, input *CloseShiftInput) (*entity.Shift, error) {
	if !input.ActorRole.CanManage() {
		return nil, apperror.NewForbiddenError("Only a manager can close a shift")
	}
	if input.ActualCash < 0 {
		return nil, apperror.NewUnprocessableError("Counted cash cannot be negative")
	}

	shift, err := s.shiftRepo.GetOpenByWaiter(ctx, input.WaiterID)
	if err != nil {
		return nil, err
	}
	if shift == nil {
		return nil, apperror.NewInvalidStateError("No open shift to close")
	}

	open, err := s.orderRepo.ListOpenByWaiter(ctx, input.WaiterID)
	if err != nil {
		return nil, err
	}
	if len(open) > 0 {
		blocking := make([]map[string]interface{}, 0, len(open))
		for _, o := range open {
			blocking = append(blocking, map[string]interface{}{
				"id":           o.ID,
				"order_number": o.OrderNumber,
				"table_id":     o.TableID,
			})
		}
		return nil, apperror.NewPendingOrdersError("Open orders must be settled before closing the shift", blocking)
	}

	now := time.Now()
	expected := shift.ComputeExpectedCash()
	actual := input.ActualCash
	difference := actual - expected

	shift.EndTime = &now
	shift.ExpectedCash = expected
	shift.ActualCash = &actual
	shift.Difference = &difference

	if err := s.shiftRepo.Update(ctx, shift); err != nil {
		return nil, err
	}

	return shift, nil
}
