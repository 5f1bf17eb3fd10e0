package repository

import (
	"context"

	"github.com/fogonlabs/comanda/internal/domain/entity"
	"github.com/fogonlabs/comanda/pkg/pagination"
	"github.com/google/uuid"
)

// ShiftRepository defines the interface for shift data operations
type ShiftRepository interface {
	Create(ctx context.Context, shift *entity.Shift) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Shift, error)
	// GetOpenByWaiter returns the waiter's currently open shift, or nil.
	// A waiter has at most one open shift at a time.
	GetOpenByWaiter(ctx context.Context, waiterID uuid.UUID) (*entity.Shift, error)
	Update(ctx context.Context, shift *entity.Shift) error
	List(ctx context.Context, params *ShiftFilterParams) ([]entity.Shift, int64, error)

	CreateMovement(ctx context.Context, movement *entity.CashMovement) error
}

// ShiftFilterParams contains filtering parameters for shift queries
type ShiftFilterParams struct {
	Pagination *pagination.PaginationParams
	WaiterID   *uuid.UUID
	OpenOnly   bool
}
