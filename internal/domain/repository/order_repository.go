package repository

import (
	"context"
	"time"

	"github.com/fogonlabs/comanda/internal/domain/entity"
	"github.com/fogonlabs/comanda/internal/domain/enum"
	"github.com/fogonlabs/comanda/pkg/pagination"
	"github.com/google/uuid"
)

// OrderRepository defines the interface for order data operations
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	GetByNumber(ctx context.Context, number int64) (*entity.Order, error)
	GetOpenByTable(ctx context.Context, tableID int) (*entity.Order, error)
	Update(ctx context.Context, order *entity.Order) error
	List(ctx context.Context, params *OrderFilterParams) ([]entity.Order, int64, error)
	ListOpen(ctx context.Context) ([]entity.Order, error)
	ListOpenByWaiter(ctx context.Context, waiterID uuid.UUID) ([]entity.Order, error)

	CreateItem(ctx context.Context, item *entity.OrderItem) error
	UpdateItem(ctx context.Context, item *entity.OrderItem) error
	DeleteItem(ctx context.Context, id uuid.UUID) error

	CreatePayments(ctx context.Context, payments []entity.Payment) error
}

// OrderFilterParams contains filtering parameters for order queries
type OrderFilterParams struct {
	Pagination *pagination.PaginationParams
	Status     *enum.OrderStatus
	WaiterID   *uuid.UUID
	CustomerID *uuid.UUID
	TableID    *int
	StartDate  *time.Time
	EndDate    *time.Time
	SortBy     string
	SortOrder  string
}
