package repository

import (
	"context"
	"errors"

	"github.com/fogonlabs/comanda/internal/domain/entity"
	"github.com/fogonlabs/comanda/internal/domain/enum"
	domainRepo "github.com/fogonlabs/comanda/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *gorm.DB) domainRepo.OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	return dbFor(ctx, r.db).Create(order).Error
}

func (r *orderRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var order entity.Order
	err := dbFor(ctx, r.db).
		Preload("Customer").
		Preload("Items").
		Preload("Payments").
		First(&order, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &order, err
}

func (r *orderRepository) GetByNumber(ctx context.Context, number int64) (*entity.Order, error) {
	var order entity.Order
	err := dbFor(ctx, r.db).
		Preload("Customer").
		Preload("Items").
		Preload("Payments").
		First(&order, "order_number = ?", number).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &order, err
}

func (r *orderRepository) GetOpenByTable(ctx context.Context, tableID int) (*entity.Order, error) {
	var order entity.Order
	err := dbFor(ctx, r.db).
		Preload("Items").
		First(&order, "table_id = ? AND status = ?", tableID, enum.OrderStatusOpen).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &order, err
}

func (r *orderRepository) Update(ctx context.Context, order *entity.Order) error {
	// Omit associations so removed line items are not resurrected by Save;
	// item rows are managed through the item methods below.
	return dbFor(ctx, r.db).
		Omit("Items", "Payments", "Customer").
		Save(order).Error
}

func (r *orderRepository) List(ctx context.Context, params *domainRepo.OrderFilterParams) ([]entity.Order, int64, error) {
	var orders []entity.Order
	var total int64

	query := dbFor(ctx, r.db).Model(&entity.Order{})

	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}

	if params.WaiterID != nil {
		query = query.Where("waiter_id = ?", *params.WaiterID)
	}

	if params.CustomerID != nil {
		query = query.Where("customer_id = ?", *params.CustomerID)
	}

	if params.TableID != nil {
		query = query.Where("table_id = ?", *params.TableID)
	}

	if params.StartDate != nil {
		query = query.Where("created_at >= ?", *params.StartDate)
	}

	if params.EndDate != nil {
		query = query.Where("created_at <= ?", *params.EndDate)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Sorting
	sortBy := "created_at"
	sortOrder := "DESC"
	if params.SortBy != "" {
		sortBy = params.SortBy
	}
	if params.SortOrder == "ASC" || params.SortOrder == "asc" {
		sortOrder = "ASC"
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Customer").
		Preload("Items").
		Preload("Payments").
		Order(sortBy + " " + sortOrder).
		Find(&orders).Error

	return orders, total, err
}

func (r *orderRepository) ListOpen(ctx context.Context) ([]entity.Order, error) {
	var orders []entity.Order
	err := dbFor(ctx, r.db).
		Where("status = ?", enum.OrderStatusOpen).
		Preload("Customer").
		Preload("Items").
		Preload("Payments").
		Order("created_at ASC").
		Find(&orders).Error
	return orders, err
}

func (r *orderRepository) ListOpenByWaiter(ctx context.Context, waiterID uuid.UUID) ([]entity.Order, error) {
	var orders []entity.Order
	err := dbFor(ctx, r.db).
		Where("status = ? AND waiter_id = ?", enum.OrderStatusOpen, waiterID).
		Preload("Items").
		Order("created_at ASC").
		Find(&orders).Error
	return orders, err
}

func (r *orderRepository) CreateItem(ctx context.Context, item *entity.OrderItem) error {
	return dbFor(ctx, r.db).Create(item).Error
}

func (r *orderRepository) UpdateItem(ctx context.Context, item *entity.OrderItem) error {
	return dbFor(ctx, r.db).Save(item).Error
}

func (r *orderRepository) DeleteItem(ctx context.Context, id uuid.UUID) error {
	return dbFor(ctx, r.db).Delete(&entity.OrderItem{}, "id = ?", id).Error
}

func (r *orderRepository) CreatePayments(ctx context.Context, payments []entity.Payment) error {
	if len(payments) == 0 {
		return nil
	}
	return dbFor(ctx, r.db).Create(&payments).Error
}
