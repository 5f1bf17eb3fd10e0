package repository

import (
	"context"
	"errors"

	"github.com/fogonlabs/comanda/internal/domain/entity"
	domainRepo "github.com/fogonlabs/comanda/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrInsufficientStock is returned when a decrement would take stock below zero
var ErrInsufficientStock = errors.New("insufficient stock")

// ErrStockNotFound is returned when an adjustment references a row that
// does not exist
var ErrStockNotFound = errors.New("inventory item not found")

type inventoryRepository struct {
	db *gorm.DB
}

// NewInventoryRepository creates a new inventory repository
func NewInventoryRepository(db *gorm.DB) domainRepo.InventoryRepository {
	return &inventoryRepository{db: db}
}

func (r *inventoryRepository) Create(ctx context.Context, item *entity.InventoryItem) error {
	return dbFor(ctx, r.db).Create(item).Error
}

func (r *inventoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.InventoryItem, error) {
	var item entity.InventoryItem
	err := dbFor(ctx, r.db).First(&item, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &item, err
}

func (r *inventoryRepository) Update(ctx context.Context, item *entity.InventoryItem) error {
	return dbFor(ctx, r.db).Save(item).Error
}

func (r *inventoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return dbFor(ctx, r.db).Delete(&entity.InventoryItem{}, "id = ?", id).Error
}

func (r *inventoryRepository) List(ctx context.Context) ([]entity.InventoryItem, error) {
	var items []entity.InventoryItem
	err := dbFor(ctx, r.db).Order("name ASC").Find(&items).Error
	return items, err
}

func (r *inventoryRepository) ListLow(ctx context.Context) ([]entity.InventoryItem, error) {
	var items []entity.InventoryItem
	err := dbFor(ctx, r.db).
		Where("quantity <= low_stock").
		Order("quantity ASC").
		Find(&items).Error
	return items, err
}

// AdjustQuantity applies the delta with a guarded single-statement update so
// concurrent sales cannot oversell the same stock.
func (r *inventoryRepository) AdjustQuantity(ctx context.Context, id uuid.UUID, delta int) error {
	result := dbFor(ctx, r.db).Model(&entity.InventoryItem{}).
		Where("id = ? AND quantity + ? >= 0", id, delta).
		Update("quantity", gorm.Expr("quantity + ?", delta))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		// Zero rows either means the guard held or the row is gone
		var count int64
		if err := dbFor(ctx, r.db).Model(&entity.InventoryItem{}).
			Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrStockNotFound
		}
		return ErrInsufficientStock
	}
	return nil
}
