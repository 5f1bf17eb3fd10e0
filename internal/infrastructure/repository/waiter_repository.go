package repository

import (
	"context"
	"errors"

	"github.com/fogonlabs/comanda/internal/domain/entity"
	domainRepo "github.com/fogonlabs/comanda/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type waiterRepository struct {
	db *gorm.DB
}

// NewWaiterRepository creates a new waiter repository
func NewWaiterRepository(db *gorm.DB) domainRepo.WaiterRepository {
	return &waiterRepository{db: db}
}

func (r *waiterRepository) Create(ctx context.Context, waiter *entity.Waiter) error {
	return dbFor(ctx, r.db).Create(waiter).Error
}

func (r *waiterRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Waiter, error) {
	var waiter entity.Waiter
	err := dbFor(ctx, r.db).First(&waiter, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &waiter, err
}

func (r *waiterRepository) GetByName(ctx context.Context, name string) (*entity.Waiter, error) {
	var waiter entity.Waiter
	err := dbFor(ctx, r.db).First(&waiter, "name = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &waiter, err
}

func (r *waiterRepository) Update(ctx context.Context, waiter *entity.Waiter) error {
	return dbFor(ctx, r.db).Save(waiter).Error
}

func (r *waiterRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return dbFor(ctx, r.db).Delete(&entity.Waiter{}, "id = ?", id).Error
}

func (r *waiterRepository) List(ctx context.Context) ([]entity.Waiter, error) {
	var waiters []entity.Waiter
	err := dbFor(ctx, r.db).Order("name ASC").Find(&waiters).Error
	return waiters, err
}
