package repository

import (
	"context"
	"errors"

	"github.com/fogonlabs/comanda/internal/domain/entity"
	domainRepo "github.com/fogonlabs/comanda/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type shiftRepository struct {
	db *gorm.DB
}

// NewShiftRepository creates a new shift repository
func NewShiftRepository(db *gorm.DB) domainRepo.ShiftRepository {
	return &shiftRepository{db: db}
}

func (r *shiftRepository) Create(ctx context.Context, shift *entity.Shift) error {
	return dbFor(ctx, r.db).Create(shift).Error
}

func (r *shiftRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Shift, error) {
	var shift entity.Shift
	err := dbFor(ctx, r.db).
		Preload("Movements").
		First(&shift, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &shift, err
}

func (r *shiftRepository) GetOpenByWaiter(ctx context.Context, waiterID uuid.UUID) (*entity.Shift, error) {
	var shift entity.Shift
	err := dbFor(ctx, r.db).
		Preload("Movements").
		First(&shift, "waiter_id = ? AND end_time IS NULL", waiterID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &shift, err
}

func (r *shiftRepository) Update(ctx context.Context, shift *entity.Shift) error {
	return dbFor(ctx, r.db).
		Omit("Movements").
		Save(shift).Error
}

func (r *shiftRepository) List(ctx context.Context, params *domainRepo.ShiftFilterParams) ([]entity.Shift, int64, error) {
	var shifts []entity.Shift
	var total int64

	query := dbFor(ctx, r.db).Model(&entity.Shift{})

	if params.WaiterID != nil {
		query = query.Where("waiter_id = ?", *params.WaiterID)
	}

	if params.OpenOnly {
		query = query.Where("end_time IS NULL")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Movements").
		Order("start_time DESC").
		Find(&shifts).Error

	return shifts, total, err
}

func (r *shiftRepository) CreateMovement(ctx context.Context, movement *entity.CashMovement) error {
	return dbFor(ctx, r.db).Create(movement).Error
}
