package repository

import (
	"context"
	"errors"

	"github.com/fogonlabs/comanda/internal/domain/entity"
	domainRepo "github.com/fogonlabs/comanda/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type tableRepository struct {
	db *gorm.DB
}

// NewTableRepository creates a new table repository
func NewTableRepository(db *gorm.DB) domainRepo.TableRepository {
	return &tableRepository{db: db}
}

func (r *tableRepository) CreateArea(ctx context.Context, area *entity.Area) error {
	return dbFor(ctx, r.db).Create(area).Error
}

func (r *tableRepository) GetAreaByID(ctx context.Context, id uuid.UUID) (*entity.Area, error) {
	var area entity.Area
	err := dbFor(ctx, r.db).Preload("Tables").First(&area, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &area, err
}

func (r *tableRepository) UpdateArea(ctx context.Context, area *entity.Area) error {
	return dbFor(ctx, r.db).Omit("Tables").Save(area).Error
}

func (r *tableRepository) DeleteArea(ctx context.Context, id uuid.UUID) error {
	return dbFor(ctx, r.db).Delete(&entity.Area{}, "id = ?", id).Error
}

func (r *tableRepository) ListAreas(ctx context.Context) ([]entity.Area, error) {
	var areas []entity.Area
	err := dbFor(ctx, r.db).
		Preload("Tables").
		Order("position ASC, name ASC").
		Find(&areas).Error
	return areas, err
}

func (r *tableRepository) CreateTable(ctx context.Context, table *entity.Table) error {
	return dbFor(ctx, r.db).Create(table).Error
}

func (r *tableRepository) GetTableByID(ctx context.Context, id uuid.UUID) (*entity.Table, error) {
	var table entity.Table
	err := dbFor(ctx, r.db).First(&table, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &table, err
}

func (r *tableRepository) GetTableByNumber(ctx context.Context, number int) (*entity.Table, error) {
	var table entity.Table
	err := dbFor(ctx, r.db).First(&table, "number = ?", number).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &table, err
}

func (r *tableRepository) UpdateTable(ctx context.Context, table *entity.Table) error {
	return dbFor(ctx, r.db).Save(table).Error
}

func (r *tableRepository) DeleteTable(ctx context.Context, id uuid.UUID) error {
	return dbFor(ctx, r.db).Delete(&entity.Table{}, "id = ?", id).Error
}

func (r *tableRepository) CountTablesInArea(ctx context.Context, areaID uuid.UUID) (int64, error) {
	var count int64
	err := dbFor(ctx, r.db).Model(&entity.Table{}).
		Where("area_id = ?", areaID).
		Count(&count).Error
	return count, err
}
