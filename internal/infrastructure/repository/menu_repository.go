package repository

import (
	"context"
	"errors"

	"github.com/fogonlabs/comanda/internal/domain/entity"
	domainRepo "github.com/fogonlabs/comanda/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type menuRepository struct {
	db *gorm.DB
}

// NewMenuRepository creates a new menu repository
func NewMenuRepository(db *gorm.DB) domainRepo.MenuRepository {
	return &menuRepository{db: db}
}

func (r *menuRepository) CreateCategory(ctx context.Context, category *entity.Category) error {
	return dbFor(ctx, r.db).Create(category).Error
}

func (r *menuRepository) GetCategoryByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	var category entity.Category
	err := dbFor(ctx, r.db).First(&category, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &category, err
}

func (r *menuRepository) UpdateCategory(ctx context.Context, category *entity.Category) error {
	return dbFor(ctx, r.db).Save(category).Error
}

func (r *menuRepository) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	return dbFor(ctx, r.db).Delete(&entity.Category{}, "id = ?", id).Error
}

func (r *menuRepository) ListCategories(ctx context.Context) ([]entity.Category, error) {
	var categories []entity.Category
	err := dbFor(ctx, r.db).
		Preload("Items").
		Order("name ASC").
		Find(&categories).Error
	return categories, err
}

func (r *menuRepository) CreateItem(ctx context.Context, item *entity.MenuItem) error {
	return dbFor(ctx, r.db).Create(item).Error
}

func (r *menuRepository) GetItemByID(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error) {
	var item entity.MenuItem
	err := dbFor(ctx, r.db).First(&item, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &item, err
}

func (r *menuRepository) UpdateItem(ctx context.Context, item *entity.MenuItem) error {
	return dbFor(ctx, r.db).Save(item).Error
}

func (r *menuRepository) DeleteItem(ctx context.Context, id uuid.UUID) error {
	return dbFor(ctx, r.db).Delete(&entity.MenuItem{}, "id = ?", id).Error
}

func (r *menuRepository) ListItems(ctx context.Context, categoryID *uuid.UUID) ([]entity.MenuItem, error) {
	var items []entity.MenuItem

	query := dbFor(ctx, r.db).Model(&entity.MenuItem{})
	if categoryID != nil {
		query = query.Where("category_id = ?", *categoryID)
	}

	err := query.Order("name ASC").Find(&items).Error
	return items, err
}

func (r *menuRepository) CountItemsInCategory(ctx context.Context, categoryID uuid.UUID) (int64, error) {
	var count int64
	err := dbFor(ctx, r.db).Model(&entity.MenuItem{}).
		Where("category_id = ?", categoryID).
		Count(&count).Error
	return count, err
}
