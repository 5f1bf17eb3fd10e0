package repository

import (
	"context"

	"github.com/fogonlabs/comanda/internal/domain/entity"
	"github.com/google/uuid"
)

// MenuRepository defines the interface for menu catalog data operations
type MenuRepository interface {
	CreateCategory(ctx context.Context, category *entity.Category) error
	GetCategoryByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)
	UpdateCategory(ctx context.Context, category *entity.Category) error
	DeleteCategory(ctx context.Context, id uuid.UUID) error
	ListCategories(ctx context.Context) ([]entity.Category, error)

	CreateItem(ctx context.Context, item *entity.MenuItem) error
	GetItemByID(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error)
	UpdateItem(ctx context.Context, item *entity.MenuItem) error
	DeleteItem(ctx context.Context, id uuid.UUID) error
	ListItems(ctx context.Context, categoryID *uuid.UUID) ([]entity.MenuItem, error)
	CountItemsInCategory(ctx context.Context, categoryID uuid.UUID) (int64, error)
}
