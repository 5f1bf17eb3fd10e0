package service

import (
	"context"

	"github.com/fogonlabs/comanda/internal/domain/entity"
	"github.com/fogonlabs/comanda/internal/domain/repository"
	"github.com/fogonlabs/comanda/pkg/apperror"
	"github.com/google/uuid"
)

// MenuService handles the menu catalog: categories and items
type MenuService struct {
	menuRepo      repository.MenuRepository
	inventoryRepo repository.InventoryRepository
}

// NewMenuService creates a new menu service
func NewMenuService(menuRepo repository.MenuRepository, inventoryRepo repository.InventoryRepository) *MenuService {
	return &MenuService{menuRepo: menuRepo, inventoryRepo: inventoryRepo}
}

// CreateCategoryInput represents the create category input
type CreateCategoryInput struct {
	Name     string
	ImageURL *string
}

// CreateCategory creates a new category
func (s *MenuService) CreateCategory(ctx context.Context, input *CreateCategoryInput) (*entity.Category, error) {
	category := &entity.Category{
		Name:     input.Name,
		ImageURL: input.ImageURL,
	}

	if err := s.menuRepo.CreateCategory(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

// ListCategories lists all categories with their items
func (s *MenuService) ListCategories(ctx context.Context) ([]entity.Category, error) {
	return s.menuRepo.ListCategories(ctx)
}

// UpdateCategoryInput represents the update category input
type UpdateCategoryInput struct {
	ID       uuid.UUID
	Name     *string
	ImageURL *string
}

// UpdateCategory updates a category
func (s *MenuService) UpdateCategory(ctx context.Context, input *UpdateCategoryInput) (*entity.Category, error) {
	category, err := s.menuRepo.GetCategoryByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, apperror.NewNotFoundError("Category")
	}

	if input.Name != nil {
		category.Name = *input.Name
	}
	if input.ImageURL != nil {
		category.ImageURL = input.ImageURL
	}

	if err := s.menuRepo.UpdateCategory(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

// DeleteCategory deletes an empty category
func (s *MenuService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	category, err := s.menuRepo.GetCategoryByID(ctx, id)
	if err != nil {
		return err
	}
	if category == nil {
		return apperror.NewNotFoundError("Category")
	}

	count, err := s.menuRepo.CountItemsInCategory(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return apperror.NewInvalidStateError("Category still has menu items")
	}

	return s.menuRepo.DeleteCategory(ctx, id)
}

// CreateMenuItemInput represents the create menu item input
type CreateMenuItemInput struct {
	Name            string
	Price           int64 // cents
	CategoryID      uuid.UUID
	ImageURL        *string
	IsStockTracked  bool
	InventoryItemID *uuid.UUID
}

// CreateMenuItem creates a new menu item
func (s *MenuService) CreateMenuItem(ctx context.Context, input *CreateMenuItemInput) (*entity.MenuItem, error) {
	if input.Price < 0 {
		return nil, apperror.NewUnprocessableError("Price cannot be negative")
	}

	category, err := s.menuRepo.GetCategoryByID(ctx, input.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, apperror.NewNotFoundError("Category")
	}

	if input.IsStockTracked {
		if input.InventoryItemID == nil {
			return nil, apperror.NewUnprocessableError("Stock-tracked items need an inventory item")
		}
		inv, err := s.inventoryRepo.GetByID(ctx, *input.InventoryItemID)
		if err != nil {
			return nil, err
		}
		if inv == nil {
			return nil, apperror.NewNotFoundError("Inventory item")
		}
	}

	item := &entity.MenuItem{
		Name:            input.Name,
		Price:           input.Price,
		CategoryID:      input.CategoryID,
		ImageURL:        input.ImageURL,
		IsStockTracked:  input.IsStockTracked,
		InventoryItemID: input.InventoryItemID,
	}

	if err := s.menuRepo.CreateItem(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}

// GetMenuItem retrieves a menu item by ID
func (s *MenuService) GetMenuItem(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error) {
	item, err := s.menuRepo.GetItemByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Menu item")
	}
	return item, nil
}

// ListMenuItems lists menu items, optionally filtered by category
func (s *MenuService) ListMenuItems(ctx context.Context, categoryID *uuid.UUID) ([]entity.MenuItem, error) {
	return s.menuRepo.ListItems(ctx, categoryID)
}

// UpdateMenuItemInput represents the update menu item input
type UpdateMenuItemInput struct {
	ID              uuid.UUID
	Name            *string
	Price           *int64 // cents
	CategoryID      *uuid.UUID
	ImageURL        *string
	IsStockTracked  *bool
	InventoryItemID *uuid.UUID
}

// UpdateMenuItem updates a menu item. Open orders keep the name and price
// they captured at add time.
func (s *MenuService) UpdateMenuItem(ctx context.Context, input *UpdateMenuItemInput) (*entity.MenuItem, error) {
	item, err := s.GetMenuItem(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		item.Name = *input.Name
	}
	if input.Price != nil {
		if *input.Price < 0 {
			return nil, apperror.NewUnprocessableError("Price cannot be negative")
		}
		item.Price = *input.Price
	}
	if input.CategoryID != nil {
		category, err := s.menuRepo.GetCategoryByID(ctx, *input.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, apperror.NewNotFoundError("Category")
		}
		item.CategoryID = *input.CategoryID
	}
	if input.ImageURL != nil {
		item.ImageURL = input.ImageURL
	}
	if input.IsStockTracked != nil {
		item.IsStockTracked = *input.IsStockTracked
	}
	if input.InventoryItemID != nil {
		item.InventoryItemID = input.InventoryItemID
	}

	if item.IsStockTracked && item.InventoryItemID == nil {
		return nil, apperror.NewUnprocessableError("Stock-tracked items need an inventory item")
	}

	if err := s.menuRepo.UpdateItem(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}

// DeleteMenuItem deletes a menu item
func (s *MenuService) DeleteMenuItem(ctx context.Context, id uuid.UUID) error {
	item, err := s.menuRepo.GetItemByID(ctx, id)
	if err != nil {
		return err
	}
	if item == nil {
		return apperror.NewNotFoundError("Menu item")
	}

	return s.menuRepo.DeleteItem(ctx, id)
}
