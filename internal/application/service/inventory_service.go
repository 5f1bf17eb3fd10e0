package service

import (
	"context"
	"errors"

	"github.com/fogonlabs/comanda/internal/domain/entity"
	"github.com/fogonlabs/comanda/internal/domain/repository"
	infraRepo "github.com/fogonlabs/comanda/internal/infrastructure/repository"
	"github.com/fogonlabs/comanda/pkg/apperror"
	"github.com/google/uuid"
)

// InventoryService handles stock items and manual adjustments
type InventoryService struct {
	inventoryRepo repository.InventoryRepository
}

// NewInventoryService creates a new inventory service
func NewInventoryService(inventoryRepo repository.InventoryRepository) *InventoryService {
	return &InventoryService{inventoryRepo: inventoryRepo}
}

// CreateInventoryItemInput represents the create inventory item input
type CreateInventoryItemInput struct {
	Name     string
	Quantity int
	Unit     string
	LowStock int
}

// CreateInventoryItem creates a new inventory item
func (s *InventoryService) CreateInventoryItem(ctx context.Context, input *CreateInventoryItemInput) (*entity.InventoryItem, error) {
	if input.Quantity < 0 {
		return nil, apperror.NewUnprocessableError("Quantity cannot be negative")
	}

	item := &entity.InventoryItem{
		Name:     input.Name,
		Quantity: input.Quantity,
		Unit:     input.Unit,
		LowStock: input.LowStock,
	}
	if item.Unit == "" {
		item.Unit = "unit"
	}

	if err := s.inventoryRepo.Create(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}

// GetInventoryItem retrieves an inventory item by ID
func (s *InventoryService) GetInventoryItem(ctx context.Context, id uuid.UUID) (*entity.InventoryItem, error) {
	item, err := s.inventoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Inventory item")
	}
	return item, nil
}

// ListInventory lists all inventory items
func (s *InventoryService) ListInventory(ctx context.Context) ([]entity.InventoryItem, error) {
	return s.inventoryRepo.List(ctx)
}

// ListLowStock lists items at or below their low-stock threshold
func (s *InventoryService) ListLowStock(ctx context.Context) ([]entity.InventoryItem, error) {
	return s.inventoryRepo.ListLow(ctx)
}

// UpdateInventoryItemInput represents the update inventory item input
type UpdateInventoryItemInput struct {
	ID       uuid.UUID
	Name     *string
	Unit     *string
	LowStock *int
}

// UpdateInventoryItem updates an inventory item's descriptive fields.
// Quantity moves only through AdjustStock so every change is deliberate.
func (s *InventoryService) UpdateInventoryItem(ctx context.Context, input *UpdateInventoryItemInput) (*entity.InventoryItem, error) {
	item, err := s.GetInventoryItem(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		item.Name = *input.Name
	}
	if input.Unit != nil {
		item.Unit = *input.Unit
	}
	if input.LowStock != nil {
		item.LowStock = *input.LowStock
	}

	if err := s.inventoryRepo.Update(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}

// AdjustStock applies a manual stock delta (restock or spoilage write-off)
func (s *InventoryService) AdjustStock(ctx context.Context, id uuid.UUID, delta int) (*entity.InventoryItem, error) {
	if delta == 0 {
		return nil, apperror.NewUnprocessableError("Adjustment cannot be zero")
	}

	if _, err := s.GetInventoryItem(ctx, id); err != nil {
		return nil, err
	}

	err := s.inventoryRepo.AdjustQuantity(ctx, id, delta)
	if errors.Is(err, infraRepo.ErrInsufficientStock) {
		return nil, apperror.NewInvalidStateError("Adjustment would take stock below zero")
	}
	if err != nil {
		return nil, err
	}

	return s.GetInventoryItem(ctx, id)
}

// DeleteInventoryItem deletes an inventory item
func (s *InventoryService) DeleteInventoryItem(ctx context.Context, id uuid.UUID) error {
	item, err := s.inventoryRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if item == nil {
		return apperror.NewNotFoundError("Inventory item")
	}

	return s.inventoryRepo.Delete(ctx, id)
}
