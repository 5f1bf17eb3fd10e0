package repository

import (
	"context"

	"github.com/fogonlabs/comanda/internal/domain/entity"
	"github.com/google/uuid"
)

// InventoryRepository defines the interface for inventory data operations
type InventoryRepository interface {
	Create(ctx context.Context, item *entity.InventoryItem) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.InventoryItem, error)
	Update(ctx context.Context, item *entity.InventoryItem) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]entity.InventoryItem, error)
	// ListLow returns items at or below their low-stock threshold
	ListLow(ctx context.Context) ([]entity.InventoryItem, error)
	// AdjustQuantity changes stock by delta in a single atomic update.
	// A negative delta that would take stock below zero fails without
	// modifying the row.
	AdjustQuantity(ctx context.Context, id uuid.UUID, delta int) error
}
