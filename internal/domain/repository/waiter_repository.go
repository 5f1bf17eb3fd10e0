package repository

import (
	"context"

	"github.com/fogonlabs/comanda/internal/domain/entity"
	"github.com/google/uuid"
)

// WaiterRepository defines the interface for waiter data operations
type WaiterRepository interface {
	Create(ctx context.Context, waiter *entity.Waiter) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Waiter, error)
	GetByName(ctx context.Context, name string) (*entity.Waiter, error)
	Update(ctx context.Context, waiter *entity.Waiter) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]entity.Waiter, error)
}
