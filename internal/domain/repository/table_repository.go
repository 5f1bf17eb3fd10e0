package repository

import (
	"context"

	"github.com/fogonlabs/comanda/internal/domain/entity"
	"github.com/google/uuid"
)

// TableRepository defines the interface for floor plan data operations
type TableRepository interface {
	CreateArea(ctx context.Context, area *entity.Area) error
	GetAreaByID(ctx context.Context, id uuid.UUID) (*entity.Area, error)
	UpdateArea(ctx context.Context, area *entity.Area) error
	DeleteArea(ctx context.Context, id uuid.UUID) error
	ListAreas(ctx context.Context) ([]entity.Area, error)

	CreateTable(ctx context.Context, table *entity.Table) error
	GetTableByID(ctx context.Context, id uuid.UUID) (*entity.Table, error)
	GetTableByNumber(ctx context.Context, number int) (*entity.Table, error)
	UpdateTable(ctx context.Context, table *entity.Table) error
	DeleteTable(ctx context.Context, id uuid.UUID) error
	CountTablesInArea(ctx context.Context, areaID uuid.UUID) (int64, error)
}
