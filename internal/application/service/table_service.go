package service

import (
	"context"
	"fmt"

	"github.com/fogonlabs/comanda/internal/domain/entity"
	"github.com/fogonlabs/comanda/internal/domain/repository"
	"github.com/fogonlabs/comanda/pkg/apperror"
	"github.com/google/uuid"
)

// TableService handles the floor plan: areas and their tables
type TableService struct {
	tableRepo repository.TableRepository
	orderRepo repository.OrderRepository
}

// NewTableService creates a new table service
func NewTableService(tableRepo repository.TableRepository, orderRepo repository.OrderRepository) *TableService {
	return &TableService{tableRepo: tableRepo, orderRepo: orderRepo}
}

// CreateAreaInput represents the create area input
type CreateAreaInput struct {
	Name     string
	Position int
}

// CreateArea creates a new floor area
func (s *TableService) CreateArea(ctx context.Context, input *CreateAreaInput) (*entity.Area, error) {
	area := &entity.Area{
		Name:     input.Name,
		Position: input.Position,
	}

	if err := s.tableRepo.CreateArea(ctx, area); err != nil {
		return nil, err
	}

	return area, nil
}

// ListAreas lists all areas with their tables
func (s *TableService) ListAreas(ctx context.Context) ([]entity.Area, error) {
	return s.tableRepo.ListAreas(ctx)
}

// UpdateAreaInput represents the update area input
type UpdateAreaInput struct {
	ID       uuid.UUID
	Name     *string
	Position *int
}

// UpdateArea updates an area
func (s *TableService) UpdateArea(ctx context.Context, input *UpdateAreaInput) (*entity.Area, error) {
	area, err := s.tableRepo.GetAreaByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if area == nil {
		return nil, apperror.NewNotFoundError("Area")
	}

	if input.Name != nil {
		area.Name = *input.Name
	}
	if input.Position != nil {
		area.Position = *input.Position
	}

	if err := s.tableRepo.UpdateArea(ctx, area); err != nil {
		return nil, err
	}

	return area, nil
}

// DeleteArea deletes an empty area
func (s *TableService) DeleteArea(ctx context.Context, id uuid.UUID) error {
	area, err := s.tableRepo.GetAreaByID(ctx, id)
	if err != nil {
		return err
	}
	if area == nil {
		return apperror.NewNotFoundError("Area")
	}

	count, err := s.tableRepo.CountTablesInArea(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return apperror.NewInvalidStateError("Area still has tables")
	}

	return s.tableRepo.DeleteArea(ctx, id)
}

// CreateTableInput represents the create table input
type CreateTableInput struct {
	Number int
	AreaID uuid.UUID
	Seats  int
	X      float64
	Y      float64
	Width  float64
	Height float64
	Shape  string
}

// CreateTable creates a new table on the floor plan
func (s *TableService) CreateTable(ctx context.Context, input *CreateTableInput) (*entity.Table, error) {
	if input.Number <= 0 {
		return nil, apperror.NewUnprocessableError("Table number must be positive")
	}

	area, err := s.tableRepo.GetAreaByID(ctx, input.AreaID)
	if err != nil {
		return nil, err
	}
	if area == nil {
		return nil, apperror.NewNotFoundError("Area")
	}

	existing, err := s.tableRepo.GetTableByNumber(ctx, input.Number)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError(fmt.Sprintf("Table %d already exists", input.Number))
	}

	table := &entity.Table{
		Number: input.Number,
		AreaID: input.AreaID,
		Seats:  input.Seats,
		X:      input.X,
		Y:      input.Y,
		Width:  input.Width,
		Height: input.Height,
		Shape:  input.Shape,
	}
	if table.Seats <= 0 {
		table.Seats = 4
	}
	if table.Shape == "" {
		table.Shape = "square"
	}

	if err := s.tableRepo.CreateTable(ctx, table); err != nil {
		return nil, err
	}

	return table, nil
}

// UpdateTableInput represents the update table input
type UpdateTableInput struct {
	ID     uuid.UUID
	AreaID *uuid.UUID
	Seats  *int
	X      *float64
	Y      *float64
	Width  *float64
	Height *float64
	Shape  *string
}

// UpdateTable moves or reshapes a table. The number is fixed for life
// because closed orders reference it.
func (s *TableService) UpdateTable(ctx context.Context, input *UpdateTableInput) (*entity.Table, error) {
	table, err := s.tableRepo.GetTableByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if table == nil {
		return nil, apperror.NewNotFoundError("Table")
	}

	if input.AreaID != nil {
		area, err := s.tableRepo.GetAreaByID(ctx, *input.AreaID)
		if err != nil {
			return nil, err
		}
		if area == nil {
			return nil, apperror.NewNotFoundError("Area")
		}
		table.AreaID = *input.AreaID
	}
	if input.Seats != nil {
		table.Seats = *input.Seats
	}
	if input.X != nil {
		table.X = *input.X
	}
	if input.Y != nil {
		table.Y = *input.Y
	}
	if input.Width != nil {
		table.Width = *input.Width
	}
	if input.Height != nil {
		table.Height = *input.Height
	}
	if input.Shape != nil {
		table.Shape = *input.Shape
	}

	if err := s.tableRepo.UpdateTable(ctx, table); err != nil {
		return nil, err
	}

	return table, nil
}

// DeleteTable deletes a table unless it has an open order
func (s *TableService) DeleteTable(ctx context.Context, id uuid.UUID) error {
	table, err := s.tableRepo.GetTableByID(ctx, id)
	if err != nil {
		return err
	}
	if table == nil {
		return apperror.NewNotFoundError("Table")
	}

	open, err := s.orderRepo.GetOpenByTable(ctx, table.Number)
	if err != nil {
		return err
	}
	if open != nil {
		return apperror.NewInvalidStateError("Table has an open order")
	}

	return s.tableRepo.DeleteTable(ctx, id)
}
