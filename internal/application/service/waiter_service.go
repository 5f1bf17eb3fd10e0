package service

import (
	"context"

	"github.com/fogonlabs/comanda/internal/domain/entity"
	"github.com/fogonlabs/comanda/internal/domain/enum"
	"github.com/fogonlabs/comanda/internal/domain/repository"
	"github.com/fogonlabs/comanda/pkg/apperror"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// WaiterService handles staff account administration
type WaiterService struct {
	waiterRepo repository.WaiterRepository
	shiftRepo  repository.ShiftRepository
}

// NewWaiterService creates a new waiter service
func NewWaiterService(waiterRepo repository.WaiterRepository, shiftRepo repository.ShiftRepository) *WaiterService {
	return &WaiterService{waiterRepo: waiterRepo, shiftRepo: shiftRepo}
}

// CreateWaiterInput represents the create waiter input
type CreateWaiterInput struct {
	Name string
	PIN  string
	Role enum.Role
}

// CreateWaiter creates a new staff account
func (s *WaiterService) CreateWaiter(ctx context.Context, input *CreateWaiterInput) (*entity.Waiter, error) {
	if len(input.PIN) < 4 {
		return nil, apperror.NewUnprocessableError("PIN must be at least 4 digits")
	}
	if !input.Role.Valid() {
		return nil, apperror.NewUnprocessableError("Unknown role")
	}

	existing, err := s.waiterRepo.GetByName(ctx, input.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("A waiter with that name already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.PIN), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	waiter := &entity.Waiter{
		Name:    input.Name,
		PINHash: string(hash),
		Role:    input.Role,
		Active:  true,
	}

	if err := s.waiterRepo.Create(ctx, waiter); err != nil {
		return nil, err
	}

	return waiter, nil
}

// GetWaiter retrieves a waiter by ID
func (s *WaiterService) GetWaiter(ctx context.Context, id uuid.UUID) (*entity.Waiter, error) {
	waiter, err := s.waiterRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if waiter == nil {
		return nil, apperror.NewNotFoundError("Waiter")
	}
	return waiter, nil
}

// ListWaiters lists all staff accounts
func (s *WaiterService) ListWaiters(ctx context.Context) ([]entity.Waiter, error) {
	return s.waiterRepo.List(ctx)
}

// UpdateWaiterInput represents the update waiter input
type UpdateWaiterInput struct {
	ID     uuid.UUID
	Name   *string
	Role   *enum.Role
	Active *bool
	PIN    *string
}

// UpdateWaiter updates a staff account
func (s *WaiterService) UpdateWaiter(ctx context.Context, input *UpdateWaiterInput) (*entity.Waiter, error) {
	waiter, err := s.GetWaiter(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		existing, err := s.waiterRepo.GetByName(ctx, *input.Name)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != waiter.ID {
			return nil, apperror.NewConflictError("A waiter with that name already exists")
		}
		waiter.Name = *input.Name
	}
	if input.Role != nil {
		if !input.Role.Valid() {
			return nil, apperror.NewUnprocessableError("Unknown role")
		}
		waiter.Role = *input.Role
	}
	if input.Active != nil {
		waiter.Active = *input.Active
	}
	if input.PIN != nil {
		if len(*input.PIN) < 4 {
			return nil, apperror.NewUnprocessableError("PIN must be at least 4 digits")
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*input.PIN), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		waiter.PINHash = string(hash)
	}

	if err := s.waiterRepo.Update(ctx, waiter); err != nil {
		return nil, err
	}

	return waiter, nil
}

// DeleteWaiter removes a staff account. An open shift blocks the delete.
func (s *WaiterService) DeleteWaiter(ctx context.Context, id uuid.UUID) error {
	waiter, err := s.waiterRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if waiter == nil {
		return apperror.NewNotFoundError("Waiter")
	}

	shift, err := s.shiftRepo.GetOpenByWaiter(ctx, id)
	if err != nil {
		return err
	}
	if shift != nil {
		return apperror.NewInvalidStateError("Waiter has an open shift")
	}

	return s.waiterRepo.Delete(ctx, id)
}
