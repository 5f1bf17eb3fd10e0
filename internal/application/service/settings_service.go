package service

import (
	"context"

	"github.com/fogonlabs/comanda/internal/domain/entity"
	"github.com/fogonlabs/comanda/internal/domain/enum"
	"github.com/fogonlabs/comanda/internal/domain/repository"
	"github.com/fogonlabs/comanda/pkg/apperror"
)

// SettingsService handles the restaurant's operational profile
type SettingsService struct {
	settingsRepo repository.SettingsRepository
}

// NewSettingsService creates a new settings service
func NewSettingsService(settingsRepo repository.SettingsRepository) *SettingsService {
	return &SettingsService{settingsRepo: settingsRepo}
}

// GetSettings returns the current settings
func (s *SettingsService) GetSettings(ctx context.Context) (*entity.RestaurantSettings, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		return nil, apperror.NewNotFoundError("Restaurant settings")
	}
	return settings, nil
}

// UpdateSettingsInput represents the update settings input
type UpdateSettingsInput struct {
	Name             *string
	Address          *string
	Phone            *string
	TaxID            *string
	Currency         *string
	TaxRate          *float64
	TaxModel         *string
	ReceiptFooter    *string
	KitchenHeader    *string
	KickDrawerOnCash *bool
}

// UpdateSettings updates the settings. Tax changes only affect orders
// recomputed after the change; closed orders keep their figures.
func (s *SettingsService) UpdateSettings(ctx context.Context, input *UpdateSettingsInput) (*entity.RestaurantSettings, error) {
	settings, err := s.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		settings.Name = *input.Name
	}
	if input.Address != nil {
		settings.Address = *input.Address
	}
	if input.Phone != nil {
		settings.Phone = *input.Phone
	}
	if input.TaxID != nil {
		settings.TaxID = *input.TaxID
	}
	if input.Currency != nil {
		settings.Currency = *input.Currency
	}
	if input.TaxRate != nil {
		if *input.TaxRate < 0 || *input.TaxRate >= 1 {
			return nil, apperror.NewUnprocessableError("Tax rate must be between 0 and 1")
		}
		settings.TaxRate = *input.TaxRate
	}
	if input.TaxModel != nil {
		model := enum.TaxModel(*input.TaxModel)
		if !model.Valid() {
			return nil, apperror.NewUnprocessableError("Unknown tax model")
		}
		settings.TaxModel = model
	}
	if input.ReceiptFooter != nil {
		settings.ReceiptFooter = *input.ReceiptFooter
	}
	if input.KitchenHeader != nil {
		settings.KitchenHeader = *input.KitchenHeader
	}
	if input.KickDrawerOnCash != nil {
		settings.KickDrawerOnCash = *input.KickDrawerOnCash
	}

	if err := s.settingsRepo.Update(ctx, settings); err != nil {
		return nil, err
	}

	return settings, nil
}
