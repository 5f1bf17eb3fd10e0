package repository

import (
	"context"

	"github.com/fogonlabs/comanda/internal/domain/entity"
)

// SettingsRepository defines the interface for restaurant settings access
type SettingsRepository interface {
	Get(ctx context.Context) (*entity.RestaurantSettings, error)
	Update(ctx context.Context, settings *entity.RestaurantSettings) error
}
