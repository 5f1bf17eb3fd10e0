package repository

import (
	"context"
	"errors"
	"time"

	"github.com/fogonlabs/comanda/internal/domain/entity"
	domainRepo "github.com/fogonlabs/comanda/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type idempotencyRepository struct {
	db *gorm.DB
}

// NewIdempotencyRepository creates a new idempotency repository
func NewIdempotencyRepository(db *gorm.DB) domainRepo.IdempotencyRepository {
	return &idempotencyRepository{db: db}
}

func (r *idempotencyRepository) GetByKey(ctx context.Context, key string, waiterID uuid.UUID) (*entity.IdempotencyKey, error) {
	var ikey entity.IdempotencyKey
	err := dbFor(ctx, r.db).
		First(&ikey, "key = ? AND waiter_id = ?", key, waiterID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &ikey, err
}

func (r *idempotencyRepository) Create(ctx context.Context, ikey *entity.IdempotencyKey) error {
	return dbFor(ctx, r.db).Create(ikey).Error
}

func (r *idempotencyRepository) DeleteExpired(ctx context.Context) error {
	return dbFor(ctx, r.db).
		Delete(&entity.IdempotencyKey{}, "expires_at < ?", time.Now()).Error
}
