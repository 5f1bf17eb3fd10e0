package repository

import (
	"context"

	"github.com/fogonlabs/comanda/internal/domain/entity"
	domainRepo "github.com/fogonlabs/comanda/internal/domain/repository"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type counterRepository struct {
	db *gorm.DB
}

// NewCounterRepository creates a new counter repository
func NewCounterRepository(db *gorm.DB) domainRepo.CounterRepository {
	return &counterRepository{db: db}
}

// NextOrderNumber claims the next number under a row lock so concurrent
// order creates never receive the same value.
func (r *counterRepository) NextOrderNumber(ctx context.Context) (int64, error) {
	var number int64

	err := dbFor(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		var counter entity.OrderCounter
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&counter, "id = ?", 1).Error; err != nil {
			return err
		}

		number = counter.Next
		counter.Next++
		return tx.Save(&counter).Error
	})

	return number, err
}
