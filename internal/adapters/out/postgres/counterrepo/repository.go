// Package counterrepo provides the GORM-based implementation of the sequence
// counter repository backing shipment identifier allocation.
package counterrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"forwarding/internal/core/domain/model/kernel"
)

// GormCounterRepository implements ports.CounterRepository. Next performs a
// locked read-increment-write, so it must run on a transaction-bound
// connection: the row lock is what linearizes concurrent allocations for the
// same generation across service instances.
type GormCounterRepository struct {
	db *gorm.DB
}

// NewGormCounterRepository creates a counter repository on the given
// connection, which is expected to be a transaction.
func NewGormCounterRepository(db *gorm.DB) *GormCounterRepository {
	return &GormCounterRepository{db: db}
}

// Next advances the generation's counter and returns the new sequence number.
// A generation with no counter row yet is bootstrapped at 1.
func (r *GormCounterRepository) Next(ctx context.Context, generation kernel.Generation) (int64, error) {
	if err := generation.Validate(); err != nil {
		return 0, err
	}

	var dto CounterDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "generation = ?", generation.Prefix()).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		dto = CounterDTO{Generation: generation.Prefix(), Value: 1}
		if err = r.db.WithContext(ctx).Create(&dto).Error; err != nil {
			return 0, err
		}
		return dto.Value, nil
	}
	if err != nil {
		return 0, err
	}

	dto.Value++
	err = r.db.WithContext(ctx).
		Model(&CounterDTO{}).
		Where("generation = ?", dto.Generation).
		Update("value", dto.Value).Error
	if err != nil {
		return 0, err
	}

	return dto.Value, nil
}
