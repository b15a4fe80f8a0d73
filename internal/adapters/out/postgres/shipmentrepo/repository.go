// Package shipmentrepo provides the GORM-based implementation of the shipment
// repository, covering the shipment document and the tracking-code index.
package shipmentrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/shipment"
	"forwarding/internal/pkg/errs"
)

// aggregateTracker tracks modified aggregates within a unit of work.
type aggregateTracker interface {
	TrackAggregate(id string, aggregate interface{})
}

// GormShipmentRepository implements ports.ShipmentRepository using GORM.
//
// The shipment document and the tracking-code index live in separate tables
// and are written by separate calls. Creation does not wrap them in one
// transaction; the caller decides what a companion failure means.
type GormShipmentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormShipmentRepository creates a shipment repository on the given
// connection.
func NewGormShipmentRepository(db *gorm.DB, tracker aggregateTracker) *GormShipmentRepository {
	return &GormShipmentRepository{db: db, tracker: tracker}
}

// Add persists a new shipment document.
func (r *GormShipmentRepository) Add(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID().String(), aggregate)
	return nil
}

// AddTrackingIndex writes the tracking-code index entry pointing at the
// shipment.
func (r *GormShipmentRepository) AddTrackingIndex(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := TrackingCodeDTO{
		Code:       aggregate.TrackingCode().String(),
		ShipmentID: aggregate.ID().String(),
	}
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update overwrites an existing shipment document. Last write wins; there is
// no version check.
func (r *GormShipmentRepository) Update(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&ShipmentDTO{}).
		Where("id = ?", dto.ID).
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("shipmentId", dto.ID)
	}

	r.tracker.TrackAggregate(aggregate.ID().String(), aggregate)
	return nil
}

// Get retrieves a shipment by its internal identifier.
func (r *GormShipmentRepository) Get(ctx context.Context, id kernel.ShipmentID) (*shipment.Shipment, error) {
	var dto ShipmentDTO
	err := r.db.WithContext(ctx).First(&dto, "id = ?", id.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("shipmentId", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByTrackingCode resolves a public tracking code through the index and
// returns the shipment it points at.
func (r *GormShipmentRepository) GetByTrackingCode(ctx context.Context, code kernel.TrackingCode) (*shipment.Shipment, error) {
	var indexEntry TrackingCodeDTO
	err := r.db.WithContext(ctx).First(&indexEntry, "code = ?", code.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("trackingCode", code.String())
		}
		return nil, err
	}

	shipmentID, err := kernel.ParseShipmentID(indexEntry.ShipmentID)
	if err != nil {
		return nil, err
	}

	return r.Get(ctx, shipmentID)
}
