// Package routerepo provides the GORM-based implementation of the route
// timeline repository.
package routerepo

import (
	"context"

	"gorm.io/gorm"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/route"
)

// GormRouteRepository implements ports.RouteRepository using GORM. Replace
// rewrites the whole node list, so it should run on a transaction-bound
// connection to keep the delete and the inserts together.
type GormRouteRepository struct {
	db *gorm.DB
}

// NewGormRouteRepository creates a route repository on the given connection.
func NewGormRouteRepository(db *gorm.DB) *GormRouteRepository {
	return &GormRouteRepository{db: db}
}

// Replace overwrites the shipment's entire node list as one unit, creating it
// if none exists.
func (r *GormRouteRepository) Replace(ctx context.Context, aggregate *route.Route) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	err := r.db.WithContext(ctx).
		Where("shipment_id = ?", aggregate.ShipmentID().String()).
		Delete(&RouteNodeDTO{}).Error
	if err != nil {
		return err
	}

	dtos := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dtos).Error
}

// Get retrieves the persisted route for a shipment. The second return value
// reports whether a persisted node list exists; when false, the caller
// derives the route from the shipment's ports instead.
func (r *GormRouteRepository) Get(ctx context.Context, shipmentID kernel.ShipmentID) (*route.Route, bool, error) {
	var dtos []RouteNodeDTO
	err := r.db.WithContext(ctx).
		Where("shipment_id = ?", shipmentID.String()).
		Order("sequence").
		Find(&dtos).Error
	if err != nil {
		return nil, false, err
	}
	if len(dtos) == 0 {
		return nil, false, nil
	}

	aggregate, err := toDomain(shipmentID, dtos)
	if err != nil {
		return nil, false, err
	}
	return aggregate, true, nil
}
