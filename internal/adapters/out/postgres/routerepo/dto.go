package routerepo

import (
	"time"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/route"
)

// RouteNodeDTO is the persistence model for one node of a persisted route
// timeline. Derived routes are never stored; an empty node list for a
// shipment means "no persisted route".
type RouteNodeDTO struct {
	ShipmentID   string `gorm:"primaryKey;type:varchar(12)"`
	Sequence     int    `gorm:"primaryKey"`
	PortCode     string `gorm:"type:varchar(5);not null"`
	PortName     string
	Role         string `gorm:"type:varchar(16);not null"`
	ScheduledETA *time.Time
	ScheduledETD *time.Time
	ActualETA    *time.Time
	ActualETD    *time.Time
}

// TableName returns the database table name for GORM.
func (RouteNodeDTO) TableName() string {
	return "route_nodes"
}

func fromDomain(aggregate *route.Route) []RouteNodeDTO {
	nodes := aggregate.Nodes()
	dtos := make([]RouteNodeDTO, 0, len(nodes))
	for _, n := range nodes {
		dtos = append(dtos, RouteNodeDTO{
			ShipmentID:   aggregate.ShipmentID().String(),
			Sequence:     n.Sequence(),
			PortCode:     n.PortCode().String(),
			PortName:     n.PortName(),
			Role:         n.Role().String(),
			ScheduledETA: n.Timing().ScheduledETA,
			ScheduledETD: n.Timing().ScheduledETD,
			ActualETA:    n.Timing().ActualETA,
			ActualETD:    n.Timing().ActualETD,
		})
	}
	return dtos
}

func toDomain(shipmentID kernel.ShipmentID, dtos []RouteNodeDTO) (*route.Route, error) {
	nodes := make([]route.Node, 0, len(dtos))
	for _, dto := range dtos {
		portCode, err := kernel.NewPortCode(dto.PortCode)
		if err != nil {
			return nil, err
		}
		role, err := route.NodeRoleFromString(dto.Role)
		if err != nil {
			return nil, err
		}
		node, err := route.RestoreNode(portCode, dto.PortName, dto.Sequence, role, route.Timing{
			ScheduledETA: dto.ScheduledETA,
			ScheduledETD: dto.ScheduledETD,
			ActualETA:    dto.ActualETA,
			ActualETD:    dto.ActualETD,
		})
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
	}

	return route.RestoreRoute(shipmentID, nodes)
}
