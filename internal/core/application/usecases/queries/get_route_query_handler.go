package queries

import (
	"context"

	"gorm.io/gorm"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/route"
	"forwarding/internal/pkg/errs"
)

// GetRouteQueryHandler retrieves a shipment's route timeline from the
// database. Uses direct SQL queries for optimal read performance in the CQRS
// pattern.
//
// When the shipment has no persisted node list, the handler synthesizes the
// two-node ORIGIN/DESTINATION timeline from the shipment document; the
// response is identical on every call until a replace is issued.
type GetRouteQueryHandler struct {
	db *gorm.DB
}

// NewGetRouteQueryHandler creates a handler for route retrieval queries.
func NewGetRouteQueryHandler(db *gorm.DB) GetRouteQueryHandler {
	return GetRouteQueryHandler{db: db}
}

// Handle executes the query and returns the route read model.
func (h GetRouteQueryHandler) Handle(ctx context.Context, query GetRouteQuery) (GetRouteQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetRouteQueryResponse{}, err
	}

	nodes, err := h.loadPersistedNodes(ctx, query)
	if err != nil {
		return GetRouteQueryResponse{}, err
	}
	if len(nodes) > 0 {
		return GetRouteQueryResponse{Nodes: nodes}, nil
	}

	derived, err := h.deriveFromShipment(ctx, query)
	if err != nil {
		return GetRouteQueryResponse{}, err
	}

	return GetRouteQueryResponse{Nodes: derived, IsDerived: true}, nil
}

func (h GetRouteQueryHandler) loadPersistedNodes(ctx context.Context, query GetRouteQuery) ([]RouteNodeResponse, error) {
	nodes := make([]RouteNodeResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			sequence,
			port_code,
			port_name,
			role,
			scheduled_eta,
			scheduled_etd,
			actual_eta,
			actual_etd
		FROM route_nodes
		WHERE shipment_id = ?
		ORDER BY sequence
	`, query.ShipmentID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var node RouteNodeResponse

		err = rows.Scan(
			&node.Sequence,
			&node.PortCode,
			&node.PortName,
			&node.Role,
			&node.ScheduledETA,
			&node.ScheduledETD,
			&node.ActualETA,
			&node.ActualETD,
		)
		if err != nil {
			return nil, err
		}

		nodes = append(nodes, node)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return nodes, nil
}

func (h GetRouteQueryHandler) deriveFromShipment(ctx context.Context, query GetRouteQuery) ([]RouteNodeResponse, error) {
	var originPort, destinationPort string

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			origin_port,
			destination_port
		FROM shipments
		WHERE id = ?
	`, query.ShipmentID().String()).Row()

	if err := row.Scan(&originPort, &destinationPort); err != nil {
		return nil, errs.NewObjectNotFoundErrorWithCause("shipmentId", query.ShipmentID().String(), err)
	}

	origin, err := kernel.NewPortCode(originPort)
	if err != nil {
		return nil, err
	}
	destination, err := kernel.NewPortCode(destinationPort)
	if err != nil {
		return nil, err
	}

	derived, err := route.DeriveRoute(query.ShipmentID(), origin, "", destination, "")
	if err != nil {
		return nil, err
	}

	nodes := derived.Nodes()
	responses := make([]RouteNodeResponse, 0, len(nodes))
	for _, n := range nodes {
		responses = append(responses, RouteNodeResponse{
			Sequence: n.Sequence(),
			PortCode: n.PortCode().String(),
			PortName: n.PortName(),
			Role:     n.Role().String(),
		})
	}

	return responses, nil
}
