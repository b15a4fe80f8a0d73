package queries

import (
	"context"

	"gorm.io/gorm"

	"forwarding/internal/core/domain/model/shipment"
	"forwarding/internal/core/domain/model/task"
	"forwarding/internal/pkg/errs"
)

// TrackShipmentQueryHandler resolves a tracking code through the
// tracking-code index and returns the customer-facing progress view.
type TrackShipmentQueryHandler struct {
	db *gorm.DB
}

// NewTrackShipmentQueryHandler creates a handler for tracking queries.
func NewTrackShipmentQueryHandler(db *gorm.DB) TrackShipmentQueryHandler {
	return TrackShipmentQueryHandler{db: db}
}

// Handle executes the tracking lookup.
func (h TrackShipmentQueryHandler) Handle(
	ctx context.Context,
	query TrackShipmentQuery,
) (TrackShipmentQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return TrackShipmentQueryResponse{}, err
	}

	var resp TrackShipmentQueryResponse

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			s.id,
			s.origin_port,
			s.destination_port,
			s.load_type
		FROM tracking_codes tc
		JOIN shipments s ON s.id = tc.shipment_id
		WHERE tc.code = ?
	`, query.TrackingCode().String()).Row()

	err := row.Scan(&resp.ShipmentID, &resp.OriginPort, &resp.DestinationPort, &resp.LoadType)
	if err != nil {
		return TrackShipmentQueryResponse{}, errs.NewObjectNotFoundErrorWithCause(
			"trackingCode", query.TrackingCode().String(), err,
		)
	}

	loadType, err := shipment.LoadTypeFromString(resp.LoadType)
	if err != nil {
		return TrackShipmentQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			task_type,
			status,
			display_name,
			completed_at
		FROM tasks
		WHERE shipment_id = ? AND visibility = 'VISIBLE'
		ORDER BY leg_level
	`, resp.ShipmentID).Rows()
	if err != nil {
		return TrackShipmentQueryResponse{}, err
	}
	defer rows.Close()

	resp.Tasks = make([]TrackedTaskResponse, 0)
	for rows.Next() {
		var tracked TrackedTaskResponse
		var taskTypeStr, displayName string

		if err = rows.Scan(&taskTypeStr, &tracked.Status, &displayName, &tracked.CompletedAt); err != nil {
			return TrackShipmentQueryResponse{}, err
		}

		taskType, typeErr := task.TypeFromString(taskTypeStr)
		if typeErr != nil {
			return TrackShipmentQueryResponse{}, typeErr
		}

		tracked.DisplayLabel = task.DeriveDisplayLabel(taskType, displayName, loadType.IsLooseCargo())
		resp.Tasks = append(resp.Tasks, tracked)
	}

	if err = rows.Err(); err != nil {
		return TrackShipmentQueryResponse{}, err
	}

	return resp, nil
}
