// Package auditlog provides the structured-log implementation of the audit
// trail. Entries land in the service log stream; log shipping carries them to
// the central audit store.
package auditlog

import (
	"context"
	"log/slog"

	"forwarding/internal/core/ports"
)

// SlogAuditLogger implements ports.AuditLogger on top of log/slog.
//
// Recording is best-effort by contract: a lost audit line must never fail the
// operation being audited, so Record returns nothing and slog's own error
// handling is the only safety net.
type SlogAuditLogger struct {
	logger *slog.Logger
}

// NewSlogAuditLogger creates an audit logger writing through the given
// structured logger.
func NewSlogAuditLogger(logger *slog.Logger) *SlogAuditLogger {
	return &SlogAuditLogger{
		logger: logger.With("component", "audit"),
	}
}

// Record writes one audit entry.
func (l *SlogAuditLogger) Record(ctx context.Context, entry ports.AuditEntry) {
	l.logger.InfoContext(ctx, "audit",
		"operation", entry.Operation,
		"shipment_id", entry.ShipmentID,
		"actor_uid", entry.ActorUID.String(),
		"outcome", entry.Outcome,
		"detail", entry.Detail,
	)
}
