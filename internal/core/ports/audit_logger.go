package ports

import (
	"context"

	"forwarding/internal/core/domain/model/kernel"
)

// AuditEntry is one record in the shipment audit trail.
type AuditEntry struct {
	Operation  string
	ShipmentID string
	ActorUID   kernel.UUID
	Outcome    string
	Detail     string
}

// AuditLogger is the external audit collaborator. Every shipment creation,
// success or failure, is recorded through it.
//
// Record is best-effort: implementations must never return an error that the
// caller would have to act on — a failed audit write must not abort or roll
// back the operation being audited.
type AuditLogger interface {
	Record(ctx context.Context, entry AuditEntry)
}
