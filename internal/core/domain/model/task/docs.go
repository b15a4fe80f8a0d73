// Package task contains the workflow task aggregate: the operational steps
// attached to a shipment (haulage, clearances, port calls) and the bounded
// state machine that governs their status, mode, and visibility.
//
// Status transitions:
//
//	PENDING ────┬──> COMPLETED
//	IN_PROGRESS ┘        │
//	    ^────────────────┘
//	       (undo)
//
// BLOCKED is entered and cleared by conditions outside this package's control
// (e.g. an upstream booking reference becoming available) and is structurally
// disallowed while a task is in TRACKED mode.
//
// Every mutation is role-gated: only internal operators may change mode or
// customer-facing visibility; internal operators and customer administrators
// may edit status, assignment, notes, and timing; a customer may only mark a
// task complete when it is not in TRACKED mode.
package task
