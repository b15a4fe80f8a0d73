package task

import (
	"fmt"

	"forwarding/internal/pkg/errs"
)

// Status represents the lifecycle state of a workflow task.
//
// COMPLETED is reachable from PENDING and IN_PROGRESS via "mark complete" and
// leaves via the single reverse transition "undo" back to PENDING. There is no
// COMPLETED -> IN_PROGRESS path. BLOCKED is driven by external conditions.
type Status int

const (
	// UnknownStatus represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	UnknownStatus Status = iota

	// StatusPending is the initial state of every task.
	StatusPending

	// StatusInProgress indicates work on the task has started.
	StatusInProgress

	// StatusCompleted indicates the task is done. Reversible only via undo.
	StatusCompleted

	// StatusBlocked indicates the task is waiting on an external condition.
	// Never valid while the task is in TRACKED mode.
	StatusBlocked
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusPending:    "PENDING",
		StatusInProgress: "IN_PROGRESS",
		StatusCompleted:  "COMPLETED",
		StatusBlocked:    "BLOCKED",
	}
}

// StatusFromString resolves a status from its wire representation.
func StatusFromString(s string) (Status, error) {
	for st, str := range getStatusStrings() {
		if str == s {
			return st, nil
		}
	}
	return UnknownStatus, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a known status", s),
	)
}

// Validate checks if the Status value is a member of the closed status set.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// CanComplete reports whether "mark complete" is allowed from this status.
func (s Status) CanComplete() bool {
	return s == StatusPending || s == StatusInProgress
}

// IsTerminal reports whether the status ends the normal edit flow.
// A COMPLETED task can only be changed by undoing the completion.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted
}

// String returns the wire representation of the status.
// Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}
