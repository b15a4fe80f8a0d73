package task

import (
	"fmt"

	"forwarding/internal/pkg/errs"
)

// Mode governs how a task is driven and which timing vocabulary applies to its
// four timestamp fields.
//
// ASSIGNED and IGNORED tasks use generic scheduled/actual start/end labels.
// TRACKED tasks represent tracked port calls and relabel the same fields as
// ETA/ETD (scheduled) and ATA/ATD (actual); they are driven by schedule data
// rather than manual customer action, and can never be BLOCKED.
type Mode int

const (
	// UnknownMode represents an invalid or undefined mode.
	UnknownMode Mode = iota

	// ModeAssigned is a task worked manually by its assignee.
	ModeAssigned

	// ModeTracked is a task driven by carrier schedule data (a port call).
	ModeTracked

	// ModeIgnored is a task kept in the graph but excluded from active work.
	ModeIgnored
)

func getModeStrings() map[Mode]string {
	return map[Mode]string{
		ModeAssigned: "ASSIGNED",
		ModeTracked:  "TRACKED",
		ModeIgnored:  "IGNORED",
	}
}

// ModeFromString resolves a mode from its wire representation.
func ModeFromString(s string) (Mode, error) {
	for m, str := range getModeStrings() {
		if str == s {
			return m, nil
		}
	}
	return UnknownMode, errs.NewValueIsInvalidErrorWithCause(
		"mode",
		fmt.Errorf("%q is not a known mode", s),
	)
}

// Validate checks if the Mode value is a member of the closed mode set.
func (m Mode) Validate() error {
	if _, ok := getModeStrings()[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"mode",
			fmt.Errorf("%d is not a valid mode", m),
		)
	}
	return nil
}

// String returns the wire representation of the mode.
// Implements fmt.Stringer.
func (m Mode) String() string {
	if s, ok := getModeStrings()[m]; ok {
		return s
	}
	return "Unknown"
}

// Visibility controls whether a task appears on customer-facing views.
// Only internal operators may toggle it.
type Visibility int

const (
	// UnknownVisibility represents an invalid or undefined visibility.
	UnknownVisibility Visibility = iota

	// VisibilityVisible shows the task to customers.
	VisibilityVisible

	// VisibilityHidden keeps the task internal.
	VisibilityHidden
)

func getVisibilityStrings() map[Visibility]string {
	return map[Visibility]string{
		VisibilityVisible: "VISIBLE",
		VisibilityHidden:  "HIDDEN",
	}
}

// VisibilityFromString resolves a visibility from its wire representation.
func VisibilityFromString(s string) (Visibility, error) {
	for v, str := range getVisibilityStrings() {
		if str == s {
			return v, nil
		}
	}
	return UnknownVisibility, errs.NewValueIsInvalidErrorWithCause(
		"visibility",
		fmt.Errorf("%q is not a known visibility", s),
	)
}

// Validate checks if the Visibility value is a member of the closed set.
func (v Visibility) Validate() error {
	if _, ok := getVisibilityStrings()[v]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"visibility",
			fmt.Errorf("%d is not a valid visibility", v),
		)
	}
	return nil
}

// String returns the wire representation of the visibility.
// Implements fmt.Stringer.
func (v Visibility) String() string {
	if s, ok := getVisibilityStrings()[v]; ok {
		return s
	}
	return "Unknown"
}
