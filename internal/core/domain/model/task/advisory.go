package task

import "fmt"

// NextLegAdvisory inspects the workflow after a task was completed and returns
// a human-readable warning when the following leg still needs attention, or an
// empty string when there is nothing to flag.
//
// The advisory never blocks the mutation that triggered it; callers attach it
// to an otherwise successful response.
func NextLegAdvisory(tasks []*Task, completed *Task, looseCargo bool) string {
	if completed == nil || completed.Status() != StatusCompleted {
		return ""
	}

	var next *Task
	for _, candidate := range tasks {
		if candidate.LegLevel() <= completed.LegLevel() {
			continue
		}
		if candidate.Mode() == ModeIgnored {
			continue
		}
		if next == nil || candidate.LegLevel() < next.LegLevel() {
			next = candidate
		}
	}
	if next == nil {
		return ""
	}

	switch next.Status() {
	case StatusBlocked:
		return fmt.Sprintf("next leg %q is blocked", next.DisplayLabel(looseCargo))
	case StatusPending:
		return fmt.Sprintf("next leg %q has not been started", next.DisplayLabel(looseCargo))
	default:
		return ""
	}
}
