package task

import (
	"errors"
	"time"

	"forwarding/internal/core/domain/model/account"
	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/pkg/errs"
)

// ErrTaskIsNotConstructed is returned when a Task instance was not created
// through NewTask or RestoreTask.
var ErrTaskIsNotConstructed = errors.New("Task must be created via NewTask or RestoreTask")

// Task is an operational workflow step attached to exactly one shipment.
//
// Task follows these invariants:
//   - Belongs to a valid shipment and carries a valid type
//   - A TRACKED task never holds status BLOCKED
//   - COMPLETED is left only through UndoComplete
//   - Never physically deleted, only re-stated
//
// All mutations are role-gated through the account.Actor passed to them.
type Task struct {
	id         kernel.UUID
	shipmentID kernel.ShipmentID
	taskType   Type
	legLevel   int

	status     Status
	mode       Mode
	visibility Visibility
	assignee   Assignee

	scheduledStart *time.Time
	scheduledEnd   *time.Time
	actualStart    *time.Time
	actualEnd      *time.Time

	dueDate         *time.Time
	dueDateOverride bool

	notes       string
	displayName string
	completedAt *time.Time

	isConstructed bool
}

// NewTask creates a fresh workflow task in PENDING status. Mode, visibility,
// and assignee come from the workflow planner that generates the task graph.
func NewTask(
	id kernel.UUID,
	shipmentID kernel.ShipmentID,
	taskType Type,
	legLevel int,
	mode Mode,
	visibility Visibility,
	assignee Assignee,
) (*Task, error) {
	t := &Task{
		status:        StatusPending,
		isConstructed: true,
	}

	if err := errors.Join(
		t.setID(id),
		t.setShipmentID(shipmentID),
		t.setType(taskType),
		t.setLegLevel(legLevel),
		t.setMode(mode),
		t.setVisibility(visibility),
		t.setAssignee(assignee),
	); err != nil {
		return nil, err
	}

	return t, nil
}

// RestoreTask reconstructs a task from persistence, including its full mutable
// state. The TRACKED/BLOCKED exclusion is re-checked so corrupt rows cannot
// reenter the domain.
func RestoreTask(
	id kernel.UUID,
	shipmentID kernel.ShipmentID,
	taskType Type,
	legLevel int,
	status Status,
	mode Mode,
	visibility Visibility,
	assignee Assignee,
	scheduledStart, scheduledEnd, actualStart, actualEnd *time.Time,
	dueDate *time.Time,
	dueDateOverride bool,
	notes string,
	displayName string,
	completedAt *time.Time,
) (*Task, error) {
	t, err := NewTask(id, shipmentID, taskType, legLevel, mode, visibility, assignee)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	if mode == ModeTracked && status == StatusBlocked {
		return nil, errs.NewValueIsInvalidError("a tracked task cannot be blocked")
	}

	t.status = status
	t.scheduledStart = scheduledStart
	t.scheduledEnd = scheduledEnd
	t.actualStart = actualStart
	t.actualEnd = actualEnd
	t.dueDate = dueDate
	t.dueDateOverride = dueDateOverride
	t.notes = notes
	t.displayName = displayName
	t.completedAt = completedAt
	return t, nil
}

// Validate ensures the Task instance was properly constructed.
func (t *Task) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTaskIsNotConstructed
	}
	return nil
}

// IsEqual compares two tasks by their unique identifiers.
func (t *Task) IsEqual(other *Task) bool {
	return other != nil && t.id.IsEqual(other.id)
}

// ID returns the task's unique identifier.
func (t *Task) ID() kernel.UUID { return t.id }

// ShipmentID returns the identifier of the owning shipment.
func (t *Task) ShipmentID() kernel.ShipmentID { return t.shipmentID }

// TaskType returns the operational type of the task.
func (t *Task) TaskType() Type { return t.taskType }

// LegLevel returns the ordering hint of the task within the workflow.
func (t *Task) LegLevel() int { return t.legLevel }

// Status returns the current lifecycle state.
func (t *Task) Status() Status { return t.status }

// Mode returns how the task is driven.
func (t *Task) Mode() Mode { return t.mode }

// Visibility returns whether customers can see the task.
func (t *Task) Visibility() Visibility { return t.visibility }

// Assignee returns the party responsible for the task.
func (t *Task) Assignee() Assignee { return t.assignee }

// ScheduledStart returns the scheduled start time (ETA when tracked).
func (t *Task) ScheduledStart() *time.Time { return t.scheduledStart }

// ScheduledEnd returns the scheduled end time (ETD when tracked).
func (t *Task) ScheduledEnd() *time.Time { return t.scheduledEnd }

// ActualStart returns the actual start time (ATA when tracked).
func (t *Task) ActualStart() *time.Time { return t.actualStart }

// ActualEnd returns the actual end time (ATD when tracked).
func (t *Task) ActualEnd() *time.Time { return t.actualEnd }

// DueDate returns the task's due date, if any.
func (t *Task) DueDate() *time.Time { return t.dueDate }

// DueDateOverride reports whether the due date was set manually rather than
// derived from the schedule.
func (t *Task) DueDateOverride() bool { return t.dueDateOverride }

// Notes returns the free-form operator notes.
func (t *Task) Notes() string { return t.notes }

// StoredDisplayName returns the raw persisted label, which may be stale.
// Use DisplayLabel for the derived label shown to users.
func (t *Task) StoredDisplayName() string { return t.displayName }

// CompletedAt returns the completion timestamp, nil unless COMPLETED.
func (t *Task) CompletedAt() *time.Time { return t.completedAt }

// MarkComplete transitions the task to COMPLETED and stamps the completion
// time.
//
// For a TRACKED arrival leg (port of discharge), arrival is the meaningful
// completion signal, so the timestamp lands in the actual-start field (ATA).
// For every other task it lands in the actual-end field.
//
// Customers may not complete TRACKED tasks; those legs are driven by schedule
// data, not manual action.
func (t *Task) MarkComplete(actor account.Actor, now time.Time) error {
	if err := t.checkEditAllowed(actor); err != nil {
		return err
	}
	if !actor.IsInternal() && t.mode == ModeTracked {
		return errs.NewPermissionDeniedError(actor.Role().String(), "complete a tracked task")
	}
	if !t.status.CanComplete() {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			errors.New(t.status.String()+" is not a valid status to complete"),
		)
	}

	stamp := now
	if t.isArrivalStamp() {
		t.actualStart = &stamp
	} else {
		t.actualEnd = &stamp
	}
	t.completedAt = &stamp
	t.status = StatusCompleted
	return nil
}

// UndoComplete reverses MarkComplete: the status returns to PENDING and the
// same timestamp field MarkComplete stamped is cleared. Mode, assignment, and
// the other timing fields are untouched. This is the only reverse transition
// out of COMPLETED.
func (t *Task) UndoComplete(actor account.Actor) error {
	if err := t.checkEditAllowed(actor); err != nil {
		return err
	}
	if !actor.IsInternal() && t.mode == ModeTracked {
		return errs.NewPermissionDeniedError(actor.Role().String(), "undo a tracked task")
	}
	if t.status != StatusCompleted {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			errors.New(t.status.String()+" is not a valid status to undo"),
		)
	}

	// The stamped field is identified by its value: the task's current mode
	// may differ from the mode it had at completion.
	switch {
	case t.completedAt != nil && t.actualEnd != nil && t.actualEnd.Equal(*t.completedAt):
		t.actualEnd = nil
	case t.completedAt != nil && t.actualStart != nil && t.actualStart.Equal(*t.completedAt):
		t.actualStart = nil
	case t.isArrivalStamp():
		t.actualStart = nil
	default:
		t.actualEnd = nil
	}
	t.completedAt = nil
	t.status = StatusPending
	return nil
}

// Block marks the task as waiting on an external condition (for example a
// missing upstream booking reference). Blocking is structurally disallowed for
// TRACKED tasks and meaningless for COMPLETED ones.
func (t *Task) Block() error {
	if t.mode == ModeTracked {
		return errs.NewValueIsInvalidError("a tracked task cannot be blocked")
	}
	if t.status == StatusCompleted {
		return errs.NewValueIsInvalidError("a completed task cannot be blocked")
	}

	t.status = StatusBlocked
	return nil
}

// Unblock clears an external block, returning the task to PENDING.
func (t *Task) Unblock() error {
	if t.status != StatusBlocked {
		return errs.NewValueIsInvalidError("task is not blocked")
	}

	t.status = StatusPending
	return nil
}

// Patch is a partial task update. Nil fields are left unchanged; the whole
// task is then written back as a unit (last write wins).
type Patch struct {
	Status          *Status
	Mode            *Mode
	Visibility      *Visibility
	Assignee        *Assignee
	ScheduledStart  *time.Time
	ScheduledEnd    *time.Time
	ActualStart     *time.Time
	ActualEnd       *time.Time
	DueDate         *time.Time
	DueDateOverride *bool
	Notes           *string
}

// wantsPresentationChange reports whether the patch touches mode or
// visibility, which only internal operators may change.
func (p Patch) wantsPresentationChange() bool {
	return p.Mode != nil || p.Visibility != nil
}

// Apply performs a role-gated partial edit of the task.
//
// Rules:
//   - Mode and visibility changes require an internal actor.
//   - All other fields require an actor that may edit tasks.
//   - Status edits overwrite any non-terminal status; a COMPLETED task must be
//     undone first, and completion must go through MarkComplete so the right
//     timestamp is stamped.
//   - The resulting mode/status pair may never be TRACKED + BLOCKED.
//   - Setting a due date directly flags it as a manual override.
func (t *Task) Apply(actor account.Actor, patch Patch) error {
	if err := t.checkEditAllowed(actor); err != nil {
		return err
	}
	if patch.wantsPresentationChange() && !actor.IsInternal() {
		return errs.NewPermissionDeniedError(actor.Role().String(), "change task mode or visibility")
	}

	newStatus := t.status
	if patch.Status != nil {
		if err := patch.Status.Validate(); err != nil {
			return err
		}
		if t.status.IsTerminal() {
			return errs.NewValueIsInvalidError("a completed task can only be changed by undoing the completion")
		}
		if *patch.Status == StatusCompleted {
			return errs.NewValueIsInvalidError("completion must go through mark complete")
		}
		newStatus = *patch.Status
	}

	newMode := t.mode
	if patch.Mode != nil {
		if err := patch.Mode.Validate(); err != nil {
			return err
		}
		newMode = *patch.Mode
	}

	if newMode == ModeTracked && newStatus == StatusBlocked {
		return errs.NewValueIsInvalidError("a tracked task cannot be blocked")
	}

	if patch.Visibility != nil {
		if err := patch.Visibility.Validate(); err != nil {
			return err
		}
		t.visibility = *patch.Visibility
	}
	if patch.Assignee != nil {
		if err := patch.Assignee.Validate(); err != nil {
			return err
		}
		t.assignee = *patch.Assignee
	}

	t.status = newStatus
	t.mode = newMode

	if patch.ScheduledStart != nil {
		t.scheduledStart = patch.ScheduledStart
	}
	if patch.ScheduledEnd != nil {
		t.scheduledEnd = patch.ScheduledEnd
	}
	if patch.ActualStart != nil {
		t.actualStart = patch.ActualStart
	}
	if patch.ActualEnd != nil {
		t.actualEnd = patch.ActualEnd
	}
	if patch.DueDate != nil {
		t.dueDate = patch.DueDate
		t.dueDateOverride = true
	}
	if patch.DueDateOverride != nil {
		t.dueDateOverride = *patch.DueDateOverride
	}
	if patch.Notes != nil {
		t.notes = *patch.Notes
	}

	return nil
}

// isArrivalStamp reports whether completion stamps the actual-start (ATA)
// field instead of the actual-end field.
func (t *Task) isArrivalStamp() bool {
	return t.mode == ModeTracked && t.taskType.IsArrivalLeg()
}

func (t *Task) checkEditAllowed(actor account.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if !actor.CanEditTasks() {
		return errs.NewPermissionDeniedError(actor.Role().String(), "edit tasks")
	}
	return nil
}

func (t *Task) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *Task) setShipmentID(id kernel.ShipmentID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.shipmentID = id
	return nil
}

func (t *Task) setType(taskType Type) error {
	if err := taskType.Validate(); err != nil {
		return err
	}
	t.taskType = taskType
	return nil
}

func (t *Task) setLegLevel(legLevel int) error {
	if legLevel <= 0 {
		return errs.NewValueIsInvalidError("legLevel must be greater than 0")
	}
	t.legLevel = legLevel
	return nil
}

func (t *Task) setMode(mode Mode) error {
	if err := mode.Validate(); err != nil {
		return err
	}
	t.mode = mode
	return nil
}

func (t *Task) setVisibility(visibility Visibility) error {
	if err := visibility.Validate(); err != nil {
		return err
	}
	t.visibility = visibility
	return nil
}

func (t *Task) setAssignee(assignee Assignee) error {
	if err := assignee.Validate(); err != nil {
		return err
	}
	t.assignee = assignee
	return nil
}
