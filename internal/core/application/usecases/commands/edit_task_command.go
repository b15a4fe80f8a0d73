package commands

import (
	"errors"

	"forwarding/internal/core/domain/model/account"
	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/task"
	"forwarding/internal/pkg/guard"
)

var ErrEditTaskCommandIsNotConstructed = errors.New(
	"EditTaskCommand must be created via NewEditTaskCommand constructor",
)

// EditTaskCommand represents a partial update of one workflow task. The patch
// carries only the fields being changed; the task is written back as a unit.
type EditTaskCommand struct { //nolint:recvcheck //using for validation
	taskID kernel.UUID
	patch  task.Patch
	actor  account.Actor

	guard guard.ConstructorGuard
}

// NewEditTaskCommand creates a command to edit a workflow task. Field-level
// validation of the patch happens in the aggregate; here only the target and
// actor are checked.
func NewEditTaskCommand(taskID kernel.UUID, patch task.Patch, actor account.Actor) (EditTaskCommand, error) {
	cmd := EditTaskCommand{
		patch: patch,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTaskID(taskID),
		cmd.setActor(actor),
	); err != nil {
		return EditTaskCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c EditTaskCommand) Validate() error {
	return c.guard.Validate(ErrEditTaskCommandIsNotConstructed)
}

// TaskID returns the identifier of the task being edited.
func (c EditTaskCommand) TaskID() kernel.UUID {
	return c.taskID
}

// Patch returns the partial update.
func (c EditTaskCommand) Patch() task.Patch {
	return c.patch
}

// Actor returns the verified identity issuing the command.
func (c EditTaskCommand) Actor() account.Actor {
	return c.actor
}

func (c *EditTaskCommand) setTaskID(taskID kernel.UUID) error {
	if err := taskID.Validate(); err != nil {
		return err
	}

	c.taskID = taskID
	return nil
}

func (c *EditTaskCommand) setActor(actor account.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
