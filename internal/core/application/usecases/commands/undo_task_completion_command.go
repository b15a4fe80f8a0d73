package commands

import (
	"errors"

	"forwarding/internal/core/domain/model/account"
	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/pkg/guard"
)

var ErrUndoTaskCompletionCommandIsNotConstructed = errors.New(
	"UndoTaskCompletionCommand must be created via NewUndoTaskCompletionCommand constructor",
)

// UndoTaskCompletionCommand represents a request to reverse a task completion.
type UndoTaskCompletionCommand struct { //nolint:recvcheck //using for validation
	taskID kernel.UUID
	actor  account.Actor

	guard guard.ConstructorGuard
}

// NewUndoTaskCompletionCommand creates a command to undo a task completion.
func NewUndoTaskCompletionCommand(taskID kernel.UUID, actor account.Actor) (UndoTaskCompletionCommand, error) {
	cmd := UndoTaskCompletionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTaskID(taskID),
		cmd.setActor(actor),
	); err != nil {
		return UndoTaskCompletionCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UndoTaskCompletionCommand) Validate() error {
	return c.guard.Validate(ErrUndoTaskCompletionCommandIsNotConstructed)
}

// TaskID returns the identifier of the task being reverted.
func (c UndoTaskCompletionCommand) TaskID() kernel.UUID {
	return c.taskID
}

// Actor returns the verified identity issuing the command.
func (c UndoTaskCompletionCommand) Actor() account.Actor {
	return c.actor
}

func (c *UndoTaskCompletionCommand) setTaskID(taskID kernel.UUID) error {
	if err := taskID.Validate(); err != nil {
		return err
	}

	c.taskID = taskID
	return nil
}

func (c *UndoTaskCompletionCommand) setActor(actor account.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
