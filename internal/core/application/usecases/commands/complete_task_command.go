package commands

import (
	"errors"

	"forwarding/internal/core/domain/model/account"
	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/pkg/guard"
)

var ErrCompleteTaskCommandIsNotConstructed = errors.New(
	"CompleteTaskCommand must be created via NewCompleteTaskCommand constructor",
)

// CompleteTaskCommand represents a request to mark a workflow task complete.
type CompleteTaskCommand struct { //nolint:recvcheck //using for validation
	taskID kernel.UUID
	actor  account.Actor

	guard guard.ConstructorGuard
}

// NewCompleteTaskCommand creates a command to complete a workflow task.
func NewCompleteTaskCommand(taskID kernel.UUID, actor account.Actor) (CompleteTaskCommand, error) {
	cmd := CompleteTaskCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTaskID(taskID),
		cmd.setActor(actor),
	); err != nil {
		return CompleteTaskCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteTaskCommand) Validate() error {
	return c.guard.Validate(ErrCompleteTaskCommandIsNotConstructed)
}

// TaskID returns the identifier of the task being completed.
func (c CompleteTaskCommand) TaskID() kernel.UUID {
	return c.taskID
}

// Actor returns the verified identity issuing the command.
func (c CompleteTaskCommand) Actor() account.Actor {
	return c.actor
}

func (c *CompleteTaskCommand) setTaskID(taskID kernel.UUID) error {
	if err := taskID.Validate(); err != nil {
		return err
	}

	c.taskID = taskID
	return nil
}

func (c *CompleteTaskCommand) setActor(actor account.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
