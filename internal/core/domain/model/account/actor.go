package account

import (
	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/pkg/errs"
)

// Actor is the verified identity performing an operation. It is produced by
// the external session verifier and carried through every role-gated mutation
// in the task workflow and route managers.
//
// Actor is a value object; the zero value is invalid and must be created via
// NewActor. The account type is derived from the role, so the two can never
// disagree.
type Actor struct {
	uid         kernel.UUID
	email       string
	role        Role
	accountType AccountType
}

// NewActor creates an Actor from the identity verifier's result.
// The account type is derived from the role: operator roles yield an internal
// account, customer roles a customer account.
func NewActor(uid kernel.UUID, email string, role Role) (Actor, error) {
	if err := uid.Validate(); err != nil {
		return Actor{}, err
	}
	if email == "" {
		return Actor{}, errs.NewValueIsRequiredError("email")
	}
	if err := role.Validate(); err != nil {
		return Actor{}, err
	}

	accountType := AccountCustomer
	if role.IsInternal() {
		accountType = AccountInternal
	}

	return Actor{
		uid:         uid,
		email:       email,
		role:        role,
		accountType: accountType,
	}, nil
}

// UID returns the actor's unique identifier.
func (a Actor) UID() kernel.UUID {
	return a.uid
}

// Email returns the actor's email address.
func (a Actor) Email() string {
	return a.email
}

// Role returns the actor's role.
func (a Actor) Role() Role {
	return a.role
}

// AccountType returns whether the actor is internal staff or a customer user.
func (a Actor) AccountType() AccountType {
	return a.accountType
}

// IsInternal reports whether the actor is forwarder staff. Only internal
// actors may change task mode or customer-facing visibility.
func (a Actor) IsInternal() bool {
	return a.accountType == AccountInternal
}

// CanEditTasks reports whether the actor may edit task status, assignment,
// notes, and timing fields. Internal staff and customer administrators may;
// regular customer users may not.
func (a Actor) CanEditTasks() bool {
	return a.IsInternal() || a.role == RoleCustomerAdmin
}

// Validate checks that the actor was properly constructed.
// The zero value fails validation.
func (a Actor) Validate() error {
	if err := a.uid.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("Actor must be created via NewActor", err)
	}
	if err := a.role.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("Actor must be created via NewActor", err)
	}
	return nil
}
