// Package guard provides a defensive construction pattern for value objects,
// commands, and queries. Embedding a ConstructorGuard lets a type detect
// whether it was created through its designated constructor function or as a
// zero value, so validation can fail early on improperly built objects.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when a nil error is passed
// as the validation error, so validation always fails with a meaningful message.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard enforces that objects are only created through their
// designated constructor functions. The guard maintains an internal flag that is
// only set when the object is created through NewConstructorGuard; any zero-value
// struct will fail validation.
//
// Example usage:
//
//	type ReplaceRouteCommand struct {
//	    nodes []route.Node
//	    guard guard.ConstructorGuard
//	}
//
//	func NewReplaceRouteCommand(nodes []route.Node) (ReplaceRouteCommand, error) {
//	    if len(nodes) == 0 {
//	        return ReplaceRouteCommand{}, errors.New("nodes are required")
//	    }
//	    return ReplaceRouteCommand{nodes: nodes, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c ReplaceRouteCommand) Validate() error {
//	    return c.guard.Validate(ErrReplaceRouteCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks an object as properly
// constructed. Call it in the constructor of the guarded type.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil if the guarded object was created through its
// constructor. Otherwise it returns validationError, or
// ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
