// Package guard implements a small defensive pattern that ensures value
// objects, commands, and queries are only created through their designated
// constructor functions. A zero-value struct fails validation, so invariants
// checked in the constructor cannot be bypassed by direct initialization.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes
// a nil validation error. Validation always fails with a meaningful message
// even if no specific error was provided.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as properly constructed. Embed it as a
// field, set it with NewConstructorGuard inside the constructor, and call
// Validate before operating on the object.
//
// Example:
//
//	type DeliveryJob struct {
//	    agent string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewDeliveryJob(agent string) (DeliveryJob, error) {
//	    if agent == "" {
//	        return DeliveryJob{}, errors.New("agent is required")
//	    }
//	    return DeliveryJob{agent: agent, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (j DeliveryJob) Validate() error {
//	    return j.guard.Validate(ErrDeliveryJobIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks the enclosing object as
// constructed. Call it only from the object's constructor.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the enclosing object was built through its
// constructor. For a zero-value guard it returns validationError, or
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
