// Package guard provides a lightweight constructor guard for value objects
// and commands. Embedding a ConstructorGuard in a struct makes zero-value
// instances detectable, so objects that bypass their constructor fail
// validation instead of silently carrying unchecked state.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes
// a nil validation error. Validation must always fail with a meaningful
// message even when no specific error is provided.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as having been created through its
// designated constructor. The zero value reports the object as not
// constructed.
//
// Example:
//
//	type SplitSelection struct {
//	    partIDs []kernel.UUID
//	    guard   guard.ConstructorGuard
//	}
//
//	func NewSplitSelection(partIDs []kernel.UUID) (SplitSelection, error) {
//	    return SplitSelection{partIDs: partIDs, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (s SplitSelection) Validate() error {
//	    return s.guard.Validate(ErrSelectionIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the enclosing object as
// properly constructed. Call it from the object's constructor only.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the object was created through its constructor.
// Otherwise it returns validationError, or ErrDefaultConstructorGuard when
// validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
