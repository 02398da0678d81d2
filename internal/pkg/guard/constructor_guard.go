// Package guard provides the ConstructorGuard pattern used by domain objects
// to ensure they are only created through their designated constructors.
//
// Embedding a ConstructorGuard in a struct makes zero-value instances
// distinguishable from properly constructed ones, so aggregates and value
// objects can reject use of uninitialized state.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when a zero-value guard
// is validated with a nil error. It guarantees validation always fails with a
// meaningful message even when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as created through its constructor.
// The zero value is "not constructed" and fails validation.
//
// Example usage:
//
//	var ErrTenantIsNotConstructed = errors.New("Tenant must be created via NewTenant")
//
//	type Tenant struct {
//	    name  string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewTenant(name string) Tenant {
//	    return Tenant{name: name, guard: guard.NewConstructorGuard()}
//	}
//
//	func (t Tenant) Validate() error {
//	    return t.guard.Validate(ErrTenantIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking its owner as properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard. For a zero-value guard it
// returns the supplied error, or ErrDefaultConstructorGuard when err is nil.
func (g ConstructorGuard) Validate(err error) error {
	if g.isConstructed {
		return nil
	}

	if err == nil {
		return ErrDefaultConstructorGuard
	}

	return err
}
