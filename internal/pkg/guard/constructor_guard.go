// Package guard implements the constructor guard pattern: a flag embedded
// in value objects and command payloads that distinguishes instances built
// through their constructor from zero values.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the guard is a
// zero value and no specific error was supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks a struct as properly constructed. The zero value
// fails validation, so structs embedding a guard cannot be used unless
// they went through their constructor.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard in the constructed state. Call it
// from the owning type's constructor only.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard. For a zero-value guard it
// returns err, or ErrDefaultConstructorGuard when err is nil.
func (g ConstructorGuard) Validate(err error) error {
	if g.isConstructed {
		return nil
	}
	if err == nil {
		return ErrDefaultConstructorGuard
	}
	return err
}
