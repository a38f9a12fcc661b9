// Package errs defines the classified error kinds the constraint
// solver can raise, along with a small code registry in the same
// phase/category/description shape the rest of the example pack uses
// for structured error reporting.
package errs

import (
	"fmt"

	"github.com/sunholo/hminfer/internal/types"
)

// Code constants, grouped by phase. Each is carried by exactly one of
// the error kinds below.
const (
	// IC001 indicates two type terms unified at the same id have
	// differing constructor name or arity.
	IC001 = "IC001"

	// IC002 indicates an instance-of pair whose instance and general
	// terms cannot agree on constructor name or arity.
	IC002 = "IC002"

	// UBV001 indicates a Variable expression was walked outside any
	// scope that binds its name.
	UBV001 = "UBV001"

	// DUP001 indicates an id or expression handle was registered
	// twice with conflicting bindings — a programming-error class,
	// not a user error.
	DUP001 = "DUP001"
)

// Info describes one error code.
type Info struct {
	Code        string
	Phase       string
	Category    string
	Description string
}

// Registry maps every code this package defines to its Info.
var Registry = map[string]Info{
	IC001:  {IC001, "unify", "incompatible", "Incompatible types"},
	IC002:  {IC002, "generic", "incompatible", "Incompatible generic instantiation"},
	UBV001: {UBV001, "walk", "scope", "Unbound variable"},
	DUP001: {DUP001, "registry", "bug", "Duplicate registration"},
}

// GetInfo returns the registered Info for a code, if any.
func GetInfo(code string) (Info, bool) {
	info, ok := Registry[code]
	return info, ok
}

// IncompatibleTypes is raised during Phase E when merge_types finds
// two terms assigned to the same equivalence class whose constructor
// or arity differ.
type IncompatibleTypes struct {
	Left, Right types.Term
}

func (e *IncompatibleTypes) Error() string {
	return fmt.Sprintf("%s: %s is not compatible with %s", IC001, e.Left, e.Right)
}

// IncompatibleGeneric is raised during Phase G when an instance term
// cannot be an instantiation of its general term.
type IncompatibleGeneric struct {
	Instance, General types.Term
}

func (e *IncompatibleGeneric) Error() string {
	return fmt.Sprintf("%s: %s is not a valid instantiation of %s", IC002, e.Instance, e.General)
}

// UnboundVariable is raised by the AST walker when a Variable names an
// identifier with no enclosing binding.
type UnboundVariable struct {
	Name string
}

func (e *UnboundVariable) Error() string {
	return fmt.Sprintf("%s: variable %q is not defined", UBV001, e.Name)
}

// DuplicateRegistration is raised by the registry when an id or
// expression handle is registered twice with conflicting bindings.
type DuplicateRegistration struct {
	ID types.ID
}

func (e *DuplicateRegistration) Error() string {
	return fmt.Sprintf("%s: id %q is already registered", DUP001, e.ID)
}
