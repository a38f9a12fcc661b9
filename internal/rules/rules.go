// Package rules implements the constraint store and the two-phase
// solver described in spec.md §4.3–§4.4: equality, specification, and
// instance-of constraints; a union-find-style substitution; and the
// generic-instantiation solver built on Tarjan SCC decomposition.
//
// The constraint-store shape is carried over from
// original_source/src/infer.py's Rules class (fluent add_var/equal/
// specify/instance_of, three append-only slices); the solving
// algorithm completes what that Python draft left as commented-out
// sketches.
package rules

import "github.com/sunholo/hminfer/internal/types"

type equalPair struct{ a, b types.ID }
type specPair struct {
	id types.ID
	t  types.Term
}
type genPair struct{ instance, general types.ID }

// Rules is the append-only constraint store. All three recording
// methods return the store itself to permit chaining, matching
// original_source/src/infer.py's `return self` style.
type Rules struct {
	equalRules  []equalPair
	specified   []specPair
	generics    []genPair
}

// New returns an empty constraint store.
func New() *Rules {
	return &Rules{}
}

// Equal records that type(a) and type(b) must be identical.
func (r *Rules) Equal(a, b types.ID) *Rules {
	r.equalRules = append(r.equalRules, equalPair{a, b})
	return r
}

// Specify records that type(id) is exactly t.
func (r *Rules) Specify(id types.ID, t types.Term) *Rules {
	r.specified = append(r.specified, specPair{id, t})
	return r
}

// InstanceOf records that type(instance) is a more concrete
// instantiation of type(general).
func (r *Rules) InstanceOf(instance, general types.ID) *Rules {
	r.generics = append(r.generics, genPair{instance, general})
	return r
}
