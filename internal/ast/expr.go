// Package ast provides the tagged-variant expression tree walked to
// produce constraints: the seven forms described in spec.md §4.5/§6 —
// Literal, Variable, TypedExpression, Application, Let, Lambda, and
// If. There is no parser here and no pretty-printer; building one of
// these trees is the caller's job, matching spec.md §1's framing of
// the surface syntax as an external collaborator.
package ast

import (
	"github.com/sunholo/hminfer/internal/errs"
	"github.com/sunholo/hminfer/internal/registry"
	"github.com/sunholo/hminfer/internal/rules"
	"github.com/sunholo/hminfer/internal/types"
)

// Expr is any node that can be walked into the constraint store. It
// replaces original_source/src/expression.py's Expression subclass
// hierarchy with a single interface over Go structs, per spec.md §9.
type Expr interface {
	// AddToRules walks the node, registering it (and any subexpressions)
	// with reg and recording whatever constraints it implies into r. It
	// returns the id standing for the node's own type.
	AddToRules(r *rules.Rules, reg *registry.Registry) (types.ID, error)
}

// Literal is a constant of known type, e.g. Literal{Type: types.Ground
// ("Int")} or Literal{Type: types.Compound("Pair", left, right)}. It
// corresponds to expression.py's Literal, which carries a value and a
// type; the solver only ever needs the type term, so that is all this
// node carries.
type Literal struct {
	Type types.Term
}

func (l *Literal) AddToRules(r *rules.Rules, reg *registry.Registry) (types.ID, error) {
	id, err := reg.AddToRegistry(l)
	if err != nil {
		return "", err
	}
	r.Specify(id, l.Type)
	return id, nil
}

// Variable is a reference to a name bound somewhere in an enclosing
// Lambda or Let. Whether it returns a shared id or mints a fresh
// generic-instantiation id depends entirely on how its binding scope
// was installed: Lambda installs non-generic bindings, Let installs
// generic ones. Ported from expression.py's Variable.add_to_rules.
type Variable struct {
	Name string
}

func (v *Variable) AddToRules(r *rules.Rules, reg *registry.Registry) (types.ID, error) {
	b, ok := reg.LookupVarInScope(v.Name)
	if !ok {
		return "", &errs.UnboundVariable{Name: v.Name}
	}
	if !b.IsGeneric {
		return b.ID, nil
	}
	genID := reg.NewGenericID(b.ID)
	if err := reg.RegisterForID(genID, v); err != nil {
		return "", err
	}
	r.InstanceOf(genID, b.ID)
	return genID, nil
}

// TypedExpression annotates an inner expression with an expected type,
// e.g. a surface-level type ascription. Ported from expression.py's
// TypedExpression: it mints its own id distinct from the inner
// expression's, specifies that id directly, and equates it with the
// inner expression's id so the two are forced to agree.
type TypedExpression struct {
	Expr Expr
	Type types.Term
}

func (t *TypedExpression) AddToRules(r *rules.Rules, reg *registry.Registry) (types.ID, error) {
	id, err := reg.AddToRegistry(t)
	if err != nil {
		return "", err
	}
	exprID, err := t.Expr.AddToRules(r, reg)
	if err != nil {
		return "", err
	}
	r.Specify(id, t.Type)
	r.Equal(id, exprID)
	return id, nil
}
