package ast

import (
	"github.com/sunholo/hminfer/internal/registry"
	"github.com/sunholo/hminfer/internal/rules"
	"github.com/sunholo/hminfer/internal/types"
)

// Lambda is an anonymous function binding Params over Body. Unlike
// Let, a lambda parameter is never generalized: every occurrence of a
// parameter name inside the body shares the exact same id, matching
// rank-1 let-polymorphism's rule that only let-bound names are
// instantiated afresh at each use. Ported from expression.py's
// Lambda.add_to_rules.
type Lambda struct {
	Params []string
	Body   Expr
}

func (l *Lambda) AddToRules(r *rules.Rules, reg *registry.Registry) (types.ID, error) {
	bindings := make(map[string]registry.Binding, len(l.Params))
	argIDs := make([]types.ID, len(l.Params))
	for i, p := range l.Params {
		id := reg.NewVarID(p)
		bindings[p] = registry.Binding{ID: id, IsGeneric: false}
		argIDs[i] = id
	}
	reg.PushNewScope(bindings)
	bodyID, err := l.Body.AddToRules(r, reg)
	reg.PopCurrentScope()
	if err != nil {
		return "", err
	}

	selfID, err := reg.AddToRegistry(l)
	if err != nil {
		return "", err
	}
	r.Specify(selfID, types.Fn(argIDs, bodyID))
	return selfID, nil
}
