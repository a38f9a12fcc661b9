package ast

import (
	"github.com/sunholo/hminfer/internal/registry"
	"github.com/sunholo/hminfer/internal/rules"
	"github.com/sunholo/hminfer/internal/types"
)

// Application calls Fn with Args. It does not assume Fn already has a
// function type; instead it specifies that shape directly on Fn's id,
// which is how a call site forces its callee (possibly a fresh
// generic-instantiation id from Variable) to be some Fn_k. Ported from
// expression.py's Application.add_to_rules.
type Application struct {
	Fn   Expr
	Args []Expr
}

func (a *Application) AddToRules(r *rules.Rules, reg *registry.Registry) (types.ID, error) {
	fnID, err := a.Fn.AddToRules(r, reg)
	if err != nil {
		return "", err
	}
	argIDs := make([]types.ID, len(a.Args))
	for i, arg := range a.Args {
		id, err := arg.AddToRules(r, reg)
		if err != nil {
			return "", err
		}
		argIDs[i] = id
	}
	selfID, err := reg.AddToRegistry(a)
	if err != nil {
		return "", err
	}
	r.Specify(fnID, types.Fn(argIDs, selfID))
	return selfID, nil
}
