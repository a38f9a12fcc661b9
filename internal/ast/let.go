package ast

import (
	"github.com/sunholo/hminfer/internal/registry"
	"github.com/sunholo/hminfer/internal/rules"
	"github.com/sunholo/hminfer/internal/types"
)

// Binding is one name/value pair in a Let. All of a Let's bindings are
// installed into scope before any of their right-hand sides is walked,
// so the bindings may reference each other — including themselves or
// one another mutually, which is how mutual recursion is expressed.
type Binding struct {
	Name  string
	Value Expr
}

// Let installs Bindings as generalized (let-polymorphic) names visible
// to both every binding's own right-hand side and Body, then walks
// Body. Ported from expression.py's Let.add_to_rules, which installs
// every binding's scoped id up front for exactly this mutual-visibility
// reason before walking any right-hand side.
type Let struct {
	Bindings []Binding
	Body     Expr
}

func (l *Let) AddToRules(r *rules.Rules, reg *registry.Registry) (types.ID, error) {
	scoped := make(map[string]registry.Binding, len(l.Bindings))
	for _, b := range l.Bindings {
		scoped[b.Name] = registry.Binding{ID: reg.NewVarID(b.Name), IsGeneric: true}
	}
	reg.PushNewScope(scoped)

	for _, b := range l.Bindings {
		exprID, err := b.Value.AddToRules(r, reg)
		if err != nil {
			reg.PopCurrentScope()
			return "", err
		}
		r.Equal(scoped[b.Name].ID, exprID)
	}

	bodyID, err := l.Body.AddToRules(r, reg)
	reg.PopCurrentScope()
	if err != nil {
		return "", err
	}

	selfID, err := reg.AddToRegistry(l)
	if err != nil {
		return "", err
	}
	r.Equal(selfID, bodyID)
	return selfID, nil
}
