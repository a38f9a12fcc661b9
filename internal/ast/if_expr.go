package ast

import (
	"github.com/sunholo/hminfer/internal/registry"
	"github.com/sunholo/hminfer/internal/rules"
	"github.com/sunholo/hminfer/internal/types"
)

// If requires Test to be Bool and Then/Else to agree on type; the
// whole expression's type is that shared type. There is no separate
// expression.py counterpart — the original draft only ever modeled
// If via its generic Expression base — so this follows the same
// specify/equal shape as the other variants.
type If struct {
	Test, Then, Else Expr
}

func (f *If) AddToRules(r *rules.Rules, reg *registry.Registry) (types.ID, error) {
	testID, err := f.Test.AddToRules(r, reg)
	if err != nil {
		return "", err
	}
	r.Specify(testID, types.Ground("Bool"))

	thenID, err := f.Then.AddToRules(r, reg)
	if err != nil {
		return "", err
	}
	elseID, err := f.Else.AddToRules(r, reg)
	if err != nil {
		return "", err
	}
	r.Equal(thenID, elseID)

	selfID, err := reg.AddToRegistry(f)
	if err != nil {
		return "", err
	}
	r.Equal(selfID, thenID)
	return selfID, nil
}
