package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sunholo/hminfer/internal/errs"
	"github.com/sunholo/hminfer/internal/registry"
	"github.com/sunholo/hminfer/internal/rules"
	"github.com/sunholo/hminfer/internal/types"
)

func walk(t *testing.T, e Expr) (string, *rules.Result) {
	t.Helper()
	r := rules.New()
	reg := registry.New()
	id, err := e.AddToRules(r, reg)
	require.NoError(t, err)
	res, err := r.Infer()
	require.NoError(t, err)
	return string(id), res
}

func TestLiteralIsItsOwnGroundType(t *testing.T) {
	id, res := walk(t, &Literal{Type: types.Ground("Int")})
	term, ok := res.GetTypeByID(types.ID(id))
	require.True(t, ok)
	assert.Equal(t, "Int", term.Con)
}

func TestLiteralCanCarryACompoundType(t *testing.T) {
	e := &Literal{Type: types.Compound("Pair", "left", "right")}
	id, res := walk(t, e)
	namer := types.NewFreeNamer()
	closed := res.GetFullTypeByID(types.ID(id), namer)
	assert.Equal(t, "Pair", closed.Con)
	require.Len(t, closed.Args, 2)
	assert.True(t, closed.Args[0].IsFree())
	assert.True(t, closed.Args[1].IsFree())
}

func TestTypedExpressionCanAscribeACompoundType(t *testing.T) {
	e := &TypedExpression{
		Expr: &Literal{Type: types.Compound("Pair", "left", "right")},
		Type: types.Compound("Pair", "left", "right"),
	}
	id, res := walk(t, e)
	term, ok := res.GetTypeByID(types.ID(id))
	require.True(t, ok)
	assert.Equal(t, "Pair", term.Con)
	require.Len(t, term.Args, 2)
}

func TestIfBranchesMustAgree(t *testing.T) {
	e := &If{
		Test: &Literal{Type: types.Ground("Bool")},
		Then: &Literal{Type: types.Ground("Int")},
		Else: &Literal{Type: types.Ground("Int")},
	}
	id, res := walk(t, e)
	term, ok := res.GetTypeByID(types.ID(id))
	require.True(t, ok)
	assert.Equal(t, "Int", term.Con)
}

func TestIfBranchMismatchFails(t *testing.T) {
	e := &If{
		Test: &Literal{Type: types.Ground("Bool")},
		Then: &Literal{Type: types.Ground("Int")},
		Else: &Literal{Type: types.Ground("String")},
	}
	r := rules.New()
	reg := registry.New()
	_, err := e.AddToRules(r, reg)
	require.NoError(t, err)
	_, err = r.Infer()
	require.Error(t, err)
	var mismatch *errs.IncompatibleTypes
	assert.ErrorAs(t, err, &mismatch)
}

func TestUnboundVariableFails(t *testing.T) {
	r := rules.New()
	reg := registry.New()
	_, err := (&Variable{Name: "nope"}).AddToRules(r, reg)
	require.Error(t, err)
	var unbound *errs.UnboundVariable
	assert.ErrorAs(t, err, &unbound)
}

// let id = \x -> x in (id id) 123
//
// Applying the identity function to itself and then to a literal is
// the textbook let-polymorphism stress test: `id` must be usable at
// both `(a -> a) -> (a -> a)` and `Int -> Int` within the same
// expression, which only works if each occurrence of `id` gets its own
// fresh instantiation.
func TestLetPolymorphismSelfApplication(t *testing.T) {
	idLambda := &Lambda{Params: []string{"x"}, Body: &Variable{Name: "x"}}
	idOfId := &Application{Fn: &Variable{Name: "id"}, Args: []Expr{&Variable{Name: "id"}}}
	applied := &Application{Fn: idOfId, Args: []Expr{&Literal{Type: types.Ground("Int")}}}
	e := &Let{
		Bindings: []Binding{{Name: "id", Value: idLambda}},
		Body:     applied,
	}

	id, res := walk(t, e)
	term, ok := res.GetTypeByID(types.ID(id))
	require.True(t, ok)
	assert.Equal(t, "Int", term.Con)
}

// let rec f = if true then 123 else g();
//         g = f()
// in f
//
// f and g are mutually recursive thunks; g's call to f and f's call to
// g each instantiate the other generically. Every call site mints its
// own gen_* id, so the instance-of edges run from each lambda to those
// ids and form no cycle: Phase G's SCC pass finds only singletons, and
// propagation pushes f's Fn_0 shape onto each instantiation, which also
// resolves g's call result to Int.
func TestMutualRecursionResolvesThroughSCC(t *testing.T) {
	fLambda := &Lambda{
		Params: nil,
		Body: &If{
			Test: &Literal{Type: types.Ground("Bool")},
			Then: &Literal{Type: types.Ground("Int")},
			Else: &Application{Fn: &Variable{Name: "g"}},
		},
	}
	gLambda := &Lambda{
		Params: nil,
		Body:   &Application{Fn: &Variable{Name: "f"}},
	}
	e := &Let{
		Bindings: []Binding{
			{Name: "f", Value: fLambda},
			{Name: "g", Value: gLambda},
		},
		Body: &Variable{Name: "f"},
	}

	id, res := walk(t, e)
	namer := types.NewFreeNamer()
	closed := res.GetFullTypeByID(types.ID(id), namer)
	assert.Equal(t, "Fn_0", closed.Con)
	require.Len(t, closed.Args, 1)
	assert.Equal(t, "Int", closed.Args[0].Con)
}
