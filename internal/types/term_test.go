package types

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestFnBuildsArgsPlusResult(t *testing.T) {
	got := Fn([]ID{"p0", "p1"}, "r")
	want := Term{Con: "Fn_2", Args: []ID{"p0", "p1", "r"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Fn mismatch (-want +got):\n%s", diff)
	}
}

func TestIsFnRoundTripsThroughFn(t *testing.T) {
	fn := Fn([]ID{"p0", "p1"}, "r")
	args, result, ok := fn.IsFn()
	assert.True(t, ok)
	assert.Equal(t, []ID{"p0", "p1"}, args)
	assert.Equal(t, ID("r"), result)
}

func TestIsFnRejectsNonFnConstructor(t *testing.T) {
	_, _, ok := Compound("Pair", "a", "b").IsFn()
	assert.False(t, ok)
}

func TestCompatibleRequiresNameAndArity(t *testing.T) {
	assert.True(t, Compatible(Compound("Pair", "a", "b"), Compound("Pair", "x", "y")))
	assert.False(t, Compatible(Compound("Pair", "a", "b"), Compound("Pair", "x")))
	assert.False(t, Compatible(Ground("Int"), Ground("String")))
}

func TestGroundStringIsBareName(t *testing.T) {
	assert.Equal(t, "Int", Ground("Int").String())
}

func TestCompoundStringIsParenthesizedTuple(t *testing.T) {
	assert.Equal(t, "(Pair, a, b)", Compound("Pair", "a", "b").String())
}
