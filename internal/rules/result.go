package rules

import "github.com/sunholo/hminfer/internal/types"

// Result is the solved state returned by Rules.Infer: every id that
// ended up with a known type, and the substitution mapping ids folded
// into a representative during Phase E or Phase G's SCC collapse.
type Result struct {
	types map[types.ID]types.Term
	subs  map[types.ID]types.ID
}

// GetTypeByID returns the one-level type recorded for id's equivalence
// class, following subs at most one hop (there is never more than one
// to follow). The returned term's own Args may themselves need
// resolving; GetFullTypeByID does that recursively.
func (res *Result) GetTypeByID(id types.ID) (types.Term, bool) {
	t, ok := res.types[canonical(id, res.subs)]
	return t, ok
}

// GetFullTypeByID recursively dereferences id into a closed term: every
// argument position is resolved the same way, bottoming out at either a
// ground constructor or a free type variable (an id with no recorded
// type at all, meaning nothing ever constrained it), named via namer so
// that repeated occurrences of the same free variable render
// identically. Pass a shared namer across a batch of calls that should
// agree on free-variable names (e.g. all ids belonging to one inferred
// expression).
func (res *Result) GetFullTypeByID(id types.ID, namer *types.FreeNamer) types.Closed {
	rep := canonical(id, res.subs)
	t, ok := res.types[rep]
	if !ok {
		return types.Closed{Free: namer.NameFor(rep)}
	}
	var args []types.Closed
	if len(t.Args) > 0 {
		args = make([]types.Closed, len(t.Args))
	}
	for i, a := range t.Args {
		args[i] = res.GetFullTypeByID(a, namer)
	}
	return types.Closed{Con: t.Con, Args: args}
}
