package rules

import (
	"sort"

	"github.com/sunholo/hminfer/internal/errs"
	"github.com/sunholo/hminfer/internal/graph"
	"github.com/sunholo/hminfer/internal/types"
)

// instancePair is a (instance, general) edge awaiting propagation —
// the same shape as genPair, kept distinct so propagate's queue reads
// independently of the constraint store's recording order.
type instancePair struct{ instance, general types.ID }

// solveGenerics runs Phase G to completion: it rewrites every
// instance-of edge through the substitution built by Phase E, collapses
// any cycle (mutual recursion between let-bound names) into a single
// equivalence class, and then propagates general types down to their
// instances. original_source/src/infer.py's apply_generic_relations is
// the comment-only sketch this completes; the SCC step is grounded on
// internal/elaborate/scc.go's CallGraph.SCCs, generalized from string
// call-graph nodes to types.ID.
func solveGenerics(generics []genPair, typs map[types.ID]types.Term, subs map[types.ID]types.ID) error {
	g := graph.New()
	for _, p := range generics {
		inst := canonical(p.instance, subs)
		gen := canonical(p.general, subs)
		g.AddEdge(gen, inst)
	}

	for _, scc := range g.StronglyConnectedComponents() {
		if len(scc) < 2 {
			continue
		}
		members := append([]types.ID(nil), scc...)
		sort.Slice(members, func(i, j int) bool { return members[i] < members[j] })
		rep := members[0]
		var eqs []equalPair
		for _, v := range members[1:] {
			eqs = append(eqs, equalPair{rep, v})
		}
		if err := solveEqualities(eqs, typs, subs); err != nil {
			return err
		}
	}

	collapsed := graph.New()
	for _, p := range generics {
		inst := canonical(p.instance, subs)
		gen := canonical(p.general, subs)
		collapsed.AddEdge(gen, inst)
	}

	var queue []instancePair
	for _, v := range collapsed.Vertices() {
		for _, c := range collapsed.Children(v) {
			queue = append(queue, instancePair{instance: c, general: v})
		}
	}

	return propagate(queue, typs)
}

// propagate drains queue LIFO. Each pair asks: does the instance
// already have a type? If not, it adopts the general's type outright.
// If both have types, they must structurally agree (same constructor,
// same arity) and each argument position becomes a fresh instance-of
// pair pushed for further propagation. If only the general is absent,
// the instance is left exactly as it is — spec.md's "a more concrete
// instantiation" relation only ever pushes information from general to
// instance, never the reverse.
func propagate(queue []instancePair, typs map[types.ID]types.Term) error {
	for len(queue) > 0 {
		n := len(queue) - 1
		pair := queue[n]
		queue = queue[:n]

		itype, iok := typs[pair.instance]
		gtype, gok := typs[pair.general]

		if !gok {
			continue
		}
		if !iok {
			typs[pair.instance] = gtype
			continue
		}
		if !types.Compatible(itype, gtype) {
			return &errs.IncompatibleGeneric{Instance: itype, General: gtype}
		}
		for i := range itype.Args {
			queue = append(queue, instancePair{instance: itype.Args[i], general: gtype.Args[i]})
		}
	}
	return nil
}
