package rules

import "github.com/sunholo/hminfer/internal/types"

// canonical follows subs one hop. The substitution is union-find
// without path compression: a value is never itself a key, so a
// single lookup always reaches the representative — there is nothing
// to chase.
func canonical(id types.ID, subs map[types.ID]types.ID) types.ID {
	if rep, ok := subs[id]; ok {
		return rep
	}
	return id
}

// solveEqualities drains queue against types/subs, mutating both in
// place, until no equality remains. It is the one piece of machinery
// shared by Phase E's initial closure and Phase G's SCC-collapse
// re-feed (generic.go): both reduce to "merge these two ids' types and
// keep merging whatever that implies."
//
// queue is processed LIFO: original_source/src/infer.py's
// _collapse_equal pops equal_rules off the end of the list, and new
// rules produced by a merge are appended and popped before anything
// that was queued earlier.
func solveEqualities(queue []equalPair, typs map[types.ID]types.Term, subs map[types.ID]types.ID) error {
	for len(queue) > 0 {
		n := len(queue) - 1
		pair := queue[n]
		queue = queue[:n]

		t1 := canonical(pair.a, subs)
		t2 := canonical(pair.b, subs)
		if t1 == t2 {
			continue
		}

		type1, ok1 := typs[t1]
		type2, ok2 := typs[t2]

		replacement, replaced := t1, t2
		if !ok1 && ok2 {
			replacement, replaced = t2, t1
		}

		var p1, p2 *types.Term
		if ok1 {
			p1 = &type1
		}
		if ok2 {
			p2 = &type2
		}
		result, newEqs, err := mergeTypes(p1, p2)
		if err != nil {
			return err
		}
		queue = append(queue, newEqs...)

		subs[replaced] = replacement
		for k, v := range subs {
			if v == replaced {
				subs[k] = replacement
			}
		}

		delete(typs, replaced)
		if result != nil {
			typs[replacement] = *result
		} else {
			delete(typs, replacement)
		}

		for k, term := range typs {
			changed := false
			args := term.Args
			for i, a := range args {
				if a == replaced {
					if !changed {
						args = append([]types.ID(nil), term.Args...)
						changed = true
					}
					args[i] = replacement
				}
			}
			if changed {
				term.Args = args
				typs[k] = term
			}
		}
	}
	return nil
}
