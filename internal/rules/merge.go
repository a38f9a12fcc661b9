package rules

import (
	"github.com/sunholo/hminfer/internal/errs"
	"github.com/sunholo/hminfer/internal/types"
)

// mergeTypes is the compatibility-check-and-descend primitive behind
// solveEqualities, so it serves both Phase E (merging specified/equated
// terms) and Phase G's SCC-collapse re-feed. Phase G's propagation has
// its own structural-descent rule (see propagate in generic.go) because
// there information flows one way only: an absent instance type adopts
// its general's shape, while an absent general type stays absent.
//
// Grounded on original_source/src/infer.py's _merge_types: if either
// side is absent the other side wins outright with no new rules;
// otherwise constructor name and arity must match, and the surviving
// term is t1 with a positional equality emitted per argument pair.
func mergeTypes(t1, t2 *types.Term) (result *types.Term, newEqs []equalPair, err error) {
	if t1 == nil {
		return t2, nil, nil
	}
	if t2 == nil {
		return t1, nil, nil
	}
	if !types.Compatible(*t1, *t2) {
		return nil, nil, &errs.IncompatibleTypes{Left: *t1, Right: *t2}
	}
	eqs := make([]equalPair, len(t1.Args))
	for i := range t1.Args {
		eqs[i] = equalPair{t1.Args[i], t2.Args[i]}
	}
	return t1, eqs, nil
}
