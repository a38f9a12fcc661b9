package rules

import "github.com/sunholo/hminfer/internal/types"

// Infer runs the two-phase solver over every constraint recorded so
// far and returns a Result capturing the final types and substitution.
// Rules is append-only and Infer does not consume it, so the same
// store could in principle be solved more than once, though nothing in
// this package relies on that.
func (r *Rules) Infer() (*Result, error) {
	typs := make(map[types.ID]types.Term)
	subs := make(map[types.ID]types.ID)

	var queue []equalPair
	for _, sp := range r.specified {
		existing, ok := typs[sp.id]
		var p1 *types.Term
		if ok {
			p1 = &existing
		}
		given := sp.t
		result, newEqs, err := mergeTypes(p1, &given)
		if err != nil {
			return nil, err
		}
		queue = append(queue, newEqs...)
		if result != nil {
			typs[sp.id] = *result
		}
	}
	queue = append(queue, r.equalRules...)

	if err := solveEqualities(queue, typs, subs); err != nil {
		return nil, err
	}

	if err := solveGenerics(r.generics, typs, subs); err != nil {
		return nil, err
	}

	return &Result{types: typs, subs: subs}, nil
}
