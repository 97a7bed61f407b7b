package evaluator

import "github.com/chrismichaelps/solis/internal/diagnostics"

// Force follows Thunk indirections transitively until it reaches a
// non-Thunk value, memoizing every thunk on the chain with the final
// result so each one's compute runs at most once (spec.md §4.4, §8).
// A thunk forced while its own compute is still running fails with
// InfiniteLoop rather than recursing forever.
func Force(v Value) (Value, error) {
	var chain []*Thunk
	cur := v
	for {
		t, ok := cur.(*Thunk)
		if !ok {
			break
		}
		if t.cached {
			cur = t.cache
			continue
		}
		if t.forcing {
			return nil, diagnostics.New(diagnostics.PhaseEvaluator, diagnostics.CodeInfiniteLoop, diagnostics.Position{})
		}
		chain = append(chain, t)
		t.forcing = true
		result, err := t.compute()
		t.forcing = false
		if err != nil {
			// Remember the failure so a later Force reports it again
			// without rerunning any compute on the chain.
			for _, c := range chain {
				c.compute = func() (Value, error) { return nil, err }
			}
			return nil, err
		}
		cur = result
	}
	for _, t := range chain {
		t.cache = cur
		t.cached = true
	}
	return cur, nil
}
