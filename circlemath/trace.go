package circlemath

import "fmt"

// ComponentTrace holds, for one component, coefficient and evaluation
// views of the same underlying columns (spec.md §3): Polys and Evals
// are each shaped TreeVec<ColumnVec<_>>, and Evals[t][c] must be the
// bit-reversed evaluation of Polys[t][c] on that tree's commitment
// domain. It is borrowed from the commitment layer and is immutable
// during constraint evaluation; this Go rendition holds values rather
// than references since there is no commitment layer here to borrow
// from (spec.md Non-goals).
type ComponentTrace[F any] struct {
	Polys TreeVec[ColumnVec[CirclePoly[F]]]
	Evals TreeVec[ColumnVec[CircleEvaluation[F]]]
}

// Validate checks the Polys/Evals shape-consistency invariant: same
// number of trees, same number of columns per tree, and each column's
// evaluation log-size consistent with a commitment domain over its
// polynomial (the evaluation domain is allowed to be larger than the
// polynomial's own degree bound, so only Evals' internal power-of-two
// shape is checked here, not exact log-size equality to Polys).
func (t ComponentTrace[F]) Validate() error {
	if !ShapesMatch(t.Polys, t.Evals) {
		return fmt.Errorf("circlemath: ComponentTrace polys/evals shape mismatch: %d/%d trees",
			t.Polys.NumTrees(), t.Evals.NumTrees())
	}
	for ti := range t.Evals {
		for ci, e := range t.Evals[ti] {
			n := len(e.Values)
			if n == 0 || n&(n-1) != 0 {
				return fmt.Errorf("circlemath: ComponentTrace tree %d column %d: evaluation length %d is not a power of two", ti, ci, n)
			}
		}
	}
	return nil
}

// TraceLogDegreeBounds returns, per tree, the log2(len(Coeffs)) of
// every column's polynomial — the shape AirTraceWriter/Component
// implementations report as trace_log_degree_bounds (spec.md §4.3).
func (t ComponentTrace[F]) TraceLogDegreeBounds() TreeVec[ColumnVec[uint32]] {
	return MapTreeVec(t.Polys, func(_ int, cols ColumnVec[CirclePoly[F]]) ColumnVec[uint32] {
		return MapColumnVec(cols, func(_ int, p CirclePoly[F]) uint32 {
			return p.LogSize()
		})
	})
}
