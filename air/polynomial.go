package air

import "github.com/BaoNinh2808/circle-stark/qm31"

// MultilinearPolynomial is evaluated at a point of any number of
// variables (spec.md §3 ColumnEvaluator's multilinear capability,
// folding GKR top-layer claims).
type MultilinearPolynomial interface {
	Eval(elems InteractionElements, point []qm31.Element) qm31.Element
}

// TraceExprPolynomial is evaluated against a component's sampled
// interaction elements and an opened mask (spec.md §3 ColumnEvaluator's
// univariate trace-expression capability, used at the OOD point).
type TraceExprPolynomial interface {
	Eval(elems InteractionElements, mask []qm31.Element) qm31.Element
}

// ConstantPolynomial is the trivial constant-valued multilinear: its
// evaluation ignores the point entirely. It is present in
// original_source's air module but only implicit in spec.md's data
// model, so it is supplemented here explicitly (SPEC_FULL.md §13) and
// exercised directly by scenario S6 (spec.md §8).
type ConstantPolynomial struct {
	Value qm31.Element
}

// Eval returns c.Value regardless of elems or point, including the
// zero-variable (empty point) case.
func (c ConstantPolynomial) Eval(elems InteractionElements, point []qm31.Element) qm31.Element {
	return c.Value
}

var _ MultilinearPolynomial = ConstantPolynomial{}
