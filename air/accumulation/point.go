// Package accumulation implements the two evaluation accumulators
// spec.md §4.2 describes: PointEvaluationAccumulator, which folds
// many components' constraint-quotient values at a single out-of-domain
// point, and DomainEvaluationAccumulator, which folds the same
// contributions across a whole evaluation domain. Both share the same
// α-power assignment order (spec.md §8 item 4, "the single most
// important invariant binding prover and verifier" per the Design
// Notes) — centralized here rather than replicated per component.
package accumulation

import "github.com/BaoNinh2808/circle-stark/qm31"

// PointEvaluationAccumulator folds contributions v0..v_{k-1} via the
// Horner recurrence acc <- acc*alpha + v, which after k calls equals
// sum_i alpha^(k-1-i) * v_i without ever needing to know k in advance
// (spec.md §4.2).
type PointEvaluationAccumulator struct {
	alpha    qm31.Element
	acc      qm31.Element
	count    int
	finished bool
}

// NewPointEvaluationAccumulator returns an accumulator with the given
// random challenge and a zero running value.
func NewPointEvaluationAccumulator(alpha qm31.Element) *PointEvaluationAccumulator {
	return &PointEvaluationAccumulator{alpha: alpha}
}

// Accumulate folds one more contribution into the running value. It
// panics if called after Finalize, since the accumulated value is
// meant to be read exactly once (spec.md §4.2).
func (a *PointEvaluationAccumulator) Accumulate(v qm31.Element) {
	if a.finished {
		panic("accumulation: Accumulate called after Finalize")
	}
	a.acc = a.acc.Mul(a.alpha).Add(v)
	a.count++
}

// Count reports how many contributions have been accumulated so far.
func (a *PointEvaluationAccumulator) Count() int { return a.count }

// Finalize returns the accumulated value and marks the accumulator as
// read; further Accumulate calls panic.
func (a *PointEvaluationAccumulator) Finalize() qm31.Element {
	a.finished = true
	return a.acc
}
