package circlemath

import "github.com/BaoNinh2808/circle-stark/internal/mathutil"

// CirclePoly holds one polynomial over the circle domain in
// coefficient form. Backend is a label only ("cpu", "simd", "icicle");
// the actual circle-domain arithmetic a real backend would implement
// (evaluate, interpolate, extend) is out of scope here.
type CirclePoly[F any] struct {
	Backend string
	Coeffs  []F
}

// LogSize returns log2(len(Coeffs)).
func (p CirclePoly[F]) LogSize() uint32 {
	return mathutil.Log2Ceil(uint64(len(p.Coeffs)))
}

// CircleEvaluation holds the same polynomial in evaluation form on a
// power-of-two domain. Values is stored in bit-reversed index order
// (spec.md §3): Values[i] is the evaluation at the domain point whose
// natural index is bitrev_n(i), n = LogSize(). Every constructor here
// preserves that invariant; callers that build a CircleEvaluation by
// hand are responsible for it.
type CircleEvaluation[F any] struct {
	Backend string
	Values  []F
}

// LogSize returns log2(len(Values)).
func (e CircleEvaluation[F]) LogSize() uint32 {
	return mathutil.Log2Ceil(uint64(len(e.Values)))
}

// ToNaturalOrder returns a copy of Values permuted back into natural
// domain-point order, undoing the bit-reversed storage order. The
// permutation is its own inverse (spec.md §8 item 1), so this also
// serves to construct a CircleEvaluation from natural-order data: call
// it twice to round-trip.
func (e CircleEvaluation[F]) ToNaturalOrder() []F {
	out := append([]F(nil), e.Values...)
	bitReversePermute(out)
	return out
}

// FromNaturalOrder builds a CircleEvaluation whose Values are stored in
// bit-reversed order, given evaluations in natural domain-point order.
func FromNaturalOrder[F any](backend string, natural []F) CircleEvaluation[F] {
	values := append([]F(nil), natural...)
	bitReversePermute(values)
	return CircleEvaluation[F]{Backend: backend, Values: values}
}

// bitReversePermute reverses the low n bits of every index of v in
// place, n = log2(len(v)). It is the field-agnostic analog of
// simd.BitReverseElements: same permutation, expressed over a generic
// slice instead of packed lanes, since CircleEvaluation is as likely to
// hold qm31.Element (SecureEvaluation) as m31.Element.
func bitReversePermute[F any](v []F) {
	n := len(v)
	if n == 0 {
		return
	}
	if n&(n-1) != 0 {
		panic("circlemath: evaluation length must be a power of two")
	}
	logSize := mathutil.Log2Floor(uint64(n))
	for i := 0; i < n; i++ {
		j := bitRevIndex(i, logSize)
		if i < j {
			v[i], v[j] = v[j], v[i]
		}
	}
}

func bitRevIndex(idx int, nbits uint32) int {
	rev := 0
	for b := uint32(0); b < nbits; b++ {
		rev |= ((idx >> b) & 1) << (nbits - 1 - b)
	}
	return rev
}
