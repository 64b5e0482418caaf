// Package simd implements the packed-lane abstraction and the
// bit-reverse primitive that every polynomial evaluation and commitment
// step in the circle-STARK backend relies on (spec.md §4.1).
//
// A PackedLane emulates a single SIMD word of W=16 base-field elements.
// On real AVX-512-width hardware this would be backed by a native
// vector register; here it is a plain Go array, so the same contract
// is satisfied at lower throughput (spec.md §5).
package simd

import "github.com/BaoNinh2808/circle-stark/m31"

// VecBits is log2(W).
const VecBits = 4

// Width is the number of base-field lanes packed into one PackedLane.
const Width = 1 << VecBits

// PackedLane holds Width base-field elements processed together.
type PackedLane [Width]m31.Element

// Add returns the lane-wise sum.
func (z PackedLane) Add(x PackedLane) PackedLane {
	var out PackedLane
	for i := range out {
		out[i] = z[i].Add(x[i])
	}
	return out
}

// Sub returns the lane-wise difference.
func (z PackedLane) Sub(x PackedLane) PackedLane {
	var out PackedLane
	for i := range out {
		out[i] = z[i].Sub(x[i])
	}
	return out
}

// Mul returns the lane-wise product.
func (z PackedLane) Mul(x PackedLane) PackedLane {
	var out PackedLane
	for i := range out {
		out[i] = z[i].Mul(x[i])
	}
	return out
}

// Broadcast returns a lane with every element set to x.
func Broadcast(x m31.Element) PackedLane {
	var out PackedLane
	for i := range out {
		out[i] = x
	}
	return out
}

// SwizzlePattern selects Width elements out of the 2*Width-wide
// concatenation of two PackedLanes, the "arbitrary cross-lane
// permutation" spec.md §3 requires a packed lane to support. Index i
// in [0, Width) refers to lane a's element i; index i in
// [Width, 2*Width) refers to lane b's element i-Width.
type SwizzlePattern [Width]int

// ConcatSwizzle applies the pattern to the concatenation of a and b.
func (p SwizzlePattern) ConcatSwizzle(a, b PackedLane) PackedLane {
	var out PackedLane
	for i, src := range p {
		if src < Width {
			out[i] = a[src]
		} else {
			out[i] = b[src-Width]
		}
	}
	return out
}

// loLoInterleaveHiLo interleaves the low halves of two lanes:
// out[2i] = a[i], out[2i+1] = b[i] for i in [0, Width/2).
var loLoInterleaveHiLo = buildInterleave(0)

// loHiInterleaveHiHi interleaves the high halves of two lanes:
// out[2i] = a[Width/2+i], out[2i+1] = b[Width/2+i] for i in [0, Width/2).
var loHiInterleaveHiHi = buildInterleave(Width / 2)

func buildInterleave(halfOffset int) SwizzlePattern {
	var p SwizzlePattern
	half := Width / 2
	for i := 0; i < half; i++ {
		p[2*i] = halfOffset + i
		p[2*i+1] = Width + halfOffset + i
	}
	return p
}
