package simd

import (
	"math/bits"

	"github.com/BaoNinh2808/circle-stark/m31"
)

// BitReverseElements is the plain element-level ground truth for
// BitReverseM31: v'[i] = v[bitrev_n(i)] where n = log2(len(v)). It makes
// no use of PackedLane or the intra-lane swizzle trick, and is used only
// to state the equivalence property in spec.md §8 item 2.
func BitReverseElements(v []m31.Element) {
	n := len(v)
	if n == 0 || n&(n-1) != 0 {
		panic("simd: BitReverseElements requires a power-of-two length")
	}
	logSize := uint32(bits.Len(uint(n)) - 1)
	for i := 0; i < n; i++ {
		j := bitRevIndex(i, logSize)
		if i < j {
			v[i], v[j] = v[j], v[i]
		}
	}
}

// Unpack flattens a slice of packed lanes into a slice of base-field
// elements in the natural (lane-major) order.
func Unpack(data []PackedLane) []m31.Element {
	out := make([]m31.Element, 0, len(data)*Width)
	for _, lane := range data {
		out = append(out, lane[:]...)
	}
	return out
}

// Pack groups a slice of base-field elements (length a multiple of
// Width) into packed lanes.
func Pack(v []m31.Element) []PackedLane {
	if len(v)%Width != 0 {
		panic("simd: Pack requires a length that is a multiple of Width")
	}
	out := make([]PackedLane, len(v)/Width)
	for i := range out {
		copy(out[i][:], v[i*Width:(i+1)*Width])
	}
	return out
}
