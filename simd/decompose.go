package simd

import (
	"bytes"

	"github.com/icza/bitio"
)

// DecomposeIndex splits a full element-level index into the
// v_h‖w_h‖a‖w_l‖v_l bit-field decomposition of spec.md §4.1 (n here is
// the packed-lane log-size, so the full index has n+VecBits bits), read
// bit by bit. It is an introspection helper: BitReverseM31 and its debug
// log line do not call it.
func DecomposeIndex(fullIdx uint32, n uint32) (vh, wh, a, wl, vl uint32) {
	aBits := n - 2*WBits - VecBits
	totalBits := byte(n + VecBits)

	var buf bytes.Buffer
	w := bitio.NewWriter(&buf)
	if err := w.WriteBits(uint64(fullIdx), totalBits); err != nil {
		panic(err)
	}
	if err := w.Close(); err != nil {
		panic(err)
	}

	r := bitio.NewReader(&buf)
	vhv, _ := r.ReadBits(byte(VecBits))
	whv, _ := r.ReadBits(byte(WBits))
	av, _ := r.ReadBits(byte(aBits))
	wlv, _ := r.ReadBits(byte(WBits))
	vlv, _ := r.ReadBits(byte(VecBits))
	return uint32(vhv), uint32(whv), uint32(av), uint32(wlv), uint32(vlv)
}
