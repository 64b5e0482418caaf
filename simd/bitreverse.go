package simd

import (
	"fmt"
	"math/bits"

	"github.com/consensys/gnark/logger"
	"golang.org/x/sync/errgroup"
)

// WBits is the width, in bits, of each of the two "w" fields in the
// index decomposition v_h‖w_h‖a‖w_l‖v_l described in spec.md §4.1.
const WBits = 3

// MinLogSize is the minimum log2(len(data)) bit_reverse_m31 accepts:
// 2*WBits + VecBits = 10, i.e. at least 1024 packed lanes.
const MinLogSize = 2*WBits + VecBits

// BitReverseM31 permutes data in place so that data'[i] = data[bitrev(i)],
// where bitrev reverses the low n bits of i and n = log2(len(data)).
//
// The permutation decomposes the n-bit index as v_h‖w_h‖a‖w_l‖v_l, with
// |v_h|=|v_l|=VecBits, |w_h|=|w_l|=WBits, |a|=n-2*WBits-VecBits. Reversing
// the whole index factors into an intra-block bit-reversal of 16
// consecutive packed lanes (bitReverse16, which also reverses v_h against
// v_l) composed with an inter-block swap driven by the (a, w_l, w_h)
// loops below. See spec.md §4.1 for the full derivation.
func BitReverseM31(data []PackedLane) {
	n := len(data)
	if n == 0 || n&(n-1) != 0 {
		panic("simd: bit_reverse_m31 requires a power-of-two length")
	}
	logSize := bits.Len(uint(n)) - 1
	if logSize < MinLogSize {
		panic(fmt.Sprintf("simd: bit_reverse_m31 requires log size >= %d, got %d", MinLogSize, logSize))
	}

	aBits := uint32(logSize - 2*WBits - VecBits)
	log := logger.Logger()
	log.Debug().Int("log_size", logSize).Uint32("a_bits", aBits).Msg("bit_reverse_m31: dispatch")

	bitReverseRange(data, 0, 1<<aBits, aBits, uint32(logSize))
}

// BitReverseM31Parallel behaves like BitReverseM31 but shards the
// data-independent outer a-loop (spec.md §5, "the natural parallelism
// axis") across goroutines using golang.org/x/sync/errgroup, one shard
// per chunk of 2^chunkLog consecutive values of a.
func BitReverseM31Parallel(data []PackedLane, chunkLog int) error {
	n := len(data)
	if n == 0 || n&(n-1) != 0 {
		panic("simd: bit_reverse_m31 requires a power-of-two length")
	}
	logSize := bits.Len(uint(n)) - 1
	if logSize < MinLogSize {
		panic(fmt.Sprintf("simd: bit_reverse_m31 requires log size >= %d, got %d", MinLogSize, logSize))
	}
	aBits := uint32(logSize - 2*WBits - VecBits)
	if chunkLog < 0 || uint32(chunkLog) > aBits {
		chunkLog = int(aBits)
	}

	var g errgroup.Group
	chunkSize := uint32(1) << uint32(chunkLog)
	total := uint32(1) << aBits
	for start := uint32(0); start < total; start += chunkSize {
		start := start
		end := start + chunkSize
		if end > total {
			end = total
		}
		g.Go(func() error {
			bitReverseRange(data, start, end, aBits, uint32(logSize))
			return nil
		})
	}
	return g.Wait()
}

// bitReverseRange runs the (a, w_l, w_h) loop of spec.md §4.1 for
// a in [aStart, aEnd).
func bitReverseRange(data []PackedLane, aStart, aEnd uint32, aBits, logSize uint32) {
	for a := aStart; a < aEnd; a++ {
		for wl := uint32(0); wl < 1<<WBits; wl++ {
			wlRev := bits.Reverse32(wl) >> (32 - WBits)
			for wh := uint32(0); wh <= wlRev; wh++ {
				idx := int((((wh << aBits) | a) << WBits) | wl)
				idxRev := bitRevIndex(idx, logSize-VecBits)

				// Skip if already handled from the other side of the pair.
				if idx > idxRev {
					continue
				}

				stride := 1 << (2*WBits + aBits)

				var chunk0 [Width]PackedLane
				for i := 0; i < Width; i++ {
					chunk0[i] = data[idx+i*stride]
				}
				values0 := bitReverse16(chunk0)

				if idx == idxRev {
					for i := 0; i < Width; i++ {
						data[idx+i*stride] = values0[i]
					}
					continue
				}

				var chunk1 [Width]PackedLane
				for i := 0; i < Width; i++ {
					chunk1[i] = data[idxRev+i*stride]
				}
				values1 := bitReverse16(chunk1)

				for i := 0; i < Width; i++ {
					data[idx+i*stride] = values1[i]
					data[idxRev+i*stride] = values0[i]
				}
			}
		}
	}
}

// bitReverse16 bit-reverses a block of Width=16 packed lanes (256 base
// field elements total), reversing both the index of the lane within
// the block and the index of the element within each lane.
//
// Denote the index of each element as abcd:0123 (abcd = lane index,
// 0123 = index within the lane). Applying the permutation
// abcd:0123 -> 0abc:123d four times in a row reverses the full 8-bit
// composite index: abcd:0123 -> 0abc:123d -> 10ab:23dc -> 210a:3dcb ->
// 3210:dcba.
func bitReverse16(data [Width]PackedLane) [Width]PackedLane {
	for round := 0; round < 4; round++ {
		var next [Width]PackedLane
		for i := 0; i < Width/2; i++ {
			next[i] = loLoInterleaveHiLo.ConcatSwizzle(data[2*i], data[2*i+1])
			next[Width/2+i] = loHiInterleaveHiHi.ConcatSwizzle(data[2*i], data[2*i+1])
		}
		data = next
	}
	return data
}

// bitRevIndex reverses the low nbits bits of idx.
func bitRevIndex(idx int, nbits uint32) int {
	return int(bits.Reverse32(uint32(idx)) >> (32 - nbits))
}
