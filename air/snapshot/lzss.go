package snapshot

import (
	"fmt"

	"github.com/consensys/compress/lzss"
)

// CompressForDisk optionally LZSS-compresses an already-CBOR-encoded
// snapshot before it is written to disk, the way the teacher's own
// std/compress packages shrink calldata. This is purely a storage
// optimization: Encode/Decode round-trip correctly without it, and
// DecompressFromDisk must be used to read back whatever CompressForDisk
// produced.
func CompressForDisk(cborData []byte) ([]byte, error) {
	out, err := lzss.Compress(cborData, nil)
	if err != nil {
		return nil, fmt.Errorf("snapshot: lzss compress: %w", err)
	}
	return out, nil
}

// DecompressFromDisk is the inverse of CompressForDisk.
func DecompressFromDisk(compressed []byte) ([]byte, error) {
	out, err := lzss.Decompress(compressed, nil)
	if err != nil {
		return nil, fmt.Errorf("snapshot: lzss decompress: %w", err)
	}
	return out, nil
}
