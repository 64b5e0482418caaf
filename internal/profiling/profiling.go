// Package profiling is a benchmark-support helper, not part of the
// proving hot path: it merges two pprof captures of the parallel
// bit-reverse benchmark (one per candidate chunk size) so a maintainer
// tuning config.Tuning.BitReverseChunkLog can diff where time went.
package profiling

import (
	"bytes"
	"fmt"

	"github.com/google/pprof/profile"
)

// MergeCaptures combines two CPU-profile captures into one with
// profile.Merge. Sample values are summed as captured: neither capture
// is rescaled, so a longer run contributes proportionally more samples.
func MergeCaptures(a, b []byte) ([]byte, error) {
	pa, err := profile.Parse(bytes.NewReader(a))
	if err != nil {
		return nil, fmt.Errorf("profiling: parse first capture: %w", err)
	}
	pb, err := profile.Parse(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("profiling: parse second capture: %w", err)
	}

	merged, err := profile.Merge([]*profile.Profile{pa, pb})
	if err != nil {
		return nil, fmt.Errorf("profiling: merge: %w", err)
	}

	var buf bytes.Buffer
	if err := merged.Write(&buf); err != nil {
		return nil, fmt.Errorf("profiling: serialize merged profile: %w", err)
	}
	return buf.Bytes(), nil
}
