// Package config holds the small set of tuning knobs that affect
// performance but never protocol semantics: the bit-reverse
// parallelism chunk size, whether to prefer a GPU PackedLane backend
// when one is compiled in, and the log verbosity. None of these is
// read from the environment or a CLI flag at the core layer (spec.md
// §6, "no persisted state, no CLI, no environment dependency in the
// core"); a driver loads a YAML file and passes the result in.
package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Tuning holds the knobs a driver may load from a YAML file and pass
// down to the bit-reverse and accumulator layers.
type Tuning struct {
	// BitReverseChunkLog is log2 of the number of consecutive values
	// of the outer a-loop (spec.md §4.1) each goroutine handles in
	// BitReverseM31Parallel. Zero means "let the caller decide".
	BitReverseChunkLog int `yaml:"bit_reverse_chunk_log"`
	// PreferGPU requests the icicle-backed PackedLane implementation
	// when the binary was built with the `icicle` tag.
	PreferGPU bool `yaml:"prefer_gpu"`
	// LogLevel is a zerolog level name ("debug", "info", "warn", ...).
	LogLevel string `yaml:"log_level"`
}

// Default returns the tuning defaults used when no YAML file is
// supplied.
func Default() Tuning {
	return Tuning{BitReverseChunkLog: 0, PreferGPU: false, LogLevel: "info"}
}

// Load parses a YAML document into a Tuning, starting from Default()
// so an omitted field keeps its default value.
func Load(data []byte) (Tuning, error) {
	t := Default()
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Tuning{}, fmt.Errorf("config: parse tuning yaml: %w", err)
	}
	return t, nil
}
