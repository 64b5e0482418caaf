// Package air implements the AIR abstraction layer spec.md §4 and §6
// describe: the Component/ComponentProver capability contract, the
// Air/AirTraceVerifier/AirTraceWriter/AirProver composite, lookup
// configuration, and the interaction-element/lookup-value bookkeeping
// that binds prover and verifier to the same α-power order.
package air

import "fmt"

// VerificationError is the structured error the Design Notes (spec.md
// §9) ask for in place of the current design's bare boolean return
// from verify_succinct_multilinear_gkr_layer_claims: a kind plus
// free-form context, without changing the happy-path contract (nil
// means the claim verified).
type VerificationError struct {
	Kind    string
	Context string
}

func (e *VerificationError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("air: %s: %s", e.Kind, e.Context)
}

// NewVerificationError builds a VerificationError with a formatted
// context string.
func NewVerificationError(kind, format string, args ...any) *VerificationError {
	return &VerificationError{Kind: kind, Context: fmt.Sprintf(format, args...)}
}
