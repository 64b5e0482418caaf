// Package gkrtypes declares the shapes the AIR layer exchanges with the
// external GKR verifier collaborator (spec.md §6): batching gates,
// batch proofs, and per-instance verification artifacts. The sum-check
// machinery that would produce/consume these is out of scope here.
package gkrtypes

import "github.com/BaoNinh2808/circle-stark/qm31"

// GateKind identifies the lookup-argument a GKR layer batches.
type GateKind int

const (
	GrandProduct GateKind = iota
	LogUp
)

func (k GateKind) String() string {
	switch k {
	case GrandProduct:
		return "grand_product"
	case LogUp:
		return "log_up"
	default:
		return "unknown_gate_kind"
	}
}

// Gate describes one GKR-batched lookup instance: its argument kind and
// whether this side defines the multiset (IsLookupTable) or only
// consumes it.
type Gate struct {
	Kind          GateKind
	IsLookupTable bool
}

// GkrBatchProof is the opaque batched sum-check proof the external GKR
// verifier consumes. Its internal per-layer round-polynomial structure
// is out of scope; here it is just an ordered, serialized payload.
type GkrBatchProof struct {
	Layers [][]byte
}

// GkrArtifact is one instance's verification output: the reduced
// top-layer multilinear claim, the point it was folded to, and the
// number of free variables (log-domain-size) that point lives in.
type GkrArtifact struct {
	Point      []qm31.Element
	Claim      qm31.Element
	NVariables int
}

// Verifier is the external GKR verifier collaborator (spec.md §6): it
// consumes a batch proof plus a layer-claim vector per instance and
// returns a per-instance artifact and the output evaluation point.
type Verifier interface {
	Verify(proof GkrBatchProof, claimsByInstance [][]qm31.Element) ([]GkrArtifact, error)
}
