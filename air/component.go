package air

import (
	"github.com/BaoNinh2808/circle-stark/air/accumulation"
	"github.com/BaoNinh2808/circle-stark/air/mask"
	"github.com/BaoNinh2808/circle-stark/circlemath"
	"github.com/BaoNinh2808/circle-stark/qm31"
)

// Component is the polymorphic contract every AIR sub-circuit
// implements (spec.md §4.3). It is realized as a virtual-dispatch
// interface, per the Design Notes (spec.md §9: "prefer (a) for the
// component layer" since the set of concrete components is
// open-ended, unlike ColumnEvaluator/LookupEvaluator's closed set).
type Component interface {
	// NConstraints is the count of polynomial constraints this
	// component contributes, used for alpha-power accounting.
	NConstraints() int
	// MaxConstraintLogDegreeBound upper-bounds ceil(log2(deg)) of any
	// constraint quotient this component produces.
	MaxConstraintLogDegreeBound() uint32
	// NInteractionPhases is the number of post-base interaction phases
	// this component participates in.
	NInteractionPhases() int
	// TraceLogDegreeBounds reports, per tree and column, the
	// polynomial degree bound of that column.
	TraceLogDegreeBounds() circlemath.TreeVec[circlemath.ColumnVec[uint32]]
	// MaskPoints returns, per tree and column, the list of points at
	// which that column must be opened to evaluate constraints at z.
	MaskPoints(z mask.Point) circlemath.TreeVec[circlemath.ColumnVec[[]mask.Shifted]]
	// InteractionElementIDs lists the identifiers this component reads
	// from InteractionElements.
	InteractionElementIDs() []string
	// EvaluateConstraintQuotientsAtPoint evaluates every constraint
	// quotient at z from the opened mask values and folds the result
	// into acc.
	EvaluateConstraintQuotientsAtPoint(
		z mask.Point,
		maskValues circlemath.TreeVec[circlemath.ColumnVec[[]qm31.Element]],
		acc *accumulation.PointEvaluationAccumulator,
		elems InteractionElements,
		lookups LookupValues,
	)
	// VerifySuccinctMultilinearGKRLayerClaims checks per-lookup-instance
	// GKR top-layer claims against this component's declared lookup
	// structure, returning nil on success. spec.md §9 flags the
	// current design's bare-bool return as needing a structured error;
	// this is that redesign.
	VerifySuccinctMultilinearGKRLayerClaims(
		point []qm31.Element,
		elems InteractionElements,
		claimsByInstance [][]qm31.Element,
	) *VerificationError
	// EvalAtPointIOPClaimsByNVariables groups the univariate opening
	// claims the GKR layer reduces to, keyed by number of variables
	// (log-domain-size).
	EvalAtPointIOPClaimsByNVariables(claimsByInstance [][]qm31.Element) map[int][]qm31.Element
	// GKRLookupInstanceConfigs reports this component's per-lookup
	// configuration for the batcher.
	GKRLookupInstanceConfigs() []LookupInstanceConfig
}

// ComponentProver extends Component with the prover-only operations
// (spec.md §4.3, "Prover extension"), parameterized over the backend's
// field representation the same way ComponentTrace is.
type ComponentProver[F any] interface {
	Component
	// EvaluateConstraintQuotientsOnDomain is the domain-wide analog of
	// EvaluateConstraintQuotientsAtPoint: it uses trace.Evals across
	// the whole commitment domain, folding into domainAcc.
	EvaluateConstraintQuotientsOnDomain(
		trace circlemath.ComponentTrace[F],
		domainAcc *accumulation.DomainEvaluationAccumulator,
		elems InteractionElements,
		lookups LookupValues,
	)
	// LookupValues extracts scalar lookup summaries (e.g. the total
	// LogUp sum) needed by later phases. The default is
	// EmptyLookupValues (spec.md §4.3).
	LookupValues(trace circlemath.ComponentTrace[F]) LookupValues
}
