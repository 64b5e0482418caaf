package air

import (
	"fmt"

	"github.com/BaoNinh2808/circle-stark/air/accumulation"
	"github.com/BaoNinh2808/circle-stark/air/mask"
	"github.com/BaoNinh2808/circle-stark/channel"
	"github.com/BaoNinh2808/circle-stark/circlemath"
	"github.com/BaoNinh2808/circle-stark/gkrtypes"
	"github.com/BaoNinh2808/circle-stark/qm31"
)

// Air enumerates components in a fixed declaration order — the ground
// truth for alpha-power assignment across every accumulator and for
// the layout of batched GKR claims (spec.md §4.4, "Ordering invariant").
type Air interface {
	Components() []Component
}

// AirTraceVerifier samples interaction elements from the transcript
// (spec.md §4.4).
type AirTraceVerifier interface {
	Air
	InteractionElements(ch channel.Channel) InteractionElements
}

// AirTraceWriter drives the prover-side interaction phase (spec.md
// §4.4): given the base trace and sampled interaction elements, it
// produces interaction-phase polynomials, a batched GKR proof, the
// per-instance GKR artifact, and an auxiliary secure-field value
// (conventionally the LogUp grand total or equivalent — spec.md §9
// Open Questions flags this as under-specified; implementers must
// document the exact semantics per AIR).
type AirTraceWriter[F any] interface {
	AirTraceVerifier
	Interact(
		ch channel.Channel,
		baseTrace circlemath.ComponentTrace[F],
		elems InteractionElements,
	) (
		interactionPolys circlemath.TreeVec[circlemath.ColumnVec[circlemath.CirclePoly[F]]],
		proof gkrtypes.GkrBatchProof,
		artifact []gkrtypes.GkrArtifact,
		auxiliarySum qm31.Element,
	)
}

// AirProver aggregates ComponentProver components (spec.md §4.4).
type AirProver[F any] interface {
	AirTraceWriter[F]
	ComponentProvers() []ComponentProver[F]
}

// AirExt provides derived helpers over any Air, mirroring the
// original_source `air_ext::AirExt` extension trait: totals and
// closure checks computed once, against Components() order, so no
// individual component has to replicate the ordering invariant.
type AirExt struct {
	Air
}

// TotalNConstraints sums NConstraints() across every component, in
// Components() order — the total a DomainEvaluationAccumulator must be
// constructed with (spec.md §4.3, "for alpha-power accounting").
func (a AirExt) TotalNConstraints() int {
	total := 0
	for _, c := range a.Components() {
		total += c.NConstraints()
	}
	return total
}

// MaxConstraintLogDegreeBound is the maximum over every component's own
// bound.
func (a AirExt) MaxConstraintLogDegreeBound() uint32 {
	var max uint32
	for _, c := range a.Components() {
		if b := c.MaxConstraintLogDegreeBound(); b > max {
			max = b
		}
	}
	return max
}

// InteractionElementIDs returns the deduplicated union of every
// component's InteractionElementIDs, in first-seen order across
// Components().
func (a AirExt) InteractionElementIDs() []string {
	seen := map[string]struct{}{}
	var ids []string
	for _, c := range a.Components() {
		for _, id := range c.InteractionElementIDs() {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}
	return ids
}

// CheckInteractionElementsClosure verifies spec.md §8 item 6 across
// the whole AIR: every id any component declares is present in elems.
func (a AirExt) CheckInteractionElementsClosure(elems InteractionElements) error {
	return CheckInteractionElementsClosure(a.InteractionElementIDs(), elems)
}

// CheckMaskShapes verifies the mask-shape law (spec.md §8 item 5) for
// every component against z.
func (a AirExt) CheckMaskShapes(z mask.Point) error {
	for i, c := range a.Components() {
		if err := mask.CheckShape(c.MaskPoints(z), c.TraceLogDegreeBounds()); err != nil {
			return fmt.Errorf("air: component %d: %w", i, err)
		}
	}
	return nil
}

// AirProverExt wraps an AirProver[F], providing driver-level
// orchestration across every component in Components()/
// ComponentProvers() order (spec.md §5, "(ii) alpha-powers in
// accumulators match that order"). It is the single place the
// point/domain alpha-power ordering invariant is enforced, rather than
// replicated per component (spec.md §9 Design Notes).
type AirProverExt[F any] struct {
	AirProver[F]
}

// EvaluateConstraintQuotientsAtPoint runs every component's point
// evaluator, in Components() order, into one point accumulator under
// alpha. maskByComponent must be aligned 1:1 with Components().
func (a AirProverExt[F]) EvaluateConstraintQuotientsAtPoint(
	z mask.Point,
	maskByComponent []circlemath.TreeVec[circlemath.ColumnVec[[]qm31.Element]],
	alpha qm31.Element,
	elems InteractionElements,
	lookups LookupValues,
) qm31.Element {
	acc := accumulation.NewPointEvaluationAccumulator(alpha)
	for i, c := range a.Components() {
		c.EvaluateConstraintQuotientsAtPoint(z, maskByComponent[i], acc, elems, lookups)
	}
	return acc.Finalize()
}

// EvaluateConstraintQuotientsOnDomain runs every ComponentProver's
// domain evaluator, in ComponentProvers() order, into one domain
// accumulator under alpha, sized by the sum of every component's
// NConstraints (spec.md §4.3). traces must be aligned 1:1 with
// ComponentProvers().
func (a AirProverExt[F]) EvaluateConstraintQuotientsOnDomain(
	traces []circlemath.ComponentTrace[F],
	alpha qm31.Element,
	elems InteractionElements,
	lookups LookupValues,
) *accumulation.DomainEvaluationAccumulator {
	provers := a.ComponentProvers()
	total := 0
	for _, c := range provers {
		total += c.NConstraints()
	}
	domainAcc := accumulation.NewDomainEvaluationAccumulator(alpha, total)
	for i, c := range provers {
		c.EvaluateConstraintQuotientsOnDomain(traces[i], domainAcc, elems, lookups)
	}
	return domainAcc
}
