package air_test

import (
	"testing"

	"github.com/BaoNinh2808/circle-stark/air"
	"github.com/BaoNinh2808/circle-stark/air/accumulation"
	"github.com/BaoNinh2808/circle-stark/air/mask"
	"github.com/BaoNinh2808/circle-stark/channel"
	"github.com/BaoNinh2808/circle-stark/circlemath"
	"github.com/BaoNinh2808/circle-stark/gkrtypes"
	"github.com/BaoNinh2808/circle-stark/m31"
	"github.com/BaoNinh2808/circle-stark/qm31"
	"github.com/stretchr/testify/require"
)

// toyComponent is a test-only Component/ComponentProver whose every
// constraint evaluates to the same constant everywhere on the trace
// domain, just enough to exercise the accumulator wiring AirExt and
// AirProverExt provide without needing a real circuit.
type toyComponent struct {
	values  []qm31.Element
	logSize uint32
}

func (c *toyComponent) NConstraints() int                   { return len(c.values) }
func (c *toyComponent) MaxConstraintLogDegreeBound() uint32  { return c.logSize }
func (c *toyComponent) NInteractionPhases() int              { return 0 }
func (c *toyComponent) InteractionElementIDs() []string      { return nil }
func (c *toyComponent) GKRLookupInstanceConfigs() []air.LookupInstanceConfig { return nil }

func (c *toyComponent) TraceLogDegreeBounds() circlemath.TreeVec[circlemath.ColumnVec[uint32]] {
	return circlemath.NewTreeVec(circlemath.NewColumnVec(c.logSize))
}

func (c *toyComponent) MaskPoints(z mask.Point) circlemath.TreeVec[circlemath.ColumnVec[[]mask.Shifted]] {
	return mask.FixedMask(z, []int{1}, []int{0})
}

func (c *toyComponent) EvaluateConstraintQuotientsAtPoint(
	z mask.Point,
	maskValues circlemath.TreeVec[circlemath.ColumnVec[[]qm31.Element]],
	acc *accumulation.PointEvaluationAccumulator,
	elems air.InteractionElements,
	lookups air.LookupValues,
) {
	for _, v := range c.values {
		acc.Accumulate(v)
	}
}

func (c *toyComponent) VerifySuccinctMultilinearGKRLayerClaims(
	point []qm31.Element, elems air.InteractionElements, claims [][]qm31.Element,
) *air.VerificationError {
	return nil
}

func (c *toyComponent) EvalAtPointIOPClaimsByNVariables(claims [][]qm31.Element) map[int][]qm31.Element {
	return nil
}

func (c *toyComponent) EvaluateConstraintQuotientsOnDomain(
	trace circlemath.ComponentTrace[m31.Element],
	domainAcc *accumulation.DomainEvaluationAccumulator,
	elems air.InteractionElements,
	lookups air.LookupValues,
) {
	sub := domainAcc.Reserve(len(c.values), c.logSize)
	domainSize := 1 << c.logSize
	for i, v := range c.values {
		vec := make([]qm31.Element, domainSize)
		for k := range vec {
			vec[k] = v
		}
		sub.AccumulateAt(i, vec)
	}
}

func (c *toyComponent) LookupValues(trace circlemath.ComponentTrace[m31.Element]) air.LookupValues {
	return air.EmptyLookupValues()
}

var (
	_ air.Component                   = (*toyComponent)(nil)
	_ air.ComponentProver[m31.Element] = (*toyComponent)(nil)
)

type toyAir struct {
	components []*toyComponent
}

func (a *toyAir) Components() []air.Component {
	out := make([]air.Component, len(a.components))
	for i, c := range a.components {
		out[i] = c
	}
	return out
}

func (a *toyAir) ComponentProvers() []air.ComponentProver[m31.Element] {
	out := make([]air.ComponentProver[m31.Element], len(a.components))
	for i, c := range a.components {
		out[i] = c
	}
	return out
}

func (a *toyAir) InteractionElements(ch channel.Channel) air.InteractionElements {
	return air.NewInteractionElements(nil)
}

func (a *toyAir) Interact(
	ch channel.Channel,
	baseTrace circlemath.ComponentTrace[m31.Element],
	elems air.InteractionElements,
) (circlemath.TreeVec[circlemath.ColumnVec[circlemath.CirclePoly[m31.Element]]], gkrtypes.GkrBatchProof, []gkrtypes.GkrArtifact, qm31.Element) {
	return nil, gkrtypes.GkrBatchProof{}, nil, qm31.Zero()
}

var _ air.AirProver[m31.Element] = (*toyAir)(nil)

func feltE2(x uint32) qm31.Element { return qm31.FromBase(m31.FromUint32(x)) }

func newToyAir() *toyAir {
	return &toyAir{components: []*toyComponent{
		{values: []qm31.Element{feltE2(1), feltE2(2)}, logSize: 2},
		{values: []qm31.Element{feltE2(3)}, logSize: 2},
	}}
}

func TestAirExtTotals(t *testing.T) {
	a := air.AirExt{Air: newToyAir()}
	require.Equal(t, 3, a.TotalNConstraints())
	require.Equal(t, uint32(2), a.MaxConstraintLogDegreeBound())
}

func TestAirExtMaskShapesMatch(t *testing.T) {
	a := air.AirExt{Air: newToyAir()}
	z := mask.Point{X: qm31.One(), Y: qm31.Zero()}
	require.NoError(t, a.CheckMaskShapes(z))
}

// TestAirProverExtPointAndDomainAgree is spec.md §8 item 4 exercised at
// the whole-AIR level: the point accumulator driven through
// AirProverExt.EvaluateConstraintQuotientsAtPoint and the domain
// accumulator driven through EvaluateConstraintQuotientsOnDomain must
// assign the same alpha powers to corresponding constraints, so every
// domain point's folded value equals the point-accumulator result
// (since every toy constraint is domain-constant).
func TestAirProverExtPointAndDomainAgree(t *testing.T) {
	alpha := feltE2(5)
	ext := air.AirProverExt[m31.Element]{AirProver: newToyAir()}
	z := mask.Point{X: qm31.One(), Y: qm31.Zero()}

	maskByComponent := make([]circlemath.TreeVec[circlemath.ColumnVec[[]qm31.Element]], 2)
	pointResult := ext.EvaluateConstraintQuotientsAtPoint(z, maskByComponent, alpha, air.NewInteractionElements(nil), air.EmptyLookupValues())

	traces := make([]circlemath.ComponentTrace[m31.Element], 2)
	domainAcc := ext.EvaluateConstraintQuotientsOnDomain(traces, alpha, air.NewInteractionElements(nil), air.EmptyLookupValues())

	columns := domainAcc.Columns()[2]
	for i, v := range columns {
		require.True(t, v.Equal(pointResult), "domain point %d disagrees with point accumulator", i)
	}
}
