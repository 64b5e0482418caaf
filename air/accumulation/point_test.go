package accumulation_test

import (
	"testing"

	"github.com/BaoNinh2808/circle-stark/air/accumulation"
	"github.com/BaoNinh2808/circle-stark/m31"
	"github.com/BaoNinh2808/circle-stark/qm31"
	"github.com/stretchr/testify/require"
)

func feltE(x uint32) qm31.Element { return qm31.FromBase(m31.FromUint32(x)) }

// TestPointAccumulatorScenarioS4 is spec.md §8 scenario S4: alpha=2,
// contributions [1,2,3], expected acc = 1*4 + 2*2 + 3 = 11.
func TestPointAccumulatorScenarioS4(t *testing.T) {
	acc := accumulation.NewPointEvaluationAccumulator(feltE(2))
	acc.Accumulate(feltE(1))
	acc.Accumulate(feltE(2))
	acc.Accumulate(feltE(3))
	require.True(t, acc.Finalize().Equal(feltE(11)))
}

func TestPointAccumulatorLinearity(t *testing.T) {
	alpha := feltE(5)
	contributions := []qm31.Element{feltE(7), feltE(11), feltE(13), feltE(17)}

	acc := accumulation.NewPointEvaluationAccumulator(alpha)
	for _, v := range contributions {
		acc.Accumulate(v)
	}
	got := acc.Finalize()

	k := len(contributions)
	want := qm31.Zero()
	for i, v := range contributions {
		want = want.Add(alpha.Pow(uint64(k-1-i)).Mul(v))
	}
	require.True(t, got.Equal(want))
}

func TestPointAccumulatorPanicsAfterFinalize(t *testing.T) {
	acc := accumulation.NewPointEvaluationAccumulator(feltE(2))
	acc.Accumulate(feltE(1))
	acc.Finalize()
	require.Panics(t, func() { acc.Accumulate(feltE(1)) })
}
