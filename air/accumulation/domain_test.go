package accumulation_test

import (
	"testing"

	"github.com/BaoNinh2808/circle-stark/air/accumulation"
	"github.com/BaoNinh2808/circle-stark/qm31"
	"github.com/stretchr/testify/require"
)

// TestDomainAccumulatorMatchesPointAccumulatorAtEachPoint is spec.md §8
// item 4 (alpha-power agreement): folding the same per-constraint
// contribution sequence through the domain accumulator, point by
// point, must agree with running the point accumulator over the same
// per-point values in the same order.
func TestDomainAccumulatorMatchesPointAccumulatorAtEachPoint(t *testing.T) {
	alpha := feltE(3)
	const logSize = 2
	const domainSize = 1 << logSize

	// Two components, first reserving 2 constraints, second reserving 1.
	contributions := [][]qm31.Element{
		{feltE(1), feltE(2), feltE(3), feltE(4)},
		{feltE(5), feltE(6), feltE(7), feltE(8)},
		{feltE(9), feltE(10), feltE(11), feltE(12)},
	}

	domainAcc := accumulation.NewDomainEvaluationAccumulator(alpha, len(contributions))
	sub1 := domainAcc.Reserve(2, logSize)
	sub1.AccumulateAt(0, contributions[0])
	sub1.AccumulateAt(1, contributions[1])
	sub2 := domainAcc.Reserve(1, logSize)
	sub2.AccumulateAt(0, contributions[2])

	columns := domainAcc.Columns()[logSize]

	for point := 0; point < domainSize; point++ {
		pointAcc := accumulation.NewPointEvaluationAccumulator(alpha)
		for _, c := range contributions {
			pointAcc.Accumulate(c[point])
		}
		require.True(t, columns[point].Equal(pointAcc.Finalize()),
			"mismatch at domain point %d", point)
	}
}

func TestDomainAccumulatorPanicsOnLengthMismatch(t *testing.T) {
	domainAcc := accumulation.NewDomainEvaluationAccumulator(feltE(2), 1)
	sub := domainAcc.Reserve(1, 2)
	require.Panics(t, func() { sub.AccumulateAt(0, []qm31.Element{feltE(1)}) })
}

func TestDomainAccumulatorPanicsOnOverReservation(t *testing.T) {
	domainAcc := accumulation.NewDomainEvaluationAccumulator(feltE(2), 1)
	sub := domainAcc.Reserve(1, 2)
	values := make([]qm31.Element, 4)
	require.Panics(t, func() { sub.AccumulateAt(1, values) })
}
