package mathutil_test

import (
	"testing"

	"github.com/BaoNinh2808/circle-stark/internal/mathutil"
	"github.com/stretchr/testify/require"
)

func TestLog2Ceil(t *testing.T) {
	require.EqualValues(t, 0, mathutil.Log2Ceil(1))
	require.EqualValues(t, 6, mathutil.Log2Ceil(63))
	require.EqualValues(t, 6, mathutil.Log2Ceil(64))
	require.EqualValues(t, 7, mathutil.Log2Ceil(65))
}

func TestLog2Floor(t *testing.T) {
	require.EqualValues(t, 0, mathutil.Log2Floor(1))
	require.EqualValues(t, 5, mathutil.Log2Floor(63))
	require.EqualValues(t, 6, mathutil.Log2Floor(64))
	require.EqualValues(t, 6, mathutil.Log2Floor(65))
}

func TestNextPrevPowTwo(t *testing.T) {
	require.EqualValues(t, 1, mathutil.NextPowTwo(1))
	require.EqualValues(t, 2, mathutil.NextPowTwo(2))
	require.EqualValues(t, 4, mathutil.NextPowTwo(3))
	require.EqualValues(t, 1, mathutil.PrevPowTwo(1))
	require.EqualValues(t, 2, mathutil.PrevPowTwo(2))
	require.EqualValues(t, 2, mathutil.PrevPowTwo(3))
}

func TestDivCeil(t *testing.T) {
	require.EqualValues(t, 2, mathutil.DivCeil(6, 4))
	require.EqualValues(t, 2, mathutil.DivCeil(6, 3))
}

func TestDivCeilByZeroPanics(t *testing.T) {
	require.Panics(t, func() { mathutil.DivCeil(6, 0) })
}

func TestSafeDivRemainderPanics(t *testing.T) {
	require.Panics(t, func() { mathutil.SafeDiv(7, 2) })
}

func TestIsPowTwo(t *testing.T) {
	require.True(t, mathutil.IsPowTwo(1))
	require.True(t, mathutil.IsPowTwo(1024))
	require.False(t, mathutil.IsPowTwo(0))
	require.False(t, mathutil.IsPowTwo(3))
}
