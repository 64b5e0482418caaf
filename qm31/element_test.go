package qm31_test

import (
	"testing"

	"github.com/BaoNinh2808/circle-stark/m31"
	"github.com/BaoNinh2808/circle-stark/qm31"
	"github.com/stretchr/testify/require"
)

func TestEmbedsBaseField(t *testing.T) {
	a := m31.FromUint32(7)
	b := m31.FromUint32(9)
	ea := qm31.FromBase(a)
	eb := qm31.FromBase(b)
	require.True(t, ea.Add(eb).Equal(qm31.FromBase(a.Add(b))))
	require.True(t, ea.Mul(eb).Equal(qm31.FromBase(a.Mul(b))))
}

func TestInverse(t *testing.T) {
	x := qm31.Element{
		C0: qm31.CM31{A0: m31.FromUint32(3), A1: m31.FromUint32(5)},
		C1: qm31.CM31{A0: m31.FromUint32(7), A1: m31.FromUint32(11)},
	}
	inv, err := x.Inverse()
	require.NoError(t, err)
	require.True(t, x.Mul(inv).Equal(qm31.One()))
}

func TestInverseOfZero(t *testing.T) {
	_, err := qm31.Zero().Inverse()
	require.Error(t, err)
}

func TestConstants(t *testing.T) {
	require.True(t, qm31.One().Mul(qm31.One()).Equal(qm31.One()))
	require.True(t, qm31.Zero().Add(qm31.One()).Equal(qm31.One()))
}

func TestPow(t *testing.T) {
	x := qm31.FromBase(m31.FromUint32(3))
	require.True(t, x.Pow(0).Equal(qm31.One()))
	require.True(t, x.Pow(3).Equal(x.Mul(x).Mul(x)))
}

func TestPartsRoundTrip(t *testing.T) {
	a0, a1 := m31.FromUint32(3), m31.FromUint32(5)
	b0, b1 := m31.FromUint32(7), m31.FromUint32(11)
	x := qm31.FromParts(a0, a1, b0, b1)
	gotA0, gotA1, gotB0, gotB1 := x.Parts()
	require.Equal(t, a0, gotA0)
	require.Equal(t, a1, gotA1)
	require.Equal(t, b0, gotB0)
	require.Equal(t, b1, gotB1)
}
