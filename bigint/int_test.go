package bigint

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtendedGCD(t *testing.T) {
	a := NewInt(7178655232)
	b := NewInt(1426532525)
	d, x, y := a.ExtendedGCD(b)
	require.True(t, d.Equals(NewInt(997)))
	require.True(t, x.Equals(NewInt(-39329)))
	require.True(t, y.Equals(NewInt(197913)))
	// a*x + b*y == d
	require.True(t, a.Mul(x).Add(b.Mul(y)).Equals(d))
}

func TestIsqrt(t *testing.T) {
	require.Equal(t, int64(10), NewInt(101).Isqrt().Int64())
	require.Equal(t, int64(3), NewInt(9).Isqrt().Int64())
}

func TestNthRoot(t *testing.T) {
	n := NewInt(1000)
	require.Equal(t, int64(10), n.NthRoot(3, false).Int64())
	require.Equal(t, int64(9), NewInt(1000).Sub(One).NthRoot(3, false).Int64())
	require.Equal(t, int64(10), NewInt(1000).Sub(One).NthRoot(3, true).Int64())
}

func TestDivFloor(t *testing.T) {
	require.Equal(t, int64(-4), NewInt(-7).Div(NewInt(2)).Int64())
	require.Equal(t, int64(1), NewInt(-7).Mod(NewInt(2)).Int64())
}

func TestPolynomialEvaluate(t *testing.T) {
	p := &Polynomial{A0: One, A1: Zero, A2: One}
	n := NewInt(1000000007)
	x := NewInt(5)
	got := p.Evaluate(x, n)
	require.True(t, got.Equals(NewInt(26)))
}

func TestLog10(t *testing.T) {
	require.Equal(t, 2, NewInt(999).Log10())
	require.Equal(t, 3, NewInt(1000).Log10())
}
