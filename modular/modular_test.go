package modular

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bfix/numlab/bigint"
)

func TestPowMod(t *testing.T) {
	r, err := PowMod(bigint.NewInt(4), bigint.NewInt(13), bigint.NewInt(497))
	require.NoError(t, err)
	require.Equal(t, int64(445), r.Int64())
}

func TestInvMod(t *testing.T) {
	r, ok := InvMod(bigint.NewInt(3), bigint.NewInt(11))
	require.True(t, ok)
	require.Equal(t, int64(4), r.Int64())

	_, ok = InvMod(bigint.NewInt(2), bigint.NewInt(4))
	require.False(t, ok)
}

func TestCongruenceSystem(t *testing.T) {
	a := []*bigint.Int{bigint.NewInt(2), bigint.NewInt(3), bigint.NewInt(2)}
	n := []*bigint.Int{bigint.NewInt(3), bigint.NewInt(5), bigint.NewInt(7)}
	x, err := CongruenceSystem(a, n)
	require.NoError(t, err)
	require.Equal(t, int64(23), x.Int64())
}

func TestLegendre(t *testing.T) {
	l, err := Legendre(bigint.NewInt(4), bigint.NewInt(7))
	require.NoError(t, err)
	require.Equal(t, 1, l)

	l, err = Legendre(bigint.NewInt(5), bigint.NewInt(7))
	require.NoError(t, err)
	require.Equal(t, -1, l)
}

func TestOrder(t *testing.T) {
	g := bigint.NewInt(3)
	n := bigint.NewInt(121)
	phi := bigint.NewInt(110)
	primes := []*bigint.Int{bigint.NewInt(11), bigint.NewInt(2), bigint.NewInt(5)}
	o, err := Order(g, n, phi, primes)
	require.NoError(t, err)
	require.Equal(t, int64(5), o.Int64())
}

func TestMsqrtRoundTrip(t *testing.T) {
	p := bigint.NewInt(10007)
	for _, aVal := range []int64{4, 9, 16, 25, 100, 9999} {
		a := bigint.NewInt(aVal)
		sq, err := IsSquare(a, p)
		require.NoError(t, err)
		if !sq {
			continue
		}
		d, err := FindNonSquare(p)
		require.NoError(t, err)
		r, err := Msqrt(a, p, d)
		require.NoError(t, err)
		got, err := PowMod(r, bigint.Two, p)
		require.NoError(t, err)
		require.True(t, got.Equals(a.Mod(p)), "msqrt(%v)^2 = %v != %v", a, got, a)
	}
}
