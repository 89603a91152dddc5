package testvectors

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bfix/numlab/bigint"
	"github.com/bfix/numlab/discretelog"
	"github.com/bfix/numlab/modular"
	"github.com/bfix/numlab/primality"
	"github.com/bfix/numlab/rng"
)

func TestExtendedGCDVectors(t *testing.T) {
	cases, err := LoadExtendedGCD("testdata/extended_gcd.txt")
	require.NoError(t, err)
	require.NotEmpty(t, cases)
	for _, c := range cases {
		d, x, y := c.A.ExtendedGCD(c.B)
		require.True(t, d.Equals(c.D), "gcd(%v,%v)=%v want %v", c.A, c.B, d, c.D)
		require.True(t, x.Equals(c.X))
		require.True(t, y.Equals(c.Y))
	}
}

func TestInverseModularVectors(t *testing.T) {
	cases, err := LoadInverseModular("testdata/inverso_modular.txt")
	require.NoError(t, err)
	for _, c := range cases {
		inv, ok := modular.InvMod(c.A, c.N)
		require.True(t, ok)
		require.True(t, inv.Equals(c.Inv), "invmod(%v,%v)=%v want %v", c.A, c.N, inv, c.Inv)
	}
}

func TestPowModVectors(t *testing.T) {
	cases, err := LoadPowMod("testdata/exp_binaria.txt")
	require.NoError(t, err)
	for _, c := range cases {
		r, err := modular.PowMod(c.B, c.E, c.N)
		require.NoError(t, err)
		require.True(t, r.Equals(c.Result), "powmod(%v,%v,%v)=%v want %v", c.B, c.E, c.N, r, c.Result)
	}
}

func TestBSGSVectors(t *testing.T) {
	cases, err := LoadBSGS("testdata/bsgs.txt")
	require.NoError(t, err)
	for _, c := range cases {
		order := c.P.Sub(bigint.One)
		x, err := discretelog.BabyStepGiantStep(c.G, c.H, c.P, order)
		require.NoError(t, err)
		require.True(t, x.Equals(c.X), "bsgs(%v,%v,%v)=%v want %v", c.G, c.H, c.P, x, c.X)
	}
}

func TestPrimesVectors(t *testing.T) {
	cases, err := LoadPrimes("testdata/primes.txt")
	require.NoError(t, err)
	sieve := primality.EratosthenesSieve(1000)
	src := rng.NewSeeded([]byte("testvectors-primes"))
	for _, c := range cases {
		ok, err := primality.IsPrime(c.P, sieve, 20, src)
		require.NoError(t, err)
		require.Equal(t, c.IsPrime, ok, "is_prime(%v) = %v want %v", c.P, ok, c.IsPrime)
	}
}
