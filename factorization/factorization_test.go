package factorization

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/bfix/numlab/bigint"
	"github.com/bfix/numlab/primality"
	"github.com/bfix/numlab/rng"
)

func TestFactorOut(t *testing.T) {
	u, alpha := FactorOut(bigint.NewInt(360), bigint.NewInt(2))
	require.Equal(t, int64(45), u.Int64())
	require.Equal(t, 3, alpha)
}

func TestFactorWithLimitedPrimes(t *testing.T) {
	primes := []*bigint.Int{bigint.NewInt(2), bigint.NewInt(3), bigint.NewInt(5)}
	pp, residue, err := FactorWithLimitedPrimes(bigint.NewInt(360), primes)
	require.NoError(t, err)
	require.True(t, residue.Equals(bigint.One))
	require.Equal(t, 3, pp.Get(bigint.NewInt(2)))
	require.Equal(t, 2, pp.Get(bigint.NewInt(3)))
	require.Equal(t, 1, pp.Get(bigint.NewInt(5)))
	require.True(t, pp.Product().Equals(bigint.NewInt(360)))
}

func TestFactorWithLimitedPrimesNonSmoothResidue(t *testing.T) {
	primes := []*bigint.Int{bigint.NewInt(2), bigint.NewInt(3)}
	_, residue, err := FactorWithLimitedPrimes(bigint.NewInt(70), primes)
	require.NoError(t, err)
	require.False(t, residue.Equals(bigint.One))
}

func TestPollardRhoPrimePowerDecomposition(t *testing.T) {
	sieve := primality.EratosthenesSieve(1000)
	src := rng.NewSeeded([]byte("pollard-rho-decomp"))
	n := bigint.NewInt(717967279050961)
	pp, err := PollardRhoPrimePowerDecomposition(n, toInts(sieve), 15*time.Second, src)
	require.NoError(t, err)
	require.True(t, pp.Product().Equals(n))
	require.Equal(t, 1, pp.Get(bigint.NewInt(12657973)))
	require.Equal(t, 1, pp.Get(bigint.NewInt(56720557)))
}

func TestPollardRhoPrimePowerDecompositionWithRepeatedFactor(t *testing.T) {
	sieve := primality.EratosthenesSieve(1000)
	src := rng.NewSeeded([]byte("pollard-rho-decomp-2"))
	// 1009^3 exercises the multiplicity bookkeeping for a repeated
	// factor found via Pollard's rho (1009 exceeds the 1000-bound sieve).
	n := bigint.NewInt(1009).Pow(3)
	pp, err := PollardRhoPrimePowerDecomposition(n, toInts(sieve), 15*time.Second, src)
	require.NoError(t, err)
	require.True(t, pp.Product().Equals(n))
	require.Equal(t, 3, pp.Get(bigint.NewInt(1009)))
}

func toInts(s primality.Sieve) []*bigint.Int {
	return []*bigint.Int(s)
}
