package primality

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bfix/numlab/bigint"
	"github.com/bfix/numlab/rng"
)

func TestEratosthenesSieve(t *testing.T) {
	s := EratosthenesSieve(30)
	got := make([]int64, len(s))
	for i, p := range s {
		got[i] = p.Int64()
	}
	require.Equal(t, []int64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29}, got)
}

func TestIsPrimeKnownPrimes(t *testing.T) {
	sieve := EratosthenesSieve(1000)
	src := rng.NewSeeded([]byte("primality-test"))
	for _, p := range []int64{2, 3, 5, 7, 101, 7919, 1000003} {
		ok, err := IsPrime(bigint.NewInt(p), sieve, 20, src)
		require.NoError(t, err)
		require.True(t, ok, "%d should be prime", p)
	}
}

func TestIsPrimeRejectsCompositesWithSmallFactor(t *testing.T) {
	sieve := EratosthenesSieve(1000)
	src := rng.NewSeeded([]byte("primality-test-2"))
	for _, n := range []int64{4, 9, 15, 100, 1001, 999983 * 7} {
		ok, err := IsPrime(bigint.NewInt(n), sieve, 20, src)
		require.NoError(t, err)
		require.False(t, ok, "%d should be composite", n)
	}
}

func TestIsPrimeEvenGreaterThanTwo(t *testing.T) {
	ok, err := IsPrime(bigint.NewInt(100), nil, 5, rng.Crypto())
	require.NoError(t, err)
	require.False(t, ok)
}
