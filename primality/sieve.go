package primality

import "github.com/bfix/numlab/bigint"

// Sieve is an ordered sequence of primes in [2, n] (spec.md §3).
type Sieve []*bigint.Int

// EratosthenesSieve returns every prime in [2, n] via the classic
// sieve of Eratosthenes, O(n log log n).
func EratosthenesSieve(n int) Sieve {
	if n < 2 {
		return Sieve{}
	}
	composite := make([]bool, n+1)
	var primes Sieve
	for p := 2; p <= n; p++ {
		if composite[p] {
			continue
		}
		primes = append(primes, bigint.NewInt(int64(p)))
		for m := p * p; m <= n; m += p {
			composite[m] = true
		}
	}
	return primes
}
