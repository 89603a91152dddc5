// Package primality implements probabilistic primality testing
// (Miller's test and Miller–Rabin) and an Eratosthenes sieve, grounded
// on spec.md §4.2. The big-integer arithmetic follows the method-on-type
// idiom of bfix-gospel/math/int.go; the explicit base-loop shape of
// Miller's test follows the style of other primality implementations in
// the retrieved example pack (e.g. KarpelesLab-lambda's primality.go).
package primality

import (
	"github.com/bfix/numlab/bigint"
	"github.com/bfix/numlab/modular"
	"github.com/bfix/numlab/rng"
)

// Verdict is the outcome of a single Miller test round.
type Verdict int

const (
	MaybePrime Verdict = iota
	Composite
)

// MillerTest runs a single Miller test of n to base b, given the
// decomposition n-1 = 2^k * q with q odd. Even n > 2 must be rejected
// by the caller before invoking this (it is not re-checked here).
func MillerTest(n, b *bigint.Int, k int, q *bigint.Int) (Verdict, error) {
	if n.GCD(b).Cmp(bigint.One) != 0 {
		return MaybePrime, nil
	}
	x, err := modular.PowMod(b, q, n)
	if err != nil {
		return Composite, err
	}
	if x.Equals(bigint.One) || x.Equals(n.Sub(bigint.One)) {
		return MaybePrime, nil
	}
	for i := 1; i <= k; i++ {
		x, err = modular.PowMod(x, bigint.Two, n)
		if err != nil {
			return Composite, err
		}
		if x.Equals(n.Sub(bigint.One)) {
			return MaybePrime, nil
		}
	}
	return Composite, nil
}

// decompose writes n-1 = 2^k * q with q odd.
func decompose(n *bigint.Int) (k int, q *bigint.Int) {
	q = n.Sub(bigint.One)
	for q.IsEven() {
		k++
		q = q.Div(bigint.Two)
	}
	return
}

// DefaultReps returns spec.md's default repetition count,
// max(10, floor(log10 n) + 1).
func DefaultReps(n *bigint.Int) int {
	r := n.Abs().Log10() + 1
	if r < 10 {
		return 10
	}
	return r
}

// IsPrime runs probabilistic Miller–Rabin primality testing on n. It
// takes the absolute value first, rejects n < 2, accepts n = 2,
// trial-divides by smallPrimes (returning false on a hit unless n
// itself is the divisor), then runs rep rounds with uniformly-random
// bases drawn from src. rep <= 0 selects DefaultReps(n).
func IsPrime(n *bigint.Int, smallPrimes []*bigint.Int, rep int, src rng.Source) (bool, error) {
	n = n.Abs()
	if n.Cmp(bigint.Two) < 0 {
		return false, nil
	}
	if n.Equals(bigint.Two) {
		return true, nil
	}
	if n.IsEven() {
		return false, nil
	}
	for _, p := range smallPrimes {
		if n.Equals(p) {
			return true, nil
		}
		if n.Mod(p).Equals(bigint.Zero) {
			return false, nil
		}
	}
	if rep <= 0 {
		rep = DefaultReps(n)
	}
	k, q := decompose(n)
	span := n.Sub(bigint.Two)
	for i := 0; i < rep; i++ {
		b := src.Intn(span).Add(bigint.Two) // uniform in [2, n-1]
		v, err := MillerTest(n, b, k, q)
		if err != nil {
			return false, err
		}
		if v == Composite {
			return false, nil
		}
	}
	return true, nil
}
