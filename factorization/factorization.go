// Package factorization implements integer factorization: stripping a
// single prime's powers, Pollard's rho with pseudorandom polynomial
// restarts, recursive prime-power decomposition, and trial division
// against a limited prime list (spec.md §4.3). The recursion and retry
// shape follows bfix-gospel/math/factorizer/pollard_rho.go and
// factorizer.go, adapted to spec.md's explicit deadline and polynomial
// contracts.
package factorization

import (
	"time"

	"github.com/bfix/numlab/bigint"
	numerrors "github.com/bfix/numlab/errors"
	"github.com/bfix/numlab/primality"
	"github.com/bfix/numlab/rng"
)

// FactorOut strips p-powers out of n, returning (u, alpha) such that
// n = p^alpha * u.
func FactorOut(n, p *bigint.Int) (u *bigint.Int, alpha int) {
	u = n
	for u.Mod(p).Equals(bigint.Zero) {
		u = u.Div(p)
		alpha++
	}
	return
}

// FactorWithLimitedPrimes accumulates, for each prime in primes
// (a leading SignKey-valued -1 entry is treated as the sign column), its
// exponent in n into a PrimePowers map, dividing it out as it goes.
// The returned residue is 1 iff n is primes-smooth. Rejects n == 0.
func FactorWithLimitedPrimes(n *bigint.Int, primes []*bigint.Int) (PrimePowers, *bigint.Int, error) {
	if n.Equals(bigint.Zero) {
		return nil, nil, numerrors.New(numerrors.ErrPrecondition, "factor_with_limited_primes: n must not be 0")
	}
	pp := NewPrimePowers()
	residue := n.Abs()
	if n.Sign() < 0 {
		pp[SignKey] = 1
	}
	for _, p := range primes {
		if p.Equals(bigint.NewInt(-1)) {
			continue // sign column handled above
		}
		u, alpha := FactorOut(residue, p)
		if alpha > 0 {
			pp.Set(p, alpha)
			residue = u
		}
	}
	return pp, residue, nil
}

// Polynomial is re-exported for callers that want to supply a specific
// pseudorandom iteration function to PollardRhoFactor.
type Polynomial = bigint.Polynomial

// PollardRhoFactor finds a non-trivial factor of composite n using
// Floyd's tortoise-and-hare cycle detection over a pseudorandom
// polynomial, restarting with fresh random coefficients whenever the
// current polynomial degenerates (GCD collapses to n). It runs until
// deadline elapses, at which point it returns an ErrTimeout.
//
// Precondition: n is composite (spec.md §4.3); an n that passes a
// Miller–Rabin test is rejected with ErrPrecondition.
func PollardRhoFactor(n *bigint.Int, deadline time.Duration, src rng.Source) (*bigint.Int, error) {
	isPrime, err := primality.IsPrime(n, nil, 0, src)
	if err != nil {
		return nil, err
	}
	if isPrime {
		return nil, numerrors.New(numerrors.ErrPrecondition, "pollard rho: n=%v is prime", n)
	}
	if deadline <= 0 {
		deadline = 15 * time.Second
	}
	stop := time.Now().Add(deadline)

	newPoly := func() *Polynomial {
		return &Polynomial{A0: src.Intn(n), A1: src.Intn(n), A2: bigint.One}
	}
	f := newPoly()
	x := src.Intn(n)
	y := x

	for {
		if time.Now().After(stop) {
			return nil, numerrors.New(numerrors.ErrTimeout, "pollard rho: deadline exceeded factoring %v", n)
		}
		x = f.Evaluate(x, n)
		y = f.Evaluate(f.Evaluate(y, n), n)
		d := n.GCD(x.Sub(y).Abs())
		if d.Cmp(bigint.One) > 0 && d.Cmp(n) < 0 {
			return d, nil
		}
		if d.Equals(n) {
			// degenerate cycle: restart with a fresh polynomial and
			// starting point.
			f = newPoly()
			x = src.Intn(n)
			y = x
		}
	}
}

// PollardRhoPrimePowerDecomposition recursively decomposes n into its
// full prime-power factorization. n == 1 yields the empty map. Prime n
// (per primality.IsPrime against smallPrimes) yields {n: 1}. Otherwise
// it tries each of smallPrimes first, then falls back to Pollard's rho,
// splitting n into a factor x and cofactor y and recursing into both.
//
// Multiplicity bookkeeping: a call with count c factors n^c. When x has
// multiplicity i inside n (i.e. n = x^i * y with x not dividing y
// further), the x-side recursion is given count c*i while the y-side
// recursion is given c, so repeated factors end up with the correct
// combined exponent at the leaves, also when x is itself a prime power.
func PollardRhoPrimePowerDecomposition(n *bigint.Int, smallPrimes []*bigint.Int, deadline time.Duration, src rng.Source) (PrimePowers, error) {
	return decompose(n, 1, smallPrimes, deadline, src)
}

func decompose(n *bigint.Int, count int, smallPrimes []*bigint.Int, deadline time.Duration, src rng.Source) (PrimePowers, error) {
	result := NewPrimePowers()
	if n.Equals(bigint.One) {
		return result, nil
	}
	isPrime, err := primality.IsPrime(n, smallPrimes, 0, src)
	if err != nil {
		return nil, err
	}
	if isPrime {
		result.Add(n, count)
		return result, nil
	}

	// try a small prime factor first.
	for _, p := range smallPrimes {
		if n.Mod(p).Equals(bigint.Zero) {
			u, alpha := FactorOut(n, p)
			sub, err := decompose(p, count*alpha, smallPrimes, deadline, src)
			if err != nil {
				return nil, err
			}
			result.Merge(sub)
			rest, err := decompose(u, count, smallPrimes, deadline, src)
			if err != nil {
				return nil, err
			}
			result.Merge(rest)
			return result, nil
		}
	}

	x, err := PollardRhoFactor(n, deadline, src)
	if err != nil {
		return nil, err
	}
	cof, mult := FactorOut(n, x)

	left, err := decompose(x, count*mult, smallPrimes, deadline, src)
	if err != nil {
		return nil, err
	}
	result.Merge(left)
	right, err := decompose(cof, count, smallPrimes, deadline, src)
	if err != nil {
		return nil, err
	}
	result.Merge(right)
	return result, nil
}
