// Package dlog assembles the top-level discrete-log pipeline: pick the
// smallest prime strictly greater than N, factor its totient, find a
// generator, and solve for the discrete log of h via Pohlig-Hellman
// (spec.md §4.8).
package dlog

import (
	"time"

	"github.com/bfix/numlab/bigint"
	"github.com/bfix/numlab/discretelog"
	"github.com/bfix/numlab/factorization"
	"github.com/bfix/numlab/generator"
	"github.com/bfix/numlab/primality"
	"github.com/bfix/numlab/rng"
)

// SmallSieveBound is the trial-division bound used while factoring phi
// (spec.md §4.8 step 3: "a precomputed small Eratosthenes sieve
// (1000)").
const SmallSieveBound = 1000

// Deadlines bounds the wall-clock budget given to each divergent stage
// of the pipeline (spec.md §5's per-routine 15s default).
type Deadlines struct {
	PollardRho time.Duration
	Generator  time.Duration
}

// DefaultDeadlines returns the spec's 15-second default for every
// divergent stage.
func DefaultDeadlines() Deadlines {
	return Deadlines{PollardRho: 15 * time.Second, Generator: 15 * time.Second}
}

// Result captures every intermediate the discrete-log CLI reports
// (spec.md §6).
type Result struct {
	N    *bigint.Int
	Reps int
	Phi  factorization.PrimePowers
	G    *bigint.Int
	X    *bigint.Int
}

// Solve runs the full pipeline for input N and target h.
func Solve(N, h *bigint.Int, d Deadlines, src rng.Source) (*Result, error) {
	sieve := primality.EratosthenesSieve(SmallSieveBound)
	smallPrimes := []*bigint.Int(sieve)

	n := N.Add(bigint.One)
	if n.IsEven() {
		n = n.Add(bigint.One)
	}
	reps := primality.DefaultReps(n)
	for {
		ok, err := primality.IsPrime(n, smallPrimes, reps, src)
		if err != nil {
			return nil, err
		}
		if ok {
			break
		}
		n = n.Add(bigint.Two)
		reps = primality.DefaultReps(n)
	}

	phi := n.Sub(bigint.One)
	f, err := factorization.PollardRhoPrimePowerDecomposition(phi, smallPrimes, d.PollardRho, src)
	if err != nil {
		return nil, err
	}

	g, err := generator.FindGenerator(n, phi, f, d.Generator, src)
	if err != nil {
		return nil, err
	}

	x, err := discretelog.PohligHellman(g, h, n, f)
	if err != nil {
		return nil, err
	}

	return &Result{N: n, Reps: reps, Phi: f, G: g, X: x}, nil
}
