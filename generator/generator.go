// Package generator searches for a generator of (Z/nZ)* given the
// prime-power factorization of its order (spec.md §4.5). The
// sample-and-reject shape follows
// bfix-gospel/math/int.go's GeneratorRing, adapted to a caller-supplied
// deadline and entropy source instead of a fixed iteration count.
package generator

import (
	"time"

	"github.com/bfix/numlab/bigint"
	numerrors "github.com/bfix/numlab/errors"
	"github.com/bfix/numlab/factorization"
	"github.com/bfix/numlab/logger"
	"github.com/bfix/numlab/modular"
	"github.com/bfix/numlab/rng"
)

// FindGenerator samples g uniformly in [2, phi-1] until it finds a
// primitive root of (Z/nZ)*, i.e. an element of order phi. For each
// prime p dividing phi (per f), a candidate is rejected when
// g^(phi/p) ≡ 1 (mod n); the rejecting step also folds g^(phi/p^e)
// (e = f[p]) into a running witness h, reused across draws. On a
// wall-clock timeout the witness and its order are logged at WARN level
// and the caller receives an ErrTimeout (spec.md §4.5).
func FindGenerator(n, phi *bigint.Int, f factorization.PrimePowers, deadline time.Duration, src rng.Source) (*bigint.Int, error) {
	if deadline <= 0 {
		deadline = 15 * time.Second
	}
	stop := time.Now().Add(deadline)
	primes := f.Primes()

	h := bigint.One
	for {
		if time.Now().After(stop) {
			order, err := modular.Order(h, n, phi, primes)
			if err != nil {
				return nil, numerrors.New(numerrors.ErrTimeout, "find_generator: deadline exceeded; witness order also failed: %v", err)
			}
			logger.Printf(logger.WARN, "find_generator: deadline exceeded; witness h=%v has order %v\n", h, order)
			return nil, numerrors.New(numerrors.ErrTimeout, "find_generator: deadline exceeded for n=%v", n)
		}

		lo := bigint.Two
		span := phi.Sub(bigint.One).Sub(lo).Add(bigint.One)
		g := lo.Add(src.Intn(span))

		primitive := true
		for _, p := range primes {
			q := phi.Div(p)
			v, err := modular.PowMod(g, q, n)
			if err != nil {
				return nil, err
			}
			if v.Equals(bigint.One) {
				primitive = false
				e := f.Get(p)
				qe := phi.Div(p.Pow(e))
				w, err := modular.PowMod(g, qe, n)
				if err != nil {
					return nil, err
				}
				h = h.Mul(w).Mod(n)
				break
			}
		}
		if primitive {
			return g, nil
		}
	}
}
