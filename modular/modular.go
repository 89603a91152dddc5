// Package modular provides modular arithmetic over bigint.Int: modular
// exponentiation and inverse, the Chinese Remainder Theorem, Legendre
// symbols, Tonelli–Shanks square roots, and element order/subgroup
// enumeration (spec.md §4.1).
package modular

import (
	"math/big"

	"github.com/bfix/numlab/bigint"
	numerrors "github.com/bfix/numlab/errors"
)

// PowMod computes b^e mod n by binary exponentiation. n must satisfy
// |n| >= 2. Negative e is handled via InvMod(b, n); if no inverse
// exists that is a precondition violation on the caller's part and is
// surfaced as an error rather than silently treated as 0 (spec.md
// §4.1 PowMod note).
func PowMod(b, e, n *bigint.Int) (*bigint.Int, error) {
	if n.Abs().Cmp(bigint.Two) < 0 {
		return nil, numerrors.New(numerrors.ErrPrecondition, "powmod: |n|=%v must be >= 2", n)
	}
	if e.Sign() < 0 {
		inv, ok := InvMod(b, n)
		if !ok {
			return nil, numerrors.New(numerrors.ErrPrecondition, "powmod: no inverse of %v mod %v for negative exponent", b, n)
		}
		return PowMod(inv, e.Neg(), n)
	}
	r := new(big.Int).Exp(b.Big(), e.Big(), n.Big())
	return bigint.NewIntFromBig(r), nil
}

// InvMod returns (a^-1 mod n, true) when gcd(a, n) = 1. When no inverse
// exists, or |n| < 2, it returns (bigint.Zero, false) — see spec.md §9's
// "open question" on the zero sentinel: the legacy single-value
// zero-as-sentinel behavior is still obtainable by ignoring the bool.
func InvMod(a, n *bigint.Int) (*bigint.Int, bool) {
	if n.Abs().Cmp(bigint.Two) < 0 {
		return bigint.Zero, false
	}
	d, x, _ := a.Mod(n).ExtendedGCD(n.Abs())
	if !d.Equals(bigint.One) {
		return bigint.Zero, false
	}
	return x.Mod(n), true
}

// CongruenceSystem solves the Chinese Remainder Theorem for pairwise
// coprime moduli: given x ≡ a[i] (mod n[i]) for all i, it returns the
// unique x in [0, ∏ n[i]).
func CongruenceSystem(a, n []*bigint.Int) (*bigint.Int, error) {
	if len(a) != len(n) {
		return nil, numerrors.New(numerrors.ErrPrecondition, "congruence_system: len(a)=%d != len(n)=%d", len(a), len(n))
	}
	if len(a) == 0 {
		return nil, numerrors.New(numerrors.ErrPrecondition, "congruence_system: empty system")
	}
	prod := n[0]
	x := a[0].Mod(n[0])
	for i := 1; i < len(a); i++ {
		_, p, q := prod.ExtendedGCD(n[i])
		// x' = x*q*n[i] + a[i]*p*prod, taken mod (prod*n[i])
		newProd := prod.Mul(n[i])
		x = x.Mul(q).Mul(n[i]).Add(a[i].Mul(p).Mul(prod)).Mod(newProd)
		prod = newProd
	}
	return x.Mod(prod), nil
}

// Legendre computes the Legendre symbol (a|p) for an odd prime p.
func Legendre(a, p *bigint.Int) (int, error) {
	r := a.Mod(p)
	if r.Equals(bigint.Zero) {
		return 0, nil
	}
	e := p.Sub(bigint.One).Div(bigint.Two)
	x, err := PowMod(r, e, p)
	if err != nil {
		return 0, err
	}
	if x.Equals(bigint.One) {
		return 1, nil
	}
	return -1, nil
}

// IsSquare reports whether a is a quadratic residue mod the odd prime p.
func IsSquare(a, p *bigint.Int) (bool, error) {
	l, err := Legendre(a, p)
	if err != nil {
		return false, err
	}
	return l == 1, nil
}

// FindNonSquare returns the least i >= 2 with Legendre(i|p) = -1. It
// returns a precondition error for p <= 3.
func FindNonSquare(p *bigint.Int) (*bigint.Int, error) {
	if p.Cmp(bigint.Three) <= 0 {
		return nil, numerrors.New(numerrors.ErrPrecondition, "find_non_square: p=%v must be > 3", p)
	}
	for i := bigint.Two; ; i = i.Add(bigint.One) {
		l, err := Legendre(i, p)
		if err != nil {
			return nil, err
		}
		if l == -1 {
			return i, nil
		}
	}
}

// Order computes the order of g in (Z/nZ)* given the distinct primes
// dividing phi = |(Z/nZ)*|. It starts at o = phi and, for each prime p
// | phi, repeatedly divides o by p while g^(o/p) ≡ 1. Callers typically
// pass factorization.PrimePowers.Primes() for primes.
func Order(g, n, phi *bigint.Int, primes []*bigint.Int) (*bigint.Int, error) {
	o := phi
	for _, p := range primes {
		for o.Mod(p).Equals(bigint.Zero) {
			q := o.Div(p)
			v, err := PowMod(g, q, n)
			if err != nil {
				return nil, err
			}
			if !v.Equals(bigint.One) {
				break
			}
			o = q
		}
	}
	return o, nil
}

// Subgroup enumerates <b> mod n, stopping as soon as it reproduces 1.
// The returned sequence has length <= phi.
func Subgroup(b, n, phi *bigint.Int) []*bigint.Int {
	seq := make([]*bigint.Int, 0)
	cur := bigint.One
	for i := bigint.Zero; i.Cmp(phi) < 0; i = i.Add(bigint.One) {
		cur = cur.Mul(b).Mod(n)
		seq = append(seq, cur)
		if cur.Equals(bigint.One) {
			break
		}
	}
	return seq
}
