package modular

import (
	"github.com/bfix/numlab/bigint"
	numerrors "github.com/bfix/numlab/errors"
)

// Msqrt computes a square root r of the quadratic residue a modulo the
// odd prime p, given any quadratic non-residue d mod p, via the
// Tonelli–Shanks algorithm (spec.md §4.1). Callers that don't already
// have a non-residue on hand can obtain one via FindNonSquare.
//
// Precondition: p is odd and > 2; msqrt on p == 2 is a precondition
// violation (spec.md §7).
func Msqrt(a, p, d *bigint.Int) (*bigint.Int, error) {
	if p.Cmp(bigint.Two) <= 0 {
		return nil, numerrors.New(numerrors.ErrPrecondition, "msqrt: p=%v must be an odd prime > 2", p)
	}
	sq, err := IsSquare(a, p)
	if err != nil {
		return nil, err
	}
	if !sq {
		return nil, numerrors.New(numerrors.ErrNoSolution, "msqrt: %v is not a quadratic residue mod %v", a, p)
	}

	// p - 1 = 2^s * t, t odd.
	s := 0
	t := p.Sub(bigint.One)
	for t.IsEven() {
		s++
		t = t.Div(bigint.Two)
	}

	A, err := PowMod(a, t, p)
	if err != nil {
		return nil, err
	}
	D, err := PowMod(d, t, p)
	if err != nil {
		return nil, err
	}

	// For j = 1..s-1, set bit j of m when (A * D^m)^(2^(s-1-j)) ≡ -1
	// (mod p). Bit 0 is never set: A^(2^(s-1)) = a^((p-1)/2) ≡ 1 for a
	// residue a, so m is even and D^(m/2) below is exact.
	m := 0
	negOne := p.Sub(bigint.One)
	for j := 1; j <= s-1; j++ {
		dm, err := PowMod(D, bigint.NewInt(int64(m)), p)
		if err != nil {
			return nil, err
		}
		base := A.Mul(dm).Mod(p)
		exp := bigint.One.Lsh(uint(s - 1 - j))
		v, err := PowMod(base, exp, p)
		if err != nil {
			return nil, err
		}
		if v.Equals(negOne) {
			m |= 1 << uint(j)
		}
	}

	texp := t.Add(bigint.One).Div(bigint.Two)
	r1, err := PowMod(a, texp, p)
	if err != nil {
		return nil, err
	}
	dmh, err := PowMod(D, bigint.NewInt(int64(m/2)), p)
	if err != nil {
		return nil, err
	}
	return r1.Mul(dmh).Mod(p), nil
}
