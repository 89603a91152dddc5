package bigint

import "math/big"

// ExtendedGCD computes (d, x, y) such that a*x + b*y = d = gcd(a, b),
// for a, b >= 0. Implemented iteratively (spec.md §9 prefers iterative
// transcription over recursion for unbounded-depth routines).
func (i *Int) ExtendedGCD(j *Int) (d, x, y *Int) {
	oldR, r := new(big.Int).Set(i.v), new(big.Int).Set(j.v)
	oldS, s := big.NewInt(1), big.NewInt(0)
	oldT, t := big.NewInt(0), big.NewInt(1)

	q := new(big.Int)
	tmp := new(big.Int)
	for r.Sign() != 0 {
		q.Div(oldR, r)

		tmp.Mul(q, r)
		oldR, r = r, tmp.Sub(oldR, tmp)
		tmp = new(big.Int)

		tmp.Mul(q, s)
		oldS, s = s, tmp.Sub(oldS, tmp)
		tmp = new(big.Int)

		tmp.Mul(q, t)
		oldT, t = t, tmp.Sub(oldT, tmp)
		tmp = new(big.Int)
	}
	return &Int{v: oldR}, &Int{v: oldS}, &Int{v: oldT}
}

// Isqrt returns floor(sqrt(i)) for i >= 0, via big.Int's Sqrt.
func (i *Int) Isqrt() *Int {
	return &Int{v: new(big.Int).Sqrt(i.v)}
}

// NthRoot computes the integer n-th root of i (i >= 0). If upper is
// set, the result is rounded up to the next integer whose n-th power is
// >= i.
func (i *Int) NthRoot(n int, upper bool) *Int {
	if i.Sign() == 0 {
		return Zero
	}
	r := Zero
	b := i.BitLen()
	if n < b {
		for s := Two.Pow(b/n - 1); s.Cmp(Zero) > 0; r = r.Add(s) {
			if t := r.Pow(n); t.Cmp(i) > 0 {
				r = r.Sub(s)
				s = s.Div(Two)
			}
		}
	} else {
		// 1 <= i < 2^n, so the floor root is 1.
		r = One
	}
	if r.Pow(n).Cmp(i) < 0 && upper {
		r = r.Add(One)
	}
	return r
}

// Log10 returns floor(log10(i)) for i > 0.
func (i *Int) Log10() int {
	s := i.v.String()
	if i.v.Sign() < 0 {
		s = s[1:]
	}
	return len(s) - 1
}

// Polynomial is a pseudorandom iteration function a2*x^2 + a1*x + a0,
// evaluated mod n via Horner's rule (spec.md §9 "polynomial closure").
type Polynomial struct {
	A0, A1, A2 *Int
}

// Evaluate computes the polynomial at x, reduced modulo n.
func (p *Polynomial) Evaluate(x, n *Int) *Int {
	r := p.A2.Mul(x).Add(p.A1).Mod(n)
	r = r.Mul(x).Add(p.A0).Mod(n)
	return r
}
