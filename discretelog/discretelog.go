// Package discretelog implements baby-step/giant-step and the
// Pohlig-Hellman reduction for discrete logarithms in (Z/nZ)*
// (spec.md §4.6). The table-then-probe shape follows
// bfix-gospel/math/discretelog.go, generalized from machine ints to
// bigint.Int and to arbitrary prime-power factorizations.
package discretelog

import (
	"github.com/bfix/numlab/bigint"
	numerrors "github.com/bfix/numlab/errors"
	"github.com/bfix/numlab/factorization"
	"github.com/bfix/numlab/modular"
)

// BabyStepGiantStep solves g^x ≡ h (mod n) for x in [0, order), given
// that g has the stated order. m = ceil(sqrt(order)); it tabulates
// baby steps g^i for i in [0, m), then giant-steps with c = g^(-m) mod
// n, computed as g^(m*(n-2)) mod n (Fermat's little theorem shortcut,
// exact when n is prime — spec.md §4.6 and §9).
func BabyStepGiantStep(g, h, n, order *bigint.Int) (*bigint.Int, error) {
	m := order.Isqrt()
	if m.Mul(m).Cmp(order) < 0 {
		m = m.Add(bigint.One)
	}
	table := make(map[string]*bigint.Int, int(m.Int64()))
	cur := bigint.One
	for i := bigint.Zero; i.Cmp(m) < 0; i = i.Add(bigint.One) {
		table[cur.String()] = i
		cur = cur.Mul(g).Mod(n)
	}

	exp := m.Mul(n.Sub(bigint.Two))
	c, err := modular.PowMod(g, exp, n)
	if err != nil {
		return nil, err
	}
	y := h.Mod(n)
	for i := bigint.Zero; i.Cmp(m) < 0; i = i.Add(bigint.One) {
		if idx, ok := table[y.String()]; ok {
			return i.Mul(m).Add(idx), nil
		}
		y = y.Mul(c).Mod(n)
	}
	return nil, numerrors.New(numerrors.ErrNoSolution, "baby_step_giant_step: no x found for g=%v h=%v mod %v", g, h, n)
}

// PohligHellmanPrimePower solves g^x ≡ h (mod n) for x in [0, p^e),
// given that g has order p^e, by peeling off one base-p digit of x at
// a time (spec.md §4.6).
//
// Verbatim quirk: the inner BSGS call is given n — the ambient
// modulus — as its `order` argument, not the true subgroup order p.
// The source does this and it still produces the correct digit because
// m = ceil(sqrt(n)) only overestimates the baby-step table; it is
// reproduced here unchanged (spec.md §9's "BSGS inside Pohlig-Hellman"
// open question). PohligHellmanPrimePowerTight below is the corrected
// variant, used only in the regression test that checks equivalence.
func PohligHellmanPrimePower(g, h, p *bigint.Int, e int, n *bigint.Int) (*bigint.Int, error) {
	return pohligHellmanPrimePower(g, h, p, e, n, false)
}

// PohligHellmanPrimePowerTight is the corrected variant, passing the
// true subgroup order p (not n) into baby_step_giant_step. It exists
// only to regression-test equivalence with the verbatim behavior; code
// outside this package's tests should not depend on it.
func PohligHellmanPrimePowerTight(g, h, p *bigint.Int, e int, n *bigint.Int) (*bigint.Int, error) {
	return pohligHellmanPrimePower(g, h, p, e, n, true)
}

func pohligHellmanPrimePower(g, h, p *bigint.Int, e int, n *bigint.Int, tight bool) (*bigint.Int, error) {
	x := bigint.Zero
	gInv, ok := modular.InvMod(g, n)
	if !ok {
		return nil, numerrors.New(numerrors.ErrPrecondition, "pohlig_hellman_prime_power_order: g=%v has no inverse mod %v", g, n)
	}
	pe := p.Pow(e)
	gn, err := modular.PowMod(g, n.Div(p), n)
	if err != nil {
		return nil, err
	}
	for k := 0; k < e; k++ {
		gInvX, err := modular.PowMod(gInv, x, n)
		if err != nil {
			return nil, err
		}
		a := gInvX.Mul(h).Mod(n)
		ek := n.Div(p.Pow(k + 1))
		hk, err := modular.PowMod(a, ek, n)
		if err != nil {
			return nil, err
		}
		order := n
		if tight {
			order = p
		}
		dk, err := BabyStepGiantStep(gn, hk, n, order)
		if err != nil {
			return nil, err
		}
		x = x.Add(dk.Mul(p.Pow(k))).Mod(pe)
	}
	return x, nil
}

// PohligHellman solves g^x ≡ h (mod n) given the prime-power
// factorization f of the order of g, by reducing to one discrete log
// per prime power and recombining via the Chinese Remainder Theorem
// (spec.md §4.6).
func PohligHellman(g, h, n *bigint.Int, f factorization.PrimePowers) (*bigint.Int, error) {
	primes := f.Primes()
	xs := make([]*bigint.Int, len(primes))
	mods := make([]*bigint.Int, len(primes))
	for idx, p := range primes {
		e := f.Get(p)
		pe := p.Pow(e)
		exp := n.Div(pe)
		gi, err := modular.PowMod(g, exp, n)
		if err != nil {
			return nil, err
		}
		hi, err := modular.PowMod(h, exp, n)
		if err != nil {
			return nil, err
		}
		xi, err := PohligHellmanPrimePower(gi, hi, p, e, n)
		if err != nil {
			return nil, err
		}
		xs[idx] = xi
		mods[idx] = pe
	}
	x, err := modular.CongruenceSystem(xs, mods)
	if err != nil {
		return nil, err
	}
	return x.Mod(n), nil
}
