package factorization

import "github.com/bfix/numlab/bigint"

// SignKey is the sentinel key reserved to carry the sign of a signed
// factored value inside a PrimePowers map (spec.md §3 data model). Its
// exponent is always 0 or 1.
const SignKey = "-1"

// PrimePowers maps a prime (as its decimal string, so the type is a
// plain comparable map key) to its non-negative exponent. All keys are
// positive primes except the sentinel SignKey.
type PrimePowers map[string]int

// NewPrimePowers returns an empty PrimePowers map.
func NewPrimePowers() PrimePowers {
	return make(PrimePowers)
}

// Add increments the exponent recorded for prime p by delta.
func (pp PrimePowers) Add(p *bigint.Int, delta int) {
	k := p.String()
	pp[k] += delta
	if pp[k] == 0 {
		delete(pp, k)
	}
}

// Set records exponent e for prime p (overwriting any prior value).
func (pp PrimePowers) Set(p *bigint.Int, e int) {
	if e == 0 {
		delete(pp, p.String())
		return
	}
	pp[p.String()] = e
}

// Get returns the exponent recorded for prime p.
func (pp PrimePowers) Get(p *bigint.Int) int {
	return pp[p.String()]
}

// Merge adds every entry of other into pp.
func (pp PrimePowers) Merge(other PrimePowers) {
	for k, e := range other {
		pp[k] += e
	}
}

// Product returns ∏ p^e over every entry (treating SignKey's exponent
// as contributing a factor of -1 rather than literal exponentiation).
func (pp PrimePowers) Product() *bigint.Int {
	r := bigint.One
	for k, e := range pp {
		if k == SignKey {
			if e%2 == 1 {
				r = r.Neg()
			}
			continue
		}
		p, ok := bigint.NewIntFromString(k)
		if !ok {
			continue
		}
		r = r.Mul(p.Pow(e))
	}
	return r
}

// Primes returns the prime keys (excluding the sign column) as Ints,
// in no particular order.
func (pp PrimePowers) Primes() []*bigint.Int {
	out := make([]*bigint.Int, 0, len(pp))
	for k := range pp {
		if k == SignKey {
			continue
		}
		if p, ok := bigint.NewIntFromString(k); ok {
			out = append(out, p)
		}
	}
	return out
}
