// Package rsa implements a toy textbook-RSA keypair wrapper: it
// exercises numlab's primality testing and modular inverse exactly the
// way original_source/rsa.py does (random_prime/generate_keys/
// encode/decode), with no padding scheme — it is not a secure RSA
// implementation (spec.md's supplemented features, §5).
package rsa

import (
	"github.com/bfix/numlab/bigint"
	numerrors "github.com/bfix/numlab/errors"
	"github.com/bfix/numlab/modular"
	"github.com/bfix/numlab/primality"
	"github.com/bfix/numlab/rng"
)

// KeyPair is a toy RSA keypair: modulus n, public exponent e, private
// exponent f such that for M < n, decode(encode(M, e, n), f, n) == M.
type KeyPair struct {
	N *bigint.Int
	E *bigint.Int
	F *bigint.Int
}

// RandomPrime draws odd bit-length candidates until one passes
// Miller-Rabin, or maxAttempts is exhausted.
func RandomPrime(bits int, maxAttempts int, smallPrimes []*bigint.Int, src rng.Source) (*bigint.Int, error) {
	upper := bigint.One.Lsh(uint(bits))
	for attempt := 0; attempt < maxAttempts; attempt++ {
		p := src.Intn(upper)
		if p.IsEven() {
			p = p.Add(bigint.One)
		}
		ok, err := primality.IsPrime(p, smallPrimes, primality.DefaultReps(p), src)
		if err != nil {
			return nil, err
		}
		if ok {
			return p, nil
		}
	}
	return nil, numerrors.New(numerrors.ErrNoSolution, "random_prime: no prime found in %d attempts at %d bits", maxAttempts, bits)
}

// GenerateKeys draws two random primes of the given bit length and
// derives a keypair (n, e, f) with n = p*q, e coprime to phi(n), and
// f = e^-1 mod phi(n).
func GenerateKeys(bits int, smallPrimes []*bigint.Int, src rng.Source) (*KeyPair, error) {
	p, err := RandomPrime(bits, 1000, smallPrimes, src)
	if err != nil {
		return nil, err
	}
	q, err := RandomPrime(bits, 1000, smallPrimes, src)
	if err != nil {
		return nil, err
	}
	n := p.Mul(q)
	phi := p.Sub(bigint.One).Mul(q.Sub(bigint.One))

	var e *bigint.Int
	for {
		e = bigint.Two.Add(src.Intn(phi.Sub(bigint.Two)))
		if e.GCD(phi).Equals(bigint.One) {
			break
		}
	}
	f, ok := modular.InvMod(e, phi)
	if !ok {
		return nil, numerrors.New(numerrors.ErrPrecondition, "generate_keys: e=%v has no inverse mod phi=%v", e, phi)
	}
	return &KeyPair{N: n, E: e, F: f}, nil
}

// Encode computes M^e mod n.
func Encode(m, e, n *bigint.Int) (*bigint.Int, error) {
	return modular.PowMod(m, e, n)
}

// Decode computes C^f mod n.
func Decode(c, f, n *bigint.Int) (*bigint.Int, error) {
	return modular.PowMod(c, f, n)
}
