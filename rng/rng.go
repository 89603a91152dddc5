// Package rng provides the entropy sources shared by every randomized
// routine in numlab (Miller–Rabin base selection, Pollard's rho
// polynomial/restart sampling, generator search draws). Centralizing it
// here keeps spec.md §5's "no process-wide mutable state" guarantee: a
// Source is a value passed explicitly to the routines that need it,
// never read from a package-level generator.
package rng

import (
	"crypto/rand"
	"math/big"

	"github.com/zeebo/blake3"
	xrand "golang.org/x/exp/rand"

	"github.com/bfix/numlab/bigint"
)

// Source draws uniform random integers. Both the deterministic
// (seeded) and non-deterministic (crypto/rand backed) implementations
// satisfy it.
type Source interface {
	// Intn returns a uniform random value in [0, n). n must be positive.
	Intn(n *bigint.Int) *bigint.Int
}

// cryptoSource draws from crypto/rand, used whenever the caller has no
// reproducibility requirement.
type cryptoSource struct{}

// Crypto returns the non-deterministic, crypto/rand-backed Source.
func Crypto() Source { return cryptoSource{} }

func (cryptoSource) Intn(n *bigint.Int) *bigint.Int {
	r, err := rand.Int(rand.Reader, n.Big())
	if err != nil {
		// crypto/rand failing is a fatal platform condition the rest of
		// numlab has no sane way to recover from.
		panic(err)
	}
	return bigint.NewIntFromBig(r)
}

// seededSource is a reproducible Source: a seed is expanded with
// blake3 into key material for a golang.org/x/exp/rand generator,
// mirroring the blake3-keyed-PRNG pattern used for lattice sampling in
// luxfi-ringtail/primitives/hash.go (PRNGKey/GaussianHash: hash the
// seed, then key a PRNG off the digest).
type seededSource struct {
	r *xrand.Rand
}

// NewSeeded derives a deterministic Source from an arbitrary seed.
// Equal seeds produce identical draw sequences (spec.md §5:
// "deterministic given a fixed random seed").
func NewSeeded(seed []byte) Source {
	h := blake3.New()
	_, _ = h.Write(seed)
	digest := h.Sum(nil)
	var key uint64
	for i := 0; i < 8 && i < len(digest); i++ {
		key |= uint64(digest[i]) << (8 * i)
	}
	return &seededSource{r: xrand.New(xrand.NewSource(key))}
}

func (s *seededSource) Intn(n *bigint.Int) *bigint.Int {
	bits := n.BitLen()
	buf := make([]byte, (bits+7)/8+8) // extra bytes to keep mod bias negligible
	for i := range buf {
		buf[i] = byte(s.r.Uint32())
	}
	v := new(big.Int).SetBytes(buf)
	v.Mod(v, n.Big())
	return bigint.NewIntFromBig(v)
}
