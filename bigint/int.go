// Package bigint provides an arbitrary-precision signed integer type
// with the ring/field operations the rest of numlab builds on.
package bigint

import (
	"math/big"
)

// Well-known small values, used throughout numlab instead of
// repeatedly allocating them.
var (
	Zero  = NewInt(0)
	One   = NewInt(1)
	Two   = NewInt(2)
	Three = NewInt(3)
	Four  = NewInt(4)
)

// Int is an integer of arbitrary size.
type Int struct {
	v *big.Int
}

// NewInt returns a new Int from an int64.
func NewInt(v int64) *Int {
	return &Int{v: big.NewInt(v)}
}

// NewIntFromBig returns an Int holding a copy of v, so later changes
// to v do not affect it; Int methods always allocate fresh results.
func NewIntFromBig(v *big.Int) *Int {
	return &Int{v: new(big.Int).Set(v)}
}

// NewIntFromString parses a base-10 string into an Int.
func NewIntFromString(s string) (*Int, bool) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, false
	}
	return &Int{v: v}, true
}

// NewIntFromBytes interprets buf as the big-endian bytes of an
// unsigned integer.
func NewIntFromBytes(buf []byte) *Int {
	return &Int{v: new(big.Int).SetBytes(buf)}
}

// Big returns the underlying *big.Int (a defensive copy).
func (i *Int) Big() *big.Int {
	return new(big.Int).Set(i.v)
}

// Bytes returns the big-endian byte representation of |i|.
func (i *Int) Bytes() []byte {
	return i.v.Bytes()
}

// String renders i in base 10.
func (i *Int) String() string {
	return i.v.String()
}

// Int64 returns the int64 value of i (truncated if out of range).
func (i *Int) Int64() int64 {
	return i.v.Int64()
}

// IsInt64 reports whether i fits into an int64.
func (i *Int) IsInt64() bool {
	return i.v.IsInt64()
}

func (i *Int) Add(j *Int) *Int { return &Int{v: new(big.Int).Add(i.v, j.v)} }
func (i *Int) Sub(j *Int) *Int { return &Int{v: new(big.Int).Sub(i.v, j.v)} }
func (i *Int) Mul(j *Int) *Int { return &Int{v: new(big.Int).Mul(i.v, j.v)} }

// Div performs floor division (matching spec.md's "division is
// floor-division"), unlike big.Int.Quo which truncates toward zero.
func (i *Int) Div(j *Int) *Int {
	q := new(big.Int)
	m := new(big.Int)
	q.DivMod(i.v, j.v, m)
	if j.v.Sign() < 0 && m.Sign() != 0 {
		// DivMod is Euclidean; for a negative divisor step down to the floor.
		q.Sub(q, big.NewInt(1))
	}
	return &Int{v: q}
}

// DivMod returns the Euclidean quotient and remainder: the remainder is
// never negative, and for positive j the quotient is the floor quotient.
func (i *Int) DivMod(j *Int) (*Int, *Int) {
	q := new(big.Int)
	m := new(big.Int)
	q.DivMod(i.v, j.v, m)
	return &Int{v: q}, &Int{v: m}
}

// Mod returns the mathematical non-negative residue of i modulo j for
// positive j, matching spec.md's data model.
func (i *Int) Mod(j *Int) *Int {
	return &Int{v: new(big.Int).Mod(i.v, j.v)}
}

// BitLen returns the number of bits required to represent |i|.
func (i *Int) BitLen() int { return i.v.BitLen() }

// Bit returns the value of the n-th bit of i.
func (i *Int) Bit(n int) uint { return i.v.Bit(n) }

// Sign returns -1, 0 or 1.
func (i *Int) Sign() int { return i.v.Sign() }

// Cmp compares i to j.
func (i *Int) Cmp(j *Int) int { return i.v.Cmp(j.v) }

// Equals reports whether i == j.
func (i *Int) Equals(j *Int) bool { return i.v.Cmp(j.v) == 0 }

// IsEven reports whether i is divisible by two.
func (i *Int) IsEven() bool { return i.v.Bit(0) == 0 }

// Abs returns |i|.
func (i *Int) Abs() *Int { return &Int{v: new(big.Int).Abs(i.v)} }

// Neg returns -i.
func (i *Int) Neg() *Int { return &Int{v: new(big.Int).Neg(i.v)} }

// Pow raises i to a non-negative integer power n (no modulus).
func (i *Int) Pow(n int) *Int {
	return &Int{v: new(big.Int).Exp(i.v, big.NewInt(int64(n)), nil)}
}

// Rsh/Lsh shift i by n bits.
func (i *Int) Rsh(n uint) *Int { return &Int{v: new(big.Int).Rsh(i.v, n)} }
func (i *Int) Lsh(n uint) *Int { return &Int{v: new(big.Int).Lsh(i.v, n)} }

// GCD returns the greatest common divisor of |i| and |j|.
func (i *Int) GCD(j *Int) *Int {
	return &Int{v: new(big.Int).GCD(nil, nil, i.v, j.v)}
}

// LCM returns the least common multiple of |i| and |j|.
func (i *Int) LCM(j *Int) *Int {
	g := i.GCD(j)
	if g.Equals(Zero) {
		return Zero
	}
	return i.Mul(j).Abs().Div(g)
}
