// Package field provides the finite-field primitive the constraint
// decomposition pass reasons about. Field-element arithmetic itself is a
// primitive of this system (its implementation is out of scope); this package
// wraps the BN254 scalar field used throughout the Go ZK-circuit ecosystem
// rather than hand-rolling modular arithmetic.
package field

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Element is an element of the BN254 scalar field.
type Element struct {
	inner fr.Element
}

// Zero returns the additive identity.
func Zero() Element {
	var e Element
	e.inner.SetZero()
	return e
}

// One returns the multiplicative identity.
func One() Element {
	var e Element
	e.inner.SetOne()
	return e
}

// FromUint64 embeds a small unsigned integer into the field.
func FromUint64(v uint64) Element {
	var e Element
	e.inner.SetUint64(v)
	return e
}

// FromBigInt reduces an arbitrary-precision integer into the field.
func FromBigInt(v *big.Int) Element {
	var e Element
	e.inner.SetBigInt(v)
	return e
}

// FromBool embeds a boolean as 0 or 1.
func FromBool(b bool) Element {
	if b {
		return One()
	}
	return Zero()
}

// IsZero reports whether e is the additive identity.
func (e Element) IsZero() bool {
	return e.inner.IsZero()
}

// IsOne reports whether e is the multiplicative identity.
func (e Element) IsOne() bool {
	return e.inner.IsOne()
}

// Equal reports whether e and other represent the same field element.
func (e Element) Equal(other Element) bool {
	return e.inner.Equal(&other.inner)
}

// Add returns e + other.
func (e Element) Add(other Element) Element {
	var out Element
	out.inner.Add(&e.inner, &other.inner)
	return out
}

// Sub returns e - other.
func (e Element) Sub(other Element) Element {
	var out Element
	out.inner.Sub(&e.inner, &other.inner)
	return out
}

// Mul returns e * other.
func (e Element) Mul(other Element) Element {
	var out Element
	out.inner.Mul(&e.inner, &other.inner)
	return out
}

// Div returns e / other, i.e. e multiplied by other's modular inverse.
// It panics when other is zero; callers must guard.
func (e Element) Div(other Element) Element {
	if other.IsZero() {
		panic("field: division by zero")
	}
	var inv Element
	inv.inner.Inverse(&other.inner)
	var out Element
	out.inner.Mul(&e.inner, &inv.inner)
	return out
}

// Xor returns the bitwise XOR of e and other's low bitWidth bits, re-embedded
// as a field element. Used only to invert the Xor binary operator.
func (e Element) Xor(other Element, bitWidth uint32) Element {
	mask := new(big.Int).Lsh(big.NewInt(1), uint(bitWidth))
	mask.Sub(mask, big.NewInt(1))

	a := new(big.Int)
	e.inner.BigInt(a)
	a.And(a, mask)

	b := new(big.Int)
	other.inner.BigInt(b)
	b.And(b, mask)

	a.Xor(a, b)
	a.And(a, mask)

	var out Element
	out.inner.SetBigInt(a)
	return out
}

// String renders the element in decimal, for diagnostics and printing.
func (e Element) String() string {
	return e.inner.String()
}
