package field_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"circuitssa/internal/field"
)

func TestZeroAndOne(t *testing.T) {
	assert.True(t, field.Zero().IsZero())
	assert.True(t, field.One().IsOne())
	assert.False(t, field.Zero().IsOne())
	assert.False(t, field.One().IsZero())
}

func TestFromBool(t *testing.T) {
	assert.True(t, field.FromBool(true).Equal(field.One()))
	assert.True(t, field.FromBool(false).Equal(field.Zero()))
}

func TestAddSubRoundTrip(t *testing.T) {
	a := field.FromUint64(7)
	b := field.FromUint64(3)
	sum := a.Add(b)
	assert.True(t, sum.Sub(b).Equal(a))
}

func TestMulDivRoundTrip(t *testing.T) {
	a := field.FromUint64(6)
	b := field.FromUint64(7)
	product := a.Mul(b)
	assert.True(t, product.Div(b).Equal(a))
}

func TestDivByZeroPanics(t *testing.T) {
	require.Panics(t, func() {
		field.One().Div(field.Zero())
	})
}

func TestXorMasksToBitWidth(t *testing.T) {
	a := field.FromUint64(0b1010)
	b := field.FromUint64(0b0110)
	result := a.Xor(b, 4)
	assert.True(t, result.Equal(field.FromUint64(0b1100)))
}

func TestXorIsSelfInverse(t *testing.T) {
	a := field.FromUint64(200)
	b := field.FromUint64(37)
	assert.True(t, a.Xor(b, 8).Xor(b, 8).Equal(a))
}

func TestFromBigInt(t *testing.T) {
	n := big.NewInt(123456789)
	assert.True(t, field.FromBigInt(n).Equal(field.FromUint64(123456789)))
}
