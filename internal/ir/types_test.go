package ir_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"circuitssa/internal/ir"
)

func TestBoolType(t *testing.T) {
	typ := ir.BoolType{}
	assert.True(t, typ.IsBool())
	assert.False(t, typ.IsNativeField())
	assert.False(t, typ.IsUnsigned())
	assert.Equal(t, uint32(1), typ.BitSize())
	assert.Equal(t, "bool", typ.String())
}

func TestFieldType(t *testing.T) {
	typ := ir.FieldType{}
	assert.False(t, typ.IsBool())
	assert.True(t, typ.IsNativeField())
	assert.False(t, typ.IsUnsigned())
	assert.Equal(t, "Field", typ.String())
}

func TestUnsignedType(t *testing.T) {
	typ := ir.UnsignedType{Bits: 32}
	assert.False(t, typ.IsBool())
	assert.False(t, typ.IsNativeField())
	assert.True(t, typ.IsUnsigned())
	assert.Equal(t, uint32(32), typ.BitSize())
	assert.Equal(t, "u32", typ.String())
}
