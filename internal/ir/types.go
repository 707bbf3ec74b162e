package ir

import "fmt"

// Type answers the handful of predicates the decomposition pass needs.
// Boolean is a distinct type from a 1-bit unsigned integer: a `bool`
// constant only triggers the boolean rewrite rules in decompose.go, never
// the numeric inverse solver, even though both have bit size 1.
type Type interface {
	IsBool() bool
	IsNativeField() bool
	IsUnsigned() bool
	BitSize() uint32
	String() string
}

// BoolType is the one-bit boolean type.
type BoolType struct{}

func (BoolType) IsBool() bool       { return true }
func (BoolType) IsNativeField() bool { return false }
func (BoolType) IsUnsigned() bool    { return false }
func (BoolType) BitSize() uint32     { return 1 }
func (BoolType) String() string      { return "bool" }

// FieldType is the native field element type (the full scalar field, no
// bit-width truncation). Its BitSize is the 254-bit width of the BN254
// scalar field, which holds every field element.
type FieldType struct{}

func (FieldType) IsBool() bool       { return false }
func (FieldType) IsNativeField() bool { return true }
func (FieldType) IsUnsigned() bool    { return false }
func (FieldType) BitSize() uint32     { return 254 }
func (FieldType) String() string      { return "Field" }

// UnsignedType is an unsigned integer of a fixed bit width (u1, u8, u32, ...).
type UnsignedType struct {
	Bits uint32
}

func (u UnsignedType) IsBool() bool       { return false }
func (u UnsignedType) IsNativeField() bool { return false }
func (u UnsignedType) IsUnsigned() bool    { return true }
func (u UnsignedType) BitSize() uint32     { return u.Bits }
func (u UnsignedType) String() string      { return fmt.Sprintf("u%d", u.Bits) }
