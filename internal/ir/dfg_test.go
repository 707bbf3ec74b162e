package ir_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"circuitssa/internal/field"
	"circuitssa/internal/ir"
)

func TestMakeConstantDedups(t *testing.T) {
	dfg := ir.NewDataFlowGraph()

	a := dfg.MakeConstant(field.FromUint64(5), ir.FieldType{})
	b := dfg.MakeConstant(field.FromUint64(5), ir.FieldType{})
	assert.Equal(t, a, b)

	c := dfg.MakeConstant(field.FromUint64(5), ir.UnsignedType{Bits: 32})
	assert.NotEqual(t, a, c, "same value but different type must not collide")
}

func TestResolveFollowsForwardingChain(t *testing.T) {
	dfg := ir.NewDataFlowGraph()
	v0 := dfg.AddValue(ir.OpaqueValue{Name: "v0", Typ: ir.BoolType{}})
	v1 := dfg.AddValue(ir.OpaqueValue{Name: "v1", Typ: ir.BoolType{}})
	v2 := dfg.AddValue(ir.OpaqueValue{Name: "v2", Typ: ir.BoolType{}})

	dfg.Forward(v0, v1)
	dfg.Forward(v1, v2)

	assert.Equal(t, v2, dfg.Resolve(v0))
	assert.Equal(t, v2, dfg.Resolve(v2), "resolving an already-canonical id is a no-op")
}

func TestResolveToleratesCycle(t *testing.T) {
	dfg := ir.NewDataFlowGraph()
	v0 := dfg.AddValue(ir.OpaqueValue{Name: "v0", Typ: ir.BoolType{}})
	v1 := dfg.AddValue(ir.OpaqueValue{Name: "v1", Typ: ir.BoolType{}})

	dfg.Forward(v0, v1)
	dfg.Forward(v1, v0)

	assert.NotPanics(t, func() { dfg.Resolve(v0) })
}

func TestDefineInstructionTracksResult(t *testing.T) {
	dfg := ir.NewDataFlowGraph()
	id, result := dfg.DefineInstruction(ir.OpaqueInstruction{Name: "param"}, ir.BoolType{})

	got, ok := dfg.ResultOf(id)
	require.True(t, ok)
	assert.Equal(t, result, got)
}

func TestGetNumericConstantAndIsConstant(t *testing.T) {
	dfg := ir.NewDataFlowGraph()
	c := dfg.MakeConstant(field.FromUint64(9), ir.FieldType{})
	id, opaque := dfg.DefineInstruction(ir.OpaqueInstruction{Name: "param"}, ir.FieldType{})
	_ = id

	value, ok := dfg.GetNumericConstant(c)
	require.True(t, ok)
	assert.True(t, value.Equal(field.FromUint64(9)))
	assert.True(t, dfg.IsConstant(c))

	_, ok = dfg.GetNumericConstant(opaque)
	assert.False(t, ok)
	assert.False(t, dfg.IsConstant(opaque))
}

func TestTypeOfValue(t *testing.T) {
	dfg := ir.NewDataFlowGraph()
	c := dfg.MakeConstant(field.FromUint64(1), ir.UnsignedType{Bits: 8})
	assert.Equal(t, ir.UnsignedType{Bits: 8}, dfg.TypeOfValue(c))

	opaque := dfg.AddValue(ir.OpaqueValue{Name: "p", Typ: ir.BoolType{}})
	assert.Equal(t, ir.BoolType{}, dfg.TypeOfValue(opaque))
}
