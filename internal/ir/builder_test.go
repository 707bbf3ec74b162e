package ir_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"circuitssa/grammar"
	"circuitssa/internal/field"
	"circuitssa/internal/ir"
)

func buildSource(t *testing.T, source string) *ir.Program {
	t.Helper()
	parsed, err := grammar.ParseString("test.cssa", source)
	require.NoError(t, err)
	program, err := ir.NewBuilder().Build(parsed)
	require.NoError(t, err)
	return program
}

func TestBuildParamAndBinary(t *testing.T) {
	program := buildSource(t, `
%0 : Field = param
%1 : Field = param
%2 : Field = add %0, %1
constrain %2 == 12
`)

	require.Len(t, program.Instructions, 4)
	c, ok := program.Graph.LookupInstruction(program.Instructions[3]).(ir.Constrain)
	require.True(t, ok)
	val, ok := program.Graph.GetNumericConstant(c.Rhs)
	require.True(t, ok)
	assert.True(t, val.Equal(field.FromUint64(12)))
}

func TestBuildLiteralDoesNotEmitInstruction(t *testing.T) {
	program := buildSource(t, `
%0 : Field = 5
constrain %0 == 5
`)
	require.Len(t, program.Instructions, 1)
}

func TestBuildNotUnaryOp(t *testing.T) {
	program := buildSource(t, `
%0 : bool = param
%1 : bool = not %0
constrain %1 == true
`)
	require.Len(t, program.Instructions, 3)
	_, ok := program.Graph.LookupInstruction(program.Instructions[2]).(ir.Constrain)
	require.True(t, ok)
}

func TestBuildBinaryResultTypeTracked(t *testing.T) {
	program := buildSource(t, `
%0 : u32 = param
%1 : u32 = param
%2 : u32 = or %0, %1
constrain %2 == 0
`)
	result, ok := program.Graph.ResultOf(program.Instructions[2])
	require.True(t, ok)
	assert.Equal(t, ir.UnsignedType{Bits: 32}, program.Graph.TypeOfValue(result))
}

func TestBuildUndefinedReferenceErrors(t *testing.T) {
	parsed, err := grammar.ParseString("test.cssa", "constrain %0 == 1\n")
	require.NoError(t, err)
	_, err = ir.NewBuilder().Build(parsed)
	assert.Error(t, err)
}

func TestParseTypeUnsignedWidths(t *testing.T) {
	typ, err := ir.ParseType("u8")
	require.NoError(t, err)
	assert.Equal(t, ir.UnsignedType{Bits: 8}, typ)

	_, err = ir.ParseType("bogus")
	assert.Error(t, err)
}

func TestParseBinaryOpUnknownErrors(t *testing.T) {
	_, err := ir.ParseBinaryOp("frobnicate")
	assert.Error(t, err)
}
