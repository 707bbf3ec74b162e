package ir_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"circuitssa/grammar"
	"circuitssa/internal/ir"
)

func buildPipelineFixture(t *testing.T, source string) *ir.Program {
	t.Helper()
	parsed, err := grammar.ParseString("test.cssa", source)
	require.NoError(t, err)
	program, err := ir.NewBuilder().Build(parsed)
	require.NoError(t, err)
	return program
}

func TestConstraintDecompositionRewritesEquality(t *testing.T) {
	program := buildPipelineFixture(t, `
%0 : bool = param
%1 : bool = param
%2 : bool = eq %0, %1
constrain %2 == true
`)

	eq, ok := program.Graph.LookupInstruction(program.Instructions[2]).(ir.Binary)
	require.True(t, ok)

	changed := (ir.ConstraintDecomposition{}).Apply(program)
	assert.True(t, changed)

	var found bool
	for _, id := range program.Instructions {
		c, ok := program.Graph.LookupInstruction(id).(ir.Constrain)
		if !ok {
			continue
		}
		found = true
		assert.Equal(t, program.Graph.Resolve(eq.Lhs), program.Graph.Resolve(c.Lhs))
		assert.Equal(t, program.Graph.Resolve(eq.Rhs), program.Graph.Resolve(c.Rhs))
	}
	assert.True(t, found, "expected a surviving constrain instruction")
}

func TestConstraintDecompositionLeavesNonInvertibleConstraintsUnchanged(t *testing.T) {
	program := buildPipelineFixture(t, `
%0 : Field = param
%1 : Field = param
%2 : Field = mod %0, %1
constrain %2 == 3
`)

	before := append([]ir.InstructionId(nil), program.Instructions...)
	changed := (ir.ConstraintDecomposition{}).Apply(program)
	assert.False(t, changed, "mod has no inverse, the constraint must pass through unchanged")
	assert.Equal(t, before, program.Instructions)
}

func TestDeadInstructionEliminationDropsUnusedParam(t *testing.T) {
	program := buildPipelineFixture(t, `
%0 : Field = param
%1 : Field = param
constrain %0 == 5
`)

	before := len(program.Instructions)
	changed := (ir.DeadInstructionElimination{}).Apply(program)
	assert.True(t, changed)
	assert.Less(t, len(program.Instructions), before)

	var constrains int
	for _, id := range program.Instructions {
		if _, ok := program.Graph.LookupInstruction(id).(ir.Constrain); ok {
			constrains++
		}
	}
	assert.Equal(t, 1, constrains, "the live constrain must survive")
}

func TestPipelineRunShrinksEqualityConstraintThenDropsDeadEq(t *testing.T) {
	program := buildPipelineFixture(t, `
%0 : bool = param
%1 : bool = param
%2 : bool = eq %0, %1
constrain %2 == true
`)

	changed := ir.NewPipeline().Run(program)
	assert.True(t, changed)

	var constrains int
	for _, id := range program.Instructions {
		switch program.Graph.LookupInstruction(id).(type) {
		case ir.Constrain:
			constrains++
		case ir.Binary:
			t.Fatalf("dead eq instruction should have been eliminated")
		}
	}
	assert.Equal(t, 1, constrains)
}

func TestPipelineRunOnAlreadyDecomposedProgramIsStable(t *testing.T) {
	program := buildPipelineFixture(t, `
%0 : Field = param
%1 : Field = param
constrain %0 == %1
`)

	first := ir.NewPipeline().Run(program)
	second := ir.NewPipeline().Run(program)
	assert.False(t, second, "a fully decomposed, live program should reach a fixed point")
	_ = first
}
