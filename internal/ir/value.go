package ir

import "circuitssa/internal/field"

// ValueId is an opaque handle into the dataflow graph. Two ids refer to the
// same value iff they are equal after Resolve.
type ValueId int

// Value is a tagged variant over the cases the pass needs to distinguish.
// Other SSA value kinds (function parameters, block arguments, references to
// external state) are represented by OpaqueValue and are never matched beyond
// "not a constant, not an instruction".
type Value interface {
	isValue()
}

// NumericConstant is a field element tagged with its type (bool, Field, or
// an unsigned integer width).
type NumericConstant struct {
	Constant field.Element
	Typ      Type
}

func (NumericConstant) isValue() {}

// InstructionValue is the result of an instruction, keyed by the
// instruction's id so the graph can look up its defining instruction.
type InstructionValue struct {
	Instruction InstructionId
}

func (InstructionValue) isValue() {}

// OpaqueValue stands in for every other SSA value kind (parameters, block
// arguments, ...): the pass treats these as opaque leaves.
type OpaqueValue struct {
	Name string
	Typ  Type
}

func (OpaqueValue) isValue() {}
