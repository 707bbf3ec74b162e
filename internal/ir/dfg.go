package ir

import "circuitssa/internal/field"

// DataFlowGraph is the dataflow-graph container the decomposition pass
// consumes. It owns every value and instruction; the pass only borrows them
// immutably except to intern fresh constants via MakeConstant.
//
// Full SSA construction (basic blocks, control flow, phi nodes) is out of
// this package's scope — DataFlowGraph exposes exactly the surface
// decompose.go needs: resolution, lookup, constant classification, and
// constant interning.
type DataFlowGraph struct {
	values       []Value
	instructions []Instruction
	forwards     map[ValueId]ValueId // forwarding references, e.g. from phi-trivial resolution
	constants    map[constantKey]ValueId
	results      map[InstructionId]ValueId // instructions that define a value, keyed by instruction id
	resultTypes  map[InstructionId]Type    // type of the value each instruction defines
}

type constantKey struct {
	// field elements are keyed by their decimal string (Element.String);
	// this keeps the key comparable without exposing fr.Element internals.
	value string
	typ   string
}

// NewDataFlowGraph returns an empty graph.
func NewDataFlowGraph() *DataFlowGraph {
	return &DataFlowGraph{
		forwards:    make(map[ValueId]ValueId),
		constants:   make(map[constantKey]ValueId),
		results:     make(map[InstructionId]ValueId),
		resultTypes: make(map[InstructionId]Type),
	}
}

// AddValue interns v and returns its id.
func (g *DataFlowGraph) AddValue(v Value) ValueId {
	g.values = append(g.values, v)
	return ValueId(len(g.values) - 1)
}

// AddInstruction interns an effect-only instruction (Constrain) with no
// result value.
func (g *DataFlowGraph) AddInstruction(inst Instruction) InstructionId {
	g.instructions = append(g.instructions, inst)
	return InstructionId(len(g.instructions) - 1)
}

// DefineInstruction interns inst together with the ValueId of the result it
// produces, returning both. Used for Binary, Not, and param instructions,
// whose results downstream instructions may reference; typ is recorded so
// TypeOfValue can answer questions about the result without re-deriving it
// from the instruction's operands.
func (g *DataFlowGraph) DefineInstruction(inst Instruction, typ Type) (InstructionId, ValueId) {
	id := g.AddInstruction(inst)
	result := g.AddValue(InstructionValue{Instruction: id})
	g.results[id] = result
	g.resultTypes[id] = typ
	return id, result
}

// ResultOf returns the ValueId an instruction defines, if any.
func (g *DataFlowGraph) ResultOf(id InstructionId) (ValueId, bool) {
	v, ok := g.results[id]
	return v, ok
}

// Forward records that `from` should resolve to `to`, modeling a
// phi-trivial or forwarding reference collapsed during simplification.
func (g *DataFlowGraph) Forward(from, to ValueId) {
	g.forwards[from] = to
}

// Resolve collapses chains of forwarding references to their canonical
// representative. Idempotent: Resolve(Resolve(v)) == Resolve(v).
func (g *DataFlowGraph) Resolve(v ValueId) ValueId {
	seen := map[ValueId]bool{}
	for {
		next, ok := g.forwards[v]
		if !ok || next == v || seen[v] {
			return v
		}
		seen[v] = true
		v = next
	}
}

// Lookup returns the Value identified by id.
func (g *DataFlowGraph) Lookup(id ValueId) Value {
	return g.values[id]
}

// LookupInstruction returns the Instruction identified by id.
func (g *DataFlowGraph) LookupInstruction(id InstructionId) Instruction {
	return g.instructions[id]
}

// GetNumericConstant returns the field element backing v, if v resolves to
// a NumericConstant.
func (g *DataFlowGraph) GetNumericConstant(v ValueId) (field.Element, bool) {
	if nc, ok := g.Lookup(g.Resolve(v)).(NumericConstant); ok {
		return nc.Constant, true
	}
	return field.Element{}, false
}

// IsConstant reports whether v resolves to a NumericConstant.
func (g *DataFlowGraph) IsConstant(v ValueId) bool {
	_, ok := g.GetNumericConstant(v)
	return ok
}

// TypeOfValue returns the type of the resolved value.
func (g *DataFlowGraph) TypeOfValue(v ValueId) Type {
	switch val := g.Lookup(g.Resolve(v)).(type) {
	case NumericConstant:
		return val.Typ
	case OpaqueValue:
		return val.Typ
	case InstructionValue:
		return g.resultTypes[val.Instruction]
	default:
		return nil
	}
}

// MakeConstant interns a constant, deduplicating on the (field value, type)
// key so rewrite idempotence holds: decomposing the same constraint twice
// never produces two distinct-but-equal constants.
func (g *DataFlowGraph) MakeConstant(value field.Element, typ Type) ValueId {
	key := constantKey{value: value.String(), typ: typ.String()}
	if id, ok := g.constants[key]; ok {
		return id
	}
	id := g.AddValue(NumericConstant{Constant: value, Typ: typ})
	g.constants[key] = id
	return id
}
