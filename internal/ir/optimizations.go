package ir

// Program is a flat, single-block sequence of instructions over one
// DataFlowGraph — the minimal container the optimization pipeline operates
// on. Full basic blocks and control flow are out of scope for this pass;
// every id in Instructions already lives in Graph (Binary/Not definitions
// and Constrain assertions), in program order.
type Program struct {
	Graph        *DataFlowGraph
	Instructions []InstructionId
}

// OptimizationPass is a single transformation over a Program.
type OptimizationPass interface {
	Name() string
	Apply(program *Program) bool // returns true if changes were made
}

// Pipeline runs a fixed sequence of optimization passes.
type Pipeline struct {
	passes []OptimizationPass
}

// NewPipeline returns the default pipeline: constraint decomposition
// followed by dead instruction elimination, matching spec.md §5's ordering
// requirement ("run before dead-instruction elimination").
func NewPipeline() *Pipeline {
	p := &Pipeline{}
	p.AddPass(&ConstraintDecomposition{})
	p.AddPass(&DeadInstructionElimination{})
	return p
}

// AddPass appends a pass to the pipeline.
func (p *Pipeline) AddPass(pass OptimizationPass) {
	p.passes = append(p.passes, pass)
}

// Run applies every pass in order, returning true if any pass changed the
// program.
func (p *Pipeline) Run(program *Program) bool {
	changed := false
	for _, pass := range p.passes {
		if pass.Apply(program) {
			changed = true
		}
	}
	return changed
}

// ConstraintDecomposition applies DecomposeConstrain to every Constrain
// instruction in the program, interning each emitted replacement as a fresh
// instruction in the graph. A constraint that comes back unchanged keeps its
// original instruction id.
type ConstraintDecomposition struct{}

func (ConstraintDecomposition) Name() string { return "Constraint Decomposition" }

func (ConstraintDecomposition) Apply(program *Program) bool {
	changed := false
	var out []InstructionId

	for _, id := range program.Instructions {
		c, ok := program.Graph.LookupInstruction(id).(Constrain)
		if !ok {
			out = append(out, id)
			continue
		}

		decomposed := DecomposeConstrain(c.Lhs, c.Rhs, c.Msg, program.Graph)
		if sameSingleConstrain(decomposed, c) {
			out = append(out, id)
			continue
		}
		changed = true
		for _, inst := range decomposed {
			out = append(out, program.Graph.AddInstruction(inst))
		}
	}

	program.Instructions = out
	return changed
}

// sameSingleConstrain reports whether decomposed is exactly the original,
// unchanged constraint — i.e. "no change" per spec.md §6.
func sameSingleConstrain(decomposed []Instruction, original Constrain) bool {
	if len(decomposed) != 1 {
		return false
	}
	c, ok := decomposed[0].(Constrain)
	return ok && c.Lhs == original.Lhs && c.Rhs == original.Rhs
}

// DeadInstructionElimination removes instructions whose results are not read
// by any instruction in the program. It makes a single pass: an operand read
// only by an instruction that this same pass removes is kept. Full dead
// instruction elimination belongs to a downstream pass (spec.md §1
// non-goals); this is the minimal version needed to demonstrate that
// ConstraintDecomposition actually shrinks the constraint system, matching
// the teacher's convention of running its own DCE pass after rewrite passes
// in the default pipeline.
type DeadInstructionElimination struct{}

func (DeadInstructionElimination) Name() string { return "Dead Instruction Elimination" }

func (DeadInstructionElimination) Apply(program *Program) bool {
	used := make(map[ValueId]bool)
	for _, id := range program.Instructions {
		for _, operand := range operandsOf(program.Graph.LookupInstruction(id)) {
			used[program.Graph.Resolve(operand)] = true
		}
	}

	changed := false
	var out []InstructionId
	for _, id := range program.Instructions {
		if result, hasResult := program.Graph.ResultOf(id); hasResult {
			if !used[program.Graph.Resolve(result)] {
				changed = true
				continue
			}
		}
		out = append(out, id)
	}

	program.Instructions = out
	return changed
}

// operandsOf returns the ValueIds an instruction reads.
func operandsOf(inst Instruction) []ValueId {
	switch i := inst.(type) {
	case Binary:
		return []ValueId{i.Lhs, i.Rhs}
	case Not:
		return []ValueId{i.Value}
	case Constrain:
		return []ValueId{i.Lhs, i.Rhs}
	case OpaqueInstruction:
		return nil
	default:
		return nil
	}
}
