package ir

// InstructionId is an opaque handle into the dataflow graph's instruction
// table, distinct from ValueId: an instruction's *result* has a ValueId, but
// the instruction itself (needed to inspect its operands) is looked up by
// InstructionId.
type InstructionId int

// BinaryOp enumerates the binary operators the pass reasons about.
type BinaryOp int

const (
	Add BinaryOp = iota
	Sub
	Mul
	Div
	Mod
	Eq
	Lt
	And
	Or
	Xor
)

func (op BinaryOp) String() string {
	switch op {
	case Add:
		return "add"
	case Sub:
		return "sub"
	case Mul:
		return "mul"
	case Div:
		return "div"
	case Mod:
		return "mod"
	case Eq:
		return "eq"
	case Lt:
		return "lt"
	case And:
		return "and"
	case Or:
		return "or"
	case Xor:
		return "xor"
	default:
		return "unknown"
	}
}

// Instruction is a tagged variant over the instruction shapes the pass
// pattern-matches on. Every other instruction shape a real SSA graph would
// contain (calls, loads, casts, ...) is represented by OpaqueInstruction and always
// falls through to the "no decomposition" path.
type Instruction interface {
	isInstruction()
}

// Binary is a two-operand arithmetic/logical instruction: `result = lhs OP rhs`.
type Binary struct {
	Lhs, Rhs ValueId
	Op       BinaryOp
}

func (Binary) isInstruction() {}

// Not is a boolean negation instruction: `result = not value`.
type Not struct {
	Value ValueId
}

func (Not) isInstruction() {}

// Constrain asserts that two values are equal. Msg is an opaque diagnostic
// payload copied verbatim across every constraint a Constrain decomposes
// into.
type Constrain struct {
	Lhs, Rhs ValueId
	Msg      *string
}

func (Constrain) isInstruction() {}

// OpaqueInstruction stands in for every instruction shape outside {Binary,
// Not, Constrain} — a parameter introduction, a call, a load — that the pass
// never inspects beyond "not a rewrite target".
type OpaqueInstruction struct {
	Name string
}

func (OpaqueInstruction) isInstruction() {}
