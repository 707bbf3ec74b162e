package ir

import (
	"fmt"
	"strings"
)

// Printer renders a Program's instructions back to .cssa text, assigning
// fresh %N labels in print order — decomposition can drop and add
// instructions, so the printed numbering need not match the source file's.
type Printer struct {
	dfg    *DataFlowGraph
	labels map[ValueId]int
	next   int
}

// NewPrinter returns a Printer over dfg.
func NewPrinter(dfg *DataFlowGraph) *Printer {
	return &Printer{dfg: dfg, labels: make(map[ValueId]int)}
}

// Print renders every instruction in program, in order, as .cssa source.
func (p *Printer) Print(program *Program) string {
	var b strings.Builder
	for _, id := range program.Instructions {
		if line := p.printInstruction(id); line != "" {
			b.WriteString(line + "\n")
		}
	}
	return b.String()
}

func (p *Printer) printInstruction(id InstructionId) string {
	switch inst := p.dfg.LookupInstruction(id).(type) {
	case OpaqueInstruction:
		result, ok := p.dfg.ResultOf(id)
		if !ok {
			return fmt.Sprintf("// opaque %s", inst.Name)
		}
		return fmt.Sprintf("%%%d : %s = %s", p.labelFor(result), p.dfg.TypeOfValue(result).String(), inst.Name)

	case Binary:
		result, _ := p.dfg.ResultOf(id)
		return fmt.Sprintf("%%%d : %s = %s %s, %s",
			p.labelFor(result), p.dfg.TypeOfValue(result).String(), inst.Op.String(),
			p.operand(inst.Lhs), p.operand(inst.Rhs))

	case Not:
		result, _ := p.dfg.ResultOf(id)
		return fmt.Sprintf("%%%d : %s = not %s",
			p.labelFor(result), p.dfg.TypeOfValue(result).String(), p.operand(inst.Value))

	case Constrain:
		line := fmt.Sprintf("constrain %s == %s", p.operand(inst.Lhs), p.operand(inst.Rhs))
		if inst.Msg != nil {
			line += fmt.Sprintf(" %q", *inst.Msg)
		}
		return line

	default:
		return ""
	}
}

// operand renders a ValueId as either an inline constant or a %-labeled
// reference, assigning a label on first use if one hasn't been printed yet.
func (p *Printer) operand(v ValueId) string {
	v = p.dfg.Resolve(v)

	if constant, ok := p.dfg.GetNumericConstant(v); ok {
		typ := p.dfg.TypeOfValue(v)
		if typ != nil && typ.IsBool() {
			if constant.IsOne() {
				return "true"
			}
			return "false"
		}
		return constant.String()
	}

	return fmt.Sprintf("%%%d", p.labelFor(v))
}

func (p *Printer) labelFor(v ValueId) int {
	v = p.dfg.Resolve(v)
	if label, ok := p.labels[v]; ok {
		return label
	}
	label := p.next
	p.labels[v] = label
	p.next++
	return label
}
