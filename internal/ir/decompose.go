package ir

import "circuitssa/internal/field"

// DecomposeConstrain tries to decompose a constrain instruction. The
// constraint is broken down so that it instead constrains the values used to
// compute the values that were being constrained, reducing the number of
// intermediate wires the emitted circuit must assert over.
//
// This does not remove the original instruction producing lhs or rhs — it
// may still be used elsewhere and is left for dead-instruction elimination
// to clean up.
func DecomposeConstrain(lhs, rhs ValueId, msg *string, dfg *DataFlowGraph) []Instruction {
	lhs = dfg.Resolve(lhs)
	rhs = dfg.Resolve(rhs)

	if lhs == rhs {
		return nil
	}

	constVal, constTyp, instId, ok := splitConstantAndInstruction(dfg, lhs, rhs)
	if !ok {
		return []Instruction{Constrain{Lhs: lhs, Rhs: rhs, Msg: msg}}
	}

	if constTyp.IsBool() {
		return decomposeBoolean(constVal, instId, msg, dfg, lhs, rhs)
	}
	if constTyp.IsNativeField() || constTyp.IsUnsigned() {
		return decomposeNumeric(constVal, constTyp, instId, msg, dfg, lhs, rhs)
	}
	return []Instruction{Constrain{Lhs: lhs, Rhs: rhs, Msg: msg}}
}

// splitConstantAndInstruction recognizes the "one side constant, other side
// an instruction result" shape and returns the constant's value/type and the
// id of the instruction producing the other side.
func splitConstantAndInstruction(dfg *DataFlowGraph, lhs, rhs ValueId) (field.Element, Type, InstructionId, bool) {
	lv, rv := dfg.Lookup(lhs), dfg.Lookup(rhs)

	if nc, ok := lv.(NumericConstant); ok {
		if iv, ok := rv.(InstructionValue); ok {
			return nc.Constant, nc.Typ, iv.Instruction, true
		}
	}
	if nc, ok := rv.(NumericConstant); ok {
		if iv, ok := lv.(InstructionValue); ok {
			return nc.Constant, nc.Typ, iv.Instruction, true
		}
	}
	return field.Element{}, nil, 0, false
}

// decomposeBoolean applies the boolean identities of spec §4.E(a): the
// constant k is known to be of bool type, and inst is the instruction
// producing the other, non-constant side.
func decomposeBoolean(k field.Element, instId InstructionId, msg *string, dfg *DataFlowGraph, lhs, rhs ValueId) []Instruction {
	switch inst := dfg.LookupInstruction(instId).(type) {
	case Binary:
		if inst.Op == Eq && k.IsOne() {
			// v2 = eq a, b ; constrain v2 == true  ~>  constrain a == b
			return DecomposeConstrain(inst.Lhs, inst.Rhs, msg, dfg)
		}
		if inst.Op == Mul && k.IsOne() && dfg.TypeOfValue(inst.Lhs).IsBool() {
			// v2 = mul a, b ; constrain v2 == true  ~>  a == true && b == true
			one := dfg.MakeConstant(field.One(), BoolType{})
			return concat(
				DecomposeConstrain(inst.Lhs, one, msg, dfg),
				DecomposeConstrain(inst.Rhs, one, msg, dfg),
			)
		}
		if inst.Op == Or && k.IsZero() {
			// v2 = or a, b ; constrain v2 == false  ~>  a == 0 && b == 0
			// The zero constant is typed with the lhs operand's type, not
			// bool: Or may act on integer wires whose value is asserted
			// zero across all of its bits, not just bit zero.
			zero := dfg.MakeConstant(field.Zero(), dfg.TypeOfValue(inst.Lhs))
			return concat(
				DecomposeConstrain(inst.Lhs, zero, msg, dfg),
				DecomposeConstrain(inst.Rhs, zero, msg, dfg),
			)
		}

	case Not:
		// v1 = not v0 ; constrain v1 == k  ~>  constrain v0 == !k
		flipped := dfg.MakeConstant(field.FromBool(!k.IsOne()), BoolType{})
		return DecomposeConstrain(inst.Value, flipped, msg, dfg)
	}

	return []Instruction{Constrain{Lhs: lhs, Rhs: rhs, Msg: msg}}
}

// decomposeNumeric applies the inverse-solver rewrite of spec §4.E(b): r is
// the asserted result constant of type typ, and instId is the instruction
// producing the other, non-constant side.
func decomposeNumeric(r field.Element, typ Type, instId InstructionId, msg *string, dfg *DataFlowGraph, lhs, rhs ValueId) []Instruction {
	bin, ok := dfg.LookupInstruction(instId).(Binary)
	if !ok {
		return []Instruction{Constrain{Lhs: lhs, Rhs: rhs, Msg: msg}}
	}

	var (
		known      field.Element
		variable   ValueId
		lhsIsKnown bool
		haveKnown  bool
	)
	if v, isConst := dfg.GetNumericConstant(bin.Lhs); isConst {
		known, variable, lhsIsKnown, haveKnown = v, bin.Rhs, true, true
	} else if v, isConst := dfg.GetNumericConstant(bin.Rhs); isConst {
		known, variable, lhsIsKnown, haveKnown = v, bin.Lhs, false, true
	}
	if !haveKnown {
		return []Instruction{Constrain{Lhs: lhs, Rhs: rhs, Msg: msg}}
	}

	value, ok := SolveInverse(bin.Op, r, known, typ, lhsIsKnown)
	if !ok {
		return []Instruction{Constrain{Lhs: lhs, Rhs: rhs, Msg: msg}}
	}

	valueId := dfg.MakeConstant(value, typ)
	return []Instruction{Constrain{Lhs: variable, Rhs: valueId, Msg: msg}}
}

func concat(lists ...[]Instruction) []Instruction {
	var out []Instruction
	for _, l := range lists {
		out = append(out, l...)
	}
	return out
}
