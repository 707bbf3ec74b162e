package ir

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"circuitssa/grammar"
	"circuitssa/internal/field"
)

// Builder converts a parsed .cssa grammar.Program into a DataFlowGraph plus
// the ordered instruction list optimizations.Program operates on. It does
// not depend on internal/semantic having run: an undefined reference, an
// unknown type or operator, or a bad literal is returned as an error.
type Builder struct {
	dfg    *DataFlowGraph
	values map[int]ValueId
	types  map[int]Type
}

// NewBuilder returns a Builder over a fresh DataFlowGraph.
func NewBuilder() *Builder {
	return &Builder{
		dfg:    NewDataFlowGraph(),
		values: make(map[int]ValueId),
		types:  make(map[int]Type),
	}
}

// Build walks prog.Lines in order, interning every definition and constrain
// statement, and returns the resulting DataFlowGraph and instruction order.
func (b *Builder) Build(prog *grammar.Program) (*Program, error) {
	var instructions []InstructionId

	for _, line := range prog.Lines {
		switch {
		case line.Def != nil:
			id, err := b.buildDefinition(line.Def)
			if err != nil {
				return nil, err
			}
			if id != nil {
				instructions = append(instructions, *id)
			}

		case line.Constrain != nil:
			id, err := b.buildConstrain(line.Constrain)
			if err != nil {
				return nil, err
			}
			instructions = append(instructions, id)
		}
	}

	return &Program{Graph: b.dfg, Instructions: instructions}, nil
}

func (b *Builder) buildDefinition(def *grammar.Definition) (*InstructionId, error) {
	typ, err := ParseType(def.Type)
	if err != nil {
		return nil, fmt.Errorf("line %d: %w", def.Pos.Line, err)
	}

	switch {
	case def.Rhs.Param:
		id, result := b.dfg.DefineInstruction(OpaqueInstruction{Name: "param"}, typ)
		b.values[def.Result] = result
		b.types[def.Result] = typ
		return &id, nil

	case def.Rhs.Not != nil:
		operand, err := b.resolveOperand(def.Rhs.Not, typ)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", def.Pos.Line, err)
		}
		id, result := b.dfg.DefineInstruction(Not{Value: operand}, typ)
		b.values[def.Result] = result
		b.types[def.Result] = typ
		return &id, nil

	case def.Rhs.Binary != nil:
		op, err := ParseBinaryOp(def.Rhs.Binary.Op)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", def.Pos.Line, err)
		}
		lhs, err := b.resolveOperand(def.Rhs.Binary.Lhs, typ)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", def.Pos.Line, err)
		}
		rhs, err := b.resolveOperand(def.Rhs.Binary.Rhs, typ)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", def.Pos.Line, err)
		}
		id, result := b.dfg.DefineInstruction(Binary{Lhs: lhs, Rhs: rhs, Op: op}, typ)
		b.values[def.Result] = result
		b.types[def.Result] = typ
		return &id, nil

	case def.Rhs.Literal != nil:
		value, err := parseFieldLiteral(*def.Rhs.Literal)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", def.Pos.Line, err)
		}
		b.values[def.Result] = b.dfg.MakeConstant(value, typ)
		b.types[def.Result] = typ
		return nil, nil

	default:
		return nil, fmt.Errorf("line %d: empty right-hand side", def.Pos.Line)
	}
}

func (b *Builder) buildConstrain(c *grammar.ConstrainStmt) (InstructionId, error) {
	typeHint := b.operandTypeHint(c.Lhs, c.Rhs)

	lhs, err := b.resolveOperand(c.Lhs, typeHint)
	if err != nil {
		return 0, fmt.Errorf("line %d: %w", c.Pos.Line, err)
	}
	rhs, err := b.resolveOperand(c.Rhs, typeHint)
	if err != nil {
		return 0, fmt.Errorf("line %d: %w", c.Pos.Line, err)
	}

	var msg *string
	if c.Msg != nil {
		unquoted := strings.Trim(*c.Msg, `"`)
		msg = &unquoted
	}

	return b.dfg.AddInstruction(Constrain{Lhs: lhs, Rhs: rhs, Msg: msg}), nil
}

// operandTypeHint picks the type a bare literal operand should be interned
// with: the type of whichever side is a %-reference, defaulting to Field.
func (b *Builder) operandTypeHint(operands ...*grammar.Operand) Type {
	for _, o := range operands {
		if o.Ref != nil {
			if typ, ok := b.types[*o.Ref]; ok {
				return typ
			}
		}
	}
	return FieldType{}
}

func (b *Builder) resolveOperand(o *grammar.Operand, typeHint Type) (ValueId, error) {
	switch {
	case o.Ref != nil:
		id, ok := b.values[*o.Ref]
		if !ok {
			return 0, fmt.Errorf("undefined value %%%d", *o.Ref)
		}
		return id, nil

	case o.Bool != nil:
		return b.dfg.MakeConstant(field.FromBool(*o.Bool == "true"), BoolType{}), nil

	case o.Number != nil:
		value, err := parseFieldLiteral(*o.Number)
		if err != nil {
			return 0, err
		}
		return b.dfg.MakeConstant(value, typeHint), nil

	default:
		return 0, fmt.Errorf("empty operand")
	}
}

// ParseType maps a .cssa type name to its ir.Type: "bool", "Field", or
// "u<bits>" for an unsigned integer width.
func ParseType(name string) (Type, error) {
	switch name {
	case "bool":
		return BoolType{}, nil
	case "Field":
		return FieldType{}, nil
	}
	if strings.HasPrefix(name, "u") {
		bits, err := strconv.ParseUint(name[1:], 10, 32)
		if err == nil {
			return UnsignedType{Bits: uint32(bits)}, nil
		}
	}
	return nil, fmt.Errorf("unknown type %q", name)
}

// ParseBinaryOp maps a .cssa operator keyword to its BinaryOp.
func ParseBinaryOp(op string) (BinaryOp, error) {
	switch op {
	case "add":
		return Add, nil
	case "sub":
		return Sub, nil
	case "mul":
		return Mul, nil
	case "div":
		return Div, nil
	case "mod":
		return Mod, nil
	case "eq":
		return Eq, nil
	case "lt":
		return Lt, nil
	case "and":
		return And, nil
	case "or":
		return Or, nil
	case "xor":
		return Xor, nil
	default:
		return 0, fmt.Errorf("unknown operator %q", op)
	}
}

func parseFieldLiteral(text string) (field.Element, error) {
	n, ok := new(big.Int).SetString(text, 10)
	if !ok {
		return field.Element{}, fmt.Errorf("invalid integer literal %q", text)
	}
	return field.FromBigInt(n), nil
}
