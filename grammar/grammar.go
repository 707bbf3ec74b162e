package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// Program is a flat listing of .cssa lines: value definitions in SSA form
// followed by zero or more constrain statements, in source order.
type Program struct {
	Pos   lexer.Position
	Lines []*Line `@@*`
}

// Line is one of a comment, a value definition, or a constrain statement.
type Line struct {
	Pos       lexer.Position
	Comment   *Comment       `  @@`
	Def       *Definition    `| @@`
	Constrain *ConstrainStmt `| @@`
}

// Comment is a `//`-prefixed line, carried through only for round-tripping.
type Comment struct {
	Pos  lexer.Position
	Text string `@Comment`
}

// Definition binds a fresh SSA value: `%N : type = rhs`.
type Definition struct {
	Pos    lexer.Position
	Result int    `"%" @Integer ":"`
	Type   string `@Ident "="`
	Rhs    *Rhs   `@@`
}

// Rhs is the right-hand side of a definition: a parameter introduction, a
// binary instruction, a unary negation, or a bare literal constant.
type Rhs struct {
	Pos     lexer.Position
	Param   bool        `(  @"param"`
	Not     *Operand    ` | "not" @@`
	Binary  *BinaryRhs  ` | @@`
	Literal *string     ` | @Integer )`
}

// BinaryRhs is `op lhs, rhs` for one of the recognized binary operators.
type BinaryRhs struct {
	Pos lexer.Position
	Op  string   `@("add" | "sub" | "mul" | "div" | "mod" | "eq" | "lt" | "and" | "or" | "xor")`
	Lhs *Operand `@@ ","`
	Rhs *Operand `@@`
}

// Operand references a previously defined value or spells out a literal
// (boolean or integer) inline.
type Operand struct {
	Pos    lexer.Position
	Ref    *int    `(  "%" @Integer`
	Bool   *string ` | @("true" | "false")`
	Number *string ` | @Integer )`
}

// ConstrainStmt asserts that two operands are equal, with an optional
// diagnostic message carried verbatim through decomposition.
type ConstrainStmt struct {
	Pos lexer.Position
	Lhs *Operand `"constrain" @@ "=="`
	Rhs *Operand `@@`
	Msg *string  `[ @String ]`
}
