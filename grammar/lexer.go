package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// CssaLexer tokenizes the .cssa textual SSA format: value definitions of the
// shape `%N : type = rhs` and `constrain lhs == rhs ["msg"]` statements.
var CssaLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		{"Comment", `//[^\n]*`, nil},
		{"String", `"(\\.|[^"\\])*"`, nil},

		{"Ident", `[a-zA-Z_][a-zA-Z0-9_]*`, nil},
		{"Integer", `[0-9]+`, nil},

		// "==" must be tried before "=".
		{"Operator", `==|=`, nil},

		{"Punctuation", `[%:,]`, nil},

		{"Whitespace", `[ \t\r\n]+`, nil},
	},
})
