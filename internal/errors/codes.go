package errors

// Error codes for the circuitssa toolchain.
//
// Error code ranges:
// E0001-E0099: Semantic analysis errors (undefined/duplicate values, type mismatches)
// E0100-E0199: Parser errors
// W0001-W0099: Warning codes

const (
	// E0001: a %N operand references a value never defined earlier in the program.
	ErrorUndefinedValue = "E0001"

	// E0002: a %N appears on the left of more than one definition.
	ErrorDuplicateDefinition = "E0002"

	// E0003: a declared type is not one the toolchain accepts; the checker
	// raises it for a definition whose type name is not bool, Field, or uN.
	ErrorTypeMismatch = "E0003"

	// E0100: a syntax error reported by the .cssa parser.
	ErrorParseSyntax = "E0100"

	// W0001: a defined value is never referenced by a later definition or
	// constrain statement.
	WarningUnusedValue = "W0001"
)
