package errors

import "fmt"

// SemanticErrorBuilder provides a fluent interface for creating semantic
// errors with suggestions.
type SemanticErrorBuilder struct {
	err CompilerError
}

// NewSemanticError creates a new semantic error builder.
func NewSemanticError(code, message string, pos Position) *SemanticErrorBuilder {
	return &SemanticErrorBuilder{
		err: CompilerError{
			Level:    Error,
			Code:     code,
			Message:  message,
			Position: pos,
			Length:   1,
		},
	}
}

// NewSemanticWarning creates a new semantic warning builder.
func NewSemanticWarning(code, message string, pos Position) *SemanticErrorBuilder {
	return &SemanticErrorBuilder{
		err: CompilerError{
			Level:    Warning,
			Code:     code,
			Message:  message,
			Position: pos,
			Length:   1,
		},
	}
}

// WithLength sets the length of the error span.
func (b *SemanticErrorBuilder) WithLength(length int) *SemanticErrorBuilder {
	b.err.Length = length
	return b
}

// WithSuggestion adds a suggestion to the error.
func (b *SemanticErrorBuilder) WithSuggestion(message string) *SemanticErrorBuilder {
	b.err.Suggestions = append(b.err.Suggestions, Suggestion{Message: message})
	return b
}

// WithNote adds a note to the error.
func (b *SemanticErrorBuilder) WithNote(note string) *SemanticErrorBuilder {
	b.err.Notes = append(b.err.Notes, note)
	return b
}

// WithHelp adds help text to the error.
func (b *SemanticErrorBuilder) WithHelp(help string) *SemanticErrorBuilder {
	b.err.HelpText = help
	return b
}

// Build returns the completed compiler error.
func (b *SemanticErrorBuilder) Build() CompilerError {
	return b.err
}

// UndefinedValue creates an error for a %N reference with no earlier definition.
func UndefinedValue(name string, pos Position) CompilerError {
	return NewSemanticError(ErrorUndefinedValue, fmt.Sprintf("undefined value '%s'", name), pos).
		WithLength(len(name)).
		WithSuggestion(fmt.Sprintf("define %s before it is referenced", name)).
		WithNote("every %N must appear on the left of a definition earlier in the program").
		Build()
}

// DuplicateDefinition creates an error for a %N defined more than once.
func DuplicateDefinition(name string, pos Position) CompilerError {
	return NewSemanticError(ErrorDuplicateDefinition, fmt.Sprintf("duplicate definition of '%s'", name), pos).
		WithLength(len(name)).
		WithSuggestion("give the second definition a fresh %N").
		WithNote("SSA values are defined exactly once").
		Build()
}

// TypeMismatch creates an error for an operand whose type disagrees with
// what the instruction expects.
func TypeMismatch(expected, actual string, pos Position) CompilerError {
	return NewSemanticError(ErrorTypeMismatch, fmt.Sprintf("type mismatch: expected %s, found %s", expected, actual), pos).
		WithSuggestion(fmt.Sprintf("change the operand's declared type to %s", expected)).
		Build()
}

// UnusedValue creates a warning for a value that is defined but never
// referenced by a later instruction or constrain statement.
func UnusedValue(name string, pos Position) CompilerError {
	return NewSemanticWarning(WarningUnusedValue, fmt.Sprintf("value '%s' is defined but never used", name), pos).
		WithLength(len(name)).
		WithHelp("unused values can indicate a leftover fixture or a typo'd reference").
		Build()
}
