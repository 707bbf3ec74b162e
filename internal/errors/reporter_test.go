package errors

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorReporter(t *testing.T) {
	source := `%0 : bool = param
%1 : bool = param
%2 : bool = eq %0, %1
constrain %2 == true "values must match"`

	reporter := NewErrorReporter("test.cssa", source)

	err := UndefinedValue("%3", Position{Line: 4, Column: 11})
	formatted := reporter.FormatError(err)

	assert.Contains(t, formatted, "error["+ErrorUndefinedValue+"]")
	assert.Contains(t, formatted, "undefined value")
	assert.Contains(t, formatted, "%3")
	assert.Contains(t, formatted, "test.cssa:4:11")
	assert.Contains(t, formatted, "define %3 before")
}

func TestUndefinedValueError(t *testing.T) {
	pos := Position{Line: 1, Column: 5}

	err := UndefinedValue("%7", pos)
	assert.Equal(t, ErrorUndefinedValue, err.Code)
	assert.Contains(t, err.Message, "%7")
	assert.Len(t, err.Suggestions, 1)
	assert.Contains(t, err.Suggestions[0].Message, "define %7 before")
}

func TestDuplicateDefinitionError(t *testing.T) {
	pos := Position{Line: 2, Column: 1}

	err := DuplicateDefinition("%2", pos)
	assert.Equal(t, ErrorDuplicateDefinition, err.Code)
	assert.Contains(t, err.Message, "duplicate definition of '%2'")
	assert.Len(t, err.Notes, 1)
}

func TestTypeMismatchError(t *testing.T) {
	pos := Position{Line: 1, Column: 5}

	err := TypeMismatch("bool", "Field", pos)
	assert.Equal(t, ErrorTypeMismatch, err.Code)
	assert.Contains(t, err.Message, "expected bool, found Field")
	assert.Len(t, err.Suggestions, 1)
}

func TestWarningFormatting(t *testing.T) {
	source := `%0 : bool = param`
	reporter := NewErrorReporter("test.cssa", source)

	err := UnusedValue("%0", Position{Line: 1, Column: 1})
	formatted := reporter.FormatError(err)

	assert.Contains(t, formatted, "warning[W0001]")
	assert.Contains(t, formatted, "never used")
}

func TestErrorMarkerCreation(t *testing.T) {
	source := `constrain %2 == true "msg"`
	reporter := NewErrorReporter("test.cssa", source)

	marker := reporter.createMarker(11, 2, Error) // "%2" is 2 chars at column 11

	spaces := strings.Count(marker, " ")
	assert.Equal(t, 10, spaces)
	carets := strings.Count(marker, "^")
	assert.Equal(t, 2, carets)
}

func TestErrorLevels(t *testing.T) {
	source := `constrain %0 == true`
	reporter := NewErrorReporter("test.cssa", source)
	pos := Position{Line: 1, Column: 1}

	errorErr := CompilerError{Level: Error, Message: "test error", Position: pos}
	warningErr := CompilerError{Level: Warning, Message: "test warning", Position: pos}

	errorFormatted := reporter.FormatError(errorErr)
	warningFormatted := reporter.FormatError(warningErr)

	assert.Contains(t, errorFormatted, "error:")
	assert.Contains(t, warningFormatted, "warning:")
}
