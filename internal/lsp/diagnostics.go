package lsp

import (
	"github.com/alecthomas/participle/v2"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"circuitssa/internal/errors"
)

// ConvertParseError converts a single participle parse error into an LSP
// diagnostic. The grammar stops at the first syntax error, so there is at
// most one of these per parse attempt.
func ConvertParseError(err error) []protocol.Diagnostic {
	pe, ok := err.(participle.Error)
	if !ok {
		return []protocol.Diagnostic{{
			Range:    zeroRange(),
			Severity: ptrSeverity(protocol.DiagnosticSeverityError),
			Source:   ptrString("circuitssa-parser"),
			Message:  "[" + errors.ErrorParseSyntax + "] " + err.Error(),
		}}
	}

	pos := pe.Position()
	return []protocol.Diagnostic{{
		Range: protocol.Range{
			Start: protocol.Position{Line: uint32(pos.Line - 1), Character: uint32(pos.Column - 1)},
			End:   protocol.Position{Line: uint32(pos.Line - 1), Character: uint32(pos.Column + 4)},
		},
		Severity: ptrSeverity(protocol.DiagnosticSeverityError),
		Source:   ptrString("circuitssa-parser"),
		Message:  "[" + errors.ErrorParseSyntax + "] " + pe.Message(),
	}}
}

// ConvertSemanticErrors converts internal/semantic's diagnostics into LSP
// diagnostics, preserving error/warning severity.
func ConvertSemanticErrors(diags []errors.CompilerError) []protocol.Diagnostic {
	var out []protocol.Diagnostic
	for _, d := range diags {
		length := d.Length
		if length <= 0 {
			length = 1
		}
		message := d.Message
		if d.Code != "" {
			message = "[" + d.Code + "] " + message
		}
		out = append(out, protocol.Diagnostic{
			Range: protocol.Range{
				Start: protocol.Position{Line: uint32(d.Position.Line - 1), Character: uint32(d.Position.Column - 1)},
				End:   protocol.Position{Line: uint32(d.Position.Line - 1), Character: uint32(d.Position.Column - 1 + length)},
			},
			Severity: ptrSeverity(severityOf(d.Level)),
			Source:   ptrString("circuitssa"),
			Message:  message,
		})
	}
	return out
}

func severityOf(level errors.ErrorLevel) protocol.DiagnosticSeverity {
	if level == errors.Warning {
		return protocol.DiagnosticSeverityWarning
	}
	return protocol.DiagnosticSeverityError
}

func zeroRange() protocol.Range {
	return protocol.Range{
		Start: protocol.Position{Line: 0, Character: 0},
		End:   protocol.Position{Line: 0, Character: 1},
	}
}

func ptrSeverity(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity {
	return &s
}

func ptrString(s string) *string {
	return &s
}
