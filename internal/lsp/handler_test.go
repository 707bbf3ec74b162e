package lsp

import (
	"testing"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeDiagnosticsCleanProgramIsEmpty(t *testing.T) {
	diags := computeDiagnostics("ok.cssa", `
%0 : Field = param
%1 : Field = param
%2 : Field = add %0, %1
constrain %2 == 12
`)
	assert.Empty(t, diags)
}

func TestComputeDiagnosticsParseErrorReportsPosition(t *testing.T) {
	diags := computeDiagnostics("bad.cssa", "%0 : Field = \n")
	require.Len(t, diags, 1)
	assert.Equal(t, "circuitssa-parser", *diags[0].Source)
	assert.Equal(t, protocol.DiagnosticSeverityError, *diags[0].Severity)
}

func TestComputeDiagnosticsUndefinedReferenceIsError(t *testing.T) {
	diags := computeDiagnostics("undef.cssa", "constrain %0 == 1\n")
	require.NotEmpty(t, diags)
	assert.Equal(t, protocol.DiagnosticSeverityError, *diags[0].Severity)
}

func TestComputeDiagnosticsUnusedValueIsWarning(t *testing.T) {
	diags := computeDiagnostics("unused.cssa", `
%0 : Field = param
%1 : Field = param
constrain %0 == %0
`)
	var sawWarning bool
	for _, d := range diags {
		if *d.Severity == protocol.DiagnosticSeverityWarning {
			sawWarning = true
		}
	}
	assert.True(t, sawWarning, "unused %%1 should surface as a warning")
}

func TestHandlerDiagnosticsStoredAfterOpen(t *testing.T) {
	h := NewHandler()
	path := "/tmp/test.cssa"
	h.mu.Lock()
	h.content[path] = "constrain %0 == 1\n"
	h.diags[path] = computeDiagnostics(path, h.content[path])
	h.mu.Unlock()

	diags, ok := h.Diagnostics(path)
	require.True(t, ok)
	assert.NotEmpty(t, diags)
}
