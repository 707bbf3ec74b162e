package lsp

import (
	"fmt"
	"log"
	"net/url"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"circuitssa/grammar"
	"circuitssa/internal/ir"
	"circuitssa/internal/semantic"
)

// Handler implements the LSP server for .cssa source: diagnostics only. The
// grammar is too small to earn its own semantic-token legend — editors
// already get Go-grade instant feedback from diagnostics alone.
type Handler struct {
	mu      sync.RWMutex
	content map[string]string
	diags   map[string][]protocol.Diagnostic
}

// NewHandler returns a Handler with no open documents.
func NewHandler() *Handler {
	return &Handler{
		content: make(map[string]string),
		diags:   make(map[string][]protocol.Diagnostic),
	}
}

// Initialize responds to the client's initialize request.
func (h *Handler) Initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	log.Println("circuitssa-lsp: initialize")

	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: &protocol.TextDocumentSyncOptions{
				OpenClose: ptrBool(true),
				Change:    ptrSyncKind(protocol.TextDocumentSyncKindFull),
			},
		},
	}, nil
}

// Initialized is called once the client has received the server's capabilities.
func (h *Handler) Initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	log.Println("circuitssa-lsp: initialized")
	return nil
}

// Shutdown handles the LSP shutdown request.
func (h *Handler) Shutdown(ctx *glsp.Context) error {
	log.Println("circuitssa-lsp: shutdown")
	return nil
}

// TextDocumentDidOpen parses and checks a newly opened document.
func (h *Handler) TextDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	return h.refresh(ctx, params.TextDocument.URI, params.TextDocument.Text)
}

// TextDocumentDidChange re-checks a document after an edit. The server
// advertises full-document sync, so the last content change carries the
// complete new text.
func (h *Handler) TextDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	if len(params.ContentChanges) == 0 {
		return nil
	}
	change, ok := params.ContentChanges[len(params.ContentChanges)-1].(protocol.TextDocumentContentChangeEventWhole)
	if !ok {
		return nil
	}
	return h.refresh(ctx, params.TextDocument.URI, change.Text)
}

// Diagnostics returns the last published diagnostics for path, if any.
func (h *Handler) Diagnostics(path string) ([]protocol.Diagnostic, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	d, ok := h.diags[path]
	return d, ok
}

// TextDocumentDidClose forgets a closed document.
func (h *Handler) TextDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return err
	}

	h.mu.Lock()
	delete(h.content, path)
	delete(h.diags, path)
	h.mu.Unlock()
	return nil
}

// refresh parses and semantically checks text, publishing diagnostics.
func (h *Handler) refresh(ctx *glsp.Context, uri protocol.DocumentUri, text string) error {
	path, err := uriToPath(uri)
	if err != nil {
		return fmt.Errorf("failed to convert URI %s: %w", uri, err)
	}

	diagnostics := computeDiagnostics(path, text)

	h.mu.Lock()
	h.content[path] = text
	h.diags[path] = diagnostics
	h.mu.Unlock()

	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
	return nil
}

// computeDiagnostics runs the parse/check/build pipeline over text and
// returns the diagnostics an editor should see. Pulled out of refresh so it
// can be exercised without a live glsp.Context.
func computeDiagnostics(path, text string) []protocol.Diagnostic {
	parsed, parseErr := grammar.ParseString(path, text)
	if parseErr != nil {
		return ConvertParseError(parseErr)
	}

	checks := semantic.Check(parsed)
	diagnostics := ConvertSemanticErrors(checks)
	if semantic.HasErrors(checks) {
		return diagnostics
	}

	if _, buildErr := ir.NewBuilder().Build(parsed); buildErr != nil {
		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range:    zeroRange(),
			Severity: ptrSeverity(protocol.DiagnosticSeverityError),
			Source:   ptrString("circuitssa-builder"),
			Message:  buildErr.Error(),
		})
	}
	return diagnostics
}

func uriToPath(rawURI string) (string, error) {
	u, err := url.Parse(rawURI)
	if err != nil {
		return "", fmt.Errorf("invalid URI %s: %w", rawURI, err)
	}

	path := u.Path
	if runtime.GOOS == "windows" && strings.HasPrefix(path, "/") && len(path) > 3 && path[2] == ':' {
		path = path[1:]
	}
	return filepath.FromSlash(path), nil
}

func ptrBool(b bool) *bool {
	return &b
}

func ptrSyncKind(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}
