package lsp

import (
	"fmt"
	"net/url"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"stir/grammar"
	"stir/internal/builder"
)

var log = commonlog.GetLogger("stir.lsp")

// Define the set of supported semantic token types (advertised in the legend)
var SemanticTokenTypes = []string{
	"keyword",
	"function",
	"number",
	"string",
	"comment",
}

// Define the set of supported semantic token modifiers
var SemanticTokenModifiers = []string{
	"declaration",
}

// Keywords offered by completion
var Keywords = []string{"IF", "ELSE", "LOOP", "FUNCTION", "RETURN", "CALL", "ENTRY", "true", "false"}

type document struct {
	text string

	// program is the last version of text that parsed, kept so completion
	// still works while the user is mid-edit.
	program *grammar.Program
}

// StirHandler implements the LSP server handlers for STIR text
type StirHandler struct {
	mu   sync.RWMutex
	docs map[protocol.DocumentUri]*document
}

// NewStirHandler creates and returns a new StirHandler instance
func NewStirHandler() *StirHandler {
	return &StirHandler{
		docs: make(map[protocol.DocumentUri]*document),
	}
}

// Initialize responds to the LSP client's initialize request and advertises the server's capabilities
func (h *StirHandler) Initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	log.Info("initialize")

	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: &protocol.TextDocumentSyncOptions{
				OpenClose: ptrBool(true),
				Change:    ptrSyncKind(protocol.TextDocumentSyncKindFull),
			},
			CompletionProvider: &protocol.CompletionOptions{
				ResolveProvider: ptrBool(false),
			},
			SemanticTokensProvider: &protocol.SemanticTokensOptions{
				Legend: protocol.SemanticTokensLegend{
					TokenTypes:     SemanticTokenTypes,
					TokenModifiers: SemanticTokenModifiers,
				},
				Full: ptrBool(true),
			},
		},
	}, nil
}

// Initialized is called after the client receives the server's capabilities
func (h *StirHandler) Initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	log.Info("initialized")
	return nil
}

// Shutdown handles the LSP shutdown request
func (h *StirHandler) Shutdown(ctx *glsp.Context) error {
	log.Info("shutdown")
	return nil
}

// SetTrace records the trace level requested by the client
func (h *StirHandler) SetTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

// TextDocumentDidOpen handles file open notifications from the editor
func (h *StirHandler) TextDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	log.Debug("opened", "uri", params.TextDocument.URI)

	diagnostics, err := h.update(params.TextDocument.URI, params.TextDocument.Text)
	if err != nil {
		return fmt.Errorf("failed to update document: %w", err)
	}

	sendDiagnosticNotification(ctx, params.TextDocument.URI, diagnostics)
	return nil
}

// TextDocumentDidChange handles file change notifications from the editor.
// Only full-document sync is advertised, so the last change carries the text.
func (h *StirHandler) TextDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	log.Debug("changed", "uri", params.TextDocument.URI)

	text, ok := latestText(params.ContentChanges)
	if !ok {
		return nil
	}

	diagnostics, err := h.update(params.TextDocument.URI, text)
	if err != nil {
		return fmt.Errorf("failed to update document: %w", err)
	}

	sendDiagnosticNotification(ctx, params.TextDocument.URI, diagnostics)
	return nil
}

// TextDocumentDidClose handles file close notifications from the editor
func (h *StirHandler) TextDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	log.Debug("closed", "uri", params.TextDocument.URI)

	h.mu.Lock()
	delete(h.docs, params.TextDocument.URI)
	h.mu.Unlock()

	return nil
}

// TextDocumentCompletion offers the keywords and every function defined in the document
func (h *StirHandler) TextDocumentCompletion(ctx *glsp.Context, params *protocol.CompletionParams) (any, error) {
	items := make([]protocol.CompletionItem, 0, len(Keywords))
	for _, kw := range Keywords {
		items = append(items, protocol.CompletionItem{
			Label: kw,
			Kind:  ptrCompletionKind(protocol.CompletionItemKindKeyword),
		})
	}

	if _, program, ok := h.snapshot(params.TextDocument.URI); ok && program != nil {
		for _, name := range builder.FunctionNames(program) {
			items = append(items, protocol.CompletionItem{
				Label:  name,
				Kind:   ptrCompletionKind(protocol.CompletionItemKindFunction),
				Detail: ptrString("FUNCTION " + name),
			})
		}
	}

	return &protocol.CompletionList{
		IsIncomplete: false,
		Items:        items,
	}, nil
}

// TextDocumentSemanticTokensFull handles semantic token requests for the entire document
func (h *StirHandler) TextDocumentSemanticTokensFull(ctx *glsp.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	text, _, ok := h.snapshot(params.TextDocument.URI)
	if !ok {
		return nil, fmt.Errorf("document %s is not open", params.TextDocument.URI)
	}

	tokens, err := collectSemanticTokens(text)
	if err != nil {
		log.Debug("semantic tokens stopped early", "uri", params.TextDocument.URI, "error", err)
	}

	var data []uint32
	var prevLine, prevStart uint32

	// Encode tokens into LSP wire format (using delta-line, delta-start compression)
	for _, token := range tokens {
		deltaLine := token.Line - prevLine
		var deltaStart uint32
		if deltaLine == 0 {
			deltaStart = token.StartChar - prevStart
		} else {
			deltaStart = token.StartChar
		}

		data = append(data, deltaLine, deltaStart, token.Length, uint32(token.TokenType), uint32(token.TokenModifiers))

		prevLine = token.Line
		prevStart = token.StartChar
	}

	return &protocol.SemanticTokens{
		Data: data,
	}, nil
}

// snapshot copies the current state of uri while holding the read lock.
func (h *StirHandler) snapshot(uri protocol.DocumentUri) (string, *grammar.Program, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	doc, ok := h.docs[uri]
	if !ok {
		return "", nil, false
	}
	return doc.text, doc.program, true
}

// update stores text for uri and returns the diagnostics to publish for it.
func (h *StirHandler) update(rawURI protocol.DocumentUri, text string) ([]protocol.Diagnostic, error) {
	path, err := uriToPath(rawURI)
	if err != nil {
		return nil, err
	}

	h.mu.Lock()
	doc, ok := h.docs[rawURI]
	if !ok {
		doc = &document{}
		h.docs[rawURI] = doc
	}
	doc.text = text
	h.mu.Unlock()

	program, err := grammar.ParseString(path, text)
	if err == nil {
		h.mu.Lock()
		doc.program = program
		h.mu.Unlock()
	}

	_, errs := builder.Source(path, text, builder.Options{})
	return ConvertCompilerErrors(errs), nil
}

func latestText(changes []any) (string, bool) {
	if len(changes) == 0 {
		return "", false
	}
	switch change := changes[len(changes)-1].(type) {
	case protocol.TextDocumentContentChangeEventWhole:
		return change.Text, true
	case *protocol.TextDocumentContentChangeEventWhole:
		return change.Text, true
	case protocol.TextDocumentContentChangeEvent:
		return change.Text, change.Range == nil
	case *protocol.TextDocumentContentChangeEvent:
		return change.Text, change.Range == nil
	}
	return "", false
}

// Convert URI to platform-local file path
func uriToPath(rawURI string) (string, error) {
	u, err := url.Parse(rawURI)
	if err != nil {
		return "", fmt.Errorf("invalid URI %s: %w", rawURI, err)
	}

	path := u.Path

	// On Windows, remove leading slash (e.g., /C:/...) -> C:/...
	if runtime.GOOS == "windows" && strings.HasPrefix(path, "/") && len(path) > 3 && path[2] == ':' {
		path = path[1:]
	}

	return filepath.FromSlash(path), nil
}

func sendDiagnosticNotification(ctx *glsp.Context, uri protocol.URI, diagnostics []protocol.Diagnostic) {
	log.Debug("publishing diagnostics", "uri", uri, "count", len(diagnostics))

	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

func ptrBool(b bool) *bool {
	return &b
}

func ptrString(s string) *string {
	return &s
}

func ptrSyncKind(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}

func ptrCompletionKind(k protocol.CompletionItemKind) *protocol.CompletionItemKind {
	return &k
}
