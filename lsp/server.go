// Package lsp implements a language server for pattern files.
//
// A pattern file holds one pattern per line; blank lines and lines whose
// first character is '#' are ignored. The server reports parse failures as
// diagnostics and answers hover requests with the syntax tree of the
// hovered line.
package lsp

import (
	"fmt"
	"strings"
	"sync"
	"unicode/utf16"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	_ "github.com/tliron/commonlog/simple"

	"github.com/dhamidi/rex/syntax"
)

const lsName = "rex"

type Server struct {
	handler protocol.Handler
	server  *server.Server
	version string

	mu        sync.Mutex
	documents map[string]string
}

func NewServer(version string) *Server {
	ls := &Server{
		version:   version,
		documents: make(map[string]string),
	}

	ls.handler = protocol.Handler{
		Initialize:            ls.initialize,
		Initialized:           ls.initialized,
		Shutdown:              ls.shutdown,
		SetTrace:              ls.setTrace,
		TextDocumentDidOpen:   ls.textDocumentDidOpen,
		TextDocumentDidChange: ls.textDocumentDidChange,
		TextDocumentDidClose:  ls.textDocumentDidClose,
		TextDocumentDidSave:   ls.textDocumentDidSave,
		TextDocumentHover:     ls.textDocumentHover,
	}

	ls.server = server.NewServer(&ls.handler, lsName, false)

	return ls
}

func (ls *Server) RunStdio() error {
	return ls.server.RunStdio()
}

func (ls *Server) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	capabilities := ls.handler.CreateServerCapabilities()

	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    syncKindPtr(protocol.TextDocumentSyncKindFull),
		Save: &protocol.SaveOptions{
			IncludeText: boolPtr(true),
		},
	}
	capabilities.HoverProvider = true

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &ls.version,
		},
	}, nil
}

func (ls *Server) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	return nil
}

func (ls *Server) shutdown(ctx *glsp.Context) error {
	return nil
}

func (ls *Server) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (ls *Server) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	ls.updateDocument(ctx, params.TextDocument.URI, params.TextDocument.Text)
	return nil
}

func (ls *Server) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	if len(params.ContentChanges) > 0 {
		change := params.ContentChanges[len(params.ContentChanges)-1]
		if textChange, ok := change.(protocol.TextDocumentContentChangeEventWhole); ok {
			ls.updateDocument(ctx, params.TextDocument.URI, textChange.Text)
		}
	}
	return nil
}

func (ls *Server) textDocumentDidSave(ctx *glsp.Context, params *protocol.DidSaveTextDocumentParams) error {
	if params.Text != nil {
		ls.updateDocument(ctx, params.TextDocument.URI, *params.Text)
	}
	return nil
}

func (ls *Server) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	ls.mu.Lock()
	delete(ls.documents, params.TextDocument.URI)
	ls.mu.Unlock()

	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         params.TextDocument.URI,
		Diagnostics: []protocol.Diagnostic{},
	})
	return nil
}

func (ls *Server) textDocumentHover(ctx *glsp.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	ls.mu.Lock()
	text, ok := ls.documents[params.TextDocument.URI]
	ls.mu.Unlock()
	if !ok {
		return nil, nil
	}

	lines := strings.Split(text, "\n")
	lineNo := int(params.Position.Line)
	if lineNo >= len(lines) {
		return nil, nil
	}

	pattern := strings.TrimRight(lines[lineNo], "\r")
	if skipLine(pattern) {
		return nil, nil
	}

	re, err := syntax.Parse(pattern)
	if err != nil {
		return nil, nil
	}

	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.MarkupKindMarkdown,
			Value: hoverText(pattern, re),
		},
	}, nil
}

func (ls *Server) updateDocument(ctx *glsp.Context, uri string, text string) {
	ls.mu.Lock()
	ls.documents[uri] = text
	ls.mu.Unlock()

	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnosticsFor(text),
	})
}

// diagnosticsFor parses every pattern line of a document and reports one
// diagnostic per failing line, spanning the whole pattern.
func diagnosticsFor(text string) []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}
	for i, line := range strings.Split(text, "\n") {
		pattern := strings.TrimRight(line, "\r")
		if skipLine(pattern) {
			continue
		}
		_, err := syntax.Parse(pattern)
		if err == nil {
			continue
		}

		severity := protocol.DiagnosticSeverityError
		source := lsName
		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range: protocol.Range{
				Start: protocol.Position{Line: protocol.UInteger(i), Character: 0},
				End:   protocol.Position{Line: protocol.UInteger(i), Character: protocol.UInteger(utf16Len(pattern))},
			},
			Severity: &severity,
			Source:   &source,
			Message:  err.Error(),
		})
	}
	return diagnostics
}

func hoverText(pattern string, re syntax.Regexp) string {
	return fmt.Sprintf("`%s`\n\n```\n%s\n```", pattern, syntax.Dump(re))
}

func skipLine(line string) bool {
	return line == "" || strings.HasPrefix(line, "#")
}

// utf16Len measures a string in UTF-16 code units, the unit LSP positions
// are expressed in by default.
func utf16Len(s string) int {
	return len(utf16.Encode([]rune(s)))
}

func boolPtr(b bool) *bool {
	return &b
}

func syncKindPtr(kind protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &kind
}
