package main

import (
	"context"
	"errors"

	"go.lsp.dev/protocol"

	"github.com/frenchy64/quotefold/expand"
	"github.com/frenchy64/quotefold/token"
)

func (s *Server) publishDiagnostics(ctx context.Context, uri string) {
	doc := s.docs.get(uri)
	if doc == nil {
		return
	}

	diagnostics := s.validateDocument(doc)

	if s.conn != nil {
		s.conn.Notify(ctx, protocol.MethodTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
			URI:         protocol.DocumentURI(uri),
			Diagnostics: diagnostics,
		})
	}
}

func (s *Server) validateDocument(doc *document) []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}

	if doc.parseErr != nil {
		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range:    parseErrRange(doc.parseErr),
			Severity: protocol.DiagnosticSeverityError,
			Message:  doc.parseErr.Error(),
			Source:   "sq",
		})
		return diagnostics
	}

	if _, err := expand.Expand(doc.node); err != nil {
		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range:    expandErrRange(err),
			Severity: protocol.DiagnosticSeverityError,
			Message:  err.Error(),
			Source:   "sq",
		})
	}

	return diagnostics
}

func parseErrRange(err error) protocol.Range {
	var tokErr *token.TokenizeErr
	if errors.As(err, &tokErr) {
		return posRange(&tokErr.Pos)
	}
	return protocol.Range{}
}

func expandErrRange(err error) protocol.Range {
	var xErr *expand.ExpandErr
	if errors.As(err, &xErr) && xErr.Form != nil && xErr.Form.Pos != nil {
		return posRange(xErr.Form.Pos)
	}
	return protocol.Range{}
}

func posRange(pos *token.Pos) protocol.Range {
	line, col := pos.LineCol()
	return protocol.Range{
		Start: protocol.Position{
			Line:      uint32(line),
			Character: uint32(col),
		},
		End: protocol.Position{
			Line:      uint32(line),
			Character: uint32(col + 1),
		},
	}
}

func (s *Server) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	s.docs.put(string(params.TextDocument.URI), params.TextDocument.Text, params.TextDocument.Version)
	s.publishDiagnostics(ctx, string(params.TextDocument.URI))
	return nil
}

func (s *Server) DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil
	}

	content := doc.content
	for _, change := range params.ContentChanges {
		rangeVal := change.Range
		if rangeVal.Start.Line == 0 && rangeVal.Start.Character == 0 && rangeVal.End.Line == 0 && rangeVal.End.Character == 0 {
			// full document replacement
			content = change.Text
		} else {
			start := rangeVal.Start
			end := rangeVal.End
			contentRunes := []rune(content)
			startOffset := lineColToOffset(content, int(start.Line), int(start.Character))
			endOffset := lineColToOffset(content, int(end.Line), int(end.Character))
			if startOffset < len(contentRunes) && endOffset <= len(contentRunes) {
				content = string(contentRunes[:startOffset]) + change.Text + string(contentRunes[endOffset:])
			}
		}
	}

	s.docs.put(string(params.TextDocument.URI), content, params.TextDocument.Version)
	s.publishDiagnostics(ctx, string(params.TextDocument.URI))
	return nil
}

func (s *Server) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.docs.remove(string(params.TextDocument.URI))
	return nil
}

func lineColToOffset(content string, line, col int) int {
	currentLine := 0
	currentCol := 0
	for i, r := range content {
		if currentLine == line && currentCol == col {
			return i
		}
		if r == '\n' {
			currentLine++
			currentCol = 0
		} else {
			currentCol++
		}
	}
	return len(content)
}
