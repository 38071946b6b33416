package lsp

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/mamaar/gocalc/pkg/calculator"
	"github.com/mamaar/gocalc/pkg/keymap"
	"github.com/mamaar/gocalc/pkg/style"
	"github.com/mamaar/gocalc/pkg/tape"
)

const diagnosticSource = "gocalc"

func (s *Server) handleTextDocumentDidOpen(message *Message) (*Message, error) {
	var params DidOpenTextDocumentParams
	if err := json.Unmarshal(message.Params, &params); err != nil {
		return nil, err
	}

	doc := params.TextDocument
	s.mu.Lock()
	s.docs[doc.URI] = document{version: doc.Version, text: doc.Text}
	s.mu.Unlock()

	s.logger.Debug("document opened", "uri", doc.URI)
	return s.publishDiagnostics(doc.URI, doc.Version, doc.Text)
}

func (s *Server) handleTextDocumentDidChange(message *Message) (*Message, error) {
	var params DidChangeTextDocumentParams
	if err := json.Unmarshal(message.Params, &params); err != nil {
		return nil, err
	}
	if len(params.ContentChanges) == 0 {
		return nil, nil
	}

	uri := params.TextDocument.URI
	text := params.ContentChanges[len(params.ContentChanges)-1].Text
	s.mu.Lock()
	s.docs[uri] = document{version: params.TextDocument.Version, text: text}
	s.mu.Unlock()

	return s.publishDiagnostics(uri, params.TextDocument.Version, text)
}

func (s *Server) handleTextDocumentDidClose(message *Message) (*Message, error) {
	var params DidCloseTextDocumentParams
	if err := json.Unmarshal(message.Params, &params); err != nil {
		return nil, err
	}

	s.mu.Lock()
	delete(s.docs, params.TextDocument.URI)
	s.mu.Unlock()

	// Clear the client's diagnostics for the closed document.
	return notification("textDocument/publishDiagnostics", PublishDiagnosticsParams{
		URI:         params.TextDocument.URI,
		Diagnostics: []Diagnostic{},
	})
}

// handleTextDocumentHover shows the display as it reads after the key under
// the cursor, replaying the document from the top.
func (s *Server) handleTextDocumentHover(message *Message) (*Message, error) {
	var params TextDocumentPositionParams
	if err := json.Unmarshal(message.Params, &params); err != nil {
		return s.errorResponse(message.ID, CodeInvalidParams, "Invalid params", err.Error())
	}

	s.mu.Lock()
	doc, ok := s.docs[params.TextDocument.URI]
	s.mu.Unlock()
	if !ok {
		return s.successResponse(message.ID, nil)
	}

	tokens, err := tape.Scan(strings.NewReader(doc.text))
	if err != nil {
		return s.successResponse(message.ID, nil)
	}

	target := -1
	for i, tok := range tokens {
		if tok.Line-1 == params.Position.Line && tok.Col <= params.Position.Character && params.Position.Character <= tok.End() {
			target = i
			break
		}
	}
	if target < 0 || tokens[target].Keys() == nil {
		return s.successResponse(message.ID, nil)
	}

	engine := s.newEngine()
	for _, tok := range tokens[:target+1] {
		for _, k := range tok.Keys() {
			keymap.Press(engine, k)
		}
	}

	tok := tokens[target]
	d := engine.Display()
	hover := &Hover{
		Contents: MarkupContent{
			Kind: MarkupKindMarkdown,
			Value: fmt.Sprintf("**%s** %s\n\n```\n%s\n```",
				tok.Text, describeToken(tok), style.Render(d, calculator.DefaultDisplayWidth, false)),
		},
		Range: &Range{
			Start: Position{Line: tok.Line - 1, Character: tok.Col},
			End:   Position{Line: tok.Line - 1, Character: tok.End()},
		},
	}
	return s.successResponse(message.ID, hover)
}

func describeToken(tok tape.Token) string {
	if a, ok := keymap.Lookup(tok.Text); ok {
		return a.String()
	}
	return "number"
}

// handleTextDocumentCompletion offers every key name.
func (s *Server) handleTextDocumentCompletion(message *Message) (*Message, error) {
	bindings := keymap.Bindings()
	items := make([]CompletionItem, 0, len(bindings))
	for _, b := range bindings {
		items = append(items, CompletionItem{
			Label:  b.Key,
			Kind:   CompletionItemKindKeyword,
			Detail: b.Action.String(),
		})
	}
	return s.successResponse(message.ID, CompletionList{Items: items})
}

func (s *Server) publishDiagnostics(uri string, version int, text string) (*Message, error) {
	return notification("textDocument/publishDiagnostics", PublishDiagnosticsParams{
		URI:         uri,
		Version:     version,
		Diagnostics: s.diagnose(text),
	})
}

// diagnose reports unknown keys as errors, keys the calculator refuses as
// warnings and the first key of every Error result as information.
func (s *Server) diagnose(text string) []Diagnostic {
	diags := []Diagnostic{}

	tokens, err := tape.Scan(strings.NewReader(text))
	if err != nil {
		return append(diags, Diagnostic{Severity: SeverityError, Source: diagnosticSource, Message: err.Error()})
	}

	t := &tape.Tape{}
	for _, tok := range tokens {
		keys := tok.Keys()
		if keys == nil {
			diags = append(diags, Diagnostic{
				Range: Range{
					Start: Position{Line: tok.Line - 1, Character: tok.Col},
					End:   Position{Line: tok.Line - 1, Character: tok.End()},
				},
				Severity: SeverityError,
				Source:   diagnosticSource,
				Message:  fmt.Sprintf("unknown key %q", tok.Text),
			})
			continue
		}
		for i, k := range keys {
			t.Keys = append(t.Keys, tape.Key{Name: k, Line: tok.Line, Col: tok.Col + i})
		}
	}

	wasError := false
	for _, step := range tape.Run(s.newEngine(), t) {
		switch {
		case !step.Accepted:
			diags = append(diags, keyDiagnostic(step.Key, SeverityWarning, "decimal point ignored"))
		case step.Display.IsError && !wasError:
			diags = append(diags, keyDiagnostic(step.Key, SeverityInformation, "invalid arithmetic: the display shows Error"))
		}
		wasError = step.Display.IsError
	}

	sort.SliceStable(diags, func(i, j int) bool {
		a, b := diags[i].Range.Start, diags[j].Range.Start
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		return a.Character < b.Character
	})
	return diags
}

func keyDiagnostic(k tape.Key, severity DiagnosticSeverity, msg string) Diagnostic {
	return Diagnostic{
		Range: Range{
			Start: Position{Line: k.Line - 1, Character: k.Col},
			End:   Position{Line: k.Line - 1, Character: k.Col + utf8.RuneCountInString(k.Name)},
		},
		Severity: severity,
		Source:   diagnosticSource,
		Message:  msg,
	}
}
