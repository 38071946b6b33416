// Package lsp is a language server for tape files: it reports unknown and
// ignored keys as diagnostics, shows the calculator display for the key
// under the cursor on hover, and completes key names.
package lsp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/mamaar/gocalc/pkg/calculator"
)

const serverName = "gocalc-lsp"

// errExit ends the message loop after an exit notification.
var errExit = errors.New("exit")

type document struct {
	version int
	text    string
}

// Server represents the LSP server
type Server struct {
	mu           sync.Mutex
	docs         map[string]document
	shutdown     bool
	version      string
	logger       *slog.Logger
	newEngine    func() calculator.Engine
	capabilities ServerCapabilities
}

// NewServer creates a new LSP server instance
func NewServer(version string, logger *slog.Logger) *Server {
	return &Server{
		docs:    make(map[string]document),
		version: version,
		logger:  logger,
		newEngine: func() calculator.Engine {
			return calculator.CreateEngine(logger)
		},
		capabilities: ServerCapabilities{
			HoverProvider:      true,
			CompletionProvider: &CompletionOptions{},
			TextDocumentSync: &TextDocumentSyncOptions{
				OpenClose: true,
				Change:    TextDocumentSyncKindFull,
			},
		},
	}
}

// ServeStdio serves the LSP over stdio
func (s *Server) ServeStdio(ctx context.Context) error {
	s.logger.Info("starting LSP server on stdio")
	return s.Serve(ctx, os.Stdin, os.Stdout)
}

// Serve handles the LSP protocol over the given reader/writer until the
// client sends exit, closes the stream or ctx is cancelled.
func (s *Server) Serve(ctx context.Context, reader io.Reader, writer io.Writer) error {
	connection := NewConnection(reader, writer, s.logger)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		message, err := connection.ReadMessage()
		if err != nil {
			if errors.Is(err, io.EOF) {
				s.logger.Debug("connection closed")
				return nil
			}
			return fmt.Errorf("failed to read message: %w", err)
		}

		out, err := s.handleMessage(message)
		if errors.Is(err, errExit) {
			return nil
		}
		if err != nil {
			s.logger.Warn("error handling message", "method", message.Method, "err", err)
			continue
		}

		for _, m := range out {
			if err := connection.WriteMessage(m); err != nil {
				return fmt.Errorf("failed to write response: %w", err)
			}
		}
	}
}

// handleMessage processes an LSP message and returns the messages to send
// back: a response for requests, diagnostics for document changes.
func (s *Server) handleMessage(message *Message) ([]*Message, error) {
	switch message.Method {
	case "initialize":
		return one(s.handleInitialize(message))
	case "initialized":
		return nil, nil
	case "shutdown":
		return one(s.handleShutdown(message))
	case "exit":
		return nil, errExit
	case "textDocument/didOpen":
		return one(s.handleTextDocumentDidOpen(message))
	case "textDocument/didChange":
		return one(s.handleTextDocumentDidChange(message))
	case "textDocument/didClose":
		return one(s.handleTextDocumentDidClose(message))
	case "textDocument/hover":
		return one(s.handleTextDocumentHover(message))
	case "textDocument/completion":
		return one(s.handleTextDocumentCompletion(message))
	default:
		if message.ID == nil {
			return nil, nil
		}
		return one(s.errorResponse(message.ID, CodeMethodNotFound, "method not found: "+message.Method, nil))
	}
}

func one(m *Message, err error) ([]*Message, error) {
	if err != nil || m == nil {
		return nil, err
	}
	return []*Message{m}, nil
}

func (s *Server) handleInitialize(message *Message) (*Message, error) {
	var params InitializeParams
	if err := json.Unmarshal(message.Params, &params); err != nil {
		return s.errorResponse(message.ID, CodeInvalidParams, "Invalid params", err.Error())
	}

	client := ""
	if params.ClientInfo != nil {
		client = params.ClientInfo.Name
	}
	s.logger.Info("lsp initialize", "client", client, "root", params.RootURI)

	result := InitializeResult{
		Capabilities: s.capabilities,
		ServerInfo: &ServerInfo{
			Name:    serverName,
			Version: s.version,
		},
	}
	return s.successResponse(message.ID, result)
}

func (s *Server) handleShutdown(message *Message) (*Message, error) {
	s.mu.Lock()
	s.shutdown = true
	s.docs = make(map[string]document)
	s.mu.Unlock()

	return s.successResponse(message.ID, nil)
}

func (s *Server) successResponse(id interface{}, result interface{}) (*Message, error) {
	response := &Message{
		JSONRPC: "2.0",
		ID:      id,
		Result:  result,
	}
	return response, nil
}

func (s *Server) errorResponse(id interface{}, code int, message string, data interface{}) (*Message, error) {
	response := &Message{
		JSONRPC: "2.0",
		ID:      id,
		Error: &ResponseError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
	return response, nil
}

func notification(method string, params interface{}) (*Message, error) {
	raw, err := json.Marshal(params)
	if err != nil {
		return nil, err
	}
	return &Message{JSONRPC: "2.0", Method: method, Params: raw}, nil
}
