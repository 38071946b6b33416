package mcp

import (
	"context"
	"fmt"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/mamaar/gocalc/pkg/calculator"
	"github.com/mamaar/gocalc/pkg/types"
)

// SessionInput selects a calculator session. Most tools take only this.
type SessionInput struct {
	Session string `json:"session,omitempty" jsonschema:"session name; the default session when empty"`
}

// --- session_state ---

type SessionStateOutput struct {
	Session string `json:"session"`
	types.SessionState
}

// --- list_sessions ---

type ListSessionsInput struct{}

type ListSessionsOutput struct {
	Sessions []string `json:"sessions"`
}

// --- close_session ---

type CloseSessionOutput struct {
	Session string `json:"session"`
	Closed  bool   `json:"closed"`
}

func registerSessionTools(s *mcpsdk.Server, state *MCPServer) {
	mcpsdk.AddTool(s, &mcpsdk.Tool{
		Name:        "new_session",
		Description: "Start a calculator session, or reset an existing one to 0.",
	}, func(ctx context.Context, req *mcpsdk.CallToolRequest, in SessionInput) (*mcpsdk.CallToolResult, any, error) {
		name, d := state.ResetSession(in.Session)
		return textResult(DisplayResult{Session: name, Display: d}), nil, nil
	})

	mcpsdk.AddTool(s, &mcpsdk.Tool{
		Name:        "session_state",
		Description: "Return the full state of a session: entry, pending operand and operator, result flag, decimal point flag and style.",
	}, func(ctx context.Context, req *mcpsdk.CallToolRequest, in SessionInput) (*mcpsdk.CallToolResult, any, error) {
		var st types.SessionState
		name := state.WithSession(in.Session, func(e calculator.Engine) {
			st = e.State()
		})
		return textResult(SessionStateOutput{Session: name, SessionState: st}), nil, nil
	})

	mcpsdk.AddTool(s, &mcpsdk.Tool{
		Name:        "list_sessions",
		Description: "List the open calculator sessions.",
	}, func(ctx context.Context, req *mcpsdk.CallToolRequest, in ListSessionsInput) (*mcpsdk.CallToolResult, any, error) {
		return textResult(ListSessionsOutput{Sessions: state.Sessions()}), nil, nil
	})

	mcpsdk.AddTool(s, &mcpsdk.Tool{
		Name:        "close_session",
		Description: "Discard a calculator session.",
	}, func(ctx context.Context, req *mcpsdk.CallToolRequest, in SessionInput) (*mcpsdk.CallToolResult, any, error) {
		name, ok := state.CloseSession(in.Session)
		if !ok {
			return errResult(fmt.Errorf("no session %q", name)), nil, nil
		}
		return textResult(CloseSessionOutput{Session: name, Closed: true}), nil, nil
	})
}
