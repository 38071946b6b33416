package mcp

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/mamaar/gocalc/pkg/calculator"
	"github.com/mamaar/gocalc/pkg/tape"
	"github.com/mamaar/gocalc/pkg/types"
)

// --- input_digit ---

type InputDigitInput struct {
	Session string `json:"session,omitempty" jsonschema:"session name; the default session when empty"`
	Digit   string `json:"digit" jsonschema:"a single digit 0-9"`
}

// --- press_keys ---

type PressKeysInput struct {
	Session string `json:"session,omitempty" jsonschema:"session name; the default session when empty"`
	Keys    string `json:"keys" jsonschema:"whitespace separated keys, e.g. '12.5 x 2 =' or '9 r'"`
}

type PressKeysOutput struct {
	Session string       `json:"session"`
	Steps   []StepResult `json:"steps"`
	types.Display
}

// displayTool registers a tool that applies one engine action and returns
// the display.
func displayTool(s *mcpsdk.Server, state *MCPServer, name, description string, act func(calculator.Engine) types.Display) {
	mcpsdk.AddTool(s, &mcpsdk.Tool{
		Name:        name,
		Description: description,
	}, func(ctx context.Context, req *mcpsdk.CallToolRequest, in SessionInput) (*mcpsdk.CallToolResult, any, error) {
		var d types.Display
		session := state.WithSession(in.Session, func(e calculator.Engine) {
			d = act(e)
		})
		return textResult(DisplayResult{Session: session, Display: d}), nil, nil
	})
}

func registerInputTools(s *mcpsdk.Server, state *MCPServer) {
	mcpsdk.AddTool(s, &mcpsdk.Tool{
		Name:        "input_digit",
		Description: "Type one digit. Leading zeros are collapsed and entries stop growing at 12 characters.",
	}, func(ctx context.Context, req *mcpsdk.CallToolRequest, in InputDigitInput) (*mcpsdk.CallToolResult, any, error) {
		r, size := utf8.DecodeRuneInString(in.Digit)
		if size == 0 || size != len(in.Digit) || r < '0' || r > '9' {
			return errResult(fmt.Errorf("digit must be a single character 0-9, got %q", in.Digit)), nil, nil
		}
		var d types.Display
		session := state.WithSession(in.Session, func(e calculator.Engine) {
			d = e.InputDigit(r)
		})
		return textResult(DisplayResult{Session: session, Display: d}), nil, nil
	})

	displayTool(s, state, "input_point",
		"Type a decimal point. Ignored if the entry already has one.",
		calculator.Engine.InputPoint)
	displayTool(s, state, "backspace",
		"Delete the last typed character. After a result or an error the entry resets to 0.",
		calculator.Engine.Backspace)
	displayTool(s, state, "clear_entry",
		"Reset the entry to 0, keeping any pending operation.",
		calculator.Engine.ClearEntry)
	displayTool(s, state, "clear_all",
		"Reset the session: entry 0 and no pending operation.",
		calculator.Engine.ClearAll)

	mcpsdk.AddTool(s, &mcpsdk.Tool{
		Name:        "press_keys",
		Description: "Press a sequence of keyboard keys: digits, '.', + - * x /, = or enter, i (1/x), s (x²), r (√), backspace, delete, escape. Numbers like 12.5 may be given whole.",
	}, func(ctx context.Context, req *mcpsdk.CallToolRequest, in PressKeysInput) (*mcpsdk.CallToolResult, any, error) {
		if strings.TrimSpace(in.Keys) == "" {
			return errResult(fmt.Errorf("keys must not be empty")), nil, nil
		}
		t, err := tape.Parse(strings.NewReader(in.Keys))
		if err != nil {
			return errResult(err), nil, nil
		}

		out := PressKeysOutput{}
		out.Session = state.WithSession(in.Session, func(e calculator.Engine) {
			out.Steps = toStepResults(tape.Run(e, t))
			out.Display = e.Display()
		})
		return textResult(out), nil, nil
	})
}
