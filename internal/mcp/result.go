package mcp

import (
	"encoding/json"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/mamaar/gocalc/pkg/tape"
	"github.com/mamaar/gocalc/pkg/types"
)

// DisplayResult is the structured output returned by every calculator tool.
type DisplayResult struct {
	Session string `json:"session"`
	types.Display
}

// StepResult is one key of a press_keys or tape replay.
type StepResult struct {
	Key      string        `json:"key"`
	Accepted bool          `json:"accepted"`
	Display  types.Display `json:"display"`
}

func toStepResults(steps []tape.Step) []StepResult {
	out := make([]StepResult, 0, len(steps))
	for _, s := range steps {
		out = append(out, StepResult{Key: s.Key.Name, Accepted: s.Accepted, Display: s.Display})
	}
	return out
}

// textResult is a convenience that marshals v to JSON and wraps it in a
// CallToolResult with a single TextContent block.
func textResult(v any) *mcpsdk.CallToolResult {
	b, _ := json.MarshalIndent(v, "", "  ")
	return &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{
			&mcpsdk.TextContent{Text: string(b)},
		},
	}
}

// errResult returns a CallToolResult that signals an error.
func errResult(err error) *mcpsdk.CallToolResult {
	return &mcpsdk.CallToolResult{
		IsError: true,
		Content: []mcpsdk.Content{
			&mcpsdk.TextContent{Text: err.Error()},
		},
	}
}
