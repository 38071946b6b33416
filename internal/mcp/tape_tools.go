package mcp

import (
	"context"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/mamaar/gocalc/pkg/watch"
)

// --- watch_tape ---

type WatchTapeInput struct {
	Path    string `json:"path" jsonschema:"path to a tape file of keys"`
	Session string `json:"session,omitempty" jsonschema:"session that receives the replay; the default session when empty"`
}

type TapeReplayOutput struct {
	Path    string       `json:"path"`
	Session string       `json:"session"`
	Steps   []StepResult `json:"steps"`
	Error   string       `json:"error,omitempty"`
}

// --- tape_status ---

type TapeStatusInput struct{}

type TapeStatusOutput struct {
	Watching bool              `json:"watching"`
	Session  string            `json:"session,omitempty"`
	Runs     int               `json:"runs"`
	Last     *TapeReplayOutput `json:"last,omitempty"`
}

type StopWatchInput struct{}

func replayOutput(r watch.Replay, session string) *TapeReplayOutput {
	out := &TapeReplayOutput{Path: r.Path, Session: session, Steps: toStepResults(r.Steps)}
	if r.Err != nil {
		out.Error = r.Err.Error()
	}
	return out
}

func registerTapeTools(s *mcpsdk.Server, state *MCPServer) {
	mcpsdk.AddTool(s, &mcpsdk.Tool{
		Name:        "watch_tape",
		Description: "Replay a tape file into a fresh session, then replay it again every time the file changes. Replaces any tape already watched.",
	}, func(ctx context.Context, req *mcpsdk.CallToolRequest, in WatchTapeInput) (*mcpsdk.CallToolResult, any, error) {
		r, err := state.WatchTape(in.Path, in.Session)
		if err != nil {
			return errResult(err), nil, nil
		}
		return textResult(replayOutput(r, state.WatchStatus().Session)), nil, nil
	})

	mcpsdk.AddTool(s, &mcpsdk.Tool{
		Name:        "tape_status",
		Description: "Report the watched tape, how often it has been replayed and the latest replay.",
	}, func(ctx context.Context, req *mcpsdk.CallToolRequest, in TapeStatusInput) (*mcpsdk.CallToolResult, any, error) {
		st := state.WatchStatus()
		out := TapeStatusOutput{Watching: st.Watching, Session: st.Session, Runs: st.Runs}
		if st.Last != nil {
			out.Last = replayOutput(*st.Last, st.Session)
		}
		return textResult(out), nil, nil
	})

	mcpsdk.AddTool(s, &mcpsdk.Tool{
		Name:        "stop_watch",
		Description: "Stop watching the current tape. The session keeps its last replayed state.",
	}, func(ctx context.Context, req *mcpsdk.CallToolRequest, in StopWatchInput) (*mcpsdk.CallToolResult, any, error) {
		state.StopWatch()
		return textResult(TapeStatusOutput{}), nil, nil
	})
}
