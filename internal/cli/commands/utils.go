package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mamaar/gocalc/internal/cli"
	"github.com/mamaar/gocalc/pkg/calculator"
	"github.com/mamaar/gocalc/pkg/tape"
	"github.com/mamaar/gocalc/pkg/types"
)

// StepOutput is the JSON form of one replayed key
type StepOutput struct {
	Key      string        `json:"key"`
	Line     int           `json:"line,omitempty"`
	Accepted bool          `json:"accepted"`
	Display  types.Display `json:"display"`
}

// OutputJSON writes data as indented JSON
func OutputJSON(w io.Writer, data any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}

// ToStepOutputs converts replayed steps for JSON output
func ToStepOutputs(steps []tape.Step) []StepOutput {
	out := make([]StepOutput, 0, len(steps))
	for _, s := range steps {
		out = append(out, StepOutput{
			Key:      s.Key.Name,
			Line:     s.Key.Line,
			Accepted: s.Accepted,
			Display:  s.Display,
		})
	}
	return out
}

// PressKeys parses a line of keys and presses them on engine
func PressKeys(engine calculator.Engine, line string) ([]tape.Step, error) {
	t, err := tape.Parse(strings.NewReader(line))
	if err != nil {
		return nil, err
	}
	return tape.Run(engine, t), nil
}

// PrintSteps writes one rendered display per step to w
func PrintSteps(w io.Writer, app *cli.App, steps []tape.Step) {
	color := app.ColorEnabled()
	for _, s := range steps {
		marker := " "
		if !s.Accepted {
			marker = "!"
		}
		fmt.Fprintf(w, "%s %-10s %s\n", marker, s.Key.Name, cli.RenderDisplay(s.Display, color))
	}
}

// traceOut is where -verbose output goes. With -json, stdout holds only JSON.
func traceOut(app *cli.App) io.Writer {
	if app.JSON() {
		return app.Err
	}
	return app.Out
}
