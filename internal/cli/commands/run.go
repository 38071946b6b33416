package commands

import (
	"context"
	"errors"

	"github.com/mamaar/gocalc/internal/cli"
	"github.com/mamaar/gocalc/pkg/tape"
)

// RunCommand replays a tape file and prints the display after every key
func RunCommand(_ context.Context, app *cli.App, args []string) error {
	if len(args) != 1 {
		return errors.New("run requires exactly one tape file")
	}

	t, err := tape.Load(app.Fs, args[0])
	if err != nil {
		return err
	}

	engine := app.NewEngine()
	steps := tape.Run(engine, t)
	app.Logger.Debug("tape finished", "path", t.Path, "keys", len(steps))

	if app.JSON() {
		return OutputJSON(app.Out, ToStepOutputs(steps))
	}
	PrintSteps(app.Out, app, steps)
	return nil
}
