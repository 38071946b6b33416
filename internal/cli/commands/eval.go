package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mamaar/gocalc/internal/cli"
)

// EvalCommand presses the given keys on a fresh calculator and prints the
// final display
func EvalCommand(_ context.Context, app *cli.App, args []string) error {
	if len(args) == 0 {
		return errors.New("eval requires at least one key")
	}

	engine := app.NewEngine()
	steps, err := PressKeys(engine, strings.Join(args, " "))
	if err != nil {
		return err
	}

	if app.Verbose() {
		PrintSteps(traceOut(app), app, steps)
	}

	display := engine.Display()
	if app.JSON() {
		return OutputJSON(app.Out, display)
	}
	fmt.Fprintln(app.Out, cli.RenderDisplay(display, app.ColorEnabled()))
	return nil
}
