package commands

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/davecgh/go-spew/spew"

	"github.com/mamaar/gocalc/internal/cli"
)

// ReplCommand reads lines of keys from the app input and prints the display
// after each line. "quit" or "exit" on a line of its own ends the session.
func ReplCommand(ctx context.Context, app *cli.App, _ []string) error {
	engine := app.NewEngine()
	color := app.ColorEnabled()

	if !app.JSON() {
		fmt.Fprintln(app.Out, cli.RenderDisplay(engine.Display(), color))
	}

	scanner := bufio.NewScanner(app.In)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return nil
		}

		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "":
			continue
		case "quit", "exit":
			return nil
		}

		steps, err := PressKeys(engine, line)
		if err != nil {
			fmt.Fprintf(app.Err, "error: %v\n", err)
			continue
		}

		if app.Verbose() {
			PrintSteps(traceOut(app), app, steps)
			fmt.Fprint(app.Err, spew.Sdump(engine.State()))
		}

		display := engine.Display()
		if app.JSON() {
			if err := OutputJSON(app.Out, display); err != nil {
				return err
			}
			continue
		}
		fmt.Fprintln(app.Out, cli.RenderDisplay(display, color))
	}
	return scanner.Err()
}
