package commands

import (
	"context"
	"fmt"

	"github.com/mamaar/gocalc/internal/cli"
)

// VersionCommand handles the version command
func VersionCommand(_ context.Context, app *cli.App, args []string) error {
	if len(args) > 0 {
		fmt.Fprintln(app.Out, `Version Command - Show application version

Usage: gocalc version

Shows the current version of gocalc.`)
		return nil
	}

	cli.ShowVersion(app.Out)
	return nil
}
