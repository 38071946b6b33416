package commands

import (
	"context"
	"fmt"

	"github.com/mamaar/gocalc/internal/cli"
	"github.com/mamaar/gocalc/pkg/keymap"
)

type bindingOutput struct {
	Key    string `json:"key"`
	Action string `json:"action"`
}

// KeysCommand lists the key bindings
func KeysCommand(_ context.Context, app *cli.App, _ []string) error {
	bindings := keymap.Bindings()

	if app.JSON() {
		out := make([]bindingOutput, 0, len(bindings))
		for _, b := range bindings {
			out = append(out, bindingOutput{Key: b.Key, Action: b.Action.String()})
		}
		return OutputJSON(app.Out, out)
	}

	for _, b := range bindings {
		fmt.Fprintf(app.Out, "%-10s %s\n", b.Key, b.Action)
	}
	return nil
}
