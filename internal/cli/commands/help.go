package commands

import (
	"context"
	"fmt"

	"github.com/mamaar/gocalc/internal/cli"
)

// HelpCommand handles help requests for specific commands
func HelpCommand(_ context.Context, app *cli.App, args []string) error {
	if len(args) == 0 {
		cli.Usage(app.Out)
		return nil
	}

	switch args[0] {
	case "repl":
		fmt.Fprintln(app.Out, `Repl Command - Interactive calculator

Usage: gocalc [repl]

Reads keys from standard input, one line at a time, and prints the display
after every line. A line may hold any number of keys separated by spaces.
Numbers may be typed whole ("12.5") and are pressed one character at a time.
The session keeps its state between lines; "quit" or "exit" ends it.

With -verbose every key is echoed and the session state is dumped to
standard error after each line. Under -json the key echo also goes to
standard error, leaving standard output pure JSON.

Examples:
  echo "3 + 4 + 5 =" | gocalc
  gocalc -json repl < keys.txt`)

	case "eval":
		fmt.Fprintln(app.Out, `Eval Command - Press keys and print the result

Usage: gocalc eval <keys...>

Arguments:
  keys   The keys to press on a fresh calculator

Examples:
  gocalc eval 1 / 3 =
  gocalc eval 9 r
  gocalc -json eval 5 / 0 =`)

	case "run":
		fmt.Fprintln(app.Out, `Run Command - Replay a tape file

Usage: gocalc run <tape>

Arguments:
  tape   A text file of keys. '#' starts a comment.

Prints every key with the display it produced. Keys the calculator refused
(a second decimal point, for example) are marked with '!'.

Examples:
  gocalc run examples/chain.tape
  gocalc -json run examples/chain.tape`)

	case "watch":
		fmt.Fprintln(app.Out, `Watch Command - Replay a tape file whenever it changes

Usage: gocalc watch <tape>

Arguments:
  tape   A text file of keys

The tape is replayed on a fresh calculator at start and after every change.
Changes are debounced by GOCALC_WATCH_DEBOUNCE. Stop with Ctrl-C.

Examples:
  gocalc watch scratch.tape`)

	case "keys":
		fmt.Fprintln(app.Out, `Keys Command - List key bindings

Usage: gocalc keys

Lists every key name the calculator understands and the action it performs.`)

	case "version":
		return VersionCommand(context.Background(), app, []string{"help"})

	default:
		return fmt.Errorf("unknown command: %s", args[0])
	}
	return nil
}
