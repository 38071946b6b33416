package cli

import (
	"fmt"
	"io"
)

// Usage prints the usage information for the gocalc command
func Usage(w io.Writer) {
	fmt.Fprintf(w, `gocalc - sequential pocket calculator

Usage: gocalc [options] [command] [arguments]

Commands:
  repl
    Interactive calculator (default). Each input line is a list of keys;
    the display is printed after every line.

  eval <keys...>
    Press the given keys on a fresh calculator and print the final display

  run <tape>
    Replay a tape file and print the display after every key

  watch <tape>
    Replay a tape file every time it changes, until interrupted

  keys
    List the key bindings

  help [command]
    Show help for a command

  version
    Show version information

Keys:
  0-9 .            digits and decimal point (numbers like 12.5 may be typed whole)
  + - * x /        binary operators
  = enter          evaluate
  i s r            reciprocal, square, square root
  backspace        delete last character
  delete ce        clear entry
  c escape         clear all

Options:
  -json            Output results in JSON format
  -verbose         Show every key and the session state
  -color <mode>    auto, always or never
  -version         Show version information

Environment:
  GOCALC_LOG_LEVEL       debug, info, warn (default) or error
  GOCALC_COLOR           auto (default), always or never
  GOCALC_WATCH_DEBOUNCE  delay before replaying a changed tape (default 200ms)

Examples:
  gocalc eval 3 + 4 + 5 =
  gocalc eval 1 / 3 =
  gocalc -json run examples/chain.tape
  echo "9 - 16 = r" | gocalc
`)
}
