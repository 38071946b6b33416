// Package keymap translates key names into calculator actions.
//
// Keys follow the browser key names the calculator was first driven by
// ("Enter", "Backspace", "Delete", "Escape") plus single characters. Lookups
// are case-insensitive.
package keymap

import (
	"sort"
	"strings"

	"github.com/mamaar/gocalc/pkg/calculator"
	"github.com/mamaar/gocalc/pkg/types"
)

// Binding describes one key for help output.
type Binding struct {
	Key    string
	Action types.Action
}

var table = map[string]types.Action{
	".":         types.PointAction(),
	"+":         types.OperatorAction(types.Add),
	"-":         types.OperatorAction(types.Subtract),
	"*":         types.OperatorAction(types.Multiply),
	"x":         types.OperatorAction(types.Multiply),
	"×":         types.OperatorAction(types.Multiply),
	"/":         types.OperatorAction(types.Divide),
	"÷":         types.OperatorAction(types.Divide),
	"enter":     types.EqualsAction(),
	"=":         types.EqualsAction(),
	"backspace": types.BackspaceAction(),
	"c":         types.ClearAllAction(),
	"escape":    types.ClearAllAction(),
	"delete":    types.ClearEntryAction(),
	"ce":        types.ClearEntryAction(),
	"i":         types.UnaryAction(types.Reciprocal),
	"1/x":       types.UnaryAction(types.Reciprocal),
	"s":         types.UnaryAction(types.Square),
	"x²":        types.UnaryAction(types.Square),
	"r":         types.UnaryAction(types.SquareRoot),
	"√":         types.UnaryAction(types.SquareRoot),
}

func init() {
	for d := '0'; d <= '9'; d++ {
		table[string(d)] = types.DigitAction(d)
	}
}

// Lookup returns the action bound to key.
func Lookup(key string) (types.Action, bool) {
	a, ok := table[strings.ToLower(key)]
	return a, ok
}

// Translate is Lookup for keyboard input: the decimal point key is dropped
// while pointAllowed is false.
func Translate(key string, pointAllowed bool) (types.Action, bool) {
	a, ok := Lookup(key)
	if !ok {
		return types.Action{}, false
	}
	if a.Kind == types.ActionPoint && !pointAllowed {
		return types.Action{}, false
	}
	return a, true
}

// Press translates key against the engine's current point state and applies
// it. The second result is false when the key is unknown or blocked.
func Press(engine calculator.Engine, key string) (types.Display, bool) {
	a, ok := Translate(key, engine.Display().PointAllowed)
	if !ok {
		return engine.Display(), false
	}
	return engine.Apply(a), true
}

// Expand splits a number literal such as "12.5" into its single-character
// keys. It returns nil if token is not made only of digits and points.
func Expand(token string) []string {
	if token == "" {
		return nil
	}
	keys := make([]string, 0, len(token))
	for _, r := range token {
		if (r < '0' || r > '9') && r != '.' {
			return nil
		}
		keys = append(keys, string(r))
	}
	return keys
}

// Bindings lists every key, sorted by key name.
func Bindings() []Binding {
	out := make([]Binding, 0, len(table))
	for k, a := range table {
		out = append(out, Binding{Key: k, Action: a})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}
