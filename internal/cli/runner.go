package cli

import (
	"context"
	"fmt"
	"sort"
)

// CommandFunc represents a command function signature
type CommandFunc func(ctx context.Context, app *App, args []string) error

// Runner handles command routing and execution
type Runner struct {
	commands map[string]CommandFunc
}

// NewRunner creates a new command runner
func NewRunner() *Runner {
	return &Runner{
		commands: make(map[string]CommandFunc),
	}
}

// RegisterCommand registers a command handler
func (r *Runner) RegisterCommand(name string, fn CommandFunc) {
	r.commands[name] = fn
}

// Execute runs the specified command with arguments
func (r *Runner) Execute(ctx context.Context, app *App, command string, args []string) error {
	fn, ok := r.commands[command]
	if !ok {
		Usage(app.Err)
		return fmt.Errorf("unknown command: %s", command)
	}
	return fn(ctx, app, args)
}

// Commands returns the registered command names in order
func (r *Runner) Commands() []string {
	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
