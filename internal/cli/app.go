package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/afero"

	"github.com/mamaar/gocalc/internal/config"
	"github.com/mamaar/gocalc/pkg/calculator"
)

// DefaultCommand runs when no command is given
const DefaultCommand = "repl"

// App represents the gocalc application
type App struct {
	Flags  *Flags
	Config config.Config
	Logger *slog.Logger
	Fs     afero.Fs

	In  io.Reader
	Out io.Writer
	Err io.Writer

	flagSet *flag.FlagSet
}

// NewApp creates a new application instance wired to the process streams
func NewApp(cfg config.Config, logger *slog.Logger) *App {
	return &App{
		Config: cfg,
		Logger: logger,
		Fs:     afero.NewOsFs(),
		In:     os.Stdin,
		Out:    os.Stdout,
		Err:    os.Stderr,
	}
}

// Initialize parses the global flags from args
func (app *App) Initialize(args []string) error {
	app.flagSet = flag.NewFlagSet("gocalc", flag.ContinueOnError)
	app.flagSet.SetOutput(app.Err)
	app.flagSet.Usage = func() { Usage(app.Err) }
	app.Flags = InitFlags(app.flagSet)

	if err := app.flagSet.Parse(args); err != nil {
		return err
	}
	if c := *app.Flags.Color; c != "" {
		app.Config.Color = c
		if err := app.Config.Validate(); err != nil {
			return fmt.Errorf("-color: %w", err)
		}
	}
	return nil
}

// Run executes the application logic with the provided runner
func (app *App) Run(ctx context.Context, runner *Runner) error {
	if *app.Flags.Version {
		ShowVersion(app.Out)
		return nil
	}

	args := app.flagSet.Args()
	if len(args) < 1 {
		return runner.Execute(ctx, app, DefaultCommand, nil)
	}
	return runner.Execute(ctx, app, args[0], args[1:])
}

// NewEngine creates a calculator engine that logs through the app logger
func (app *App) NewEngine() calculator.Engine {
	return calculator.CreateEngine(app.Logger)
}

// ColorEnabled reports whether displays should be painted
func (app *App) ColorEnabled() bool {
	switch app.Config.Color {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	f, ok := app.Out.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// JSON reports whether -json was given
func (app *App) JSON() bool {
	return app.Flags != nil && *app.Flags.Json
}

// Verbose reports whether -verbose was given
func (app *App) Verbose() bool {
	return app.Flags != nil && *app.Flags.Verbose
}
