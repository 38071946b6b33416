package commands

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/mamaar/gocalc/internal/cli"
	"github.com/mamaar/gocalc/pkg/watch"
)

// WatchCommand replays a tape every time it changes until ctx is cancelled
func WatchCommand(ctx context.Context, app *cli.App, args []string) error {
	if len(args) != 1 {
		return errors.New("watch requires exactly one tape file")
	}

	path, err := filepath.Abs(args[0])
	if err != nil {
		return fmt.Errorf("resolving %s: %w", args[0], err)
	}

	w, err := watch.NewWatcher(filepath.Dir(path), app.Config.WatchDebounce, app.Logger, path)
	if err != nil {
		return err
	}
	defer func() { _ = w.Close() }()

	color := app.ColorEnabled()
	replayer := watch.NewReplayer(app.Fs, path, app.NewEngine, func(r watch.Replay) {
		printReplay(app, r, color)
	}, app.Logger)
	replayer.Replay()

	batches := make(chan []watch.ChangeEvent, 8)
	runErr := make(chan error, 1)
	go func() { runErr <- w.Run(ctx, batches) }()

	for {
		select {
		case batch := <-batches:
			replayer.HandleChanges(batch)
		case err := <-runErr:
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil
			}
			return err
		}
	}
}

func printReplay(app *cli.App, r watch.Replay, color bool) {
	if app.JSON() {
		out := struct {
			Path  string       `json:"path"`
			Steps []StepOutput `json:"steps"`
			Error string       `json:"error,omitempty"`
		}{Path: r.Path, Steps: ToStepOutputs(r.Steps)}
		if r.Err != nil {
			out.Error = r.Err.Error()
		}
		_ = OutputJSON(app.Out, out)
		return
	}

	if r.Err != nil {
		fmt.Fprintf(app.Err, "error: %v\n", r.Err)
		return
	}
	if len(r.Steps) == 0 {
		fmt.Fprintf(app.Out, "%s: empty tape\n", r.Path)
		return
	}
	last := r.Steps[len(r.Steps)-1].Display
	fmt.Fprintf(app.Out, "%s: %s\n", r.Path, cli.RenderDisplay(last, color))
}
