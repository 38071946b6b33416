package watch

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/spf13/afero"

	"github.com/mamaar/gocalc/pkg/calculator"
	"github.com/mamaar/gocalc/pkg/tape"
)

// Replay is the outcome of one re-run of a tape.
type Replay struct {
	Path  string
	Steps []tape.Step
	Err   error
}

// Replayer re-runs one tape on a fresh engine whenever a batch touches it.
type Replayer struct {
	fs        afero.Fs
	path      string
	newEngine func() calculator.Engine
	report    func(Replay)
	logger    *slog.Logger
	runs      int
}

// NewReplayer creates a Replayer for the tape at path. report is called
// once per replay, from the goroutine that calls HandleChanges.
func NewReplayer(fs afero.Fs, path string, newEngine func() calculator.Engine, report func(Replay), logger *slog.Logger) *Replayer {
	return &Replayer{
		fs:        fs,
		path:      filepath.Clean(path),
		newEngine: newEngine,
		report:    report,
		logger:    logger,
	}
}

// Replay runs the tape once, regardless of any change.
func (r *Replayer) Replay() Replay {
	start := time.Now()
	r.runs++

	result := Replay{Path: r.path}
	t, err := tape.Load(r.fs, r.path)
	if err != nil {
		result.Err = err
	} else {
		result.Steps = tape.Run(r.newEngine(), t)
	}

	r.logger.Info("tape replayed",
		"path", r.path,
		"keys", len(result.Steps),
		"err", result.Err,
		"elapsed", time.Since(start),
	)
	r.report(result)
	return result
}

// HandleChanges replays the tape if any event in the batch concerns it.
// A removed tape is reported as an error and not replayed.
func (r *Replayer) HandleChanges(events []ChangeEvent) {
	for _, ev := range events {
		if filepath.Clean(ev.Path) != r.path {
			continue
		}
		if ev.Removed() {
			if exists, _ := afero.Exists(r.fs, r.path); !exists {
				r.runs++
				r.report(Replay{Path: r.path, Err: fmt.Errorf("%s: tape removed", r.path)})
				return
			}
		}
		r.Replay()
		return
	}
}

// Runs counts how many times the tape has been replayed or reported.
func (r *Replayer) Runs() int {
	return r.runs
}
