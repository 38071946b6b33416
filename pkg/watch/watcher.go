package watch

import (
	"context"
	"log/slog"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// TapeSuffix is the extension of files the watcher reports.
const TapeSuffix = ".tape"

// ChangeEvent is one tape touched during a debounce window. Op is the union
// of every fsnotify op seen for Path in that window.
type ChangeEvent struct {
	Path string
	Op   fsnotify.Op
}

// Removed reports whether the tape was deleted or renamed away.
func (e ChangeEvent) Removed() bool {
	return e.Op&(fsnotify.Remove|fsnotify.Rename) != 0
}

// Watcher reports debounced changes to the tapes in one directory. The
// directory is watched rather than the files so that editors which save by
// renaming a temp file over the tape are still seen.
type Watcher struct {
	dir      string
	only     map[string]bool
	debounce time.Duration
	logger   *slog.Logger
	fsw      *fsnotify.Watcher
}

// NewWatcher watches dir. When tapes are given, only those paths are
// reported; otherwise every *.tape file in dir is.
func NewWatcher(dir string, debounce time.Duration, logger *slog.Logger, tapes ...string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(dir); err != nil {
		_ = fsw.Close()
		return nil, err
	}

	w := &Watcher{
		dir:      filepath.Clean(dir),
		debounce: debounce,
		logger:   logger,
		fsw:      fsw,
	}
	if len(tapes) > 0 {
		w.only = make(map[string]bool, len(tapes))
		for _, t := range tapes {
			w.only[filepath.Clean(t)] = true
		}
	}
	return w, nil
}

// Run forwards batches of tape changes to out, one batch per quiet period
// of length debounce. It returns ctx.Err() on cancellation and nil once the
// watcher is closed.
func (w *Watcher) Run(ctx context.Context, out chan<- []ChangeEvent) error {
	pending := make(map[string]fsnotify.Op)
	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if !w.wants(ev) {
				continue
			}
			pending[filepath.Clean(ev.Name)] |= ev.Op
			timer.Reset(w.debounce)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("watch error", "dir", w.dir, "err", err)

		case <-timer.C:
			if len(pending) == 0 {
				continue
			}
			batch := drain(pending)
			w.logger.Debug("tapes changed", "dir", w.dir, "tapes", len(batch))
			select {
			case out <- batch:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
}

// Close stops the watcher; a running Run returns nil.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}

func (w *Watcher) wants(ev fsnotify.Event) bool {
	if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
		return false
	}
	if w.only != nil {
		return w.only[filepath.Clean(ev.Name)]
	}
	return strings.HasSuffix(ev.Name, TapeSuffix)
}

// drain empties pending into a batch sorted by path.
func drain(pending map[string]fsnotify.Op) []ChangeEvent {
	batch := make([]ChangeEvent, 0, len(pending))
	for p, op := range pending {
		batch = append(batch, ChangeEvent{Path: p, Op: op})
		delete(pending, p)
	}
	slices.SortFunc(batch, func(a, b ChangeEvent) int { return strings.Compare(a.Path, b.Path) })
	return batch
}
