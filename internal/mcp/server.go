package mcp

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/spf13/afero"

	"github.com/mamaar/gocalc/pkg/calculator"
	"github.com/mamaar/gocalc/pkg/types"
	"github.com/mamaar/gocalc/pkg/watch"
)

// MCPServer holds the shared state for the MCP tool handlers: named
// calculator sessions and an optional tape watcher that replays a tape
// into one of them.
type MCPServer struct {
	mu             sync.Mutex
	sessions       map[string]calculator.Engine
	defaultSession string
	fs             afero.Fs
	debounce       time.Duration
	logger         *slog.Logger

	watcher  *watch.Watcher
	replayer *watch.Replayer
	watched  string
	lastRun  *watch.Replay
	cancel   context.CancelFunc // stops watcher goroutines
}

// Options configures an MCPServer. Zero values fall back to defaults.
type Options struct {
	DefaultSession string
	WatchDebounce  time.Duration
	Fs             afero.Fs
}

// NewMCPServer creates a new MCPServer with the given logger.
func NewMCPServer(opts Options, logger *slog.Logger) *MCPServer {
	if opts.DefaultSession == "" {
		opts.DefaultSession = "default"
	}
	if opts.WatchDebounce <= 0 {
		opts.WatchDebounce = 200 * time.Millisecond
	}
	if opts.Fs == nil {
		opts.Fs = afero.NewOsFs()
	}
	return &MCPServer{
		sessions:       make(map[string]calculator.Engine),
		defaultSession: opts.DefaultSession,
		fs:             opts.Fs,
		debounce:       opts.WatchDebounce,
		logger:         logger,
	}
}

func (s *MCPServer) sessionName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return s.defaultSession
	}
	return name
}

// engineLocked returns the engine for name, creating it on first use.
func (s *MCPServer) engineLocked(name string) calculator.Engine {
	e, ok := s.sessions[name]
	if !ok {
		e = calculator.CreateEngine(s.logger.With("session", name))
		s.sessions[name] = e
		s.logger.Debug("session created", "session", name)
	}
	return e
}

// WithSession runs fn against the named session while holding the server
// lock. An empty name selects the default session.
func (s *MCPServer) WithSession(name string, fn func(e calculator.Engine)) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	name = s.sessionName(name)
	fn(s.engineLocked(name))
	return name
}

// ResetSession replaces the named session with a fresh engine.
func (s *MCPServer) ResetSession(name string) (string, types.Display) {
	s.mu.Lock()
	defer s.mu.Unlock()
	name = s.sessionName(name)
	delete(s.sessions, name)
	return name, s.engineLocked(name).Display()
}

// CloseSession drops the named session. It reports whether it existed.
func (s *MCPServer) CloseSession(name string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	name = s.sessionName(name)
	_, ok := s.sessions[name]
	delete(s.sessions, name)
	return name, ok
}

// Sessions returns the open session names in order.
func (s *MCPServer) Sessions() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	names := make([]string, 0, len(s.sessions))
	for name := range s.sessions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// WatchTape replays the tape at path into the named session now and again
// after every change to it. Only one tape is watched at a time.
func (s *MCPServer) WatchTape(path, session string) (watch.Replay, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopWatchLocked()

	abs, err := filepath.Abs(path)
	if err != nil {
		return watch.Replay{}, fmt.Errorf("resolve tape path: %w", err)
	}
	session = s.sessionName(session)

	newEngine := func() calculator.Engine {
		e := calculator.CreateEngine(s.logger.With("session", session))
		s.sessions[session] = e
		return e
	}
	report := func(r watch.Replay) {
		s.lastRun = &r
	}
	s.replayer = watch.NewReplayer(s.fs, abs, newEngine, report, s.logger)
	s.watched = session

	first := s.replayer.Replay()
	if first.Err != nil {
		s.replayer = nil
		return first, first.Err
	}

	w, err := watch.NewWatcher(filepath.Dir(abs), s.debounce, s.logger, abs)
	if err != nil {
		s.logger.Warn("watcher unavailable, tape will not auto-replay", "err", err)
		return first, nil
	}
	s.watcher = w

	watchCtx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	ch := make(chan []watch.ChangeEvent, 4)
	go func() {
		if err := w.Run(watchCtx, ch); err != nil && watchCtx.Err() == nil {
			s.logger.Error("watcher error", "err", err)
		}
	}()
	go func() {
		for {
			select {
			case <-watchCtx.Done():
				return
			case events := <-ch:
				s.mu.Lock()
				if s.replayer != nil {
					s.replayer.HandleChanges(events)
				}
				s.mu.Unlock()
			}
		}
	}()

	return first, nil
}

// TapeStatus describes the watched tape.
type TapeStatus struct {
	Watching bool
	Path     string
	Session  string
	Runs     int
	Last     *watch.Replay
}

// WatchStatus reports the watched tape and its latest replay.
func (s *MCPServer) WatchStatus() TapeStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.replayer == nil {
		return TapeStatus{}
	}
	st := TapeStatus{
		Watching: s.watcher != nil,
		Session:  s.watched,
		Runs:     s.replayer.Runs(),
		Last:     s.lastRun,
	}
	if s.lastRun != nil {
		st.Path = s.lastRun.Path
	}
	return st
}

// StopWatch stops watching the current tape, if any.
func (s *MCPServer) StopWatch() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopWatchLocked()
}

func (s *MCPServer) stopWatchLocked() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	if s.watcher != nil {
		_ = s.watcher.Close()
		s.watcher = nil
	}
	s.replayer = nil
	s.lastRun = nil
	s.watched = ""
}

// Close stops the watcher and drops every session.
func (s *MCPServer) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopWatchLocked()
	s.sessions = make(map[string]calculator.Engine)
}
