package watch

import (
	"io"
	"log/slog"
	"testing"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamaar/gocalc/pkg/calculator"
)

func setupReplayer(t *testing.T, content string) (*Replayer, afero.Fs, *[]Replay) {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/work/calc.tape", []byte(content), 0o644))

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	var replays []Replay
	r := NewReplayer(fs, "/work/calc.tape",
		func() calculator.Engine { return calculator.CreateEngine(logger) },
		func(rp Replay) { replays = append(replays, rp) },
		logger,
	)
	return r, fs, &replays
}

func TestReplayer_Replay(t *testing.T) {
	r, _, replays := setupReplayer(t, "3 + 4 + 5 =\n")

	result := r.Replay()
	require.NoError(t, result.Err)
	require.Len(t, *replays, 1)
	assert.Equal(t, "12", result.Steps[len(result.Steps)-1].Display.Text)
	assert.Equal(t, 1, r.Runs())
}

func TestReplayer_ModifyReplaysOnFreshEngine(t *testing.T) {
	r, fs, replays := setupReplayer(t, "2 x 3 =\n")
	r.Replay()

	require.NoError(t, afero.WriteFile(fs, "/work/calc.tape", []byte("7\n"), 0o644))
	r.HandleChanges([]ChangeEvent{{Path: "/work/calc.tape", Op: fsnotify.Write}})

	require.Len(t, *replays, 2)
	last := (*replays)[1]
	require.NoError(t, last.Err)
	require.Len(t, last.Steps, 1)
	display := last.Steps[0].Display
	assert.Equal(t, "7", display.Text)
	assert.Empty(t, display.Pending)
}

func TestReplayer_IgnoresOtherFiles(t *testing.T) {
	r, _, replays := setupReplayer(t, "1\n")
	r.HandleChanges([]ChangeEvent{{Path: "/work/other.tape", Op: fsnotify.Write}})
	assert.Empty(t, *replays)
	assert.Equal(t, 0, r.Runs())
}

func TestReplayer_RemovedTapeReportsError(t *testing.T) {
	r, fs, replays := setupReplayer(t, "1\n")
	require.NoError(t, fs.Remove("/work/calc.tape"))

	r.HandleChanges([]ChangeEvent{{Path: "/work/calc.tape", Op: fsnotify.Remove}})

	require.Len(t, *replays, 1)
	assert.ErrorContains(t, (*replays)[0].Err, "tape removed")
}

func TestReplayer_InvalidTapeReportsError(t *testing.T) {
	r, _, replays := setupReplayer(t, "1 + banana\n")
	r.HandleChanges([]ChangeEvent{{Path: "/work/calc.tape", Op: fsnotify.Create}})

	require.Len(t, *replays, 1)
	assert.ErrorContains(t, (*replays)[0].Err, `unknown key "banana"`)
	assert.Empty(t, (*replays)[0].Steps)
}
