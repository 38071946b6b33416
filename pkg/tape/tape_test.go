package tape

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamaar/gocalc/pkg/calculator"
	"github.com/mamaar/gocalc/pkg/types"
)

func newEngine() calculator.Engine {
	return calculator.CreateEngine(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func keyNames(t *Tape) []string {
	names := make([]string, len(t.Keys))
	for i, k := range t.Keys {
		names[i] = k.Name
	}
	return names
}

func TestParse(t *testing.T) {
	src := `# chained addition
3 + 4   # first pair
+ 5 enter
`
	tp, err := Parse(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, []string{"3", "+", "4", "+", "5", "enter"}, keyNames(tp))
	assert.Equal(t, 2, tp.Keys[0].Line)
	assert.Equal(t, 3, tp.Keys[5].Line)
}

func TestParse_ExpandsNumbers(t *testing.T) {
	tp, err := Parse(strings.NewReader("12.5 x 2 ="))
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", ".", "5", "x", "2", "="}, keyNames(tp))
}

func TestParse_CollectsAllUnknownKeys(t *testing.T) {
	_, err := Parse(strings.NewReader("1 + foo\nbar =\n"))
	require.Error(t, err)

	var verr *types.ValidationError
	require.True(t, errors.As(err, &verr))
	require.Len(t, verr.Errors, 2)

	var calcErr *types.CalcError
	require.True(t, errors.As(verr.Errors[1], &calcErr))
	assert.Equal(t, types.TapeError, calcErr.Type)
	assert.Equal(t, 2, calcErr.Line)
	assert.Contains(t, calcErr.Message, `"bar"`)
}

func TestLoad(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/tapes/divide.tape", []byte("5 / 0 =\n"), 0o644))

	tp, err := Load(fs, "/tapes/divide.tape")
	require.NoError(t, err)
	assert.Equal(t, "/tapes/divide.tape", tp.Path)

	engine := newEngine()
	d := Final(engine, Run(engine, tp))
	assert.Equal(t, "Error", d.Text)
	assert.True(t, d.IsError)
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(afero.NewMemMapFs(), "/nope.tape")
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoad_InvalidKeysNamePath(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "bad.tape", []byte("1 ? 2"), 0o644))

	_, err := Load(fs, "bad.tape")
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "bad.tape: "))
}

func TestRun_Steps(t *testing.T) {
	tp, err := Parse(strings.NewReader("9 - 16 = r"))
	require.NoError(t, err)

	engine := newEngine()
	steps := Run(engine, tp)
	require.Len(t, steps, 6)

	assert.Equal(t, "-7", steps[4].Display.Text)
	assert.Equal(t, types.StyleSubtract, steps[4].Display.Style)
	assert.Equal(t, "Error", steps[5].Display.Text)
	for _, s := range steps {
		assert.True(t, s.Accepted, "key %s", s.Key.Name)
	}
}

func TestRun_BlockedPointIsReported(t *testing.T) {
	tp, err := Parse(strings.NewReader("1 . . 5"))
	require.NoError(t, err)

	steps := Run(newEngine(), tp)
	require.Len(t, steps, 4)
	assert.True(t, steps[1].Accepted)
	assert.False(t, steps[2].Accepted)
	assert.Equal(t, "1.5", steps[3].Display.Text)
}

func TestFinal_Empty(t *testing.T) {
	engine := newEngine()
	assert.Equal(t, "0", Final(engine, nil).Text)
}

func TestScan_Positions(t *testing.T) {
	tokens, err := Scan(strings.NewReader("  12.5 ×\t3 # 9 9\n√  =\n"))
	require.NoError(t, err)

	assert.Equal(t, []Token{
		{Text: "12.5", Line: 1, Col: 2},
		{Text: "×", Line: 1, Col: 7},
		{Text: "3", Line: 1, Col: 9},
		{Text: "√", Line: 2, Col: 0},
		{Text: "=", Line: 2, Col: 3},
	}, tokens)
	assert.Equal(t, 6, tokens[0].End())
	assert.Equal(t, 8, tokens[1].End())
}

func TestToken_Keys(t *testing.T) {
	assert.Equal(t, []string{"Enter"}, Token{Text: "Enter"}.Keys())
	assert.Equal(t, []string{"1", ".", "5"}, Token{Text: "1.5"}.Keys())
	assert.Nil(t, Token{Text: "banana"}.Keys())
}

func TestParse_KeyColumns(t *testing.T) {
	tp, err := Parse(strings.NewReader("12 + 3"))
	require.NoError(t, err)

	cols := make([]int, len(tp.Keys))
	for i, k := range tp.Keys {
		cols[i] = k.Col
	}
	assert.Equal(t, []int{0, 1, 3, 5}, cols)
}
