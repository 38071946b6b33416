// Package tape reads and replays key scripts.
//
// A tape is plain text: whitespace separated keys, with '#' starting a
// comment that runs to the end of the line. A key is anything the keymap
// knows ("7", "+", "enter", "r") or a number literal
// like "12.5", which is typed one character at a time.
//
//	# 3 + 4 + 5
//	3 + 4 + 5 =
package tape

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/spf13/afero"

	"github.com/mamaar/gocalc/pkg/calculator"
	"github.com/mamaar/gocalc/pkg/keymap"
	"github.com/mamaar/gocalc/pkg/types"
)

// Key is one key press and where it came from. Col counts characters
// from the start of the line, starting at 0.
type Key struct {
	Name string
	Line int
	Col  int
}

type Tape struct {
	Path string
	Keys []Key
}

// Step is the outcome of replaying one key.
type Step struct {
	Key      Key
	Accepted bool
	Display  types.Display
}

// Token is one whitespace separated word of a tape.
type Token struct {
	Text string
	Line int
	Col  int
}

// Keys returns the key names token stands for, or nil if it is not a key.
func (tok Token) Keys() []string {
	if _, ok := keymap.Lookup(tok.Text); ok {
		return []string{tok.Text}
	}
	return keymap.Expand(tok.Text)
}

// End is the column just past the token.
func (tok Token) End() int {
	return tok.Col + utf8.RuneCountInString(tok.Text)
}

// Scan splits a tape into tokens, dropping comments.
func Scan(r io.Reader) ([]Token, error) {
	var tokens []Token
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		tokens = append(tokens, scanLine(text, line)...)
	}
	if err := scanner.Err(); err != nil {
		return nil, &types.CalcError{Type: types.TapeError, Message: "read tape", Cause: err}
	}
	return tokens, nil
}

func scanLine(text string, line int) []Token {
	var tokens []Token
	start := -1
	col := 0
	var word strings.Builder
	for _, r := range text {
		if unicode.IsSpace(r) {
			if start >= 0 {
				tokens = append(tokens, Token{Text: word.String(), Line: line, Col: start})
				word.Reset()
				start = -1
			}
		} else {
			if start < 0 {
				start = col
			}
			word.WriteRune(r)
		}
		col++
	}
	if start >= 0 {
		tokens = append(tokens, Token{Text: word.String(), Line: line, Col: start})
	}
	return tokens
}

// Parse reads a tape. Every unknown key is reported, not only the first.
func Parse(r io.Reader) (*Tape, error) {
	tokens, err := Scan(r)
	if err != nil {
		return nil, err
	}

	t := &Tape{}
	var errs []error
	for _, tok := range tokens {
		keys := tok.Keys()
		if keys == nil {
			errs = append(errs, &types.CalcError{
				Type:    types.TapeError,
				Message: fmt.Sprintf("unknown key %q", tok.Text),
				Line:    tok.Line,
			})
			continue
		}
		// Expanded literals are one key per character.
		for i, k := range keys {
			t.Keys = append(t.Keys, Key{Name: k, Line: tok.Line, Col: tok.Col + i})
		}
	}
	if err := types.NewValidationError(errs); err != nil {
		return nil, err
	}
	return t, nil
}

// Load reads and parses the tape at path from fs.
func Load(fs afero.Fs, path string) (*Tape, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, &types.CalcError{Type: types.TapeError, Message: "open tape " + path, Cause: err}
	}
	defer f.Close()

	t, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	t.Path = path
	return t, nil
}

// Run replays t against engine with keyboard semantics, one Step per key.
func Run(engine calculator.Engine, t *Tape) []Step {
	steps := make([]Step, 0, len(t.Keys))
	for _, k := range t.Keys {
		d, ok := keymap.Press(engine, k.Name)
		steps = append(steps, Step{Key: k, Accepted: ok, Display: d})
	}
	return steps
}

// Final returns the display after the last step, or the engine's display
// for an empty run.
func Final(engine calculator.Engine, steps []Step) types.Display {
	if len(steps) == 0 {
		return engine.Display()
	}
	return steps[len(steps)-1].Display
}
