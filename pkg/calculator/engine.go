package calculator

import (
	"log/slog"
	"unicode/utf8"

	"github.com/mamaar/gocalc/pkg/types"
)

const (
	// DefaultMaxEntryLength caps how many characters can be typed into one entry.
	DefaultMaxEntryLength = 12
	// DefaultDisplayWidth is the number of characters the display can show.
	DefaultDisplayWidth = 12
)

// Engine is the action interface consumed by input adapters. Every call
// runs to completion and returns the display to show.
type Engine interface {
	InputDigit(d rune) types.Display
	InputPoint() types.Display
	SelectOperator(op types.BinaryOp) types.Display
	Evaluate() types.Display
	ApplyUnary(op types.UnaryOp) types.Display
	Backspace() types.Display
	ClearEntry() types.Display
	ClearAll() types.Display

	// Apply dispatches a to the matching method above.
	Apply(a types.Action) types.Display
	// Display returns the current display without changing anything.
	Display() types.Display
	State() types.SessionState
}

// EngineConfig contains configuration options for the calculator engine
type EngineConfig struct {
	MaxEntryLength int
	DisplayWidth   int
}

// DefaultConfig returns the default engine configuration
func DefaultConfig() *EngineConfig {
	return &EngineConfig{
		MaxEntryLength: DefaultMaxEntryLength,
		DisplayWidth:   DefaultDisplayWidth,
	}
}

// DefaultEngine owns one calculator session. It is not safe for concurrent
// use; hosts serialize actions per engine.
type DefaultEngine struct {
	config *EngineConfig
	logger *slog.Logger

	entry          types.Entry
	pendingOperand *float64
	pendingOp      *types.BinaryOp
	resultShown    bool
	pointAllowed   bool
	style          types.Style
}

func CreateEngine(logger *slog.Logger) Engine {
	return CreateEngineWithConfig(DefaultConfig(), logger)
}

func CreateEngineWithConfig(config *EngineConfig, logger *slog.Logger) Engine {
	if config == nil {
		config = DefaultConfig()
	}
	if config.MaxEntryLength <= 0 {
		config.MaxEntryLength = DefaultMaxEntryLength
	}
	if config.DisplayWidth <= 0 {
		config.DisplayWidth = DefaultDisplayWidth
	}
	if logger == nil {
		logger = slog.Default()
	}
	e := &DefaultEngine{config: config, logger: logger}
	e.reset()
	return e
}

func (e *DefaultEngine) reset() {
	e.entry = types.ZeroEntry()
	e.pendingOperand = nil
	e.pendingOp = nil
	e.resultShown = false
	e.pointAllowed = true
	e.style = types.StyleNormal
}

// InputDigit starts a new entry after a result, replaces a lone "0", or
// appends while the entry is shorter than the cap. Anything else is ignored.
func (e *DefaultEngine) InputDigit(d rune) types.Display {
	if d < '0' || d > '9' {
		e.logger.Debug("ignoring non-digit input", "rune", string(d))
		return e.Display()
	}

	switch {
	case e.resultShown:
		e.entry = types.NumericEntry(string(d))
		e.resultShown = false
		e.style = types.StyleNormal
		e.pointAllowed = true
	case e.entry.Text() == "0":
		e.entry = types.NumericEntry(string(d))
	case e.entry.Len() < e.config.MaxEntryLength:
		e.entry = types.NumericEntry(e.entry.Text() + string(d))
	default:
		e.logger.Debug("entry full, digit dropped", "entry", e.entry.Text())
	}
	return e.Display()
}

// InputPoint adds a decimal point unless the entry already has one.
func (e *DefaultEngine) InputPoint() types.Display {
	switch {
	case e.resultShown:
		e.entry = types.NumericEntry("0.")
		e.resultShown = false
		e.style = types.StyleNormal
	case !e.entry.HasPoint():
		e.entry = types.NumericEntry(e.entry.Text() + ".")
	}
	e.pointAllowed = false
	return e.Display()
}

// SelectOperator stores the entry as the first operand of op. A pending
// operation that has its second operand typed is evaluated first, so
// 3 + 4 + reads as 7 +.
func (e *DefaultEngine) SelectOperator(op types.BinaryOp) types.Display {
	if e.pendingOp != nil && !e.resultShown {
		e.Evaluate()
	}

	operand := e.entry.Value()
	e.pendingOperand = &operand
	e.pendingOp = &op
	e.resultShown = true
	e.pointAllowed = true

	e.logger.Debug("operator selected", "op", op.String(), "operand", operand)
	return e.Display()
}

// Evaluate applies the pending operation to the entry. Without a pending
// operation it does nothing.
func (e *DefaultEngine) Evaluate() types.Display {
	if e.pendingOp == nil || e.pendingOperand == nil {
		return e.Display()
	}

	op := *e.pendingOp
	a := *e.pendingOperand
	b := e.entry.Value()

	e.pendingOp = nil
	e.pendingOperand = nil
	e.resultShown = true

	if op == types.Divide && b == 0 {
		e.fail(&types.CalcError{Type: types.InvalidArithmetic, Message: "division by zero"})
		return e.Display()
	}

	result := op.Apply(a, b)
	e.entry = types.NumericEntry(NumberToString(result))
	e.style = op.Style()

	e.logger.Debug("evaluated", "op", op.String(), "a", a, "b", b, "result", e.entry.Text())
	return e.Display()
}

// ApplyUnary replaces the entry with op applied to it. A pending binary
// operation is left in place.
func (e *DefaultEngine) ApplyUnary(op types.UnaryOp) types.Display {
	x := e.entry.Value()
	result, err := op.Apply(x)
	e.resultShown = true
	if err != nil {
		e.fail(err)
		return e.Display()
	}

	e.entry = types.NumericEntry(NumberToString(result))
	e.style = op.Style()

	e.logger.Debug("unary applied", "op", op.String(), "x", x, "result", e.entry.Text())
	return e.Display()
}

// Backspace removes the last typed character, or resets a shown result to 0.
func (e *DefaultEngine) Backspace() types.Display {
	switch {
	case e.resultShown || e.entry.IsError():
		e.entry = types.ZeroEntry()
		e.resultShown = false
		e.style = types.StyleNormal
		e.pointAllowed = true
	case e.entry.Len() > 1:
		text := e.entry.Text()
		last, size := utf8.DecodeLastRuneInString(text)
		if last == '.' {
			e.pointAllowed = true
		}
		e.entry = types.NumericEntry(text[:len(text)-size])
	default:
		e.entry = types.ZeroEntry()
		e.pointAllowed = true
	}
	return e.Display()
}

// ClearEntry resets the visible entry but keeps a pending operation.
func (e *DefaultEngine) ClearEntry() types.Display {
	e.entry = types.ZeroEntry()
	e.resultShown = false
	e.pointAllowed = true
	e.style = types.StyleNormal
	return e.Display()
}

// ClearAll returns the session to its initial state.
func (e *DefaultEngine) ClearAll() types.Display {
	e.reset()
	return e.Display()
}

func (e *DefaultEngine) Apply(a types.Action) types.Display {
	switch a.Kind {
	case types.ActionDigit:
		return e.InputDigit(a.Digit)
	case types.ActionPoint:
		return e.InputPoint()
	case types.ActionOperator:
		return e.SelectOperator(a.Binary)
	case types.ActionEquals:
		return e.Evaluate()
	case types.ActionUnary:
		return e.ApplyUnary(a.Unary)
	case types.ActionBackspace:
		return e.Backspace()
	case types.ActionClearEntry:
		return e.ClearEntry()
	case types.ActionClearAll:
		return e.ClearAll()
	default:
		e.logger.Warn("unknown action", "kind", int(a.Kind))
		return e.Display()
	}
}

func (e *DefaultEngine) Display() types.Display {
	d := types.Display{
		Text:         FormatWidth(e.entry.Text(), e.config.DisplayWidth),
		Style:        e.style,
		IsError:      e.entry.IsError(),
		PointAllowed: e.pointAllowed,
		ResultShown:  e.resultShown,
	}
	if e.pendingOp != nil {
		d.Pending = e.pendingOp.Symbol()
	}
	return d
}

func (e *DefaultEngine) State() types.SessionState {
	s := types.SessionState{
		Entry:        e.entry.Text(),
		ResultShown:  e.resultShown,
		PointAllowed: e.pointAllowed,
		Style:        e.style,
	}
	if e.pendingOperand != nil {
		v := *e.pendingOperand
		s.PendingOperand = &v
		s.PendingText = NumberToString(v)
	}
	if e.pendingOp != nil {
		s.PendingOperator = e.pendingOp.Symbol()
	}
	return s
}

// fail puts the session into the Error state.
func (e *DefaultEngine) fail(err error) {
	e.entry = types.ErrorEntry()
	e.style = types.StyleError
	e.resultShown = true
	e.logger.Info("invalid arithmetic", "err", err)
}
