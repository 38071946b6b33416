package types

import "fmt"

type ActionKind int

const (
	ActionDigit ActionKind = iota
	ActionPoint
	ActionOperator
	ActionEquals
	ActionUnary
	ActionBackspace
	ActionClearEntry
	ActionClearAll
)

func (k ActionKind) String() string {
	switch k {
	case ActionDigit:
		return "digit"
	case ActionPoint:
		return "point"
	case ActionOperator:
		return "operator"
	case ActionEquals:
		return "equals"
	case ActionUnary:
		return "unary"
	case ActionBackspace:
		return "backspace"
	case ActionClearEntry:
		return "clear_entry"
	case ActionClearAll:
		return "clear_all"
	default:
		return "unknown"
	}
}

// Action is one discrete user input. Digit, Binary and Unary are only
// meaningful for the matching Kind.
type Action struct {
	Kind   ActionKind
	Digit  rune
	Binary BinaryOp
	Unary  UnaryOp
}

func DigitAction(d rune) Action { return Action{Kind: ActionDigit, Digit: d} }
func PointAction() Action { return Action{Kind: ActionPoint} }
func OperatorAction(op BinaryOp) Action { return Action{Kind: ActionOperator, Binary: op} }
func EqualsAction() Action { return Action{Kind: ActionEquals} }
func UnaryAction(op UnaryOp) Action { return Action{Kind: ActionUnary, Unary: op} }
func BackspaceAction() Action { return Action{Kind: ActionBackspace} }
func ClearEntryAction() Action { return Action{Kind: ActionClearEntry} }
func ClearAllAction() Action { return Action{Kind: ActionClearAll} }

func (a Action) String() string {
	switch a.Kind {
	case ActionDigit:
		return fmt.Sprintf("digit(%c)", a.Digit)
	case ActionOperator:
		return fmt.Sprintf("operator(%s)", a.Binary.Symbol())
	case ActionUnary:
		return fmt.Sprintf("unary(%s)", a.Unary)
	default:
		return a.Kind.String()
	}
}
