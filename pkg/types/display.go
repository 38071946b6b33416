package types

// Style identifies which operation produced the displayed value, so a
// presentation layer can pick a colour for it.
type Style int

const (
	StyleNormal Style = iota
	StyleError
	StyleAdd
	StyleSubtract
	StyleMultiply
	StyleDivide
	StyleReciprocal
	StyleSquare
	StyleSquareRoot
)

func (s Style) String() string {
	switch s {
	case StyleNormal:
		return "normal"
	case StyleError:
		return "error"
	case StyleAdd:
		return "add"
	case StyleSubtract:
		return "subtract"
	case StyleMultiply:
		return "multiply"
	case StyleDivide:
		return "divide"
	case StyleReciprocal:
		return "reciprocal"
	case StyleSquare:
		return "square"
	case StyleSquareRoot:
		return "sqrt"
	default:
		return "unknown"
	}
}

// MarshalText lets Style appear by name in JSON output.
func (s Style) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Display is what a host needs after every action.
type Display struct {
	Text         string `json:"text"`
	Style        Style  `json:"style"`
	IsError      bool   `json:"is_error"`
	PointAllowed bool   `json:"point_allowed"`
	Pending      string `json:"pending,omitempty"`
	ResultShown  bool   `json:"result_shown"`
}

// SessionState is a read-only copy of an engine's state. PendingText is
// PendingOperand rendered as entry text, since JSON cannot carry NaN or Inf.
type SessionState struct {
	Entry           string   `json:"entry"`
	PendingOperand  *float64 `json:"-"`
	PendingText     string   `json:"pending_operand,omitempty"`
	PendingOperator string   `json:"pending_operator,omitempty"`
	ResultShown     bool     `json:"result_shown"`
	PointAllowed    bool     `json:"point_allowed"`
	Style           Style    `json:"style"`
}
