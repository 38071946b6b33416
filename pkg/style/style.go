// Package style maps operation identifiers to presentation: CSS class names
// for web front ends and ANSI colours for terminals.
package style

import (
	"fmt"

	"github.com/mamaar/gocalc/pkg/types"
)

const reset = "\x1b[0m"

// ClassName returns the class list for the display element.
func ClassName(s types.Style) string {
	return "display display-" + s.String()
}

// ANSI returns the escape sequence that colours text for s. Normal text
// has no colour.
func ANSI(s types.Style) string {
	switch s {
	case types.StyleError:
		return "\x1b[1;31m"
	case types.StyleAdd:
		return "\x1b[32m"
	case types.StyleSubtract:
		return "\x1b[33m"
	case types.StyleMultiply:
		return "\x1b[34m"
	case types.StyleDivide:
		return "\x1b[35m"
	case types.StyleReciprocal:
		return "\x1b[36m"
	case types.StyleSquare:
		return "\x1b[94m"
	case types.StyleSquareRoot:
		return "\x1b[96m"
	default:
		return ""
	}
}

// Paint wraps text in the colour for s when enabled.
func Paint(text string, s types.Style, enabled bool) string {
	code := ANSI(s)
	if !enabled || code == "" {
		return text
	}
	return code + text + reset
}

// Render lays out a display the way the calculator screen does: the pending
// operator in brackets, then the number right-aligned in width columns.
func Render(d types.Display, width int, color bool) string {
	pending := d.Pending
	if pending == "" {
		pending = " "
	}
	text := fmt.Sprintf("%*s", width, d.Text)
	return fmt.Sprintf("[%s] %s", pending, Paint(text, d.Style, color))
}
