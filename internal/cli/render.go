package cli

import (
	"github.com/mamaar/gocalc/pkg/calculator"
	"github.com/mamaar/gocalc/pkg/style"
	"github.com/mamaar/gocalc/pkg/types"
)

// RenderDisplay renders d at the calculator's display width.
func RenderDisplay(d types.Display, color bool) string {
	return style.Render(d, calculator.DefaultDisplayWidth, color)
}
