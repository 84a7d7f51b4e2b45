package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// SetColorMode applies "always", "never" or "auto" to every lipgloss style.
func SetColorMode(mode string) {
	switch strings.ToLower(mode) {
	case "always":
		lipgloss.SetColorProfile(termenv.ANSI256)
	case "never":
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

// Printer writes one-shot CLI feedback.
type Printer struct {
	Out, Err io.Writer
	Theme    Theme
}

func (p Printer) OK(msg string) {
	fmt.Fprintln(p.Out, p.Theme.Success.Render(p.Theme.SymDone+" "+msg))
}

func (p Printer) Fail(msg string) {
	fmt.Fprintln(p.Err, p.Theme.Error.Render("✖ "+msg))
}

func (p Printer) Hint(msg string) {
	fmt.Fprintln(p.Err, p.Theme.Muted.Render(msg))
}

func (p Printer) Println(s string) {
	fmt.Fprintln(p.Out, s)
}
