package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Makepad-fr/taskflow/internal/model"
)

// Theme bundles palette + symbols + borders for one light/dark mode.
// Renderers take a Theme value instead of reading a package global.
type Theme struct {
	Mode model.Theme
	// Icon advertises the other mode, like a toggle button would.
	Icon string

	Title, Muted, Accent, Success, Error, Pending lipgloss.Style
	Selected, Done, Help                          lipgloss.Style

	Border      lipgloss.Border
	BorderColor lipgloss.Color

	BoxChecked, BoxUnchecked string
	SymDone, SymPending      string
}

// For returns the theme for mode.
func For(mode model.Theme) Theme {
	if mode == model.ThemeDark {
		return dark()
	}
	return light()
}

func light() Theme {
	return Theme{
		Mode:        model.ThemeLight,
		Icon:        "🌙",
		Title:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("236")),
		Muted:       lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Accent:      lipgloss.NewStyle().Foreground(lipgloss.Color("25")),
		Success:     lipgloss.NewStyle().Foreground(lipgloss.Color("28")),
		Error:       lipgloss.NewStyle().Foreground(lipgloss.Color("160")).Bold(true),
		Pending:     lipgloss.NewStyle().Foreground(lipgloss.Color("166")),
		Selected:    lipgloss.NewStyle().Bold(true).Reverse(true),
		Done:        lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Strikethrough(true),
		Help:        lipgloss.NewStyle().Foreground(lipgloss.Color("246")),
		Border:      lipgloss.RoundedBorder(),
		BorderColor: lipgloss.Color("250"),
		BoxChecked:  "☑", BoxUnchecked: "☐",
		SymDone: "✔", SymPending: "•",
	}
}

func dark() Theme {
	return Theme{
		Mode:        model.ThemeDark,
		Icon:        "☀",
		Title:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255")),
		Muted:       lipgloss.NewStyle().Faint(true),
		Accent:      lipgloss.NewStyle().Foreground(lipgloss.Color("81")),
		Success:     lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Error:       lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Pending:     lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Selected:    lipgloss.NewStyle().Bold(true).Reverse(true),
		Done:        lipgloss.NewStyle().Faint(true).Strikethrough(true),
		Help:        lipgloss.NewStyle().Faint(true),
		Border:      lipgloss.RoundedBorder(),
		BorderColor: lipgloss.Color("8"),
		BoxChecked:  "◼", BoxUnchecked: "◻",
		SymDone: "✔", SymPending: "•",
	}
}

// Box is the completion indicator for a row.
func (t Theme) Box(completed bool) string {
	if completed {
		return t.Success.Render(t.BoxChecked)
	}
	return t.Muted.Render(t.BoxUnchecked)
}
