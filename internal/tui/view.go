package tui

import (
	"github.com/charmbracelet/bubbles/list"

	"github.com/Makepad-fr/taskflow/internal/model"
	"github.com/Makepad-fr/taskflow/internal/render"
	"github.com/Makepad-fr/taskflow/internal/ui"
)

// View is the paint target the controller draws into. The Bubble Tea model
// copies its state into widgets on every Update.
type View struct {
	items       []list.Item
	placeholder *render.Placeholder
	summary     string
	counts      model.Counts
	validation  string
	chars       int
	limit       int
	theme       ui.Theme
	dirty       bool
}

func NewView() *View {
	return &View{theme: ui.For(model.ThemeLight)}
}

func (v *View) Reset() {
	v.items = nil
	v.placeholder = nil
	v.dirty = true
}

func (v *View) Empty(p render.Placeholder) { v.placeholder = &p }

func (v *View) Row(r render.Row) { v.items = append(v.items, rowItem{Row: r}) }

func (v *View) ShowCounts(summary string, c model.Counts) {
	v.summary, v.counts = summary, c
}

func (v *View) ShowValidation(msg string)  { v.validation = msg }
func (v *View) ShowCharCount(n, limit int) { v.chars, v.limit = n, limit }

func (v *View) ApplyTheme(t model.Theme) {
	if v.theme.Mode != t {
		v.theme = ui.For(t)
		v.dirty = true
	}
}

// rowItem adapts a painted row to bubbles/list.Item.
type rowItem struct {
	render.Row
}

func (i rowItem) FilterValue() string { return i.Text }
