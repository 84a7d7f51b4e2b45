package cli

import (
	"fmt"

	"github.com/Makepad-fr/taskflow/internal/model"
	"github.com/Makepad-fr/taskflow/internal/render"
	"github.com/Makepad-fr/taskflow/internal/ui"
)

const maxTitleWidth = 80

// listView collects one paint for printing to stdout.
type listView struct {
	rows        []render.Row
	placeholder *render.Placeholder
	summary     string
	counts      model.Counts
	validation  string
	theme       ui.Theme
}

func newListView() *listView { return &listView{theme: ui.For(model.ThemeLight)} }

func (v *listView) Reset() {
	v.rows = nil
	v.placeholder = nil
}

func (v *listView) Empty(p render.Placeholder) { v.placeholder = &p }
func (v *listView) Row(r render.Row)           { v.rows = append(v.rows, r) }
func (v *listView) ShowValidation(msg string)  { v.validation = msg }
func (v *listView) ShowCharCount(int, int)     {}
func (v *listView) ApplyTheme(t model.Theme)   { v.theme = ui.For(t) }
func (v *listView) ShowCounts(summary string, c model.Counts) {
	v.summary, v.counts = summary, c
}

// -------------- rendering helpers --------------

// lines builds the panel body. pos maps ids to their 1-based index in the
// full list so the printed numbers work with `done` and `rm`.
func (v *listView) lines(filter model.Filter, pos map[string]int, group bool) []string {
	t := v.theme
	c := v.counts
	header := fmt.Sprintf("%s  %s %d  %s %d  %s %d  %s",
		t.Title.Render("Tasks"),
		t.Success.Render(t.SymDone), c.Done(),
		t.Pending.Render(t.SymPending), c.Active,
		t.Accent.Render("Total"), c.Total,
		t.Muted.Render("["+filter.String()+"]"),
	)

	var lines []string
	lines = append(lines, header)
	lines = append(lines, t.Muted.Render(ui.ProgressBar(c.Done(), c.Total, 28)))
	lines = append(lines, "")

	switch {
	case v.placeholder != nil:
		lines = append(lines, t.Muted.Render(v.placeholder.Icon+" "+v.placeholder.Title))
		lines = append(lines, t.Muted.Render(v.placeholder.Subtitle))
	case group:
		lines = append(lines, v.groupLines(pos)...)
	default:
		lines = append(lines, v.flatLines(v.rows, pos)...)
	}

	lines = append(lines, "")
	lines = append(lines, t.Muted.Render(v.summary))
	return lines
}

func (v *listView) flatLines(rows []render.Row, pos map[string]int) []string {
	t := v.theme
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		idx := fmt.Sprintf("%2d.", pos[r.ID])
		text := ui.Truncate(r.Text, maxTitleWidth)
		if r.Completed {
			text = t.Done.Render(text)
		}
		out = append(out, fmt.Sprintf("%s %s %s", t.Muted.Render(idx), t.Box(r.Completed), text))
	}
	return out
}

func (v *listView) groupLines(pos map[string]int) []string {
	var pend, done []render.Row
	for _, r := range v.rows {
		if r.Completed {
			done = append(done, r)
		} else {
			pend = append(pend, r)
		}
	}
	t := v.theme
	var lines []string
	lines = append(lines, t.Accent.Render("Pending"))
	if len(pend) == 0 {
		lines = append(lines, t.Muted.Render("(none)"))
	} else {
		lines = append(lines, v.flatLines(pend, pos)...)
	}
	lines = append(lines, "")
	lines = append(lines, t.Accent.Render("Done"))
	if len(done) == 0 {
		lines = append(lines, t.Muted.Render("(none)"))
	} else {
		lines = append(lines, v.flatLines(done, pos)...)
	}
	return lines
}
