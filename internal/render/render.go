// Package render projects a task slice into display rows and paints them
// into a Sink. The previous content of the sink is always replaced.
package render

import (
	"fmt"

	"github.com/Makepad-fr/taskflow/internal/model"
)

// Row is one painted task. Toggle and Delete call back with the row's id.
type Row struct {
	ID        string
	Text      string // escaped, safe to print
	Completed bool
	Toggle    func()
	Delete    func()
}

// Placeholder is shown instead of rows when there is nothing to list.
type Placeholder struct {
	Icon, Title, Subtitle string
}

var DefaultPlaceholder = Placeholder{
	Icon:     "📋",
	Title:    "No tasks yet!",
	Subtitle: "Add your first task above to get started",
}

// Sink receives a full repaint: Reset, then either Empty or one Row per task.
type Sink interface {
	Reset()
	Empty(p Placeholder)
	Row(r Row)
}

// Rows is the pure half of Render.
func Rows(tasks []model.Task, onToggle, onDelete func(id string)) []Row {
	rows := make([]Row, 0, len(tasks))
	for _, t := range tasks {
		id := t.ID
		rows = append(rows, Row{
			ID:        id,
			Text:      Escape(t.Text),
			Completed: t.Completed,
			Toggle:    bind(onToggle, id),
			Delete:    bind(onDelete, id),
		})
	}
	return rows
}

func bind(f func(string), id string) func() {
	return func() {
		if f != nil {
			f(id)
		}
	}
}

// Render replaces whatever sink showed before with tasks.
func Render(sink Sink, tasks []model.Task, onToggle, onDelete func(id string)) {
	sink.Reset()
	if len(tasks) == 0 {
		sink.Empty(DefaultPlaceholder)
		return
	}
	for _, r := range Rows(tasks, onToggle, onDelete) {
		sink.Row(r)
	}
}

// Summary is the count line, e.g. "2 active / 5 total".
func Summary(c model.Counts) string {
	return fmt.Sprintf("%d active / %d total", c.Active, c.Total)
}
