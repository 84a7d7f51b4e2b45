// Package controller wires user actions to the task store and repaints the
// view after every change.
package controller

import (
	"errors"
	"unicode/utf8"

	"github.com/charmbracelet/log"

	"github.com/Makepad-fr/taskflow/internal/model"
	"github.com/Makepad-fr/taskflow/internal/render"
	"github.com/Makepad-fr/taskflow/internal/tasks"
	"github.com/Makepad-fr/taskflow/internal/validate"
)

// View is everything the controller paints into.
type View interface {
	render.Sink
	ShowCounts(summary string, c model.Counts)
	ShowValidation(msg string)
	ShowCharCount(n, limit int)
	ApplyTheme(t model.Theme)
}

// ThemeStore persists the light/dark preference. persist.Adapter satisfies it.
type ThemeStore interface {
	LoadTheme() model.Theme
	SaveTheme(t model.Theme)
}

type Controller struct {
	store  *tasks.Store
	prefs  ThemeStore
	view   View
	log    *log.Logger
	filter model.Filter
	theme  model.Theme
}

// New restores the saved theme and starts on the "all" filter. Nothing is
// painted until Render is called.
func New(store *tasks.Store, prefs ThemeStore, view View, logger *log.Logger) *Controller {
	return &Controller{
		store:  store,
		prefs:  prefs,
		view:   view,
		log:    logger,
		filter: model.FilterAll,
		theme:  prefs.LoadTheme(),
	}
}

func (c *Controller) Filter() model.Filter { return c.filter }
func (c *Controller) Theme() model.Theme   { return c.theme }

// Render repaints the list for the current filter and refreshes the counts.
func (c *Controller) Render() {
	c.view.ApplyTheme(c.theme)
	render.Render(c.view, c.store.Filtered(c.filter), c.Toggle, c.Delete)
	counts := c.store.Counts()
	c.view.ShowCounts(render.Summary(counts), counts)
}

// Add creates a task from raw. A rejection is shown in the view and reported
// as false; nothing else changes.
func (c *Controller) Add(raw string) bool {
	t, err := c.store.Create(raw)
	if err != nil {
		var rej *validate.RejectedError
		if errors.As(err, &rej) {
			c.view.ShowValidation(rej.Message)
			return false
		}
		c.log.Error("add task", "err", err)
		c.view.ShowValidation(err.Error())
		return false
	}
	c.log.Debug("task added", "id", t.ID)
	c.view.ShowValidation("")
	c.view.ShowCharCount(0, validate.MaxLength)
	c.Render()
	return true
}

// Toggle flips a task. Stale ids from an old paint are ignored.
func (c *Controller) Toggle(id string) {
	if !c.store.Toggle(id) {
		c.log.Debug("toggle: no such task", "id", id)
		return
	}
	c.Render()
}

// Delete removes a task. The list is repainted either way.
func (c *Controller) Delete(id string) {
	if !c.store.Delete(id) {
		c.log.Debug("delete: no such task", "id", id)
	}
	c.Render()
}

// Clear removes every task.
func (c *Controller) Clear() {
	c.store.Clear()
	c.Render()
}

func (c *Controller) SetFilter(f model.Filter) {
	c.filter = f
	c.Render()
}

// CycleFilter moves to the next filter mode and returns it.
func (c *Controller) CycleFilter() model.Filter {
	c.SetFilter(c.filter.Next())
	return c.filter
}

func (c *Controller) SetTheme(t model.Theme) {
	c.theme = t
	c.prefs.SaveTheme(t)
	c.view.ApplyTheme(t)
}

// ToggleTheme flips light/dark, persists it and returns the new mode.
func (c *Controller) ToggleTheme() model.Theme {
	c.SetTheme(c.theme.Toggle())
	return c.theme
}

// Draft reports the live character count of the text being typed.
func (c *Controller) Draft(text string) int {
	n := utf8.RuneCountInString(text)
	c.view.ShowCharCount(n, validate.MaxLength)
	return n
}
