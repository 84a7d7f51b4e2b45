// Package persist reads and writes the task list and theme preference.
// It is the only package that talks to the key/value store; every failure
// is logged and swallowed so the in-memory state stays authoritative.
package persist

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/charmbracelet/log"

	"github.com/Makepad-fr/taskflow/internal/model"
	"github.com/Makepad-fr/taskflow/internal/store"
)

const (
	TasksKey = "taskflow_tasks"
	ThemeKey = "theme"
)

type Adapter struct {
	kv  store.Store
	log *log.Logger
}

func New(kv store.Store, logger *log.Logger) *Adapter {
	return &Adapter{kv: kv, log: logger}
}

// Load returns the stored tasks, or an empty slice when nothing usable is stored.
func (a *Adapter) Load() []model.Task {
	raw, err := a.kv.Get(TasksKey)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			a.log.Error("error loading tasks", "err", err)
		}
		return []model.Task{}
	}

	var doc any
	dec := json.NewDecoder(bytes.NewReader([]byte(raw)))
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		a.log.Error("error loading tasks: stored value is not JSON", "err", err)
		return []model.Task{}
	}
	if err := tasksSchema.Validate(doc); err != nil {
		a.log.Error("error loading tasks: stored value has the wrong shape", "problems", schemaProblems(err))
		return []model.Task{}
	}

	var tasks []model.Task
	if err := json.Unmarshal([]byte(raw), &tasks); err != nil {
		a.log.Error("error loading tasks", "err", err)
		return []model.Task{}
	}
	return a.dedupe(tasks)
}

func (a *Adapter) dedupe(tasks []model.Task) []model.Task {
	seen := make(map[string]bool, len(tasks))
	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if seen[t.ID] {
			a.log.Warn("dropping stored task with duplicate id", "id", t.ID)
			continue
		}
		seen[t.ID] = true
		out = append(out, t)
	}
	return out
}

// Save overwrites the stored list with tasks.
func (a *Adapter) Save(tasks []model.Task) {
	if tasks == nil {
		tasks = []model.Task{}
	}
	b, err := json.Marshal(tasks)
	if err != nil {
		a.log.Error("error saving tasks", "err", err)
		return
	}
	if err := a.kv.Set(TasksKey, string(b)); err != nil {
		a.log.Error("error saving tasks", "err", err)
	}
}

// Clear removes the stored list.
func (a *Adapter) Clear() {
	if err := a.kv.Delete(TasksKey); err != nil {
		a.log.Error("error clearing tasks", "err", err)
	}
}

// LoadTheme defaults to light when nothing is stored.
func (a *Adapter) LoadTheme() model.Theme {
	raw, err := a.kv.Get(ThemeKey)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			a.log.Error("error loading theme", "err", err)
		}
		return model.ThemeLight
	}
	return model.ParseTheme(raw)
}

func (a *Adapter) SaveTheme(t model.Theme) {
	if err := a.kv.Set(ThemeKey, t.String()); err != nil {
		a.log.Error("error saving theme", "err", err)
	}
}
