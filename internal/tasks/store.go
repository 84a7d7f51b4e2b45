// Package tasks owns the authoritative, ordered task collection.
package tasks

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Makepad-fr/taskflow/internal/model"
	"github.com/Makepad-fr/taskflow/internal/validate"
)

// Persister is the write-through target. persist.Adapter satisfies it.
type Persister interface {
	Load() []model.Task
	Save(tasks []model.Task)
}

// Store is not safe for concurrent use; callers run on one event loop.
type Store struct {
	tasks []model.Task
	p     Persister
	newID func() string
	now   func() time.Time
}

type Option func(*Store)

// WithIDGenerator replaces the default random UUIDs.
func WithIDGenerator(f func() string) Option {
	return func(s *Store) { s.newID = f }
}

// WithClock replaces time.Now for CreatedAt.
func WithClock(f func() time.Time) Option {
	return func(s *Store) { s.now = f }
}

// New loads the persisted collection once and keeps it in memory.
func New(p Persister, opts ...Option) *Store {
	s := &Store{
		p:     p,
		newID: uuid.NewString,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.tasks = append([]model.Task(nil), p.Load()...)
	return s
}

// Create validates raw and appends a new task. A rejection comes back as a
// *validate.RejectedError and leaves the collection untouched.
func (s *Store) Create(raw string) (model.Task, error) {
	if err := validate.Task(raw).Err(); err != nil {
		return model.Task{}, err
	}
	t := model.Task{
		ID:        s.uniqueID(),
		Text:      strings.TrimSpace(raw),
		CreatedAt: s.now().UTC().Truncate(time.Millisecond),
	}
	s.tasks = append(s.tasks, t)
	s.p.Save(s.snapshot())
	return t, nil
}

// uniqueID guards against a generator handing out an id already in use.
func (s *Store) uniqueID() string {
	for {
		id := s.newID()
		if s.index(id) < 0 {
			return id
		}
	}
}

// Toggle flips Completed. Unknown ids are a no-op.
func (s *Store) Toggle(id string) bool {
	i := s.index(id)
	if i < 0 {
		return false
	}
	s.tasks[i].Completed = !s.tasks[i].Completed
	s.p.Save(s.snapshot())
	return true
}

// Delete removes the task. Unknown ids are a no-op.
func (s *Store) Delete(id string) bool {
	i := s.index(id)
	if i < 0 {
		return false
	}
	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
	s.p.Save(s.snapshot())
	return true
}

// Clearer is implemented by persisters that can drop the stored list
// outright. persist.Adapter does.
type Clearer interface {
	Clear()
}

// Clear drops every task. The stored list is removed when the persister
// supports it and overwritten with an empty list otherwise.
func (s *Store) Clear() {
	s.tasks = nil
	if c, ok := s.p.(Clearer); ok {
		c.Clear()
		return
	}
	s.p.Save(s.snapshot())
}

// Get looks a task up by id.
func (s *Store) Get(id string) (model.Task, bool) {
	i := s.index(id)
	if i < 0 {
		return model.Task{}, false
	}
	return s.tasks[i], true
}

// Filtered returns a fresh slice in insertion order.
func (s *Store) Filtered(f model.Filter) []model.Task {
	out := make([]model.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if f.Match(t) {
			out = append(out, t)
		}
	}
	return out
}

func (s *Store) Counts() model.Counts {
	c := model.Counts{Total: len(s.tasks)}
	for _, t := range s.tasks {
		if !t.Completed {
			c.Active++
		}
	}
	return c
}

func (s *Store) index(id string) int {
	for i, t := range s.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) snapshot() []model.Task {
	return append([]model.Task{}, s.tasks...)
}
