package persist

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Makepad-fr/taskflow/internal/model"
	"github.com/Makepad-fr/taskflow/internal/store"
)

func newAdapter(t *testing.T) (*Adapter, *store.Memory, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel, Formatter: log.LogfmtFormatter})
	kv := store.NewMemory()
	return New(kv, logger), kv, &buf
}

func sampleTasks() []model.Task {
	at := time.Date(2026, 10, 18, 9, 30, 0, 123_000_000, time.UTC)
	return []model.Task{
		{ID: "a", Text: "Buy milk", CreatedAt: at},
		{ID: "b", Text: "Walk <dog> & cat", Completed: true, CreatedAt: at.Add(time.Minute)},
		{ID: "c", Text: "Ünïcödé ✓", CreatedAt: at.Add(2 * time.Minute)},
	}
}

func requireSameTasks(t *testing.T, want, got []model.Task) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		assert.Equal(t, want[i].ID, got[i].ID)
		assert.Equal(t, want[i].Text, got[i].Text)
		assert.Equal(t, want[i].Completed, got[i].Completed)
		assert.True(t, want[i].CreatedAt.Equal(got[i].CreatedAt), "createdAt %d", i)
	}
}

func TestLoadMissingKey(t *testing.T) {
	a, _, buf := newAdapter(t)
	got := a.Load()
	assert.NotNil(t, got)
	assert.Empty(t, got)
	assert.NotContains(t, buf.String(), "error")
}

func TestRoundTrip(t *testing.T) {
	a, _, _ := newAdapter(t)
	assert.Empty(t, a.Load())

	tasks := sampleTasks()
	a.Save(tasks)
	requireSameTasks(t, tasks, a.Load())
}

func TestSaveWritesISOTimestamps(t *testing.T) {
	a, kv, _ := newAdapter(t)
	a.Save(sampleTasks()[:1])

	raw, err := kv.Get(TasksKey)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"a","text":"Buy milk","completed":false,"createdAt":"2026-10-18T09:30:00.123Z"}]`, raw)
}

func TestSaveNilWritesEmptyArray(t *testing.T) {
	a, kv, _ := newAdapter(t)
	a.Save(nil)
	raw, err := kv.Get(TasksKey)
	require.NoError(t, err)
	assert.Equal(t, "[]", raw)
}

func TestLoadCorruptData(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{name: "not json", value: "{oops"},
		{name: "object instead of array", value: `{"id":"a"}`},
		{name: "null", value: `null`},
		{name: "missing text", value: `[{"id":"a","completed":false,"createdAt":"2026-10-18T09:30:00Z"}]`},
		{name: "empty text", value: `[{"id":"a","text":"","completed":false,"createdAt":"2026-10-18T09:30:00Z"}]`},
		{name: "blank text", value: `[{"id":"a","text":" \t ","completed":false,"createdAt":"2026-10-18T09:30:00Z"}]`},
		{name: "text too long", value: `[{"id":"a","text":"` + strings.Repeat("x", 201) + `","completed":false,"createdAt":"2026-10-18T09:30:00Z"}]`},
		{name: "completed not bool", value: `[{"id":"a","text":"x","completed":"yes","createdAt":"2026-10-18T09:30:00Z"}]`},
		{name: "bad timestamp", value: `[{"id":"a","text":"x","completed":false,"createdAt":"yesterday"}]`},
		{name: "numeric id", value: `[{"id":1697622000000,"text":"x","completed":false,"createdAt":"2026-10-18T09:30:00Z"}]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, kv, buf := newAdapter(t)
			require.NoError(t, kv.Set(TasksKey, tt.value))

			var got []model.Task
			require.NotPanics(t, func() { got = a.Load() })
			assert.NotNil(t, got)
			assert.Empty(t, got)
			assert.Contains(t, buf.String(), "error loading tasks")
		})
	}
}

func TestLoadAcceptsTextAtLimit(t *testing.T) {
	a, kv, buf := newAdapter(t)
	text := strings.Repeat("é", 200)
	require.NoError(t, kv.Set(TasksKey, `[{"id":"a","text":"`+text+`","completed":false,"createdAt":"2026-10-18T09:30:00Z"}]`))

	got := a.Load()
	require.Len(t, got, 1)
	assert.Equal(t, text, got[0].Text)
	assert.NotContains(t, buf.String(), "error")
}

func TestLoadDropsDuplicateIDs(t *testing.T) {
	a, kv, buf := newAdapter(t)
	require.NoError(t, kv.Set(TasksKey, `[
		{"id":"a","text":"first","completed":false,"createdAt":"2026-10-18T09:30:00Z"},
		{"id":"a","text":"second","completed":true,"createdAt":"2026-10-18T09:31:00Z"},
		{"id":"b","text":"third","completed":false,"createdAt":"2026-10-18T09:32:00Z"}
	]`))

	got := a.Load()
	require.Len(t, got, 2)
	assert.Equal(t, "first", got[0].Text)
	assert.Equal(t, "b", got[1].ID)
	assert.Contains(t, buf.String(), "duplicate id")
}

func TestSaveFailureIsLoggedNotFatal(t *testing.T) {
	a, kv, buf := newAdapter(t)
	tasks := sampleTasks()
	a.Save(tasks[:1])

	kv.FailWrites = errors.New("quota exceeded")
	require.NotPanics(t, func() { a.Save(tasks) })
	assert.Contains(t, buf.String(), "error saving tasks")
	assert.Contains(t, buf.String(), "quota exceeded")

	// The previous write is what survives.
	kv.FailWrites = nil
	requireSameTasks(t, tasks[:1], a.Load())
}

func TestClear(t *testing.T) {
	a, kv, buf := newAdapter(t)
	a.Save(sampleTasks())
	a.Clear()
	assert.Empty(t, a.Load())

	kv.FailWrites = errors.New("read-only")
	a.Clear()
	assert.Contains(t, buf.String(), "error clearing tasks")
}

func TestTheme(t *testing.T) {
	a, kv, buf := newAdapter(t)
	assert.Equal(t, model.ThemeLight, a.LoadTheme())

	a.SaveTheme(model.ThemeDark)
	assert.Equal(t, model.ThemeDark, a.LoadTheme())
	raw, err := kv.Get(ThemeKey)
	require.NoError(t, err)
	assert.Equal(t, "dark", raw)

	kv.FailWrites = errors.New("disk full")
	a.SaveTheme(model.ThemeLight)
	assert.Contains(t, buf.String(), "error saving theme")
	assert.Equal(t, model.ThemeDark, a.LoadTheme())
}
