package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Makepad-fr/taskflow/internal/controller"
	"github.com/Makepad-fr/taskflow/internal/model"
	"github.com/Makepad-fr/taskflow/internal/ui"
	"github.com/Makepad-fr/taskflow/internal/validate"
)

type keyMap struct {
	Add, Toggle, Delete, Filter, Theme, Quit key.Binding
	All, Active, Completed                   key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Add:       key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Toggle:    key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space", "toggle")),
		Delete:    key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "delete")),
		Filter:    key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "filter")),
		Theme:     key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		All:       key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "all")),
		Active:    key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "active")),
		Completed: key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "completed")),
	}
}

// Model is the Bubble Tea program. All task state lives behind ctrl.
type Model struct {
	ctrl *controller.Controller
	view *View
	keys keyMap

	list  list.Model
	input textinput.Model

	adding        bool
	width, height int
}

// Custom delegate to control how rows render (single line).
type rowDelegate struct {
	view *View
}

func (d rowDelegate) Height() int                             { return 1 }
func (d rowDelegate) Spacing() int                            { return 0 }
func (d rowDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d rowDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(rowItem)
	if !ok {
		return
	}
	t := d.view.theme
	text := ui.Truncate(it.Text, m.Width()-6)
	if it.Completed {
		text = t.Done.Render(text)
	}
	prefix := "  "
	if index == m.Index() {
		prefix = t.Selected.Render(">") + " "
	}
	fmt.Fprint(w, prefix+t.Box(it.Completed)+" "+text)
}

// New builds the program model and paints the first frame into view.
func New(ctrl *controller.Controller, view *View) Model {
	keys := defaultKeys()

	l := list.New(nil, rowDelegate{view: view}, 0, 0)
	l.SetShowTitle(false)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()
	// f and d belong to the filter and delete actions.
	l.KeyMap.NextPage = key.NewBinding(key.WithKeys("right", "l", "pgdown"), key.WithHelp("→/l", "next page"))
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Toggle, keys.Delete, keys.Filter, keys.Theme, keys.Quit}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.All, keys.Active, keys.Completed}
	}

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "What needs to be done?"
	ti.CharLimit = validate.MaxLength

	m := Model{ctrl: ctrl, view: view, keys: keys, list: l, input: ti, width: 80, height: 24}
	m.resize()
	ctrl.Render()
	ctrl.Draft("")
	m.sync()
	return m
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = size.Width, size.Height
		m.resize()
		return m, nil
	}

	if m.adding {
		return m.updateAdding(msg)
	}

	if k, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(k, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(k, m.keys.Add):
			m.adding = true
			m.input.SetValue("")
			m.ctrl.Draft("")
			m.resize()
			cmd := m.input.Focus()
			return m, cmd
		case key.Matches(k, m.keys.Toggle):
			if row, ok := m.selected(); ok {
				row.Toggle()
			}
			return m.synced()
		case key.Matches(k, m.keys.Delete):
			if row, ok := m.selected(); ok {
				row.Delete()
			}
			return m.synced()
		case key.Matches(k, m.keys.Filter):
			m.ctrl.CycleFilter()
			return m.synced()
		case key.Matches(k, m.keys.All):
			m.ctrl.SetFilter(model.FilterAll)
			return m.synced()
		case key.Matches(k, m.keys.Active):
			m.ctrl.SetFilter(model.FilterActive)
			return m.synced()
		case key.Matches(k, m.keys.Completed):
			m.ctrl.SetFilter(model.FilterCompleted)
			return m.synced()
		case key.Matches(k, m.keys.Theme):
			m.ctrl.ToggleTheme()
			return m.synced()
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateAdding(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "enter":
			if m.ctrl.Add(m.input.Value()) {
				m.input.SetValue("")
				m.input.Blur()
				m.adding = false
				m.resize()
			}
			return m.synced()
		case "esc":
			m.input.SetValue("")
			m.input.Blur()
			m.adding = false
			m.ctrl.Draft("")
			m.view.ShowValidation("")
			m.resize()
			return m, nil
		case "ctrl+c":
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.ctrl.Draft(m.input.Value())
	return m, cmd
}

func (m Model) selected() (rowItem, bool) {
	if m.view.placeholder != nil {
		return rowItem{}, false
	}
	it, ok := m.list.SelectedItem().(rowItem)
	return it, ok
}

// synced is sync for use in a return statement.
func (m Model) synced() (tea.Model, tea.Cmd) {
	cmd := m.sync()
	return m, cmd
}

// sync pushes a fresh paint from the view into the list widget.
func (m *Model) sync() tea.Cmd {
	if !m.view.dirty {
		return nil
	}
	m.view.dirty = false
	m.list.Styles.HelpStyle = m.view.theme.Help
	m.list.Styles.PaginationStyle = m.view.theme.Help
	cmd := m.list.SetItems(m.view.items)
	if n := len(m.view.items); n > 0 && m.list.Index() >= n {
		m.list.Select(n - 1)
	}
	return cmd
}

func (m *Model) resize() {
	// border + padding + header + tabs + footer
	h := m.height - 8
	if m.adding {
		h -= 4
	}
	if h < 3 {
		h = 3
	}
	m.list.SetSize(m.width-4, h)
	m.input.Width = m.width - 12
}

func (m Model) View() string {
	t := m.view.theme
	var b strings.Builder

	b.WriteString(m.header(t))
	b.WriteString("\n")
	b.WriteString(m.tabs(t))
	b.WriteString("\n\n")

	if p := m.view.placeholder; p != nil {
		b.WriteString(t.Muted.Render(p.Icon+" "+p.Title) + "\n")
		b.WriteString(t.Muted.Render(p.Subtitle) + "\n")
	} else {
		b.WriteString(m.list.View())
		b.WriteString("\n")
	}

	if m.adding {
		b.WriteString(m.inputBox(t))
		b.WriteString("\n")
	}
	b.WriteString(t.Muted.Render(m.view.summary))

	return t.Panel([]string{b.String()})
}

func (m Model) header(t ui.Theme) string {
	c := m.view.counts
	return fmt.Sprintf("%s   %s %d  %s %d  %s %d   %s",
		t.Title.Render("Tasks"),
		t.Success.Render(t.SymDone), c.Done(),
		t.Pending.Render(t.SymPending), c.Active,
		t.Accent.Render("Total"), c.Total,
		t.Icon,
	)
}

func (m Model) tabs(t ui.Theme) string {
	parts := make([]string, 0, len(model.Filters))
	for i, f := range model.Filters {
		label := fmt.Sprintf("%d %s", i+1, f)
		if f == m.ctrl.Filter() {
			parts = append(parts, t.Selected.Render(" "+label+" "))
		} else {
			parts = append(parts, t.Muted.Render(" "+label+" "))
		}
	}
	return strings.Join(parts, " ")
}

func (m Model) inputBox(t ui.Theme) string {
	counter := t.Muted
	if validate.Remaining(m.input.Value()) <= 20 {
		counter = t.Pending
	}
	title := "Add new task  " + counter.Render(fmt.Sprintf("%d/%d", m.view.chars, m.view.limit))
	if m.view.validation != "" {
		title += "  " + t.Error.Render(m.view.validation)
	}
	bar := lipgloss.NewStyle().Border(t.Border).BorderForeground(t.BorderColor).Padding(0, 1)
	return bar.Render(title + "\n" + m.input.View())
}

// Run starts the interactive list on the alternate screen.
func Run(ctrl *controller.Controller, view *View) error {
	p := tea.NewProgram(New(ctrl, view), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
