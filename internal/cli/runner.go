package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/Makepad-fr/taskflow/internal/config"
	"github.com/Makepad-fr/taskflow/internal/logging"
	"github.com/Makepad-fr/taskflow/internal/model"
	"github.com/Makepad-fr/taskflow/internal/render"
	"github.com/Makepad-fr/taskflow/internal/tui"
	"github.com/Makepad-fr/taskflow/internal/ui"
)

// Options tune output behavior from root flags.
type Options struct {
	Config config.Config
	Group  bool // list grouped by pending/done

	Stdout, Stderr io.Writer
}

type runner struct {
	opt    Options
	out    ui.Printer
	logger *log.Logger
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func Run(args []string, opt Options) int {
	if opt.Stdout == nil {
		opt.Stdout = os.Stdout
	}
	if opt.Stderr == nil {
		opt.Stderr = os.Stderr
	}
	r := &runner{
		opt:    opt,
		out:    ui.Printer{Out: opt.Stdout, Err: opt.Stderr, Theme: ui.For(model.ThemeLight)},
		logger: logging.New(opt.Stderr, opt.Config.Log.Level, opt.Config.Log.Format),
	}

	if len(args) == 0 {
		PrintHelp(opt.Stdout)
		return 2
	}
	cmd, a := args[0], args[1:]

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp(opt.Stdout)
		return 0

	case "ls":
		if len(a) > 1 {
			r.out.Fail("usage: taskflow ls [all|active|completed]")
			return 2
		}
		filter := model.FilterAll
		if len(a) == 1 {
			f, err := model.ParseFilter(a[0])
			if err != nil {
				r.out.Fail("ls: " + err.Error())
				return 2
			}
			filter = f
		}
		return r.doList(filter)

	case "add":
		if len(a) == 0 {
			r.out.Fail("usage: taskflow add <text...>")
			return 2
		}
		return r.doAdd(strings.Join(a, " "))

	case "done":
		if len(a) != 1 {
			r.out.Fail("usage: taskflow done <index|id>")
			return 2
		}
		return r.doToggle(a[0])

	case "rm":
		if len(a) != 1 {
			r.out.Fail("usage: taskflow rm <index|id>")
			return 2
		}
		return r.doRemove(a[0])

	case "clear":
		if len(a) != 0 {
			r.out.Fail("usage: taskflow clear")
			return 2
		}
		return r.doClear()

	case "theme":
		if len(a) > 1 {
			r.out.Fail("usage: taskflow theme [light|dark|toggle]")
			return 2
		}
		return r.doTheme(a)

	case "tui":
		return r.doTUI()
	}

	r.out.Fail("unknown subcommand: " + cmd)
	fmt.Fprintln(opt.Stderr)
	PrintHelp(opt.Stderr)
	return 2
}

func PrintHelp(w io.Writer) {
	fmt.Fprint(w, `taskflow - a small task list

Usage:
  taskflow [flags] <subcommand> [args]

Subcommands:
  add <text...>            Add a new task (text can be multiple words)
  ls [all|active|completed]
                           List tasks
  done <index|id>          Toggle completion of a task
  rm <index|id>            Remove a task
  clear                    Remove every task
  theme [light|dark|toggle]
                           Show or change the color theme
  tui                      Interactive list

Indexes are 1-based positions in the full list (as printed by ls).
Ids may be shortened to any unique prefix of at least 4 characters.

Examples:
  taskflow add "Buy milk"
  taskflow ls active
  taskflow done 2
  taskflow rm 3
`)
}

// -------------- subcommand impls ----------------

// open wires an app around a line view and applies the saved theme to the
// printer.
func (r *runner) open() (*app, *listView, bool) {
	view := newListView()
	a, err := openApp(r.opt.Config, view, r.logger)
	if err != nil {
		r.out.Fail(err.Error())
		return nil, nil, false
	}
	r.out.Theme = ui.For(a.ctrl.Theme())
	return a, view, true
}

func (r *runner) closeApp(a *app) {
	if err := a.Close(); err != nil {
		r.logger.Error("close store", "err", err)
	}
}

func (r *runner) doList(filter model.Filter) int {
	a, view, ok := r.open()
	if !ok {
		return 1
	}
	defer r.closeApp(a)

	a.ctrl.SetFilter(filter)

	pos := map[string]int{}
	for i, t := range a.tasks.Filtered(model.FilterAll) {
		pos[t.ID] = i + 1
	}
	lines := view.lines(filter, pos, r.opt.Group)
	lines = append(lines, view.theme.Muted.Render(`Tip: add with `+"`taskflow add \"Buy milk\"`"))
	r.out.Println(view.theme.Panel(lines))
	return 0
}

func (r *runner) doAdd(text string) int {
	a, view, ok := r.open()
	if !ok {
		return 1
	}
	defer r.closeApp(a)

	if !a.ctrl.Add(text) {
		r.out.Fail("add: " + view.validation)
		return 2
	}
	r.out.OK("added (" + view.summary + ")")
	return 0
}

func (r *runner) doToggle(arg string) int {
	a, _, ok := r.open()
	if !ok {
		return 1
	}
	defer r.closeApp(a)

	id, err := a.resolve(arg)
	if err != nil {
		r.out.Fail("done: " + err.Error())
		r.out.Hint("Hint: run `taskflow ls` to see valid indexes")
		return 2
	}
	a.ctrl.Toggle(id)
	t, _ := a.tasks.Get(id)
	if t.Completed {
		r.out.OK("completed: " + render.Escape(t.Text))
	} else {
		r.out.OK("reopened: " + render.Escape(t.Text))
	}
	return 0
}

func (r *runner) doRemove(arg string) int {
	a, _, ok := r.open()
	if !ok {
		return 1
	}
	defer r.closeApp(a)

	id, err := a.resolve(arg)
	if err != nil {
		r.out.Fail("rm: " + err.Error())
		r.out.Hint("Hint: run `taskflow ls` to see valid indexes")
		return 2
	}
	a.ctrl.Delete(id)
	r.out.OK("removed")
	return 0
}

func (r *runner) doClear() int {
	a, _, ok := r.open()
	if !ok {
		return 1
	}
	defer r.closeApp(a)

	a.ctrl.Clear()
	r.out.OK("cleared")
	return 0
}

func (r *runner) doTheme(args []string) int {
	a, _, ok := r.open()
	if !ok {
		return 1
	}
	defer r.closeApp(a)

	if len(args) == 1 {
		switch strings.ToLower(args[0]) {
		case "toggle":
			a.ctrl.ToggleTheme()
		case "light":
			a.ctrl.SetTheme(model.ThemeLight)
		case "dark":
			a.ctrl.SetTheme(model.ThemeDark)
		default:
			r.out.Fail("theme: want light, dark or toggle, got " + args[0])
			return 2
		}
		r.out.Theme = ui.For(a.ctrl.Theme())
	}
	r.out.OK("theme: " + a.ctrl.Theme().String())
	return 0
}

func (r *runner) doTUI() int {
	logger, closer, err := logging.NewFile(r.opt.Config.LogFile(), r.opt.Config.Log.Level, r.opt.Config.Log.Format)
	if err != nil {
		r.out.Fail("tui: " + err.Error())
		return 1
	}
	defer closer.Close()

	view := tui.NewView()
	a, err := openApp(r.opt.Config, view, logger)
	if err != nil {
		r.out.Fail(err.Error())
		return 1
	}
	defer r.closeApp(a)

	if err := tui.Run(a.ctrl, view); err != nil {
		r.out.Fail("tui: " + err.Error())
		return 1
	}
	return 0
}
