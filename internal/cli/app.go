package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/Makepad-fr/taskflow/internal/config"
	"github.com/Makepad-fr/taskflow/internal/controller"
	"github.com/Makepad-fr/taskflow/internal/model"
	"github.com/Makepad-fr/taskflow/internal/persist"
	"github.com/Makepad-fr/taskflow/internal/store"
	"github.com/Makepad-fr/taskflow/internal/store/jsonstore"
	"github.com/Makepad-fr/taskflow/internal/store/nutsstore"
	"github.com/Makepad-fr/taskflow/internal/tasks"
)

// minPrefix is the shortest id prefix accepted in place of a full id.
const minPrefix = 4

// app is one process worth of wiring: store, task collection, controller.
type app struct {
	kv    store.Store
	tasks *tasks.Store
	ctrl  *controller.Controller
}

func openStore(cfg config.Config) (store.Store, error) {
	switch cfg.Store.Backend {
	case config.BackendMemory:
		return store.NewMemory(), nil
	case config.BackendNutsDB:
		return nutsstore.Open(filepath.Join(cfg.Store.Dir, "nutsdb"))
	case config.BackendFile:
		if err := os.MkdirAll(cfg.Store.Dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir: %w", err)
		}
		return jsonstore.Open(filepath.Join(cfg.Store.Dir, jsonstore.DefaultFileName))
	}
	return nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
}

func openApp(cfg config.Config, view controller.View, logger *log.Logger) (*app, error) {
	kv, err := openStore(cfg)
	if err != nil {
		return nil, fmt.Errorf("open %s store: %w", cfg.Store.Backend, err)
	}
	adapter := persist.New(kv, logger)
	ts := tasks.New(adapter)
	return &app{
		kv:    kv,
		tasks: ts,
		ctrl:  controller.New(ts, adapter, view, logger),
	}, nil
}

func (a *app) Close() error { return a.kv.Close() }

// resolve maps a 1-based index into the full list, a full id, or a unique
// id prefix to a task id.
func (a *app) resolve(arg string) (string, error) {
	all := a.tasks.Filtered(model.FilterAll)
	if n, err := strconv.Atoi(arg); err == nil {
		if n < 1 || n > len(all) {
			return "", fmt.Errorf("index out of range: have %d, got %d", len(all), n)
		}
		return all[n-1].ID, nil
	}
	if _, ok := a.tasks.Get(arg); ok {
		return arg, nil
	}
	if len(arg) < minPrefix {
		return "", fmt.Errorf("no task with id %q", arg)
	}
	var match string
	for _, t := range all {
		if strings.HasPrefix(t.ID, arg) {
			if match != "" {
				return "", fmt.Errorf("id prefix %q is ambiguous", arg)
			}
			match = t.ID
		}
	}
	if match == "" {
		return "", fmt.Errorf("no task with id %q", arg)
	}
	return match, nil
}
