// Package config loads taskflow settings: defaults, then a TOML file, then
// TASKFLOW_* environment variables. Flags are applied on top by the caller.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

const FileName = "taskflow.toml"

const (
	BackendFile   = "file"
	BackendNutsDB = "nutsdb"
	BackendMemory = "memory"
)

type Config struct {
	Store Store `toml:"store"`
	Log   Log   `toml:"log"`
	UI    UI    `toml:"ui"`
}

type Store struct {
	Backend string `toml:"backend"`
	// Dir holds the data file / database and the TUI log.
	Dir string `toml:"dir"`
}

type Log struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
	// File overrides where the TUI logs; the CLI always logs to stderr.
	File string `toml:"file"`
}

type UI struct {
	Color string `toml:"color"` // auto | always | never
	Group bool   `toml:"group"` // ls grouped by pending/done
}

// Default stores data under the user config dir.
func Default() Config {
	return Config{
		Store: Store{Backend: BackendFile, Dir: defaultDir()},
		Log:   Log{Level: "info", Format: "text"},
		UI:    UI{Color: "auto"},
	}
}

func defaultDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "taskflow")
	}
	return ".taskflow"
}

// Load reads path when given (it must exist); otherwise taskflow.toml in the
// data dir is used if present. dataDir, when set, is the data dir chosen on
// the command line: it decides where the file is looked up and wins over the
// file and the environment. The result is not validated; callers apply their
// own overrides first and then call Validate.
func Load(path, dataDir string) (Config, error) {
	cfg := Default()
	if dir := os.Getenv("TASKFLOW_DATA"); dir != "" {
		cfg.Store.Dir = dir
	}
	if dataDir != "" {
		cfg.Store.Dir = dataDir
	}

	explicit := path != ""
	if !explicit {
		path = filepath.Join(cfg.Store.Dir, FileName)
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if explicit || !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("loading config file %s: %w", path, err)
		}
	}

	loadFromEnv(&cfg)
	if dataDir != "" {
		cfg.Store.Dir = dataDir
	}
	return cfg, nil
}

func loadFromEnv(cfg *Config) {
	if v := os.Getenv("TASKFLOW_BACKEND"); v != "" {
		cfg.Store.Backend = v
	}
	if v := os.Getenv("TASKFLOW_DATA"); v != "" {
		cfg.Store.Dir = v
	}
	if v := os.Getenv("TASKFLOW_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("TASKFLOW_LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
	if v := os.Getenv("TASKFLOW_COLOR"); v != "" {
		cfg.UI.Color = v
	}
}

// Validate normalizes case and rejects unknown enum values.
func (c *Config) Validate() error {
	c.Store.Backend = strings.ToLower(strings.TrimSpace(c.Store.Backend))
	switch c.Store.Backend {
	case BackendFile, BackendNutsDB, BackendMemory:
	default:
		return fmt.Errorf("store.backend: unknown backend %q (want file, nutsdb or memory)", c.Store.Backend)
	}
	if c.Store.Dir == "" && c.Store.Backend != BackendMemory {
		return fmt.Errorf("store.dir: must not be empty")
	}
	c.UI.Color = strings.ToLower(strings.TrimSpace(c.UI.Color))
	switch c.UI.Color {
	case "", "auto":
		c.UI.Color = "auto"
	case "always", "never":
	default:
		return fmt.Errorf("ui.color: unknown value %q (want auto, always or never)", c.UI.Color)
	}
	return nil
}

// LogFile is where the interactive view writes its log.
func (c Config) LogFile() string {
	if c.Log.File != "" {
		return c.Log.File
	}
	return filepath.Join(c.Store.Dir, "taskflow.log")
}
