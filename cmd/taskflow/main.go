package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Makepad-fr/taskflow/internal/cli"
	"github.com/Makepad-fr/taskflow/internal/config"
	"github.com/Makepad-fr/taskflow/internal/ui"
)

func main() {
	// Root flags (apply to every subcommand)
	configPath := flag.String("config", "", "path to taskflow.toml")
	backend := flag.String("backend", "", "store backend: file, nutsdb or memory")
	dataDir := flag.String("data", "", "data directory")
	groupPending := flag.Bool("group", false, "group ls output by pending/done")
	color := flag.String("color", "", "color output: auto, always or never")
	logLevel := flag.String("log-level", "", "log level: debug, info, warn or error")
	flag.Parse()

	cfg, err := config.Load(*configPath, *dataDir)
	if err != nil {
		fmt.Fprintln(os.Stderr, "taskflow:", err)
		os.Exit(1)
	}

	// Flags override file and environment.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "backend":
			cfg.Store.Backend = *backend
		case "group":
			cfg.UI.Group = *groupPending
		case "color":
			cfg.UI.Color = *color
		case "log-level":
			cfg.Log.Level = *logLevel
		}
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "taskflow:", err)
		os.Exit(2)
	}
	ui.SetColorMode(cfg.UI.Color)

	// Hand the remaining args to the CLI runner.
	args := flag.Args()
	if len(args) == 0 {
		cli.PrintHelp(os.Stdout)
		os.Exit(2)
	}

	code := cli.Run(args, cli.Options{
		Config: cfg,
		Group:  cfg.UI.Group,
	})
	if code != 0 {
		fmt.Fprintln(os.Stderr)
	}
	os.Exit(code)
}
