// Package main is the entry point for the hexstorm viewer.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dshills/hexstorm/internal/app"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// flags holds the command line flags.
type flags struct {
	rows       uint16
	configPath string
	backend    string
	logLevel   string
	logFile    string
	switchMode string
	noWatch    bool
}

func newRootCmd() *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:   "hexstorm <file> [bytes_per_group] [groups_per_row]",
		Short: "Terminal hex viewer",
		Long: `hexstorm shows a file as rows of grouped hex bytes next to their
printable characters and lets you move through it with the keyboard.

Only a screenful of the file is read at a time, so files of any size open
instantly. Settings come from $XDG_CONFIG_HOME/hexstorm/config.toml (or
.yaml), HEXSTORM_* environment variables and the flags below, in that
order of precedence.

Examples:
  hexstorm image.png              # 8 bytes per group, 2 groups per row
  hexstorm dump.bin 4 4           # 4 groups of 4 bytes
  hexstorm -r 30 core.dump        # 30 rows
  hexstorm --backend termbox a.out`,
		Version:       version,
		Args:          cobra.RangeArgs(1, 3),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := buildOptions(cmd, args, f)
			if err != nil {
				return err
			}
			return view(opts)
		},
	}
	cmd.SetVersionTemplate(fmt.Sprintf("hexstorm %s\nCommit: %s\nBuilt: %s\n", version, commit, date))

	fl := cmd.Flags()
	fl.Uint16VarP(&f.rows, "rows", "r", 10, "Number of data rows on screen")
	fl.StringVarP(&f.configPath, "config", "c", "", "Path to configuration file")
	fl.StringVar(&f.backend, "backend", "tcell", "Terminal backend (tcell, termbox)")
	fl.StringVar(&f.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	fl.StringVar(&f.logFile, "log-file", "", "Write logs to this file")
	fl.StringVar(&f.switchMode, "switch-mode", "keep", "Cursor column on panel switch (keep, left-edge, right-edge)")
	fl.BoolVar(&f.noWatch, "no-watch", false, "Do not reload the config file when it changes")

	return cmd
}

// buildOptions turns positional arguments and changed flags into
// application options. Flags left at their defaults do not override the
// config file or the environment.
func buildOptions(cmd *cobra.Command, args []string, f flags) (app.Options, error) {
	overrides := make(map[string]any)

	positional := []string{"viewer.bytesPerGroup", "viewer.groupsPerRow"}
	names := []string{"bytes_per_group", "groups_per_row"}
	for i, arg := range args[1:] {
		v, err := strconv.ParseUint(arg, 10, 16)
		if err != nil {
			return app.Options{}, fmt.Errorf("invalid %s %q: must be a number from 0 to 65535", names[i], arg)
		}
		overrides[positional[i]] = uint16(v)
	}

	fl := cmd.Flags()
	if fl.Changed("rows") {
		overrides["viewer.rows"] = f.rows
	}
	if fl.Changed("backend") {
		overrides["ui.backend"] = f.backend
	}
	if fl.Changed("log-level") {
		overrides["logging.level"] = f.logLevel
	}
	if fl.Changed("log-file") {
		overrides["logging.file"] = f.logFile
	}
	if fl.Changed("switch-mode") {
		overrides["viewer.switchMode"] = f.switchMode
	}

	opts := app.Options{
		File:  args[0],
		Watch: !f.noWatch,
	}
	opts.Config.Path = f.configPath
	opts.Config.Overrides = overrides
	return opts, nil
}

// view runs the viewer until the user quits.
func view(opts app.Options) error {
	application, err := app.New(opts)
	if err != nil {
		return err
	}
	defer application.Close()

	// Handle signals for graceful shutdown
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(signals)

	go func() {
		if _, ok := <-signals; ok {
			application.Stop()
		}
	}()

	return application.Run()
}
