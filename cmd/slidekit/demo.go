package main

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/slidekit/internal/config"
	"github.com/alexisbeaulieu97/slidekit/internal/logger"
	"github.com/alexisbeaulieu97/slidekit/internal/tui"
	"github.com/alexisbeaulieu97/slidekit/internal/ui/components"
)

type demoOptions struct {
	watch   bool
	logFile string
	theme   string
	ascii   bool
}

func newDemoCmd(root *rootFlags) *cobra.Command {
	opts := &demoOptions{}

	cmd := &cobra.Command{
		Use:   "demo <config>",
		Short: "Launch the interactive slider catalog",
		Long: `Launch the interactive TUI for a slider catalog. Sliders respond to the keyboard
and to the mouse; --watch rebuilds the catalog whenever the file is saved.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd, root, opts, args[0])
		},
	}

	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "Reload the catalog when the file changes")
	cmd.Flags().StringVar(&opts.logFile, "log-file", "", "Write logs to this file (logging is off otherwise)")
	cmd.Flags().StringVar(&opts.theme, "theme", "", "Theme override ("+strings.Join(components.ThemeNames, ", ")+")")
	cmd.Flags().BoolVar(&opts.ascii, "ascii", false, "Draw with ASCII glyphs")

	return cmd
}

func runDemo(cmd *cobra.Command, root *rootFlags, opts *demoOptions, path string) error {
	cfg, err := loadConfig("start demo", path)
	if err != nil {
		return err
	}

	log, closeLog, err := demoLogger(root, opts, cfg)
	if err != nil {
		return newCommandError("start demo", "opening log file", err, "Check that the log directory exists and is writable.")
	}
	defer closeLog()

	tuiOpts := tui.Options{Logger: log}
	if opts.theme != "" {
		theme, err := components.ThemeByName(opts.theme)
		if err != nil {
			return newCommandError("start demo", "resolving theme", err, "Pick one of the listed themes.")
		}
		tuiOpts.Theme = &theme
	}
	if opts.ascii {
		glyphs := components.ASCIIGlyphs()
		tuiOpts.Glyphs = &glyphs
	}

	if opts.watch {
		watcher, err := config.Watch(path, config.WatchOptions{Logger: log})
		if err != nil {
			return newCommandError("start demo", "watching catalog", err, "Run without --watch or check the directory permissions.")
		}
		defer func() { _ = watcher.Close() }()
		tuiOpts.Watcher = watcher
	}

	m, err := tui.NewModel(cfg, tuiOpts)
	if err != nil {
		return newCommandError("start demo", "building sliders", err, "Check the bounds and default values of the reported sliders.")
	}

	log.Info("demo started", "catalog", cfg.Name, "sliders", len(cfg.Sliders))

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	final, err := p.Run()
	if model, ok := final.(tui.Model); ok {
		model.Close()
	} else {
		m.Close()
	}
	if err != nil {
		return fmt.Errorf("failed to run demo: %w", err)
	}

	log.Info("demo closed")
	return nil
}

// demoLogger writes to --log-file only: the TUI owns the terminal.
func demoLogger(root *rootFlags, opts *demoOptions, cfg *config.Config) (*logger.Logger, func(), error) {
	if opts.logFile == "" {
		return nil, func() {}, nil
	}

	file, err := os.OpenFile(opts.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}

	log, err := root.newLogger(file, cfg)
	if err != nil {
		_ = file.Close()
		return nil, nil, err
	}
	return log, func() { _ = file.Close() }, nil
}
