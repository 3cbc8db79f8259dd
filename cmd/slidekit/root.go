package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/slidekit/internal/config"
	"github.com/alexisbeaulieu97/slidekit/internal/logger"
)

type rootFlags struct {
	verbose  bool
	logLevel string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "slidekit",
		Short:         "Slidekit renders and drives slider catalogs in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level (debug, info, warn, error); defaults to the catalog setting")

	cmd.AddCommand(newDemoCmd(flags))
	cmd.AddCommand(newRenderCmd(flags))
	cmd.AddCommand(newInspectCmd(flags))
	cmd.AddCommand(newSimulateCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// newLogger builds the command logger. The flags win over the catalog's
// log_level setting; warn is the fallback so commands stay quiet.
func (f *rootFlags) newLogger(w io.Writer, cfg *config.Config) (*logger.Logger, error) {
	level := "warn"
	if cfg != nil && cfg.Settings.LogLevel != "" {
		level = cfg.Settings.LogLevel
	}
	if f.logLevel != "" {
		level = f.logLevel
	}
	if f.verbose {
		level = "debug"
	}
	return logger.New(logger.Options{Level: level, HumanReadable: true, Writer: w})
}
