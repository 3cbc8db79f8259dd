package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/slidekit/internal/catalog"
)

type inspectOptions struct {
	jsonOutput bool
}

func newInspectCmd(root *rootFlags) *cobra.Command {
	opts := &inspectOptions{}

	cmd := &cobra.Command{
		Use:   "inspect <config>",
		Short: "Show the assistive state of every slider handle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, root, opts, args[0])
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runInspect(cmd *cobra.Command, root *rootFlags, opts *inspectOptions, path string) error {
	cfg, err := loadConfig("inspect", path)
	if err != nil {
		return err
	}

	log, err := root.newLogger(cmd.ErrOrStderr(), cfg)
	if err != nil {
		return newCommandError("inspect", "configuring logging", err, "Use one of debug, info, warn or error.")
	}

	cat, err := catalog.Build(cfg, catalog.Options{Logger: log})
	if err != nil {
		return newCommandError("inspect", "building sliders", err, "Check the bounds and default values of the reported sliders.")
	}
	defer cat.Close()

	states := cat.Snapshot()
	if opts.jsonOutput {
		return renderInspectJSON(cmd, cat.Name(), states)
	}
	return renderInspectTable(cmd, states)
}

func renderInspectTable(cmd *cobra.Command, states []catalog.SliderState) error {
	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

	fmt.Fprintln(writer, "ID\tHANDLE\tNOW\tMIN\tMAX\tTEXT\tORIENTATION\tSTATE")

	for _, s := range states {
		state := "enabled"
		if s.Disabled {
			state = "disabled"
		}
		for _, h := range s.Handles {
			fmt.Fprintf(writer, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
				s.ID,
				h.Handle,
				formatNumber(h.Now),
				formatNumber(h.Min),
				formatNumber(h.Max),
				h.ValueText,
				s.Orientation,
				state,
			)
		}
	}

	return writer.Flush()
}

type inspectJSONPayload struct {
	Version string                `json:"version"`
	Name    string                `json:"name"`
	Count   int                   `json:"count"`
	Sliders []catalog.SliderState `json:"sliders"`
}

func renderInspectJSON(cmd *cobra.Command, name string, states []catalog.SliderState) error {
	payload := inspectJSONPayload{
		Version: "1.0",
		Name:    name,
		Count:   len(states),
		Sliders: states,
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
